// ADK - Any Distribution Kit
// Copyright (C) 2026 The ADK Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/resolver"
)

func makeRepo(entries map[string][]string) manifest.Repository {
	repo := manifest.Repository{}
	for name, deps := range entries {
		repo[name] = map[string]manifest.PackageVersion{
			"1.0": {Make: manifest.MethodNoop, Depends: deps},
		}
	}
	return repo
}

func makeRelease(names ...string) *manifest.Release {
	release := manifest.NewRelease()
	for _, name := range names {
		release.Set(name, "1.0")
	}
	return release
}

func TestResolveOrdersDependenciesFirst(t *testing.T) {
	repo := makeRepo(map[string][]string{
		"app":    {"libfoo", "python"},
		"libfoo": {"zlib"},
		"zlib":   nil,
		"python": {"zlib"},
	})
	release := makeRelease("app", "python", "zlib", "libfoo")

	plan, err := resolver.Resolve(release, repo)
	assert.NoError(t, err)
	assert.Len(t, plan, 4)

	pos := map[string]int{}
	for i, name := range plan {
		pos[name] = i
	}
	assert.Less(t, pos["zlib"], pos["libfoo"])
	assert.Less(t, pos["zlib"], pos["python"])
	assert.Less(t, pos["libfoo"], pos["app"])
	assert.Less(t, pos["python"], pos["app"])
}

func TestResolveVisitsEachPackageOnce(t *testing.T) {
	// Ромб: оба пути ведут к base, но в плане он один раз
	repo := makeRepo(map[string][]string{
		"top":   {"left", "right"},
		"left":  {"base"},
		"right": {"base"},
		"base":  nil,
	})
	release := makeRelease("top", "left", "right", "base")

	plan, err := resolver.Resolve(release, repo)
	assert.NoError(t, err)
	assert.Equal(t, []string{"base", "left", "right", "top"}, plan)
}

func TestResolveKeepsDeclarationOrderForIndependentPackages(t *testing.T) {
	repo := makeRepo(map[string][]string{
		"c": nil,
		"a": nil,
		"b": nil,
	})
	release := makeRelease("c", "a", "b")

	plan, err := resolver.Resolve(release, repo)
	assert.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, plan)
}

func TestResolveMissingDependency(t *testing.T) {
	// setuptools объявлен в репозитории, но не входит в релиз
	repo := makeRepo(map[string][]string{
		"wheel": {"setuptools"},
	})
	release := makeRelease("wheel")

	_, err := resolver.Resolve(release, repo)
	assert.ErrorIs(t, err, resolver.ErrUnresolvedDependency)
	assert.ErrorContains(t, err, "setuptools")
}

func TestResolveMissingRepositoryEntry(t *testing.T) {
	repo := makeRepo(map[string][]string{"zlib": nil})
	release := makeRelease("zlib")
	release.Set("ghost", "2.0")

	_, err := resolver.Resolve(release, repo)
	assert.ErrorIs(t, err, manifest.ErrPackageNotFound)
}

func TestResolveDetectsCycle(t *testing.T) {
	repo := makeRepo(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	})
	release := makeRelease("a", "b", "c")

	_, err := resolver.Resolve(release, repo)
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
	assert.ErrorContains(t, err, "a -> b -> c -> a")
}

func TestResolveSelfDependencyIsACycle(t *testing.T) {
	repo := makeRepo(map[string][]string{
		"selfish": {"selfish"},
	})
	release := makeRelease("selfish")

	_, err := resolver.Resolve(release, repo)
	assert.ErrorIs(t, err, resolver.ErrCycleDetected)
}

func TestResolveDependsAreVersionSpecific(t *testing.T) {
	repo := manifest.Repository{
		"app": {
			"1.0": {Make: manifest.MethodNoop},
			"2.0": {Make: manifest.MethodNoop, Depends: []string{"newdep"}},
		},
		"newdep": {
			"1.0": {Make: manifest.MethodNoop},
		},
	}

	release := manifest.NewRelease()
	release.Set("app", "1.0")
	plan, err := resolver.Resolve(release, repo)
	assert.NoError(t, err)
	assert.Equal(t, []string{"app"}, plan)

	release = manifest.NewRelease()
	release.Set("app", "2.0")
	release.Set("newdep", "1.0")
	plan, err = resolver.Resolve(release, repo)
	assert.NoError(t, err)
	assert.Equal(t, []string{"newdep", "app"}, plan)
}
