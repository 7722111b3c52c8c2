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

package cleanup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/cleanup"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
)

func TestUnusedVersions(t *testing.T) {
	repo := manifest.Repository{
		"zlib": {
			"1.2.11": {Make: manifest.MethodCmake},
			"1.2.12": {Make: manifest.MethodCmake},
		},
		"python": {
			"3.8.6": {Make: manifest.MethodNoop},
		},
		"orphan": {
			"0.1": {Make: manifest.MethodRsync},
		},
	}

	stable := manifest.NewRelease()
	stable.Set("zlib", "1.2.11")
	stable.Set("python", "3.8.6")

	preview := manifest.NewRelease()
	preview.Set("zlib", "1.2.12")

	unused := cleanup.UnusedVersions(repo, []*manifest.Release{stable, preview})
	assert.Equal(t, []cleanup.VersionRef{
		{Package: "orphan", Version: "0.1"},
	}, unused)
}

func TestUnusedVersionsAllUnusedWithoutReleases(t *testing.T) {
	repo := manifest.Repository{
		"zlib": {
			"1.2.12": {Make: manifest.MethodCmake},
			"1.2.11": {Make: manifest.MethodCmake},
		},
	}

	unused := cleanup.UnusedVersions(repo, nil)
	assert.Equal(t, []cleanup.VersionRef{
		{Package: "zlib", Version: "1.2.11"},
		{Package: "zlib", Version: "1.2.12"},
	}, unused)
}

func TestUnusedVersionsEmptyRepo(t *testing.T) {
	unused := cleanup.UnusedVersions(manifest.Repository{}, nil)
	assert.Empty(t, unused)
}
