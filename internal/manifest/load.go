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

package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadRepository читает и проверяет файл репозитория.
// Дублирующиеся ключи являются ошибкой загрузки.
func LoadRepository(path string) (Repository, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()

	var repo Repository
	if err := yaml.NewDecoder(fl).Decode(&repo); err != nil {
		return nil, fmt.Errorf("repository %s: %w", path, err)
	}

	if err := repo.Validate(); err != nil {
		return nil, fmt.Errorf("repository %s: %w", path, err)
	}
	return repo, nil
}

// LoadRelease читает файл релиза, сохраняя порядок объявления пакетов.
func LoadRelease(path string) (*Release, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()

	release := NewRelease()
	if err := yaml.NewDecoder(fl).Decode(release); err != nil {
		return nil, fmt.Errorf("release %s: %w", path, err)
	}
	return release, nil
}

// LoadReleaseDir объединяет все файлы *.yml каталога в один релиз.
func LoadReleaseDir(dir string) (*Release, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)

	merged := NewRelease()
	for _, path := range entries {
		release, err := LoadRelease(path)
		if err != nil {
			return nil, err
		}
		for _, name := range release.Packages() {
			version, _ := release.Get(name)
			merged.Set(name, version)
		}
	}
	return merged, nil
}
