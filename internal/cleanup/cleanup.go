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

// Пакет cleanup находит версии пакетов репозитория,
// не используемые ни одним релизом.
package cleanup

import (
	"sort"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
)

// VersionRef идентифицирует пару пакет-версия.
type VersionRef struct {
	Package string
	Version string
}

// UnusedVersions возвращает зарегистрированные в репозитории пары
// пакет-версия, которых нет ни в одном из релизов. Результат
// отсортирован по имени пакета, затем по версии.
func UnusedVersions(repo manifest.Repository, releases []*manifest.Release) []VersionRef {
	used := make(map[VersionRef]bool)
	for _, release := range releases {
		for _, name := range release.Packages() {
			version, _ := release.Get(name)
			used[VersionRef{Package: name, Version: version}] = true
		}
	}

	var unused []VersionRef
	for name, versions := range repo {
		for version := range versions {
			ref := VersionRef{Package: name, Version: version}
			if !used[ref] {
				unused = append(unused, ref)
			}
		}
	}

	sort.Slice(unused, func(i, j int) bool {
		if unused[i].Package != unused[j].Package {
			return unused[i].Package < unused[j].Package
		}
		return unused[i].Version < unused[j].Version
	})
	return unused
}
