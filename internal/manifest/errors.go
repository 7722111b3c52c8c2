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
	"errors"
	"fmt"
)

// Ошибки конфигурации. Все они обнаруживаются до каких-либо
// внешних побочных эффектов и немедленно прерывают запуск.
var (
	ErrUnknownBuildMethod = errors.New("manifest: unsupported build method")
	ErrPackageNotFound    = errors.New("manifest: package not found in repository")
	ErrVersionNotFound    = errors.New("manifest: version not found in repository")

	ErrDownloadFieldsMisused = errors.New("manifest: url, destination, hash only valid with 'make: download'")
	ErrDownloadFieldsMissing = errors.New("manifest: url, destination, hash all required with 'make: download'")
	ErrPypiNameWithoutPip    = errors.New("manifest: pypi_package_name is only valid when building with pip")
)

// EntryError дополняет ошибку именем и версией пакета.
type EntryError struct {
	Package string
	Version string
	Err     error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Package, e.Version, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
