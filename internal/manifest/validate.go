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

// Validate проверяет согласованность полей с выбранным способом сборки.
func (p PackageVersion) Validate() error {
	anyDownloadField := p.URL != "" || p.Hash != "" || p.Destination != ""
	allDownloadFields := p.URL != "" && p.Hash != "" && p.Destination != ""

	if anyDownloadField && p.Make != MethodDownload {
		return ErrDownloadFieldsMisused
	}
	if p.Make == MethodDownload && !allDownloadFields {
		return ErrDownloadFieldsMissing
	}
	if p.PypiName != "" && p.Make != MethodPip {
		return ErrPypiNameWithoutPip
	}
	return nil
}

// Validate проверяет каждую версию каждого пакета репозитория.
func (r Repository) Validate() error {
	for name, versions := range r {
		for version, pv := range versions {
			if err := pv.Validate(); err != nil {
				return &EntryError{Package: name, Version: version, Err: err}
			}
		}
	}
	return nil
}
