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

package build

import (
	"strings"

	"github.com/google/shlex"
)

const prefixPlaceholder = "$(prefix)"

// mergeMakeOpts объединяет makeopts пакета с глобальными
// дополнительными флагами, подставляет итоговый префикс вместо
// $(prefix) и разбивает результат на список аргументов.
func mergeMakeOpts(pkgOpts, extraOpts, prefix string) ([]string, error) {
	combined := strings.TrimSpace(strings.TrimSpace(pkgOpts) + " " + strings.TrimSpace(extraOpts))
	if combined == "" {
		return nil, nil
	}
	combined = strings.ReplaceAll(combined, prefixPlaceholder, prefix)
	return shlex.Split(combined)
}
