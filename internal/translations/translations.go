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

package translations

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/jeandeaual/go-locale"
	"github.com/leonelquinteros/gotext"
)

//go:embed po
var poFS embed.FS

// Setup подключает переводы для языка пользователя.
// Если перевода нет, gotext возвращает исходные строки.
func Setup() {
	userLanguage, err := locale.GetLanguage()
	if err != nil {
		return
	}

	_, err = fs.Stat(poFS, path.Join("po", userLanguage))
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		panic(err)
	}

	loc := gotext.NewLocaleFSWithPath(userLanguage, &poFS, "po")
	loc.SetDomain("default")
	gotext.SetLocales([]*gotext.Locale{loc})
}
