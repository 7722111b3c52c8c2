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

package staging

import "os"

// Override временно устанавливает переменную окружения и возвращает
// функцию, восстанавливающую прежнее значение или его отсутствие.
// Восстановление должно выполняться через defer, чтобы сработать
// на любом пути выхода, включая ошибочный.
func Override(key, value string) (restore func()) {
	prev, existed := os.LookupEnv(key)
	os.Setenv(key, value)

	return func() {
		if existed {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	}
}
