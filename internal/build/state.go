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
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Имя файла манифеста состояния внутри fakeprefix
const stateFileName = ".adk_state"

// StateEntry описывает один уже установленный пакет.
type StateEntry struct {
	Version string
	Method  string
}

// State — манифест fakeroot: какие пакеты в нем уже полностью
// установлены. Делает повторный прогон безопасным: завершенные
// пакеты пропускаются вместо повторной записи поверх.
type State struct {
	Entries map[string]StateEntry
}

// LoadState читает манифест состояния из fakeprefix.
// Отсутствие файла дает пустое состояние.
func LoadState(fakeprefix string) (*State, error) {
	st := &State{Entries: map[string]StateEntry{}}

	fl, err := os.Open(filepath.Join(fakeprefix, stateFileName))
	if errors.Is(err, os.ErrNotExist) {
		return st, nil
	} else if err != nil {
		return nil, err
	}
	defer fl.Close()

	if err := msgpack.NewDecoder(fl).Decode(st); err != nil {
		return nil, err
	}
	if st.Entries == nil {
		st.Entries = map[string]StateEntry{}
	}
	return st, nil
}

func (s *State) Save(fakeprefix string) error {
	fl, err := os.Create(filepath.Join(fakeprefix, stateFileName))
	if err != nil {
		return err
	}
	defer fl.Close()
	return msgpack.NewEncoder(fl).Encode(s)
}

func (s *State) IsInstalled(name, version string) bool {
	e, ok := s.Entries[name]
	return ok && e.Version == version
}

func (s *State) MarkInstalled(name, version, method string) {
	s.Entries[name] = StateEntry{Version: version, Method: method}
}
