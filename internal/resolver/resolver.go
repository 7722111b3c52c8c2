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

// Пакет resolver вычисляет порядок сборки пакетов релиза
// с учетом объявленных зависимостей.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
)

var (
	// ErrUnresolvedDependency возвращается, когда объявленная зависимость
	// отсутствует в составе релиза
	ErrUnresolvedDependency = errors.New("resolver: required dependency is not in distribution")
	// ErrCycleDetected возвращается при циклической зависимости
	ErrCycleDetected = errors.New("resolver: circular dependency detected")
)

// Resolve возвращает план сборки: каждый пакет релиза ровно один раз,
// строго после всех своих транзитивных зависимостей. Зависимости
// зависят от версии: новая версия пакета может объявлять
// дополнительные зависимости.
func Resolve(release *manifest.Release, repo manifest.Repository) ([]string, error) {
	var plan []string
	seen := make(map[string]bool)

	// Множество пакетов в текущем пути обхода (для обнаружения циклов)
	inStack := make(map[string]bool)
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		if seen[name] {
			return nil
		}
		if inStack[name] {
			cycle := append(path, name)
			return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(cycle, " -> "))
		}

		version, ok := release.Get(name)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnresolvedDependency, name)
		}
		pv, err := repo.Get(name, version)
		if err != nil {
			return err
		}

		inStack[name] = true
		path = append(path, name)

		for _, dep := range pv.Depends {
			if err := visit(dep); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		inStack[name] = false

		seen[name] = true
		plan = append(plan, name)
		return nil
	}

	for _, name := range release.Packages() {
		if err := visit(name); err != nil {
			return nil, err
		}
	}

	return plan, nil
}
