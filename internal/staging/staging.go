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

// Пакет staging описывает окружение одного запуска сборки:
// итоговый префикс, fakeroot и производные переменные окружения.
package staging

import (
	"os"
	"path/filepath"
	"strings"
)

// Options задают расположение каталогов запуска.
type Options struct {
	// Итоговый префикс, в котором дистрибутив будет жить после продвижения
	Prefix string
	// Каталог-fakeroot: установщики пишут в Fakeroot+Prefix
	Fakeroot string
	// Отдельный каталог для scratch-сборок cmake (опционально)
	BuildDir string
	// Каталог с архивами исходников и кэшем pip (опционально)
	DlPrefix string

	Jobs     int
	CmakeCmd string
	PipCmd   string
}

// Context — неизменяемое окружение одного запуска. Создается один раз,
// читается каждой стратегией установки и не изменяется ими.
type Context struct {
	Prefix   string
	Fakeroot string
	BuildDir string
	DlPrefix string

	Jobs     int
	CmakeCmd string
	PipCmd   string

	// Производные переменные окружения, вычисленные один раз за запуск
	LDLibraryPath string
	BinPath       string
	PythonPath    string
}

// NewContext вычисляет контекст запуска. pythonVersion — версия пакета
// python из релиза; пустая строка, если python не входит в состав.
func NewContext(opts Options, pythonVersion string) (*Context, error) {
	prefix, err := filepath.Abs(opts.Prefix)
	if err != nil {
		return nil, err
	}

	fakeroot := opts.Fakeroot
	if fakeroot == "" {
		fakeroot = "."
	}

	ctx := &Context{
		Prefix:   prefix,
		Fakeroot: fakeroot,
		BuildDir: opts.BuildDir,
		DlPrefix: opts.DlPrefix,
		Jobs:     opts.Jobs,
		CmakeCmd: opts.CmakeCmd,
		PipCmd:   opts.PipCmd,
	}
	if ctx.Jobs < 1 {
		ctx.Jobs = 1
	}
	if ctx.CmakeCmd == "" {
		ctx.CmakeCmd = "cmake"
	}
	if ctx.PipCmd == "" {
		ctx.PipCmd = "pip"
	}

	fakeprefix := ctx.FakePrefix()
	ctx.LDLibraryPath = joinPathList(
		filepath.Join(fakeprefix, "lib"),
		filepath.Join(fakeprefix, "lib64"),
		os.Getenv("LD_LIBRARY_PATH"),
	)
	ctx.BinPath = joinPathList(filepath.Join(fakeprefix, "bin"), os.Getenv("PATH"))
	ctx.PythonPath = pythonPaths(fakeprefix, pythonVersion)

	return ctx, nil
}

// FakePrefix возвращает каталог, зеркалирующий итоговый префикс внутри
// fakeroot. Установщики считают, что пишут в Prefix, физически попадая сюда.
func (c *Context) FakePrefix() string {
	return c.Fakeroot + c.Prefix
}

// SourcePath возвращает путь к исходникам пакета: каталог {имя}-{версия},
// при заданном DlPrefix — внутри него.
func (c *Context) SourcePath(name, version string) (string, error) {
	path := name + "-" + version
	if c.DlPrefix != "" {
		path = filepath.Join(c.DlPrefix, path)
	}
	return filepath.Abs(path)
}

// pythonPaths вычисляет путь поиска модулей интерпретатора.
// Из версии отбрасывается последний компонент: "3.8.6" дает "python3.8".
func pythonPaths(prefix, version string) string {
	if version == "" {
		return ""
	}
	parts := strings.Split(version, ".")
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}
	pyver := "python" + strings.Join(parts, ".")
	return joinPathList(
		filepath.Join(prefix, "lib", pyver),
		filepath.Join(prefix, "lib", pyver, "site-packages"),
		filepath.Join(prefix, "lib64", pyver, "site-packages"),
	)
}

func joinPathList(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ":")
}
