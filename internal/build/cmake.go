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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

// installCmake собирает пакет из исходников: configure с фиксированным
// набором флагов, make с запрошенным параллелизмом, установка в
// fakeroot через DESTDIR. Сборка идет в scratch-каталоге
// {имя}-{версия}-build.
//
// Флаг DEST_PREFIX нужен пакетам, чей сгенерированный cmake-конфиг
// не переживает установку через "make DESTDIR=": их CMakeLists
// подхватывает fakeroot из этого флага.
func (a *Assembler) installCmake(ctx context.Context, st *staging.Context, e entry) error {
	bdir := fmt.Sprintf("%s-%s-build", e.Name, e.Version)
	if st.BuildDir != "" {
		bdir = filepath.Join(st.BuildDir, bdir)
	}
	if err := os.MkdirAll(bdir, 0o755); err != nil {
		return err
	}

	fakeprefix := st.FakePrefix()
	flags := []string{
		"-DCMAKE_BUILD_TYPE=Release",
		"-DBOOST_ROOT=" + fakeprefix,
		"-DBUILD_SHARED_LIBS=ON",
		"-DCMAKE_PREFIX_PATH=" + fakeprefix,
		"-DCMAKE_MODULE_PATH=" + filepath.Join(fakeprefix, "share", "cmake", "Modules"),
		"-DCMAKE_INSTALL_PREFIX=" + st.Prefix,
		"-DDEST_PREFIX=" + st.Fakeroot,
	}

	// Пути поиска библиотек и исполняемых файлов указывают внутрь
	// fakeroot на время вызовов; восстановление безусловно
	restoreLibPath := staging.Override("LD_LIBRARY_PATH", st.LDLibraryPath)
	defer restoreLibPath()
	restorePath := staging.Override("PATH", st.BinPath)
	defer restorePath()

	slog.Info(gotext.Get("Installing package from source with cmake"), "name", e.Name, "version", e.Version)

	configure := runner.Command{
		Name: st.CmakeCmd,
		Args: append(append([]string{e.SourcePath}, flags...), e.MakeOpts...),
		Dir:  bdir,
	}
	if err := a.runner.Run(ctx, configure); err != nil {
		return err
	}

	if err := a.runner.Run(ctx, runner.Command{
		Name: "make",
		Args: []string{fmt.Sprintf("-j%d", st.Jobs)},
		Dir:  bdir,
	}); err != nil {
		return err
	}

	return a.runner.Run(ctx, runner.Command{
		Name: "make",
		Args: []string{"DESTDIR=" + st.Fakeroot, "install"},
		Dir:  bdir,
	})
}
