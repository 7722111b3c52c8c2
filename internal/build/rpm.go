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
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

// installRPM распаковывает платформенный rpm-архив в fakeprefix.
// cpio всегда пишет в текущий каталог, поэтому обе команды работают
// из fakeprefix; затем содержимое usr/ поднимается на уровень выше.
func (a *Assembler) installRPM(ctx context.Context, st *staging.Context, e entry) error {
	fakeprefix := st.FakePrefix()

	slog.Info(gotext.Get("Installing package from rpm"), "name", e.Name, "version", e.Version)

	err := a.runner.RunPiped(ctx,
		runner.Command{
			Name: "rpm2cpio",
			Args: []string{e.SourcePath + ".rpm"},
			Dir:  fakeprefix,
		},
		runner.Command{
			Name: "cpio",
			Args: []string{"-imd", "--quiet"},
			Dir:  fakeprefix,
		},
	)
	if err != nil {
		return err
	}

	usrDir := filepath.Join(fakeprefix, "usr")
	if err := a.runner.Run(ctx, runner.Command{
		Name: "rsync",
		Args: []string{"-a", "usr/", "."},
		Dir:  fakeprefix,
	}); err != nil {
		return err
	}

	return os.RemoveAll(usrDir)
}
