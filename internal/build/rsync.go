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

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

// installRsync копирует каталог исходников в fakeprefix.
// Предполагается, что каталог уже устроен как корневая файловая система.
func (a *Assembler) installRsync(ctx context.Context, st *staging.Context, e entry) error {
	slog.Info(gotext.Get("Installing package with rsync"), "name", e.Name, "version", e.Version)

	args := []string{"-am"}
	args = append(args, e.MakeOpts...)
	args = append(args, e.SourcePath+"/", st.FakePrefix())

	return a.runner.Run(ctx, runner.Command{Name: "rsync", Args: args})
}
