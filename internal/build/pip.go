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

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/constants"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

// installPip устанавливает пакет менеджером пакетов интерпретатора.
// Сетевой индекс и разрешение зависимостей отключены: зависимости
// уже упорядочены планом сборки, а дистрибутивы берутся только из
// локального каталога архивов.
func (a *Assembler) installPip(ctx context.Context, st *staging.Context, e entry) error {
	version := stripVersion(e.Version)
	if version == constants.LatestVersionAlias {
		latest, err := a.versionResolver.LatestVersion(ctx, e.InstallName)
		if err != nil {
			return err
		}
		version = latest
	}

	args := []string{
		"install",
		fmt.Sprintf("%s==%s", e.InstallName, version),
		"--root", st.Fakeroot,
		"--prefix", st.Prefix,
		"--no-index",
		"--no-deps",
		"--ignore-installed",
	}
	if st.DlPrefix != "" {
		args = append(args,
			"--cache-dir", st.DlPrefix,
			"--find-links", st.DlPrefix,
		)
	}
	args = append(args, e.MakeOpts...)

	slog.Info(gotext.Get("Installing package from pip"), "name", e.InstallName, "version", version)

	return a.runner.Run(ctx, runner.Command{Name: st.PipCmd, Args: args})
}
