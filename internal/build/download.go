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
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/dl"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

// installDownload загружает один файл в fakeprefix с проверкой
// контрольной суммы.
func (a *Assembler) installDownload(ctx context.Context, st *staging.Context, e entry) error {
	opts := e.Meta.DownloadOptions()

	slog.Info(gotext.Get("Installing package with download"), "name", e.Name, "version", e.Version)

	return a.download(ctx, dl.Options{
		URL:         opts.URL,
		Hash:        opts.Hash,
		Destination: filepath.Join(st.FakePrefix(), opts.Destination),
		Progress:    a.progress,
	})
}
