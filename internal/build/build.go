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

// Пакет build собирает релиз дистрибутива в fakeroot: вычисляет план
// сборки, проверяет метаданные и направляет каждый пакет
// соответствующей стратегии установки.
package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/constants"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/db"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/dl"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/resolver"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

// EXECUTORS

// VersionResolverExecutor разрешает псевдоним "последняя версия"
// в конкретную версию из удаленного индекса.
type VersionResolverExecutor interface {
	LatestVersion(ctx context.Context, name string) (string, error)
}

// DownloadExecutor выполняет проверяемую загрузку одного файла.
type DownloadExecutor func(ctx context.Context, opts dl.Options) error

// InventoryExecutor фиксирует собранные пакеты.
type InventoryExecutor interface {
	RecordInstalled(ctx context.Context, pkg db.InstalledPackage) error
}

//

func NewAssembler(
	run runner.Runner,
	versionResolver VersionResolverExecutor,
	download DownloadExecutor,
) *Assembler {
	return &Assembler{
		runner:          run,
		versionResolver: versionResolver,
		download:        download,
	}
}

type Assembler struct {
	runner          runner.Runner
	versionResolver VersionResolverExecutor
	download        DownloadExecutor

	// Опциональный инвентарь; nil отключает учет
	inventory InventoryExecutor

	// Приемник индикатора загрузки; nil отключает индикатор
	progress io.Writer
}

func (a *Assembler) WithInventory(inv InventoryExecutor) *Assembler {
	a.inventory = inv
	return a
}

func (a *Assembler) WithProgress(w io.Writer) *Assembler {
	a.progress = w
	return a
}

// entry — один элемент плана сборки с уже разрешенными аргументами.
type entry struct {
	Name        string
	InstallName string
	Version     string
	Meta        manifest.PackageVersion
	SourcePath  string
	MakeOpts    []string
}

// Assemble выполняет полный прогон сборки релиза. Первый же сбой
// стратегии или проверки метаданных прерывает весь запуск: пропуск
// пакета почти наверняка сломает зависящие от него пакеты ниже
// по плану.
func (a *Assembler) Assemble(ctx context.Context, release *manifest.Release, repo manifest.Repository, opts staging.Options) error {
	plan, err := resolver.Resolve(release, repo)
	if err != nil {
		return err
	}

	pythonVersion, _ := release.Get("python")
	st, err := staging.NewContext(opts, stripVersion(pythonVersion))
	if err != nil {
		return err
	}

	fakeprefix := st.FakePrefix()
	if err := os.MkdirAll(fakeprefix, 0o755); err != nil {
		return err
	}

	state, err := LoadState(fakeprefix)
	if err != nil {
		return err
	}

	// Экспорт на время запуска; восстановление гарантировано defer
	restoreDestdir := staging.Override("DESTDIR", st.Fakeroot)
	defer restoreDestdir()
	restoreBoost := staging.Override("BOOST_ROOT", fakeprefix)
	defer restoreBoost()

	extraMakeOpts := os.Getenv(constants.ExtraMakeoptsEnv)

	slog.Info(gotext.Get("Assembling distribution"), "packages", len(plan), "prefix", st.Prefix, "fakeroot", st.Fakeroot)

	for _, name := range plan {
		version, _ := release.Get(name)

		meta, err := repo.Get(name, version)
		if err != nil {
			return err
		}
		if err := meta.Validate(); err != nil {
			return &manifest.EntryError{Package: name, Version: version, Err: err}
		}

		if state.IsInstalled(name, version) {
			slog.Info(gotext.Get("Package already in staging root, skipping"), "name", name, "version", version)
			continue
		}

		e, err := a.prepareEntry(st, name, version, meta, extraMakeOpts)
		if err != nil {
			return &manifest.EntryError{Package: name, Version: version, Err: err}
		}

		if err := a.install(ctx, st, e); err != nil {
			return &manifest.EntryError{Package: name, Version: version, Err: err}
		}

		state.MarkInstalled(name, version, meta.Make.String())
		if err := state.Save(fakeprefix); err != nil {
			return err
		}

		if a.inventory != nil {
			err := a.inventory.RecordInstalled(ctx, db.InstalledPackage{
				Name:        name,
				Version:     version,
				Method:      meta.Make.String(),
				Prefix:      st.Prefix,
				InstalledAt: time.Now(),
			})
			if err != nil {
				slog.Warn(gotext.Get("Failed to record package in inventory"), "name", name, "err", err)
			}
		}
	}

	return nil
}

func (a *Assembler) prepareEntry(st *staging.Context, name, version string, meta manifest.PackageVersion, extraMakeOpts string) (entry, error) {
	makeOpts, err := mergeMakeOpts(meta.MakeOpts, extraMakeOpts, st.Prefix)
	if err != nil {
		return entry{}, err
	}

	sourcePath, err := st.SourcePath(name, version)
	if err != nil {
		return entry{}, err
	}

	return entry{
		Name:        name,
		InstallName: meta.InstallName(name),
		Version:     version,
		Meta:        meta,
		SourcePath:  sourcePath,
		MakeOpts:    makeOpts,
	}, nil
}

// install направляет пакет стратегии его способа сборки.
// Диспетчеризация закрыта по множеству значений BuildMethod.
func (a *Assembler) install(ctx context.Context, st *staging.Context, e entry) error {
	switch e.Meta.Make {
	case manifest.MethodCmake:
		return a.installCmake(ctx, st, e)
	case manifest.MethodPip:
		return a.installPip(ctx, st, e)
	case manifest.MethodRPM:
		return a.installRPM(ctx, st, e)
	case manifest.MethodDownload:
		return a.installDownload(ctx, st, e)
	case manifest.MethodRsync:
		return a.installRsync(ctx, st, e)
	case manifest.MethodNoop:
		return a.installNoop(ctx, st, e)
	}
	return fmt.Errorf("%w: %d", manifest.ErrUnknownBuildMethod, e.Meta.Make)
}
