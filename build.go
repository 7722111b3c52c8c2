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

package main

import (
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/build"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/config"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/db"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/dl"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/pypi"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

func BuildCmd() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     gotext.Get("Assemble a release into an installation prefix"),
		ArgsUsage: "<release.yml|release-dir> <repository.yml>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prefix",
				Aliases:  []string{"p"},
				Required: true,
				Usage:    gotext.Get("Final installation prefix of the distribution"),
			},
			&cli.StringFlag{
				Name:    "fakeroot",
				Aliases: []string{"f"},
				Value:   ".",
				Usage:   gotext.Get("Staging root the installers physically write into"),
			},
			&cli.StringFlag{
				Name:    "downloads",
				Aliases: []string{"d"},
				Usage:   gotext.Get("Directory with package source archives and the pip cache"),
			},
			&cli.StringFlag{
				Name:    "builddir",
				Aliases: []string{"b"},
				Usage:   gotext.Get("Separate scratch directory for cmake builds"),
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   gotext.Get("Parallelism passed to the underlying build tool"),
			},
			&cli.StringFlag{
				Name:  "cmake",
				Usage: gotext.Get("Path to the cmake executable"),
			},
			&cli.StringFlag{
				Name:  "pip",
				Usage: gotext.Get("Path to the pip executable"),
			},
			&cli.BoolFlag{
				Name:  "no-inventory",
				Usage: gotext.Get("Do not record assembled packages in the inventory database"),
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return cliutils.FormatCliExit(gotext.Get("Expected a release file and a repository file"), nil)
			}

			cfg := config.New()
			if err := cfg.Load(); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error loading config"), err)
			}

			releasePath := c.Args().Get(0)
			repoPath := c.Args().Get(1)

			var (
				release *manifest.Release
				err     error
			)
			if info, statErr := os.Stat(releasePath); statErr == nil && info.IsDir() {
				release, err = manifest.LoadReleaseDir(releasePath)
			} else {
				release, err = manifest.LoadRelease(releasePath)
			}
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error loading release"), err)
			}

			repo, err := manifest.LoadRepository(repoPath)
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error loading repository"), err)
			}

			jobs := c.Int("jobs")
			if jobs == 0 {
				jobs = cfg.Jobs()
			}
			cmakeCmd := c.String("cmake")
			if cmakeCmd == "" {
				cmakeCmd = cfg.CmakeCmd()
			}
			pipCmd := c.String("pip")
			if pipCmd == "" {
				pipCmd = cfg.PipCmd()
			}

			assembler := build.NewAssembler(
				runner.NewExecRunner(),
				pypi.NewClient(),
				dl.Download,
			)

			if c.Bool("interactive") {
				assembler.WithProgress(os.Stderr)
			}

			if !c.Bool("no-inventory") {
				database := db.New(cfg)
				if err := database.Init(c.Context); err != nil {
					return cliutils.FormatCliExit(gotext.Get("Error initializing inventory database"), err)
				}
				defer database.Close()
				assembler.WithInventory(database)
			}

			err = assembler.Assemble(c.Context, release, repo, staging.Options{
				Prefix:   c.String("prefix"),
				Fakeroot: c.String("fakeroot"),
				BuildDir: c.String("builddir"),
				DlPrefix: c.String("downloads"),
				Jobs:     jobs,
				CmakeCmd: cmakeCmd,
				PipCmd:   pipCmd,
			})
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error assembling distribution"), err)
			}
			return nil
		},
	}
}
