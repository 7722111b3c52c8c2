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
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/config"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/db"
)

func ListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Usage:   gotext.Get("List packages recorded in the inventory for a prefix"),
		Aliases: []string{"ls"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prefix",
				Aliases:  []string{"p"},
				Required: true,
				Usage:    gotext.Get("Installation prefix to list"),
			},
		},
		Action: func(c *cli.Context) error {
			cfg := config.New()
			if err := cfg.Load(); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error loading config"), err)
			}

			database := db.New(cfg)
			if err := database.Init(c.Context); err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error initializing inventory database"), err)
			}
			defer database.Close()

			installed, err := database.GetInstalled(c.Context, c.String("prefix"))
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error reading inventory"), err)
			}

			for _, pkg := range installed {
				fmt.Printf("%s %s %s\n", pkg.Name, pkg.Version, pkg.Method)
			}
			return nil
		},
	}
}
