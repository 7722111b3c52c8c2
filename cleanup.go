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

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/cleanup"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/manifest"
)

func CleanupCmd() *cli.Command {
	return &cli.Command{
		Name:      "cleanup",
		Usage:     gotext.Get("Report repository entries not referenced by any release"),
		ArgsUsage: "<repository.yml> <release.yml>...",
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 2 {
				return cliutils.FormatCliExit(gotext.Get("Expected a repository file and at least one release file"), nil)
			}

			repo, err := manifest.LoadRepository(c.Args().Get(0))
			if err != nil {
				return cliutils.FormatCliExit(gotext.Get("Error loading repository"), err)
			}

			releases := make([]*manifest.Release, 0, c.Args().Len()-1)
			for _, path := range c.Args().Slice()[1:] {
				release, err := manifest.LoadRelease(path)
				if err != nil {
					return cliutils.FormatCliExit(gotext.Get("Error loading release"), err)
				}
				releases = append(releases, release)
			}

			unused := cleanup.UnusedVersions(repo, releases)
			if len(unused) == 0 {
				fmt.Println(gotext.Get("No unused versions found"))
				return nil
			}
			for _, ref := range unused {
				fmt.Printf("%s %s\n", ref.Package, ref.Version)
			}
			return nil
		},
	}
}
