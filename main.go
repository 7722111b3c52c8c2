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
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/cliutils"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/config"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/logger"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/translations"
)

func VersionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: gotext.Get("Print the current ADK version and exit"),
		Action: func(ctx *cli.Context) error {
			println(config.Version)
			return nil
		},
	}
}

func GetApp() *cli.App {
	return &cli.App{
		Name:  "adk",
		Usage: "Any Distribution Kit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Value:   isatty.IsTerminal(os.Stdin.Fd()),
				Usage:   gotext.Get("Enable interactive questions and prompts"),
			},
		},
		Commands: []*cli.Command{
			BuildCmd(),
			CleanupCmd(),
			ListCmd(),
			VersionCmd(),
		},
		EnableBashCompletion: true,
		ExitErrHandler: func(cCtx *cli.Context, err error) {
			cliutils.HandleExitCoder(err)
		},
	}
}

func setLogLevel(l *logger.Logger, newLevel string) {
	level := slog.LevelInfo
	switch newLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}
	l.SetLevel(level)
}

func main() {
	log := logger.SetupDefault()
	setLogLevel(log, os.Getenv("ADK_LOG_LEVEL"))
	translations.Setup()

	ctx := context.Background()

	app := GetApp()
	cfg := config.New()
	err := cfg.Load()
	if err != nil {
		slog.Error(gotext.Get("Error loading config"), "err", err)
		os.Exit(1)
	}
	setLogLevel(log, cfg.LogLevel())

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = app.RunContext(ctx, os.Args)
	if err != nil {
		slog.Error(gotext.Get("Error while running app"), "err", err)
		os.Exit(1)
	}
}
