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

package config

import (
	"os"
	"path/filepath"
)

var Version = "unknown"

type Settings struct {
	LogLevel string `toml:"logLevel" koanf:"logLevel"`
	Jobs     int    `toml:"jobs" koanf:"jobs"`
	CmakeCmd string `toml:"cmakeCmd" koanf:"cmakeCmd"`
	PipCmd   string `toml:"pipCmd" koanf:"pipCmd"`
}

func defaultSettings() *Settings {
	return &Settings{
		LogLevel: "INFO",
		Jobs:     1,
		CmakeCmd: "cmake",
		PipCmd:   "pip",
	}
}

// ADKConfig объединяет системную конфигурацию и переменные окружения.
// Переменные окружения имеют приоритет над системным файлом.
type ADKConfig struct {
	cfg   *Settings
	paths *Paths

	System *SystemConfig
	Env    *EnvConfig
}

func New() *ADKConfig {
	return &ADKConfig{
		cfg:    defaultSettings(),
		System: NewSystemConfig(),
		Env:    NewEnvConfig(),
	}
}

func (c *ADKConfig) Load() error {
	if err := c.System.Load(); err != nil {
		return err
	}
	if err := c.Env.Load(); err != nil {
		return err
	}

	merged := defaultSettings()
	if err := c.System.koanf().Unmarshal("", merged); err != nil {
		return err
	}
	if err := c.Env.koanf().Unmarshal("", merged); err != nil {
		return err
	}
	c.cfg = merged

	return c.initPaths()
}

func (c *ADKConfig) initPaths() error {
	paths := &Paths{}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return err
	}
	paths.CacheDir = filepath.Join(cacheDir, "adk")
	paths.DBPath = filepath.Join(paths.CacheDir, "adk.db")

	if err := os.MkdirAll(paths.CacheDir, 0o755); err != nil {
		return err
	}

	c.paths = paths
	return nil
}

func (c *ADKConfig) GetPaths() *Paths {
	return c.paths
}

func (c *ADKConfig) LogLevel() string {
	return c.cfg.LogLevel
}

func (c *ADKConfig) Jobs() int {
	return c.cfg.Jobs
}

func (c *ADKConfig) CmakeCmd() string {
	return c.cfg.CmakeCmd
}

func (c *ADKConfig) PipCmd() string {
	return c.cfg.PipCmd
}
