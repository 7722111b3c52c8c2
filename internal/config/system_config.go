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
	"errors"
	"os"

	ktoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/constants"
)

type SystemConfig struct {
	k *koanf.Koanf
}

func NewSystemConfig() *SystemConfig {
	return &SystemConfig{
		k: koanf.New("."),
	}
}

func (c *SystemConfig) koanf() *koanf.Koanf {
	return c.k
}

func (c *SystemConfig) Load() error {
	if _, err := os.Stat(constants.SystemConfigPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return c.k.Load(file.Provider(constants.SystemConfigPath), ktoml.Parser())
}
