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

// Пакет db хранит инвентарь собранных пакетов по префиксам.
package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/config"
)

type InstalledPackage struct {
	Name        string    `db:"name"`
	Version     string    `db:"version"`
	Method      string    `db:"method"`
	Prefix      string    `db:"prefix"`
	InstalledAt time.Time `db:"installed_at"`
}

type Config interface {
	GetPaths() *config.Paths
}

type Database struct {
	db  *sqlx.DB
	cfg Config
}

func New(cfg Config) *Database {
	return &Database{cfg: cfg}
}

const schema = `
CREATE TABLE IF NOT EXISTS installed (
	name TEXT NOT NULL,
	version TEXT NOT NULL,
	method TEXT NOT NULL,
	prefix TEXT NOT NULL,
	installed_at TIMESTAMP NOT NULL,
	UNIQUE (name, prefix)
);
`

func (d *Database) Init(ctx context.Context) error {
	db, err := sqlx.Open("sqlite", d.cfg.GetPaths().DBPath)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return err
	}
	d.db = db
	return nil
}

func (d *Database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

// RecordInstalled фиксирует установку пакета; повторная установка
// той же пары (имя, префикс) обновляет запись.
func (d *Database) RecordInstalled(ctx context.Context, pkg InstalledPackage) error {
	_, err := d.db.NamedExecContext(ctx, `
		INSERT INTO installed (name, version, method, prefix, installed_at)
		VALUES (:name, :version, :method, :prefix, :installed_at)
		ON CONFLICT (name, prefix) DO UPDATE SET
			version = excluded.version,
			method = excluded.method,
			installed_at = excluded.installed_at
	`, pkg)
	return err
}

// GetInstalled возвращает пакеты, собранные в указанный префикс.
func (d *Database) GetInstalled(ctx context.Context, prefix string) ([]InstalledPackage, error) {
	var pkgs []InstalledPackage
	err := d.db.SelectContext(ctx, &pkgs, `
		SELECT name, version, method, prefix, installed_at
		FROM installed WHERE prefix = ? ORDER BY name
	`, prefix)
	return pkgs, err
}
