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

package db_test

import (
	"context"
	"testing"
	"time"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/config"
	"gitea.plemya-x.ru/Plemya-x/ADK/internal/db"
)

type TestADKConfig struct{}

func (c *TestADKConfig) GetPaths() *config.Paths {
	return &config.Paths{
		DBPath: ":memory:",
	}
}

func prepareDb(t *testing.T) *db.Database {
	t.Helper()
	database := db.New(&TestADKConfig{})
	if err := database.Init(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	return database
}

var testPkg = db.InstalledPackage{
	Name:        "zlib",
	Version:     "1.2.11",
	Method:      "cmake",
	Prefix:      "/opt/dist/2026.01",
	InstalledAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
}

func TestRecordInstalled(t *testing.T) {
	ctx := context.Background()
	database := prepareDb(t)
	defer database.Close()

	err := database.RecordInstalled(ctx, testPkg)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	pkgs, err := database.GetInstalled(ctx, testPkg.Prefix)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("Expected 1 package, got %d", len(pkgs))
	}
	if pkgs[0].Name != "zlib" || pkgs[0].Version != "1.2.11" || pkgs[0].Method != "cmake" {
		t.Errorf("Expected recorded package to match, got %+v", pkgs[0])
	}
}

func TestRecordInstalledUpsertsOnRepeatedBuilds(t *testing.T) {
	ctx := context.Background()
	database := prepareDb(t)
	defer database.Close()

	if err := database.RecordInstalled(ctx, testPkg); err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	updated := testPkg
	updated.Version = "1.2.12"
	if err := database.RecordInstalled(ctx, updated); err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	pkgs, err := database.GetInstalled(ctx, testPkg.Prefix)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("Expected 1 package after upsert, got %d", len(pkgs))
	}
	if pkgs[0].Version != "1.2.12" {
		t.Errorf("Expected version 1.2.12, got %s", pkgs[0].Version)
	}
}

func TestGetInstalledFiltersByPrefix(t *testing.T) {
	ctx := context.Background()
	database := prepareDb(t)
	defer database.Close()

	other := testPkg
	other.Prefix = "/opt/dist/2025.12"

	if err := database.RecordInstalled(ctx, testPkg); err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	if err := database.RecordInstalled(ctx, other); err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	pkgs, err := database.GetInstalled(ctx, "/opt/dist/2025.12")
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}
	if len(pkgs) != 1 {
		t.Fatalf("Expected 1 package, got %d", len(pkgs))
	}
	if pkgs[0].Prefix != "/opt/dist/2025.12" {
		t.Errorf("Expected prefix filter to apply, got %s", pkgs[0].Prefix)
	}
}
