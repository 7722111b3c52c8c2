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

package staging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/staging"
)

func TestNewContextDefaults(t *testing.T) {
	ctx, err := staging.NewContext(staging.Options{Prefix: "/opt/dist/2026.01"}, "")
	assert.NoError(t, err)

	assert.Equal(t, "/opt/dist/2026.01", ctx.Prefix)
	assert.Equal(t, ".", ctx.Fakeroot)
	assert.Equal(t, 1, ctx.Jobs)
	assert.Equal(t, "cmake", ctx.CmakeCmd)
	assert.Equal(t, "pip", ctx.PipCmd)
	assert.Empty(t, ctx.PythonPath)
}

func TestFakePrefixIsConcatenation(t *testing.T) {
	ctx, err := staging.NewContext(staging.Options{
		Prefix:   "/opt/dist/2026.01",
		Fakeroot: "/tmp/stage",
	}, "")
	assert.NoError(t, err)

	// Абсолютный префикс пришивается к fakeroot дословно
	assert.Equal(t, "/tmp/stage/opt/dist/2026.01", ctx.FakePrefix())
}

func TestSourcePath(t *testing.T) {
	ctx, err := staging.NewContext(staging.Options{
		Prefix:   "/opt/dist/2026.01",
		DlPrefix: "/downloads",
	}, "")
	assert.NoError(t, err)

	path, err := ctx.SourcePath("zlib", "1.2.11")
	assert.NoError(t, err)
	assert.Equal(t, "/downloads/zlib-1.2.11", path)

	ctx.DlPrefix = ""
	path, err = ctx.SourcePath("zlib", "1.2.11")
	assert.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "zlib-1.2.11", filepath.Base(path))
}

func TestPythonPathDropsPatchVersion(t *testing.T) {
	ctx, err := staging.NewContext(staging.Options{
		Prefix:   "/opt/dist/2026.01",
		Fakeroot: "/stage",
	}, "3.8.6")
	assert.NoError(t, err)

	fakeprefix := "/stage/opt/dist/2026.01"
	assert.Equal(t, strings.Join([]string{
		filepath.Join(fakeprefix, "lib", "python3.8"),
		filepath.Join(fakeprefix, "lib", "python3.8", "site-packages"),
		filepath.Join(fakeprefix, "lib64", "python3.8", "site-packages"),
	}, ":"), ctx.PythonPath)
}

func TestLibraryAndBinPathsPointIntoFakePrefix(t *testing.T) {
	restore := staging.Override("LD_LIBRARY_PATH", "/usr/lib/inherited")
	defer restore()

	ctx, err := staging.NewContext(staging.Options{
		Prefix:   "/opt/dist/2026.01",
		Fakeroot: "/stage",
	}, "")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(ctx.LDLibraryPath, "/stage/opt/dist/2026.01/lib:"))
	assert.True(t, strings.HasSuffix(ctx.LDLibraryPath, ":/usr/lib/inherited"))
	assert.True(t, strings.HasPrefix(ctx.BinPath, "/stage/opt/dist/2026.01/bin"))
}

func TestOverrideRestoresPreviousValue(t *testing.T) {
	os.Setenv("ADK_TEST_VAR", "before")
	defer os.Unsetenv("ADK_TEST_VAR")

	restore := staging.Override("ADK_TEST_VAR", "during")
	assert.Equal(t, "during", os.Getenv("ADK_TEST_VAR"))

	restore()
	assert.Equal(t, "before", os.Getenv("ADK_TEST_VAR"))
}

func TestOverrideRestoresAbsence(t *testing.T) {
	os.Unsetenv("ADK_TEST_UNSET")

	restore := staging.Override("ADK_TEST_UNSET", "during")
	assert.Equal(t, "during", os.Getenv("ADK_TEST_UNSET"))

	restore()
	_, exists := os.LookupEnv("ADK_TEST_UNSET")
	assert.False(t, exists)
}
