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

package runner_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitea.plemya-x.ru/Plemya-x/ADK/internal/runner"
)

func newCapturingRunner() (*runner.ExecRunner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &runner.ExecRunner{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func TestRunCapturesOutput(t *testing.T) {
	r, stdout, _ := newCapturingRunner()

	err := r.Run(context.Background(), runner.Command{
		Name: "sh",
		Args: []string{"-c", "echo hello"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunRespectsWorkingDirectory(t *testing.T) {
	r, stdout, _ := newCapturingRunner()
	tmpdir := t.TempDir()

	err := r.Run(context.Background(), runner.Command{
		Name: "pwd",
		Dir:  tmpdir,
	})
	assert.NoError(t, err)
	// macOS подставляет /private перед /tmp
	assert.Contains(t, stdout.String(), filepath.Base(tmpdir))
}

func TestRunReportsExitError(t *testing.T) {
	r, _, _ := newCapturingRunner()

	err := r.Run(context.Background(), runner.Command{
		Name: "sh",
		Args: []string{"-c", "echo broken >&2; exit 3"},
	})
	assert.Error(t, err)

	var exitErr *runner.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "sh", exitErr.Cmd.Name)
	assert.Contains(t, exitErr.Stderr, "broken")
	assert.Contains(t, exitErr.Error(), "broken")
}

func TestRunUnknownExecutable(t *testing.T) {
	r, _, _ := newCapturingRunner()

	err := r.Run(context.Background(), runner.Command{Name: "adk-no-such-tool"})
	var exitErr *runner.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestRunPiped(t *testing.T) {
	r, stdout, _ := newCapturingRunner()

	err := r.RunPiped(context.Background(),
		runner.Command{Name: "sh", Args: []string{"-c", "printf 'b\\na\\n'"}},
		runner.Command{Name: "sort"},
	)
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\n", stdout.String())
}

func TestRunPipedReportsFailingSide(t *testing.T) {
	r, _, _ := newCapturingRunner()

	err := r.RunPiped(context.Background(),
		runner.Command{Name: "sh", Args: []string{"-c", "exit 7"}},
		runner.Command{Name: "cat"},
	)
	var exitErr *runner.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "sh", exitErr.Cmd.Name)

	err = r.RunPiped(context.Background(),
		runner.Command{Name: "true"},
		runner.Command{Name: "sh", Args: []string{"-c", "cat >/dev/null; exit 5"}},
	)
	assert.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "sh", exitErr.Cmd.Name)
}

func TestCommandString(t *testing.T) {
	cmd := runner.Command{Name: "make", Args: []string{"-j4", "install"}}
	assert.Equal(t, "make -j4 install", cmd.String())
}

func TestRunCancelledContext(t *testing.T) {
	r, _, _ := newCapturingRunner()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, runner.Command{Name: "sh", Args: []string{"-c", "sleep 10"}})
	assert.Error(t, err)
}
