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

// Пакет runner запускает внешние инструменты сборки.
// Аргументы передаются списком, без интерпретации оболочкой.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command описывает один вызов внешнего инструмента.
type Command struct {
	Name string
	Args []string
	// Рабочий каталог; пустой — текущий
	Dir string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ExitError сообщает о ненулевом коде выхода внешнего инструмента.
type ExitError struct {
	Cmd    Command
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q: %v: %s", e.Cmd.String(), e.Err, e.Stderr)
	}
	return fmt.Sprintf("command %q: %v", e.Cmd.String(), e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Runner — способность выполнить внешнюю команду, перехватить вывод
// и сообщить об ошибке.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
	// RunPiped соединяет stdout первой команды со stdin второй
	RunPiped(ctx context.Context, src, dst Command) error
}

// ExecRunner выполняет команды через os/exec, транслируя вывод
// инструментов в собственные потоки процесса.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// хвост stderr сохраняется для сообщения об ошибке
const stderrTailLimit = 4096

type tailBuffer struct {
	buf bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	t.buf.Write(p)
	if t.buf.Len() > stderrTailLimit {
		trimmed := t.buf.Bytes()[t.buf.Len()-stderrTailLimit:]
		var nb bytes.Buffer
		nb.Write(trimmed)
		t.buf = nb
	}
	return n, nil
}

func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	tail := &tailBuffer{}
	c.Stdout = r.Stdout
	c.Stderr = io.MultiWriter(r.Stderr, tail)

	if err := c.Run(); err != nil {
		return &ExitError{Cmd: cmd, Stderr: strings.TrimSpace(tail.buf.String()), Err: err}
	}
	return nil
}

func (r *ExecRunner) RunPiped(ctx context.Context, src, dst Command) error {
	cSrc := exec.CommandContext(ctx, src.Name, src.Args...)
	cSrc.Dir = src.Dir

	cDst := exec.CommandContext(ctx, dst.Name, dst.Args...)
	cDst.Dir = dst.Dir

	pipe, err := cSrc.StdoutPipe()
	if err != nil {
		return err
	}
	cDst.Stdin = pipe

	srcTail, dstTail := &tailBuffer{}, &tailBuffer{}
	cSrc.Stderr = io.MultiWriter(r.Stderr, srcTail)
	cDst.Stdout = r.Stdout
	cDst.Stderr = io.MultiWriter(r.Stderr, dstTail)

	if err := cSrc.Start(); err != nil {
		return &ExitError{Cmd: src, Err: err}
	}
	if err := cDst.Start(); err != nil {
		_ = cSrc.Process.Kill()
		_ = cSrc.Wait()
		return &ExitError{Cmd: dst, Err: err}
	}

	srcErr := cSrc.Wait()
	dstErr := cDst.Wait()

	if srcErr != nil {
		return &ExitError{Cmd: src, Stderr: strings.TrimSpace(srcTail.buf.String()), Err: srcErr}
	}
	if dstErr != nil {
		return &ExitError{Cmd: dst, Stderr: strings.TrimSpace(dstTail.buf.String()), Err: dstErr}
	}
	return nil
}
