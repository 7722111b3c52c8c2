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

// Пакет dl загружает одиночные файлы с проверкой контрольной суммы.
// Допускается только шифрованный транспорт; контрольная сумма
// вычисляется по потоку байтов во время загрузки.
package dl

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/purell"
	"github.com/cenk/backoff"
	"github.com/leonelquinteros/gotext"
	"github.com/schollz/progressbar/v3"
)

var (
	// ErrChecksumMismatch возвращается при несовпадении контрольной суммы
	ErrChecksumMismatch = errors.New("dl: checksums did not match")
	// ErrNoSuchHashAlgo возвращается для неподдерживаемого алгоритма хеширования
	ErrNoSuchHashAlgo = errors.New("dl: invalid hashing algorithm")
	// ErrNotHTTPS возвращается для URL без шифрованного транспорта
	ErrNotHTTPS = errors.New("dl: URL does not use https:// protocol")
	// ErrBadStatus возвращается при неуспешном коде HTTP-ответа
	ErrBadStatus = errors.New("dl: unexpected HTTP status")
	// ErrMalformedHash возвращается для строки хеша без тега алгоритма
	ErrMalformedHash = errors.New("dl: malformed hash string, expected algo:hexdigest")
)

// Options содержит параметры одной загрузки.
type Options struct {
	URL string
	// Полный путь файла назначения
	Destination string
	// Строка вида "sha256:<hex>"
	Hash string

	// Количество повторов при сетевых сбоях; ноль — значение по умолчанию
	MaxRetries uint64
	Progress   io.Writer
	Client     *http.Client
}

const defaultMaxRetries = 5

// NewHash возвращает хеш для объявленного алгоритма. Поддерживается
// только sha256; любой другой тег — ошибка конфигурации, возникающая
// до какой-либо сетевой активности.
func NewHash(algo string) (hash.Hash, error) {
	switch algo {
	case "sha256":
		return sha256.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoSuchHashAlgo, algo)
	}
}

// ParseHash разбирает строку "алгоритм:hex-дайджест".
func ParseHash(s string) (algo string, sum []byte, err error) {
	algo, hexSum, ok := strings.Cut(s, ":")
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedHash, s)
	}
	sum, err = hex.DecodeString(hexSum)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q", ErrMalformedHash, s)
	}
	return algo, sum, nil
}

// Download загружает файл и сверяет контрольную сумму. Сетевые сбои
// уровня соединения повторяются с экспоненциальной задержкой;
// неуспешный HTTP-статус фатален без повтора. Если конечный каталог
// назначения — bin, файл помечается исполняемым.
func Download(ctx context.Context, opts Options) error {
	normalized, err := purell.NormalizeURLString(opts.URL, purell.FlagsSafe)
	if err != nil {
		return err
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return err
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%w: %s", ErrNotHTTPS, opts.URL)
	}

	algo, wantSum, err := ParseHash(opts.Hash)
	if err != nil {
		return err
	}
	h, err := NewHash(algo)
	if err != nil {
		return err
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	retries := opts.MaxRetries
	if retries == 0 {
		retries = defaultMaxRetries
	}

	slog.Info(gotext.Get("Downloading file"), "url", normalized, "destination", opts.Destination)

	var res *http.Response
	do := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		res, err = client.Do(req)
		if err != nil {
			// Сбой соединения считается временным
			return err
		}
		if res.StatusCode < 200 || res.StatusCode > 299 {
			res.Body.Close()
			return backoff.Permanent(fmt.Errorf("%w: GET %s returned %d", ErrBadStatus, normalized, res.StatusCode))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), retries), ctx)
	if err := backoff.Retry(do, policy); err != nil {
		return unwrapPermanent(err)
	}
	defer res.Body.Close()

	if err := os.MkdirAll(filepath.Dir(opts.Destination), 0o755); err != nil {
		return err
	}
	fl, err := os.Create(opts.Destination)
	if err != nil {
		return err
	}
	defer fl.Close()

	w := io.Writer(io.MultiWriter(fl, h))
	if opts.Progress != nil {
		bar := progressbar.NewOptions64(
			res.ContentLength,
			progressbar.OptionSetDescription(filepath.Base(opts.Destination)),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(10),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				_, _ = io.WriteString(opts.Progress, "\n")
			}),
			progressbar.OptionFullWidth(),
		)
		defer bar.Close()
		w = io.MultiWriter(w, bar)
	}

	if _, err := io.Copy(w, res.Body); err != nil {
		return err
	}

	sum := h.Sum(nil)
	if !bytes.Equal(sum, wantSum) {
		return fmt.Errorf("%w: got %s, expected %s",
			ErrChecksumMismatch, hex.EncodeToString(sum), hex.EncodeToString(wantSum))
	}

	if inBinDir(opts.Destination) {
		info, err := fl.Stat()
		if err != nil {
			return err
		}
		if err := fl.Chmod(info.Mode() | 0o111); err != nil {
			return err
		}
	}

	return nil
}

func newBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 0
	return bo
}

func unwrapPermanent(err error) error {
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}

// inBinDir сообщает, входит ли каталог исполняемых файлов
// в путь назначения.
func inBinDir(dest string) bool {
	dir := filepath.Dir(dest)
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part == "bin" {
			return true
		}
	}
	return false
}
