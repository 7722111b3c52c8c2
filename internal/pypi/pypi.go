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

// Пакет pypi разрешает псевдоним "последняя версия" через JSON API индекса.
package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenk/backoff"
)

var ErrBadStatus = errors.New("pypi: unexpected HTTP status")

const defaultBaseURL = "https://pypi.org/pypi"

type Client struct {
	BaseURL    string
	HTTP       *http.Client
	MaxRetries uint64
}

func NewClient() *Client {
	return &Client{
		BaseURL:    defaultBaseURL,
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		MaxRetries: 5,
	}
}

type packageInfo struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// LatestVersion возвращает последнюю опубликованную версию пакета.
// Сбои соединения повторяются; неуспешный статус фатален.
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/%s/json", c.BaseURL, name)

	var info packageInfo
	do := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		res, err := c.HTTP.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("%w: GET %s returned %d", ErrBadStatus, url, res.StatusCode))
		}
		if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.MaxRetries), ctx)
	if err := backoff.Retry(do, policy); err != nil {
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return "", perm.Err
		}
		return "", err
	}

	return info.Info.Version, nil
}
