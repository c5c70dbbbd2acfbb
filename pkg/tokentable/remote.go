package tokentable

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/fystack/caaj-indexer/pkg/retry"
)

const maxBodySize = 32 << 20

// LoadURL downloads the table with exponential backoff. 4xx responses are
// not retried.
func LoadURL(ctx context.Context, url string, cfg config.RetryCfg) (*Table, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	var body []byte
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return retry.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return retry.Permanent(fmt.Errorf("GET %s: %s", url, resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s: %s", url, resp.Status)
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		return err
	}

	err := retry.Exponential(ctx, fetch, retry.ExponentialConfig{
		InitialInterval: cfg.InitialInterval,
		MaxElapsedTime:  cfg.MaxElapsedTime,
		OnRetry: func(err error, next time.Duration) {
			logger.Warn("Token table download failed, retrying", "url", url, "err", err, "next", next)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("download token table: %w", err)
	}

	t, err := Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	logger.Info("Token table loaded", "url", url, "rows", t.Len())
	return t, nil
}

// Load prefers the local file when both sources are configured.
func Load(ctx context.Context, cfg config.TokenTableCfg) (*Table, error) {
	if cfg.Path != "" {
		return LoadFile(cfg.Path)
	}
	return LoadURL(ctx, cfg.URL, cfg.Retry)
}
