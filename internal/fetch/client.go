// Package fetch downloads the emoji catalog and the country-codes table.
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/JonMunkholm/cclookup/internal/config"
	"github.com/JonMunkholm/cclookup/internal/core"
	"github.com/JonMunkholm/cclookup/internal/logging"
)

// UserAgent is sent with every download request.
const UserAgent = "cclookup/" + config.Version

// HTTPDoer is the subset of *http.Client used for downloads.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client downloads the pipeline inputs to local files.
type Client struct {
	// HTTPClient performs requests. Tests may replace it.
	HTTPClient HTTPDoer

	progress bool
	logger   *slog.Logger
}

// NewClient builds a client from cfg. IgnoreTLS disables certificate
// verification on the underlying transport.
func NewClient(cfg config.FetchConfig, logger *slog.Logger) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.IgnoreTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via --ignore-ssl
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		progress: cfg.Progress,
		logger:   logging.OrDefault(logger),
	}
}

// Download fetches url into path and returns the number of bytes written.
// Any status other than 200 is an error. The file is replaced only after
// the whole body has been read.
func (c *Client) Download(ctx context.Context, url, path string) (n int64, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request for %s: %w", core.ErrFetch, url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", core.ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("failed to download", "url", url, "status", resp.StatusCode)
		return 0, fmt.Errorf("%w: %w: %s returned %s", core.ErrFetch, core.ErrBadStatus, url, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrDataAccess, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	var dst io.Writer = tmp
	if bar := c.progressBar(resp.ContentLength, filepath.Base(path)); bar != nil {
		defer bar.Finish()
		dst = io.MultiWriter(tmp, bar)
	}

	n, err = io.Copy(dst, resp.Body)
	if err != nil {
		return n, fmt.Errorf("%w: read %s: %w", core.ErrFetch, url, err)
	}
	if err := tmp.Close(); err != nil {
		return n, fmt.Errorf("%w: %w", core.ErrDataAccess, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return n, fmt.Errorf("%w: %w", core.ErrDataAccess, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return n, fmt.Errorf("%w: %w", core.ErrDataAccess, err)
	}

	c.logger.Info("downloaded", "url", url, "path", path, "bytes", n)
	return n, nil
}

// FetchInputs downloads the emoji catalog and the country-codes table to
// their configured download paths.
func (c *Client) FetchInputs(ctx context.Context, src config.SourceConfig) error {
	if _, err := c.Download(ctx, src.EmojiURL, src.EmojiDownloadPath); err != nil {
		return err
	}
	if _, err := c.Download(ctx, src.CountryCodesURL, src.CountryCodesDownloadPath); err != nil {
		return err
	}
	c.logger.Info("downloaded files")
	return nil
}

// progressBar returns a byte progress bar on stderr, or nil when progress
// is off or stderr is not a terminal.
func (c *Client) progressBar(size int64, name string) *progressbar.ProgressBar {
	if !c.progress || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.DefaultBytes(size, "downloading "+name)
}
