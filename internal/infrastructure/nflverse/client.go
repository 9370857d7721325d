package nflverse

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/mirrormatch/playprep/internal/platform/logging"
)

const (
	defaultBaseURL = "https://github.com/nflverse/nflverse-data/releases/download"
	maxRedirects   = 5
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Logger  *logging.Logger
}

// Client downloads nflverse release assets. Release downloads redirect to
// object storage, so requests follow redirects.
type Client struct {
	httpClient *fasthttp.Client
	baseURL    string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
			// Season-long play-by-play exports run to ~100 MB.
			MaxResponseBodySize: 512 << 20,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// DownloadPlayByPlay fetches play_by_play_<season>.csv into destPath,
// staging through a temp file so a partial download never shadows the
// asset.
func (c *Client) DownloadPlayByPlay(ctx context.Context, season int, destPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	url := fmt.Sprintf("%s/pbp/play_by_play_%d.csv", c.baseURL, season)
	c.logger.InfoContext(ctx, "downloading play-by-play export", "url", url)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent("playprep/1.0")

	if err := c.httpClient.DoRedirects(req, resp, maxRedirects); err != nil {
		return crerr.Wrapf(err, "download %s", url)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return crerr.Newf("download %s: unexpected status %d", url, resp.StatusCode())
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrap(err, "create metadata directory")
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".tmp-*")
	if err != nil {
		return crerr.Wrap(err, "create temp download file")
	}
	defer os.Remove(tmp.Name())

	if err := resp.BodyWriteTo(tmp); err != nil {
		tmp.Close()
		return crerr.Wrap(err, "write download body")
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrap(err, "close download file")
	}
	if err := os.Rename(tmp.Name(), destPath); err != nil {
		return crerr.Wrapf(err, "replace %s", filepath.Base(destPath))
	}

	c.logger.InfoContext(ctx, "play-by-play export saved", "path", destPath)
	return nil
}
