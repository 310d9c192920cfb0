package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// maxBodyBytes caps a single listing page.
const maxBodyBytes = 8 << 20

// HTTPFetcher issues paced, retried GET requests with browser-like headers.
type HTTPFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	retry     Retry
	userAgent string
	logg      *logger.Logger
}

// NewHTTPFetcher builds a fetcher from the scrape settings.
func NewHTTPFetcher(cfg config.ScrapeConfig, logg *logger.Logger) *HTTPFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				MaxIdleConns:          20,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		limiter:   newLimiter(cfg),
		retry:     Retry{MaxAttempts: cfg.RetryAttempts, BaseDelay: cfg.RetryBaseDelay, Logger: logg},
		userAgent: userAgent(cfg),
		logg:      logg,
	}
}

// WithClient swaps the HTTP client, mainly for tests.
func (f *HTTPFetcher) WithClient(client *http.Client) *HTTPFetcher {
	f.client = client
	return f
}

// Fetch waits for the rate limiter, then GETs url with retries. Non-2xx
// responses surface as *StatusError; 4xx other than 429 are not retried.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var body string
	err := f.retry.Do(ctx, "fetch "+url, func(ctx context.Context) error {
		if err := f.limiter.Wait(ctx); err != nil {
			return Permanent(fmt.Errorf("rate limiter: %w", err))
		}
		text, err := f.get(ctx, url)
		if err != nil {
			if statusErr, ok := err.(*StatusError); ok && !statusErr.Retryable() {
				return Permanent(err)
			}
			return err
		}
		body = text
		return nil
	})
	if err != nil {
		return "", err
	}
	f.logg.Debug(f.logg.WithField(ctx, "url", url), "page fetched")
	return body, nil
}

func (f *HTTPFetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", Permanent(fmt.Errorf("build request: %w", err))
	}
	setBrowserHeaders(req.Header, f.userAgent)

	res, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return "", &StatusError{URL: url, StatusCode: res.StatusCode}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(buf), nil
}

func setBrowserHeaders(h http.Header, userAgent string) {
	h.Set("User-Agent", userAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Sec-Fetch-Dest", "document")
	h.Set("Sec-Fetch-Mode", "navigate")
	h.Set("Sec-Fetch-Site", "none")
	h.Set("Sec-Fetch-User", "?1")
}

func newLimiter(cfg config.ScrapeConfig) *rate.Limiter {
	if cfg.RequestsPerSec <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), burst)
}

func userAgent(cfg config.ScrapeConfig) string {
	if cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return defaultUserAgent
}
