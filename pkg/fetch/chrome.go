package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/laptopfinder-backend/pkg/config"
	"github.com/angelmondragon/laptopfinder-backend/pkg/logger"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"
)

// ChromeFetcher renders pages in headless Chrome for listings that build
// their product grid client-side.
type ChromeFetcher struct {
	timeout   time.Duration
	limiter   *rate.Limiter
	retry     Retry
	userAgent string
	logg      *logger.Logger
}

func NewChromeFetcher(cfg config.ScrapeConfig, logg *logger.Logger) *ChromeFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeFetcher{
		// page render plus browser start-up
		timeout:   2 * timeout,
		limiter:   newLimiter(cfg),
		retry:     Retry{MaxAttempts: cfg.RetryAttempts, BaseDelay: cfg.RetryBaseDelay, Logger: logg},
		userAgent: userAgent(cfg),
		logg:      logg,
	}
}

func (f *ChromeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var html string
	err := f.retry.Do(ctx, "render "+url, func(ctx context.Context) error {
		if err := f.limiter.Wait(ctx); err != nil {
			return Permanent(fmt.Errorf("rate limiter: %w", err))
		}
		out, err := f.render(ctx, url)
		if err != nil {
			return err
		}
		html = out
		return nil
	})
	if err != nil {
		return "", err
	}
	f.logg.Debug(f.logg.WithField(ctx, "url", url), "page rendered")
	return html, nil
}

func (f *ChromeFetcher) render(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.UserAgent(f.userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	headers := map[string]interface{}{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	}
	if err := chromedp.Run(taskCtx, network.Enable(), network.SetExtraHTTPHeaders(network.Headers(headers))); err != nil {
		return "", fmt.Errorf("chromedp headers: %w", err)
	}

	var html string
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	); err != nil {
		return "", fmt.Errorf("chromedp navigate %s: %w", url, err)
	}
	return html, nil
}
