// Package fetch - browser.go provides headless browser rendering for
// JavaScript-gated board pages.
package fetch

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// renderSettle gives client-side scripts time to populate result cards after
// the document is ready.
const renderSettle = 3 * time.Second

// Rendered loads a page in a headless browser and returns the rendered HTML.
// Requires Chrome/Chromium to be installed on the system.
func Rendered(ctx context.Context, url string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log.Printf("[FETCH] rendering %s in headless browser", url)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{
			URL:     url,
			Message: "browser rendering failed",
			Cause:   err,
		}
	}

	log.Printf("[FETCH] rendered %d bytes", len(html))
	return html, nil
}
