// Package fetch - browser.go renders JavaScript-heavy search pages in
// headless Chrome.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum extracted text length for a static fetch to
// count as rendered. Shorter pages are assumed to be JavaScript shells.
const MinContentLength = 500

// DefaultBrowserTimeout bounds a single headless-browser render.
const DefaultBrowserTimeout = 45 * time.Second

// renderSettle is how long the browser waits after load for the result list
// to render; bannerSettle covers the relayout after a cookie banner closes.
const (
	renderSettle = 3 * time.Second
	bannerSettle = 1 * time.Second
)

// ShouldUseBrowser returns true if the extracted text is too short,
// indicating the search page did not render its results server-side.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. Job boards increasingly ship their result lists as client-side
// JavaScript, so this is the fallback when a static fetch yields no cards.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("browser: rendering %s", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocatorOptions()...)
	defer cancel()

	renderCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	renderCtx, cancel = context.WithTimeout(renderCtx, timeout)
	defer cancel()

	var html string
	if err := chromedp.Run(renderCtx, renderTasks(url, &html)); err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("browser: rendered %d bytes", len(html))
	}
	return html, nil
}

// allocatorOptions returns Chrome flags for an unattended render in a
// container.
func allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
}

// renderTasks navigates, lets the result list render, dismisses any cookie
// banner (OneTrust fronts most job boards), and captures the final HTML.
func renderTasks(url string, html *string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Best effort; missing banners must not fail the render.
			_ = chromedp.Click(`#onetrust-accept-btn-handler, button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(bannerSettle),
		chromedp.OuterHTML("html", html),
	}
}
