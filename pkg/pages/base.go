// Package pages holds the page objects for xengvang.com: one type per page or
// page region, each wrapping the data-testid locators it needs and exposing
// Verify methods that check the rendered DOM against the literal content in
// package portfolio.
//
// Page objects share a browser.Session (owned by the test) and hold no other
// state, so every test builds a fresh set.
package pages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/pages/internal"
)

const (
	titleRetries       = 3
	titleRetryInterval = 500 * time.Millisecond

	// HiddenTimeout bounds how long an element may take to disappear.
	HiddenTimeout      = 5 * time.Second
	hiddenPollInterval = 100 * time.Millisecond
)

// Option customises a page object.
type Option func(*Base)

// WithLogger routes page-object logging to l.
func WithLogger(l *zap.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.logger = l
		}
	}
}

func withClock(c internal.Clock) Option {
	return func(b *Base) { b.clock = c }
}

// Base holds the navigation, wait and verification primitives every page
// object shares.
type Base struct {
	session browser.Session
	baseURL string
	clock   internal.Clock
	logger  *zap.Logger
}

// NewBase binds a page object to session. baseURL is the resolved root of
// the environment under test, without a trailing slash.
func NewBase(session browser.Session, baseURL string, opts ...Option) *Base {
	b := &Base{
		session: session,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		clock:   internal.RealClock{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Session returns the browser session the page object drives.
func (b *Base) Session() browser.Session {
	return b.session
}

// BaseURL returns the environment root.
func (b *Base) BaseURL() string {
	return b.baseURL
}

// GoToHomePage navigates to the base URL and waits for it to load.
func (b *Base) GoToHomePage(ctx context.Context) error {
	return b.navigate(ctx, b.baseURL)
}

// GoToSubPage navigates to baseURL/subPage (e.g. "about-me") and waits for it
// to load.
func (b *Base) GoToSubPage(ctx context.Context, subPage string) error {
	return b.navigate(ctx, b.baseURL+"/"+subPage)
}

func (b *Base) navigate(ctx context.Context, url string) error {
	b.logger.Debug("navigating", zap.String("url", url))
	if err := b.session.Navigate(ctx, url); err != nil {
		return err
	}
	return b.WaitUntilPageLoaded(ctx)
}

// WaitUntilPageLoaded blocks until the browser reports the load state.
func (b *Base) WaitUntilPageLoaded(ctx context.Context) error {
	return b.session.WaitLoad(ctx)
}

// ForceWaitMs sleeps unconditionally for ms milliseconds.
//
// Prefer a deterministic wait. This exists only for cases with no other
// option.
func (b *Base) ForceWaitMs(ctx context.Context, ms int) error {
	return b.clock.Sleep(ctx, time.Duration(ms)*time.Millisecond)
}

// VerifyPageTitleHasTitle checks the document title. The title may update
// after navigation, so a mismatch is re-read up to three more times, 500ms
// apart, before failing with the last title seen.
func (b *Base) VerifyPageTitleHasTitle(ctx context.Context, want string) error {
	if err := b.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	title, err := b.session.Title(ctx)
	if err != nil {
		return err
	}
	for retries := titleRetries; title != want && retries > 0; retries-- {
		if err := b.clock.Sleep(ctx, titleRetryInterval); err != nil {
			return err
		}
		if title, err = b.session.Title(ctx); err != nil {
			return err
		}
	}
	if title != want {
		return &MismatchError{What: "page title", Want: want, Got: title}
	}
	return nil
}

// VerifyCurrentUrl checks the session URL. With prefixWithBase the expected
// URL is baseURL/url, otherwise url itself.
func (b *Base) VerifyCurrentUrl(ctx context.Context, url string, prefixWithBase bool) error {
	if err := b.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	current, err := b.session.URL(ctx)
	if err != nil {
		return err
	}
	want := url
	if prefixWithBase {
		want = fmt.Sprintf("%s/%s", b.baseURL, url)
	}
	if current != want {
		return &MismatchError{What: "current URL", Want: want, Got: current}
	}
	return nil
}
