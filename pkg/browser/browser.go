// Package browser drives a browser tab on behalf of the page objects.
//
// Three drivers sit behind the same Session interface:
//   - rod: Chrome over the DevTools protocol via go-rod (default)
//   - chromedp: Chrome over the DevTools protocol via chromedp
//   - static: plain HTTP + HTML parsing, no JavaScript
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Driver names a Session implementation.
type Driver string

const (
	DriverRod      Driver = "rod"
	DriverChromedp Driver = "chromedp"
	DriverStatic   Driver = "static"
)

var drivers = []Driver{DriverRod, DriverChromedp, DriverStatic}

var (
	// ErrUnknownDriver is returned for a driver outside the enumeration.
	ErrUnknownDriver = errors.New("invalid browser driver")

	// ErrNotFound is returned when a locator never attaches to the DOM.
	ErrNotFound = errors.New("element not found")

	// ErrNoPage is returned when a session is queried before any navigation.
	ErrNoPage = errors.New("no page loaded")
)

// ParseDriver resolves name case-insensitively. An empty name selects rod.
func ParseDriver(name string) (Driver, error) {
	d := Driver(strings.ToLower(strings.TrimSpace(name)))
	switch d {
	case "":
		return DriverRod, nil
	case DriverRod, DriverChromedp, DriverStatic:
		return d, nil
	}
	names := make([]string, len(drivers))
	for i, d := range drivers {
		names[i] = string(d)
	}
	return "", fmt.Errorf("%w: %q. Allowable values are: %s", ErrUnknownDriver, name, strings.Join(names, ", "))
}

// Config configures browser launch and session behaviour.
type Config struct {
	Driver    Driver        `yaml:"driver"`
	Headless  bool          `yaml:"headless"`
	Timeout   time.Duration `yaml:"timeout"`    // navigation and element-attach timeout
	ChromeBin string        `yaml:"chrome_bin"` // optional; drivers download or discover Chrome otherwise

	Logger *zap.Logger `yaml:"-"`
}

// DefaultConfig returns headless rod with a 30s timeout.
func DefaultConfig() Config {
	return Config{
		Driver:   DriverRod,
		Headless: true,
		Timeout:  30 * time.Second,
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultConfig().Timeout
	}
	return c.Timeout
}

// Session is one browser tab.
//
// TextContent, Attribute and Click wait up to the configured timeout for the
// locator to attach; Count, AllTextContents and Visible report the DOM as it
// is right now.
type Session interface {
	Navigate(ctx context.Context, url string) error
	WaitLoad(ctx context.Context) error
	Title(ctx context.Context) (string, error)
	URL(ctx context.Context) (string, error)

	// Wait blocks until at least one element matches loc (or the Nth match
	// exists, for an Nth locator).
	Wait(ctx context.Context, loc Locator) error
	Count(ctx context.Context, loc Locator) (int, error)
	TextContent(ctx context.Context, loc Locator) (string, error)
	AllTextContents(ctx context.Context, loc Locator) ([]string, error)
	// Attribute reports ok=false when the element lacks the attribute.
	Attribute(ctx context.Context, loc Locator, name string) (value string, ok bool, err error)
	// Visible is false for a locator that matches nothing.
	Visible(ctx context.Context, loc Locator) (bool, error)
	Click(ctx context.Context, loc Locator) error

	Close() error
}

// Browser hands out independent sessions.
type Browser interface {
	NewSession(ctx context.Context) (Session, error)
	Close() error
}

// Launch starts the configured driver.
func Launch(cfg Config) (Browser, error) {
	d, err := ParseDriver(string(cfg.Driver))
	if err != nil {
		return nil, err
	}
	cfg.logger().Info("launching browser",
		zap.String("driver", string(d)),
		zap.Bool("headless", cfg.Headless),
		zap.Duration("timeout", cfg.timeout()))

	switch d {
	case DriverChromedp:
		return launchChromedp(cfg)
	case DriverStatic:
		return NewStaticBrowser(cfg), nil
	default:
		return launchRod(cfg)
	}
}

const pollInterval = 100 * time.Millisecond

var errWaitTimeout = errors.New("wait timed out")

// transientErrors are DevTools failures raised while a tab swaps documents.
// A poll that hits one is retried.
var transientErrors = []string{
	"Execution context was destroyed",
	"Cannot find context with specified id",
	"Inspected target navigated or closed",
	"Could not find node with given id",
	"No node with given id found",
}

func isTransient(err error) bool {
	msg := err.Error()
	for _, t := range transientErrors {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}

// waitFor polls cond until it reports true, the timeout elapses
// (errWaitTimeout), or ctx is done. Transient errors from cond count as
// "not yet"; any other error ends the wait.
func waitFor(ctx context.Context, timeout time.Duration, cond func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		ok, err := cond()
		if err != nil && !isTransient(err) {
			return err
		}
		if ok && err == nil {
			return nil
		}
		if !time.Now().Before(deadline) {
			if err != nil {
				return fmt.Errorf("%w: %w", errWaitTimeout, err)
			}
			return errWaitTimeout
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// navigatesJS is an expression over `el` telling whether clicking it loads
// a new document in the same tab.
const navigatesJS = `(() => {
	const a = el.closest("a[href]");
	if (!a || (a.target && a.target !== "_self")) return false;
	if (a.protocol !== "http:" && a.protocol !== "https:") return false;
	const strip = (u) => u.split("#")[0];
	return !(a.hash !== "" && strip(a.href) === strip(location.href));
})()`

func notFound(loc Locator) error {
	return fmt.Errorf("%w: %s", ErrNotFound, loc)
}
