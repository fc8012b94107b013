package browser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ChromedpBrowser is a Chrome instance driven through chromedp.
type ChromedpBrowser struct {
	ctx         context.Context // browser context; tabs derive from it
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	timeout     time.Duration
	logger      *zap.Logger
}

func launchChromedp(cfg Config) (*ChromedpBrowser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if cfg.ChromeBin != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromeBin))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	// The first Run on a fresh context starts the browser.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	return &ChromedpBrowser{
		ctx:         ctx,
		cancel:      cancel,
		allocCancel: allocCancel,
		timeout:     cfg.timeout(),
		logger:      cfg.logger().With(zap.String("driver", string(DriverChromedp))),
	}, nil
}

// NewSession opens a new tab.
func (b *ChromedpBrowser) NewSession(ctx context.Context) (Session, error) {
	tabCtx, cancel := chromedp.NewContext(b.ctx)
	if err := ctx.Err(); err != nil {
		cancel()
		return nil, err
	}
	// The first Run creates the target, whose event loop lives as long as the
	// context passed here, so it must be tabCtx itself and not a derived one.
	if err := chromedp.Run(tabCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	return &chromedpSession{ctx: tabCtx, cancel: cancel, timeout: b.timeout, logger: b.logger}, nil
}

// Close shuts Chrome down.
func (b *ChromedpBrowser) Close() error {
	b.cancel()
	b.allocCancel()
	b.logger.Info("browser closed")
	return nil
}

type chromedpSession struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	logger  *zap.Logger
}

// run executes actions on the tab, bounded by both ctx and the timeout.
func (s *chromedpSession) run(ctx context.Context, actions ...chromedp.Action) error {
	rctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(rctx, actions...)
}

func (s *chromedpSession) Navigate(ctx context.Context, url string) error {
	s.logger.Debug("navigate", zap.String("url", url))
	if err := s.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *chromedpSession) WaitLoad(ctx context.Context) error {
	var complete bool
	if err := s.run(ctx, chromedp.Poll(`document.readyState === "complete"`, &complete)); err != nil {
		return fmt.Errorf("wait for load: %w", err)
	}
	return nil
}

func (s *chromedpSession) Title(ctx context.Context) (string, error) {
	var title string
	if err := s.run(ctx, chromedp.Title(&title)); err != nil {
		return "", fmt.Errorf("read title: %w", err)
	}
	return title, nil
}

func (s *chromedpSession) URL(ctx context.Context) (string, error) {
	var url string
	if err := s.run(ctx, chromedp.Location(&url)); err != nil {
		return "", fmt.Errorf("read url: %w", err)
	}
	return url, nil
}

// jsResult is what the element snippets below evaluate to.
type jsResult[T any] struct {
	Found bool `json:"found"`
	Value T    `json:"value"`
}

// elementJS wraps body, an expression over `el`, so that it runs against
// loc's element and reports whether the element exists.
func elementJS(loc Locator, body string) string {
	return fmt.Sprintf(`(() => {
		const el = (%s)[%d];
		if (!el) return {found: false};
		return {found: true, value: (%s)};
	})()`, queryAllJS(loc), loc.position(), body)
}

const visibleJS = `(() => {
	const style = window.getComputedStyle(el);
	if (style.visibility === "hidden") return false;
	const rect = el.getBoundingClientRect();
	return rect.width > 0 && rect.height > 0;
})()`

func evalElement[T any](ctx context.Context, s *chromedpSession, loc Locator, body string) (jsResult[T], error) {
	var res jsResult[T]
	err := s.run(ctx, chromedp.Evaluate(elementJS(loc, body), &res))
	return res, err
}

// attached polls until loc's element exists.
func (s *chromedpSession) attached(ctx context.Context, loc Locator) error {
	err := waitFor(ctx, s.timeout, func() (bool, error) {
		res, err := evalElement[bool](ctx, s, loc, "true")
		return res.Found, err
	})
	if errors.Is(err, errWaitTimeout) {
		return notFound(loc)
	}
	return err
}

func (s *chromedpSession) Wait(ctx context.Context, loc Locator) error {
	return s.attached(ctx, loc)
}

func (s *chromedpSession) Count(ctx context.Context, loc Locator) (int, error) {
	var n int
	js := fmt.Sprintf(`(%s).length`, queryAllJS(loc))
	if err := s.run(ctx, chromedp.Evaluate(js, &n)); err != nil {
		return 0, fmt.Errorf("count %s: %w", loc, err)
	}
	if loc.Index() >= 0 {
		if n > loc.Index() {
			return 1, nil
		}
		return 0, nil
	}
	return n, nil
}

func (s *chromedpSession) TextContent(ctx context.Context, loc Locator) (string, error) {
	if err := s.attached(ctx, loc); err != nil {
		return "", err
	}
	res, err := evalElement[string](ctx, s, loc, "el.textContent")
	if err != nil {
		return "", fmt.Errorf("read text content: %w", err)
	}
	if !res.Found {
		return "", notFound(loc)
	}
	return res.Value, nil
}

func (s *chromedpSession) AllTextContents(ctx context.Context, loc Locator) ([]string, error) {
	texts := []string{}
	js := fmt.Sprintf(`(%s).map(el => el.textContent)`, queryAllJS(loc))
	if err := s.run(ctx, chromedp.Evaluate(js, &texts)); err != nil {
		return nil, fmt.Errorf("read text contents: %w", err)
	}
	if loc.Index() >= 0 {
		if len(texts) <= loc.Index() {
			return []string{}, nil
		}
		return texts[loc.Index() : loc.Index()+1], nil
	}
	return texts, nil
}

func (s *chromedpSession) Attribute(ctx context.Context, loc Locator, name string) (string, bool, error) {
	if err := s.attached(ctx, loc); err != nil {
		return "", false, err
	}
	res, err := evalElement[*string](ctx, s, loc, fmt.Sprintf("el.getAttribute(%s)", strconv.Quote(name)))
	if err != nil {
		return "", false, fmt.Errorf("read attribute %s: %w", name, err)
	}
	if !res.Found {
		return "", false, notFound(loc)
	}
	if res.Value == nil {
		return "", false, nil
	}
	return *res.Value, true, nil
}

func (s *chromedpSession) Visible(ctx context.Context, loc Locator) (bool, error) {
	res, err := evalElement[bool](ctx, s, loc, visibleJS)
	if err != nil {
		return false, fmt.Errorf("check visibility of %s: %w", loc, err)
	}
	return res.Found && res.Value, nil
}

func (s *chromedpSession) Click(ctx context.Context, loc Locator) error {
	if err := s.attached(ctx, loc); err != nil {
		return err
	}
	nav, err := evalElement[bool](ctx, s, loc, navigatesJS)
	if err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	navigates := nav.Found && nav.Value
	s.logger.Debug("click", zap.Stringer("locator", loc), zap.Bool("navigates", navigates))

	var nodes []*cdp.Node
	path := fmt.Sprintf(`(%s)[%d]`, queryAllJS(loc), loc.position())
	if err := s.run(ctx, chromedp.Nodes(path, &nodes, chromedp.ByJSPath)); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	if len(nodes) == 0 {
		return notFound(loc)
	}
	if navigates {
		// Flag the current document; the flag is gone once the next one loads.
		if err := s.run(ctx, chromedp.Evaluate(`window.`+staleMarker+` = true`, nil)); err != nil {
			return fmt.Errorf("click %s: %w", loc, err)
		}
	}
	if err := s.run(ctx, chromedp.MouseClickNode(nodes[0])); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	if !navigates {
		return nil
	}
	if err := s.waitNavigation(ctx); err != nil {
		return fmt.Errorf("click %s: navigation did not finish: %w", loc, err)
	}
	return nil
}

const staleMarker = "__portfolioCheckStale"

// waitNavigation blocks until the document flagged with staleMarker has been
// replaced and the new one is ready.
func (s *chromedpSession) waitNavigation(ctx context.Context) error {
	js := fmt.Sprintf(`!window.%s && document.readyState === "complete"`, staleMarker)
	err := waitFor(ctx, s.timeout, func() (bool, error) {
		var ready bool
		err := s.run(ctx, chromedp.Evaluate(js, &ready))
		return ready, err
	})
	if err != nil {
		return err
	}
	return s.run(ctx, chromedp.WaitReady("body", chromedp.ByQuery))
}

func (s *chromedpSession) Close() error {
	s.cancel()
	return nil
}
