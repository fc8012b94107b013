package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// RodBrowser is a Chrome instance driven through go-rod.
type RodBrowser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	logger   *zap.Logger
}

// launchRod starts Chrome with container-friendly flags:
//   - No sandbox (for container compatibility)
//   - No GPU
func launchRod(cfg Config) (*RodBrowser, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu")
	if cfg.ChromeBin != "" {
		l = l.Bin(cfg.ChromeBin)
	}

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	return &RodBrowser{
		browser:  browser,
		launcher: l,
		timeout:  cfg.timeout(),
		logger:   cfg.logger().With(zap.String("driver", string(DriverRod))),
	}, nil
}

// NewSession opens a blank tab.
func (b *RodBrowser) NewSession(ctx context.Context) (Session, error) {
	page, err := b.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	b.logger.Debug("opened tab", zap.String("target", string(page.TargetID)))
	// Detach from ctx so the tab outlives the call that created it.
	return &rodSession{page: page.Context(context.Background()), timeout: b.timeout, logger: b.logger}, nil
}

// Close shuts Chrome down.
// Always call this (via defer) to prevent orphaned Chrome processes.
func (b *RodBrowser) Close() error {
	if b.browser == nil {
		return nil
	}
	err := b.browser.Close()
	b.launcher.Cleanup()
	b.logger.Info("browser closed")
	return err
}

type rodSession struct {
	page    *rod.Page
	timeout time.Duration
	logger  *zap.Logger
}

// timed returns the page bound to ctx and the session timeout. Callers must
// CancelTimeout it once done.
func (s *rodSession) timed(ctx context.Context) *rod.Page {
	return s.page.Context(ctx).Timeout(s.timeout)
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	s.logger.Debug("navigate", zap.String("url", url))
	page := s.timed(ctx)
	defer page.CancelTimeout()
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (s *rodSession) WaitLoad(ctx context.Context) error {
	page := s.timed(ctx)
	defer page.CancelTimeout()
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for load: %w", err)
	}
	return nil
}

func (s *rodSession) Title(ctx context.Context) (string, error) {
	res, err := s.page.Context(ctx).Eval(`() => document.title`)
	if err != nil {
		return "", fmt.Errorf("read title: %w", err)
	}
	return res.Value.Str(), nil
}

func (s *rodSession) URL(ctx context.Context) (string, error) {
	info, err := s.page.Context(ctx).Info()
	if err != nil {
		return "", fmt.Errorf("read url: %w", err)
	}
	return info.URL, nil
}

// queryAll returns every match for loc's selector within its scope.
func queryAll(page *rod.Page, loc Locator) (rod.Elements, error) {
	return page.ElementsByJS(rod.Eval(`() => ` + queryAllJS(loc)))
}

// elements returns every match for loc's selector. With wait set it polls
// until loc's position exists.
func (s *rodSession) elements(ctx context.Context, loc Locator, wait bool) (rod.Elements, error) {
	page := s.page.Context(ctx)
	if !wait {
		return queryAll(page, loc)
	}

	var els rod.Elements
	err := waitFor(ctx, s.timeout, func() (bool, error) {
		var err error
		els, err = queryAll(page, loc)
		if err != nil {
			return false, err
		}
		return len(els) > loc.position(), nil
	})
	if errors.Is(err, errWaitTimeout) {
		return nil, notFound(loc)
	}
	return els, err
}

func (s *rodSession) element(ctx context.Context, loc Locator) (*rod.Element, error) {
	els, err := s.elements(ctx, loc, true)
	if err != nil {
		return nil, err
	}
	return els[loc.position()].Context(ctx), nil
}

func (s *rodSession) Wait(ctx context.Context, loc Locator) error {
	_, err := s.elements(ctx, loc, true)
	return err
}

func (s *rodSession) Count(ctx context.Context, loc Locator) (int, error) {
	els, err := s.elements(ctx, loc, false)
	if err != nil {
		return 0, err
	}
	if loc.Index() >= 0 {
		if len(els) > loc.Index() {
			return 1, nil
		}
		return 0, nil
	}
	return len(els), nil
}

func (s *rodSession) TextContent(ctx context.Context, loc Locator) (string, error) {
	el, err := s.element(ctx, loc)
	if err != nil {
		return "", err
	}
	return rodTextContent(el)
}

func (s *rodSession) AllTextContents(ctx context.Context, loc Locator) ([]string, error) {
	els, err := s.elements(ctx, loc, false)
	if err != nil {
		return nil, err
	}
	if loc.Index() >= 0 {
		if len(els) <= loc.Index() {
			return []string{}, nil
		}
		els = els[loc.Index() : loc.Index()+1]
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		text, err := rodTextContent(el.Context(ctx))
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

func rodTextContent(el *rod.Element) (string, error) {
	res, err := el.Eval(`() => this.textContent`)
	if err != nil {
		return "", fmt.Errorf("read text content: %w", err)
	}
	return res.Value.Str(), nil
}

func (s *rodSession) Attribute(ctx context.Context, loc Locator, name string) (string, bool, error) {
	el, err := s.element(ctx, loc)
	if err != nil {
		return "", false, err
	}
	v, err := el.Attribute(name)
	if err != nil {
		return "", false, fmt.Errorf("read attribute %s: %w", name, err)
	}
	if v == nil {
		return "", false, nil
	}
	return *v, true, nil
}

func (s *rodSession) Visible(ctx context.Context, loc Locator) (bool, error) {
	els, err := s.elements(ctx, loc, false)
	if err != nil {
		return false, err
	}
	if len(els) <= loc.position() {
		return false, nil
	}
	return els[loc.position()].Context(ctx).Visible()
}

func (s *rodSession) Click(ctx context.Context, loc Locator) error {
	el, err := s.element(ctx, loc)
	if err != nil {
		return err
	}
	res, err := el.Eval(`() => { const el = this; return ` + navigatesJS + ` }`)
	if err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	navigates := res.Value.Bool()
	s.logger.Debug("click", zap.Stringer("locator", loc), zap.Bool("navigates", navigates))
	if !navigates {
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return fmt.Errorf("click %s: %w", loc, err)
		}
		return nil
	}

	// Arm the listener before clicking so the new document's load event
	// cannot be missed.
	page := s.timed(ctx)
	defer page.CancelTimeout()
	wait := page.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", loc, err)
	}
	wait()
	if err := page.GetContext().Err(); err != nil {
		return fmt.Errorf("click %s: navigation did not finish: %w", loc, err)
	}
	return nil
}

func (s *rodSession) Close() error {
	return s.page.Close()
}
