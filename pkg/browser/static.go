package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// StaticBrowser fetches pages over plain HTTP and queries the parsed HTML.
// No JavaScript runs, so it only suits server-rendered pages such as the
// local fixture site.
type StaticBrowser struct {
	client *http.Client
	logger *zap.Logger
}

// NewStaticBrowser returns a StaticBrowser whose requests time out after
// cfg.Timeout.
func NewStaticBrowser(cfg Config) *StaticBrowser {
	return &StaticBrowser{
		client: &http.Client{Timeout: cfg.timeout()},
		logger: cfg.logger().With(zap.String("driver", string(DriverStatic))),
	}
}

// NewSession returns an empty session; nothing is fetched until Navigate.
func (b *StaticBrowser) NewSession(ctx context.Context) (Session, error) {
	return &staticSession{client: b.client, logger: b.logger}, nil
}

// Close releases idle connections.
func (b *StaticBrowser) Close() error {
	b.client.CloseIdleConnections()
	return nil
}

type staticSession struct {
	client *http.Client
	logger *zap.Logger

	mu  sync.Mutex
	url *url.URL
	doc *goquery.Document
}

func (s *staticSession) Navigate(ctx context.Context, rawURL string) error {
	s.logger.Debug("navigate", zap.String("url", rawURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", rawURL, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to navigate to %s: status %d", rawURL, resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("parse %s: %w", rawURL, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = resp.Request.URL
	s.doc = doc
	return nil
}

// document returns the current page, or ErrNoPage before any navigation.
func (s *staticSession) document() (*goquery.Document, *url.URL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, nil, ErrNoPage
	}
	return s.doc, s.url, nil
}

// WaitLoad returns once a page has been fetched; parsing is synchronous.
func (s *staticSession) WaitLoad(ctx context.Context) error {
	_, _, err := s.document()
	return err
}

func (s *staticSession) Title(ctx context.Context) (string, error) {
	doc, _, err := s.document()
	if err != nil {
		return "", err
	}
	// document.title strips and collapses whitespace.
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " "), nil
}

func (s *staticSession) URL(ctx context.Context) (string, error) {
	_, u, err := s.document()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *staticSession) selection(loc Locator) (*goquery.Selection, error) {
	doc, _, err := s.document()
	if err != nil {
		return nil, err
	}
	return resolveSelection(doc.Selection, loc), nil
}

// resolveSelection finds loc under root, narrowing to loc's scope first.
func resolveSelection(root *goquery.Selection, loc Locator) *goquery.Selection {
	if scope, ok := loc.Scope(); ok {
		root = resolveSelection(root, scope).Eq(scope.position())
	}
	sel := root.Find(loc.Selector())
	if loc.Index() >= 0 {
		sel = sel.Eq(loc.Index())
	}
	return sel
}

// element resolves loc to exactly one node. The DOM never changes after
// load, so a missing element is reported straight away.
func (s *staticSession) element(loc Locator) (*goquery.Selection, error) {
	sel, err := s.selection(loc)
	if err != nil {
		return nil, err
	}
	if sel.Length() == 0 {
		return nil, notFound(loc)
	}
	return sel.First(), nil
}

func (s *staticSession) Wait(ctx context.Context, loc Locator) error {
	_, err := s.element(loc)
	return err
}

func (s *staticSession) Count(ctx context.Context, loc Locator) (int, error) {
	sel, err := s.selection(loc)
	if err != nil {
		return 0, err
	}
	return sel.Length(), nil
}

func (s *staticSession) TextContent(ctx context.Context, loc Locator) (string, error) {
	el, err := s.element(loc)
	if err != nil {
		return "", err
	}
	return el.Text(), nil
}

func (s *staticSession) AllTextContents(ctx context.Context, loc Locator) ([]string, error) {
	sel, err := s.selection(loc)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, el *goquery.Selection) {
		texts = append(texts, el.Text())
	})
	return texts, nil
}

func (s *staticSession) Attribute(ctx context.Context, loc Locator, name string) (string, bool, error) {
	el, err := s.element(loc)
	if err != nil {
		return "", false, err
	}
	v, ok := el.Attr(name)
	return v, ok, nil
}

// Visible approximates layout: an element is hidden when it or an ancestor
// carries the hidden attribute or an inline display:none / visibility:hidden.
func (s *staticSession) Visible(ctx context.Context, loc Locator) (bool, error) {
	sel, err := s.selection(loc)
	if err != nil {
		return false, err
	}
	if sel.Length() == 0 {
		return false, nil
	}
	el := sel.First()
	if hiddenNode(el) {
		return false, nil
	}
	visible := true
	el.Parents().EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if hiddenNode(p) {
			visible = false
		}
		return visible
	})
	return visible, nil
}

func hiddenNode(sel *goquery.Selection) bool {
	if _, ok := sel.Attr("hidden"); ok {
		return true
	}
	if goquery.NodeName(sel) == "head" {
		return true
	}
	style, _ := sel.Attr("style")
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

// Click follows the href of the element or its closest anchor. Clicking
// anything else is a no-op since no script runs.
func (s *staticSession) Click(ctx context.Context, loc Locator) error {
	el, err := s.element(loc)
	if err != nil {
		return err
	}
	anchor := el.Closest("a[href]")
	if anchor.Length() == 0 {
		s.logger.Debug("click without navigation", zap.Stringer("locator", loc))
		return nil
	}
	href, _ := anchor.Attr("href")
	_, base, err := s.document()
	if err != nil {
		return err
	}
	target, err := base.Parse(href)
	if err != nil {
		return fmt.Errorf("click %s: bad href %q: %w", loc, href, err)
	}
	if target.Scheme != "http" && target.Scheme != "https" {
		s.logger.Debug("click on non-http link", zap.String("href", href))
		return nil
	}
	return s.Navigate(ctx, target.String())
}

func (s *staticSession) Close() error {
	return nil
}
