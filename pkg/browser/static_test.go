package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title>
  Home   Page
</title></head>
<body>
<nav><a data-testid="next-link" href="/next"><span data-testid="next-label">Next</span></a></nav>
<ul data-testid="items"><li>one</li><li>two</li><li>three</li></ul>
<ul data-testid="more"><li>four</li><li>five</li></ul>
<img data-testid="logo" src="/logo.png" alt="Logo" class="white-png-background">
<p data-testid="shown">shown</p>
<p data-testid="hidden-attr" hidden>gone</p>
<div style="display: none"><p data-testid="hidden-parent">gone</p></div>
<button data-testid="button">Press</button>
<a data-testid="mail" href="mailto:someone@example.com">mail</a>
</body>
</html>`

const nextPage = `<!DOCTYPE html><html><head><title>Next</title></head><body><h1 data-testid="heading">Next page</h1></body></html>`

func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testPage))
	})
	mux.HandleFunc("/next", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(nextPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newStaticSession(t *testing.T) Session {
	t.Helper()
	b := NewStaticBrowser(DefaultConfig())
	t.Cleanup(func() { _ = b.Close() })
	s, err := b.NewSession(context.Background())
	require.NoError(t, err)
	return s
}

func TestStaticSession_BeforeNavigate(t *testing.T) {
	s := newStaticSession(t)
	ctx := context.Background()

	require.ErrorIs(t, s.WaitLoad(ctx), ErrNoPage)
	_, err := s.Title(ctx)
	require.ErrorIs(t, err, ErrNoPage)
	_, err = s.URL(ctx)
	require.ErrorIs(t, err, ErrNoPage)
}

func TestStaticSession_Queries(t *testing.T) {
	srv := newTestSite(t)
	s := newStaticSession(t)
	ctx := context.Background()

	require.NoError(t, s.Navigate(ctx, srv.URL+"/"))
	require.NoError(t, s.WaitLoad(ctx))

	title, err := s.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Home Page", title)

	url, err := s.URL(ctx)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/", url)

	items := ByTestID("items").Locate("li")
	n, err := s.Count(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	texts, err := s.AllTextContents(ctx, items)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, texts)

	second, err := s.TextContent(ctx, items.Nth(1))
	require.NoError(t, err)
	assert.Equal(t, "two", second)

	n, err = s.Count(ctx, items.Nth(7))
	require.NoError(t, err)
	assert.Zero(t, n)

	alt, ok, err := s.Attribute(ctx, ByTestID("logo"), "alt")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Logo", alt)

	_, ok, err = s.Attribute(ctx, ByTestID("logo"), "title")
	require.NoError(t, err)
	assert.False(t, ok)

	third, err := s.TextContent(ctx, ByTestID("items").Locate("li").Nth(2))
	require.NoError(t, err)
	assert.Equal(t, "three", third)

	// A position carries through Locate: only the second list is searched.
	lists := ByCSS("ul")
	texts, err = s.AllTextContents(ctx, lists.Nth(1).Locate("li"))
	require.NoError(t, err)
	assert.Equal(t, []string{"four", "five"}, texts)
	n, err = s.Count(ctx, lists.Nth(5).Locate("li"))
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.TextContent(ctx, ByTestID("missing"))
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.Wait(ctx, ByTestID("missing")), ErrNotFound)
	require.NoError(t, s.Wait(ctx, ByTestID("shown")))
}

func TestStaticSession_Visible(t *testing.T) {
	srv := newTestSite(t)
	s := newStaticSession(t)
	ctx := context.Background()
	require.NoError(t, s.Navigate(ctx, srv.URL))

	tests := []struct {
		testID string
		want   bool
	}{
		{"shown", true},
		{"logo", true},
		{"hidden-attr", false},
		{"hidden-parent", false},
		{"missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.testID, func(t *testing.T) {
			got, err := s.Visible(ctx, ByTestID(tt.testID))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticSession_ClickFollowsClosestAnchor(t *testing.T) {
	srv := newTestSite(t)
	s := newStaticSession(t)
	ctx := context.Background()
	require.NoError(t, s.Navigate(ctx, srv.URL))

	// Clicking something without an anchor leaves the page alone.
	require.NoError(t, s.Click(ctx, ByTestID("button")))
	url, err := s.URL(ctx)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, url)

	// mailto: links never leave the page either.
	require.NoError(t, s.Click(ctx, ByTestID("mail")))

	require.NoError(t, s.Click(ctx, ByTestID("next-label")))
	url, err = s.URL(ctx)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/next", url)

	heading, err := s.TextContent(ctx, ByTestID("heading"))
	require.NoError(t, err)
	assert.Equal(t, "Next page", heading)
}

func TestStaticSession_NavigateErrorStatus(t *testing.T) {
	srv := newTestSite(t)
	s := newStaticSession(t)

	err := s.Navigate(context.Background(), srv.URL+"/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestParseDriver(t *testing.T) {
	tests := []struct {
		in   string
		want Driver
	}{
		{"", DriverRod},
		{"rod", DriverRod},
		{"ChromeDP", DriverChromedp},
		{" static ", DriverStatic},
	}
	for _, tt := range tests {
		got, err := ParseDriver(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseDriver("selenium")
	require.ErrorIs(t, err, ErrUnknownDriver)
	assert.Contains(t, err.Error(), "rod, chromedp, static")
}

func TestLaunch_Static(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = DriverStatic

	b, err := Launch(cfg)
	require.NoError(t, err)
	defer b.Close()
	assert.IsType(t, &StaticBrowser{}, b)

	cfg.Driver = "firefox"
	_, err = Launch(cfg)
	require.ErrorIs(t, err, ErrUnknownDriver)
}
