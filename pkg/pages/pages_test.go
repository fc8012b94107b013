package pages

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/pages/internal"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/site"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

// startSite serves the fixture site and returns its base URL.
func startSite(t *testing.T) string {
	t.Helper()
	srv, err := site.NewServer(site.DefaultConfig())
	require.NoError(t, err)
	_, err = srv.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv.URL()
}

func newStaticSession(t *testing.T) browser.Session {
	t.Helper()
	b := browser.NewStaticBrowser(browser.DefaultConfig())
	t.Cleanup(func() { _ = b.Close() })
	s, err := b.NewSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// serveLogos serves an education page whose logo strip holds imgs.
func serveLogos(t *testing.T, imgs []portfolio.Image) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>Education</title></head><body>`)
	b.WriteString(`<div data-testid="education-certifications-logos">`)
	for _, img := range imgs {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="%s">`,
			html.EscapeString(img.Src), html.EscapeString(img.Alt), html.EscapeString(img.Class))
	}
	b.WriteString(`</div></body></html>`)
	page := b.String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestEducation_CertificationImageCount(t *testing.T) {
	ctx := context.Background()
	all := portfolio.CertificationImages

	tests := []struct {
		name string
		imgs []portfolio.Image
		got  string
	}{
		{name: "one missing", imgs: all[:len(all)-1], got: fmt.Sprint(len(all) - 1)},
		{name: "one extra", imgs: append(append([]portfolio.Image{}, all...), all[0]), got: fmt.Sprint(len(all) + 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := serveLogos(t, tt.imgs)
			s := newStaticSession(t)
			p := NewEducationPage(s, baseURL)
			require.NoError(t, p.GoToHomePage(ctx))

			var mismatch *MismatchError
			require.ErrorAs(t, p.VerifyCertificationImages(ctx), &mismatch)
			assert.Equal(t, "certification image count", mismatch.What)
			assert.Equal(t, fmt.Sprint(len(all)), mismatch.Want)
			assert.Equal(t, tt.got, mismatch.Got)
		})
	}

	t.Run("all present", func(t *testing.T) {
		s := newStaticSession(t)
		p := NewEducationPage(s, serveLogos(t, all))
		require.NoError(t, p.GoToHomePage(ctx))
		require.NoError(t, p.VerifyCertificationImages(ctx))
	})
}

func TestChecks_FixtureSite(t *testing.T) {
	baseURL := startSite(t)

	for _, c := range Checks() {
		t.Run(c.Page+"/"+c.Name, func(t *testing.T) {
			s := newStaticSession(t)
			require.NoError(t, c.Run(context.Background(), s, baseURL))
		})
	}
}

func TestChecks_CoverEveryPage(t *testing.T) {
	perPage := map[string]int{}
	for _, c := range Checks() {
		require.NotNil(t, c.Run, c.Name)
		perPage[c.Page]++
	}
	assert.Equal(t, map[string]int{
		"About Me":                6,
		"Education":               7,
		"Professional Experience": 7,
		"Interests":               6,
		"Navigation":              1,
	}, perPage)
}

func TestNavigation_ClickEachLink(t *testing.T) {
	baseURL := startSite(t)
	ctx := context.Background()

	for _, l := range portfolio.NavLinks {
		t.Run(l.Label, func(t *testing.T) {
			p := NewNavigationPage(newStaticSession(t), baseURL)
			require.NoError(t, p.GoToHomePage(ctx))

			link, err := ParseNavigationLink(l.Label)
			require.NoError(t, err)
			require.NoError(t, p.ClickNavigationLink(ctx, link))
			require.NoError(t, p.VerifyCurrentUrl(ctx, l.Path, true))
		})
	}
}

func TestNavigation_ContactIconsStayOnPage(t *testing.T) {
	baseURL := startSite(t)
	ctx := context.Background()
	s := newStaticSession(t)

	p := NewNavigationPage(s, baseURL)
	require.NoError(t, p.GoToSubPage(ctx, portfolio.InterestsPath))
	require.NoError(t, p.ClickEmailIcon(ctx), "mailto links do not navigate")
	require.NoError(t, p.VerifyCurrentUrl(ctx, portfolio.InterestsPath, true))
}

func TestPages_Mismatches(t *testing.T) {
	baseURL := startSite(t)
	ctx := context.Background()

	t.Run("title of another page", func(t *testing.T) {
		clock := internal.NewMockClock(time.Time{})
		s := newStaticSession(t)
		require.NoError(t, NewAboutMePage(s, baseURL).GoTo(ctx))

		err := NewEducationPage(s, baseURL, withClock(clock)).VerifyPageTitle(ctx)
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, portfolio.AboutMeTitle, mismatch.Got)
		assert.Len(t, clock.Sleeps(), 3)
	})

	t.Run("url of another page", func(t *testing.T) {
		s := newStaticSession(t)
		require.NoError(t, NewInterestsPage(s, baseURL).GoTo(ctx))

		var mismatch *MismatchError
		require.ErrorAs(t, NewEducationPage(s, baseURL).VerifyUrl(ctx), &mismatch)
	})

	t.Run("additional legal text missing", func(t *testing.T) {
		s := newStaticSession(t)
		require.NoError(t, NewAboutMePage(s, baseURL).GoTo(ctx))

		err := NewFooterPage(s, baseURL).VerifyAdditionalLegalText(ctx, true)
		require.ErrorIs(t, err, browser.ErrNotFound)
	})

	t.Run("additional legal text never hides", func(t *testing.T) {
		clock := internal.NewMockClock(time.Time{})
		s := newStaticSession(t)
		require.NoError(t, NewEducationPage(s, baseURL).GoTo(ctx))

		err := NewFooterPage(s, baseURL, withClock(clock)).VerifyAdditionalLegalText(ctx, false)
		var mismatch *MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "visible", mismatch.Got)
	})

	t.Run("skills list on another page", func(t *testing.T) {
		s := newStaticSession(t)
		require.NoError(t, NewEducationPage(s, baseURL).GoTo(ctx))

		err := NewProfessionalExperiencePage(s, baseURL).VerifySkillsList(ctx)
		require.ErrorIs(t, err, browser.ErrNotFound)
	})
}
