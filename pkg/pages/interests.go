package pages

import (
	"context"
	"fmt"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// InterestsPage is the Personal Interests page.
type InterestsPage struct {
	*Base
	Navigation *NavigationPage

	pageHeaderTitle browser.Locator
	pageSlogan      browser.Locator
}

func NewInterestsPage(session browser.Session, baseURL string, opts ...Option) *InterestsPage {
	base := NewBase(session, baseURL, opts...)
	return &InterestsPage{
		Base:            base,
		Navigation:      newNavigationPage(base),
		pageHeaderTitle: browser.ByTestID("interest-title").Locate("h1"),
		pageSlogan:      browser.ByTestID("interest-slogan").Locate("h2"),
	}
}

// GoTo navigates straight to the Interests page.
func (p *InterestsPage) GoTo(ctx context.Context) error {
	return p.GoToSubPage(ctx, portfolio.InterestsPath)
}

func (p *InterestsPage) VerifyUrl(ctx context.Context) error {
	return p.VerifyCurrentUrl(ctx, portfolio.InterestsPath, true)
}

func (p *InterestsPage) VerifyPageTitle(ctx context.Context) error {
	return p.VerifyPageTitleHasTitle(ctx, portfolio.InterestsTitle)
}

func (p *InterestsPage) VerifyPageHeaderTitle(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectTextContent(ctx, "page header title", p.pageHeaderTitle, portfolio.InterestsHeaderTitle)
}

func (p *InterestsPage) VerifyPageSlogan(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectTextContent(ctx, "page slogan", p.pageSlogan, portfolio.InterestsSlogan)
}

func (p *InterestsPage) VerifyInterestTitles(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	for i, want := range portfolio.InterestTitles {
		loc := browser.ByTestID(fmt.Sprintf("interest-title-%d", i+1))
		if err := p.expectTextContent(ctx, fmt.Sprintf("interest title %d", i+1), loc, want); err != nil {
			return err
		}
	}
	return nil
}

func (p *InterestsPage) VerifyInterestImages(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	for i, want := range portfolio.InterestImages {
		loc := browser.ByTestID(fmt.Sprintf("interest-image-%d", i+1))
		if err := p.expectImage(ctx, fmt.Sprintf("interest image %d", i+1), loc, want); err != nil {
			return err
		}
	}
	return nil
}
