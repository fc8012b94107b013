package pages

import (
	"context"
	"fmt"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// AboutMePage is the About Me page.
type AboutMePage struct {
	*Base
	Navigation *NavigationPage

	nameLocation    browser.Locator
	positions       browser.Locator
	aboutParagraphs []browser.Locator
	profileImage    browser.Locator
}

func NewAboutMePage(session browser.Session, baseURL string, opts ...Option) *AboutMePage {
	base := NewBase(session, baseURL, opts...)
	paragraphs := make([]browser.Locator, len(portfolio.AboutParagraphs))
	for i := range paragraphs {
		paragraphs[i] = browser.ByTestID(fmt.Sprintf("about-paragraph-%d", i+1))
	}
	return &AboutMePage{
		Base:            base,
		Navigation:      newNavigationPage(base),
		nameLocation:    browser.ByTestID("about-name-location"),
		positions:       browser.ByTestID("about-positions"),
		aboutParagraphs: paragraphs,
		profileImage:    browser.ByTestID("xeng-vang-image"),
	}
}

// GoTo navigates straight to the About Me page and checks the URL.
func (p *AboutMePage) GoTo(ctx context.Context) error {
	if err := p.GoToSubPage(ctx, portfolio.AboutMePath); err != nil {
		return err
	}
	return p.VerifyUrl(ctx)
}

func (p *AboutMePage) VerifyUrl(ctx context.Context) error {
	return p.VerifyCurrentUrl(ctx, portfolio.AboutMePath, true)
}

func (p *AboutMePage) VerifyPageTitle(ctx context.Context) error {
	return p.VerifyPageTitleHasTitle(ctx, portfolio.AboutMeTitle)
}

func (p *AboutMePage) VerifyNameAndLocation(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectText(ctx, "name and location", p.nameLocation, portfolio.NameLocation)
}

func (p *AboutMePage) VerifyPositions(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectText(ctx, "positions", p.positions, portfolio.Positions)
}

// VerifyParagraphs checks the seven biography paragraphs.
func (p *AboutMePage) VerifyParagraphs(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	for i, loc := range p.aboutParagraphs {
		if err := p.expectText(ctx, fmt.Sprintf("paragraph %d", i+1), loc, portfolio.AboutParagraphs[i]); err != nil {
			return err
		}
	}
	return nil
}

// VerifyProfileImage checks the portrait is visible with the expected
// alt, class and src.
func (p *AboutMePage) VerifyProfileImage(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	if err := p.expectVisible(ctx, "profile image", p.profileImage); err != nil {
		return err
	}
	img := portfolio.ProfileImage
	if err := p.expectAttribute(ctx, "profile image", p.profileImage, "alt", img.Alt); err != nil {
		return err
	}
	if err := p.expectAttribute(ctx, "profile image", p.profileImage, "class", img.Class); err != nil {
		return err
	}
	return p.expectAttribute(ctx, "profile image", p.profileImage, "src", img.Src)
}
