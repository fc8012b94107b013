package pages

import (
	"context"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// FooterPage is the page footer.
type FooterPage struct {
	*Base
	Navigation *NavigationPage

	legalText           browser.Locator
	additionalLegalText browser.Locator
}

func NewFooterPage(session browser.Session, baseURL string, opts ...Option) *FooterPage {
	base := NewBase(session, baseURL, opts...)
	return &FooterPage{
		Base:                base,
		Navigation:          newNavigationPage(base),
		legalText:           browser.ByTestID("footer-legal-text"),
		additionalLegalText: browser.ByTestID("additional-footer-legal-text"),
	}
}

// VerifyLegalText checks the copyright line.
func (p *FooterPage) VerifyLegalText(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectTextContent(ctx, "footer legal text", p.legalText, portfolio.LegalText)
}

// VerifyAdditionalLegalText checks the trademark notice is shown with the
// expected text, or, when visible is false, that it is hidden within
// HiddenTimeout.
func (p *FooterPage) VerifyAdditionalLegalText(ctx context.Context, visible bool) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	if visible {
		return p.expectTextContent(ctx, "footer additional legal text", p.additionalLegalText, portfolio.AdditionalLegalText)
	}
	return p.expectHidden(ctx, "footer additional legal text", p.additionalLegalText, HiddenTimeout)
}
