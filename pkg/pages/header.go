package pages

import (
	"context"
	"fmt"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// HeaderPage is the page header with its contact icons.
type HeaderPage struct {
	*Base
	Navigation *NavigationPage

	contactContainer browser.Locator
}

func NewHeaderPage(session browser.Session, baseURL string, opts ...Option) *HeaderPage {
	base := NewBase(session, baseURL, opts...)
	return &HeaderPage{
		Base:             base,
		Navigation:       newNavigationPage(base),
		contactContainer: browser.ByTestID("top-nav-contact-container"),
	}
}

// VerifyContactFloatingIcons checks the GitHub, LinkedIn and email icons:
// image src/alt/class and the href of the link wrapping each.
func (p *HeaderPage) VerifyContactFloatingIcons(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	images := p.contactContainer.Locate("img")
	links := p.contactContainer.Locate("a")

	if err := p.session.Wait(ctx, images); err != nil {
		return fmt.Errorf("contact icons: %w", err)
	}
	count, err := p.session.Count(ctx, images)
	if err != nil {
		return err
	}
	if count != len(portfolio.ContactIcons) {
		return &MismatchError{What: "contact icon count", Locator: images.String(), Want: fmt.Sprint(len(portfolio.ContactIcons)), Got: fmt.Sprint(count)}
	}

	for i := 0; i < count; i++ {
		if err := p.expectImage(ctx, "contact icon", images.Nth(i), portfolio.ContactIcons[i]); err != nil {
			return err
		}
		if err := p.expectAttribute(ctx, "contact link", links.Nth(i), "href", portfolio.ContactLinks[i]); err != nil {
			return err
		}
	}
	return nil
}
