package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// NavigationLink is a link in the top navigation bar, named by its label.
type NavigationLink string

const (
	AboutMeLink                NavigationLink = portfolio.AboutMeLabel
	ProfessionalExperienceLink NavigationLink = portfolio.ProfessionalExperienceLabel
	EducationLink              NavigationLink = portfolio.EducationLabel
	InterestsLink              NavigationLink = portfolio.InterestsLabel
)

// ErrUnknownNavigationLink is returned for a link outside the enumeration.
var ErrUnknownNavigationLink = errors.New("invalid navigation header link text")

var navigationLinks = []NavigationLink{AboutMeLink, ProfessionalExperienceLink, EducationLink, InterestsLink}

// NavigationLinks returns every link in display order.
func NavigationLinks() []NavigationLink {
	return append([]NavigationLink(nil), navigationLinks...)
}

// ParseNavigationLink resolves a label, ignoring case.
func ParseNavigationLink(label string) (NavigationLink, error) {
	for _, l := range navigationLinks {
		if strings.EqualFold(strings.TrimSpace(label), string(l)) {
			return l, nil
		}
	}
	return "", unknownLink(label)
}

func unknownLink(label string) error {
	names := make([]string, len(navigationLinks))
	for i, l := range navigationLinks {
		names[i] = string(l)
	}
	return fmt.Errorf("%w: %q. Allowable values are: %s", ErrUnknownNavigationLink, label, strings.Join(names, ", "))
}

// NavigationPage is the navigation bar plus the floating contact icons.
type NavigationPage struct {
	*Base
	aboutMeLink                browser.Locator
	professionalExperienceLink browser.Locator
	educationLink              browser.Locator
	interestsLink              browser.Locator
	linkedInFloatingIcon       browser.Locator
	emailFloatingIcon          browser.Locator
}

func NewNavigationPage(session browser.Session, baseURL string, opts ...Option) *NavigationPage {
	return newNavigationPage(NewBase(session, baseURL, opts...))
}

func newNavigationPage(base *Base) *NavigationPage {
	return &NavigationPage{
		Base:                       base,
		aboutMeLink:                browser.ByTestID("about-link"),
		professionalExperienceLink: browser.ByTestID("experience-link"),
		educationLink:              browser.ByTestID("education-link"),
		interestsLink:              browser.ByTestID("interests-link"),
		linkedInFloatingIcon:       browser.ByTestID("linkedin-icon"),
		emailFloatingIcon:          browser.ByTestID("email-icon"),
	}
}

func (p *NavigationPage) locator(link NavigationLink) (browser.Locator, error) {
	switch link {
	case AboutMeLink:
		return p.aboutMeLink, nil
	case ProfessionalExperienceLink:
		return p.professionalExperienceLink, nil
	case EducationLink:
		return p.educationLink, nil
	case InterestsLink:
		return p.interestsLink, nil
	default:
		return browser.Locator{}, unknownLink(string(link))
	}
}

// ClickNavigationLink clicks the link labelled link.
func (p *NavigationPage) ClickNavigationLink(ctx context.Context, link NavigationLink) error {
	loc, err := p.locator(link)
	if err != nil {
		return err
	}
	return p.session.Click(ctx, loc)
}

// ClickLinkedInIcon clicks the floating LinkedIn icon.
func (p *NavigationPage) ClickLinkedInIcon(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.session.Click(ctx, p.linkedInFloatingIcon)
}

// ClickEmailIcon clicks the floating email icon.
func (p *NavigationPage) ClickEmailIcon(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.session.Click(ctx, p.emailFloatingIcon)
}

// VerifyNavigationLinkText checks every link shows its label.
func (p *NavigationPage) VerifyNavigationLinkText(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	for _, link := range navigationLinks {
		loc, _ := p.locator(link)
		if err := p.expectText(ctx, "navigation link", loc, string(link)); err != nil {
			return err
		}
	}
	return nil
}
