package pages

import (
	"context"
	"fmt"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// ProfessionalExperiencePage is the Professional Career & Experiences page.
type ProfessionalExperiencePage struct {
	*Base
	Navigation *NavigationPage

	pageHeaderTitle browser.Locator
	pageSlogan      browser.Locator
	skillsList      browser.Locator
}

func NewProfessionalExperiencePage(session browser.Session, baseURL string, opts ...Option) *ProfessionalExperiencePage {
	base := NewBase(session, baseURL, opts...)
	return &ProfessionalExperiencePage{
		Base:            base,
		Navigation:      newNavigationPage(base),
		pageHeaderTitle: browser.ByTestID("experience-title").Locate("h1"),
		pageSlogan:      browser.ByTestID("experience-slogan").Locate("h2"),
		skillsList:      browser.ByTestID("skill-labels-section").Locate("span.skill-label"),
	}
}

// GoTo navigates straight to the page and checks the URL.
func (p *ProfessionalExperiencePage) GoTo(ctx context.Context) error {
	if err := p.GoToSubPage(ctx, portfolio.ProfessionalExperiencesPath); err != nil {
		return err
	}
	return p.VerifyUrl(ctx)
}

func (p *ProfessionalExperiencePage) VerifyUrl(ctx context.Context) error {
	return p.VerifyCurrentUrl(ctx, portfolio.ProfessionalExperiencesPath, true)
}

func (p *ProfessionalExperiencePage) VerifyPageTitle(ctx context.Context) error {
	return p.VerifyPageTitleHasTitle(ctx, portfolio.ProfessionalExperienceTitle)
}

func (p *ProfessionalExperiencePage) VerifyPageHeaderTitle(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectTextContent(ctx, "page header title", p.pageHeaderTitle, portfolio.ProfessionalExperienceHeaderTitle)
}

func (p *ProfessionalExperiencePage) VerifyPageSlogan(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectText(ctx, "page slogan", p.pageSlogan, portfolio.ProfessionalExperienceSlogan)
}

// VerifySkillsList checks the skill labels, in order, equal the skills
// fixture exactly.
func (p *ProfessionalExperiencePage) VerifySkillsList(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectTexts(ctx, "skills list", p.skillsList, portfolio.Skills)
}

// VerifyProfessionalExperienceList checks position, company and dates of
// every experience row.
func (p *ProfessionalExperiencePage) VerifyProfessionalExperienceList(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	for i, want := range portfolio.Experiences {
		n := i + 1
		if err := p.expectTextContent(ctx, fmt.Sprintf("experience position %d", n),
			browser.ByTestID(fmt.Sprintf("experience-position-%d", n)), want.Title); err != nil {
			return err
		}
		if err := p.expectTextContent(ctx, fmt.Sprintf("experience company %d", n),
			browser.ByTestID(fmt.Sprintf("experience-company-%d", n)), want.Company); err != nil {
			return err
		}
		if err := p.expectTextContent(ctx, fmt.Sprintf("experience dates %d", n),
			browser.ByTestID(fmt.Sprintf("experience-dates-%d", n)), want.Tenure); err != nil {
			return err
		}
	}
	return nil
}
