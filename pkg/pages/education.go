package pages

import (
	"context"
	"fmt"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// EducationPage is the Certifications & Education page.
type EducationPage struct {
	*Base
	Navigation *NavigationPage

	pageHeaderTitle     browser.Locator
	pageSlogan          browser.Locator
	certificationImages browser.Locator
}

func NewEducationPage(session browser.Session, baseURL string, opts ...Option) *EducationPage {
	base := NewBase(session, baseURL, opts...)
	return &EducationPage{
		Base:                base,
		Navigation:          newNavigationPage(base),
		pageHeaderTitle:     browser.ByTestID("education-title").Locate("h1"),
		pageSlogan:          browser.ByTestID("education-slogan").Locate("h2"),
		certificationImages: browser.ByTestID("education-certifications-logos").Locate("img"),
	}
}

// GoTo navigates straight to the Education page and checks the URL.
func (p *EducationPage) GoTo(ctx context.Context) error {
	if err := p.GoToSubPage(ctx, portfolio.EducationPath); err != nil {
		return err
	}
	return p.VerifyUrl(ctx)
}

func (p *EducationPage) VerifyUrl(ctx context.Context) error {
	return p.VerifyCurrentUrl(ctx, portfolio.EducationPath, true)
}

func (p *EducationPage) VerifyPageTitle(ctx context.Context) error {
	return p.VerifyPageTitleHasTitle(ctx, portfolio.EducationTitle)
}

func (p *EducationPage) VerifyPageHeaderTitle(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectTextContent(ctx, "page header title", p.pageHeaderTitle, portfolio.EducationHeaderTitle)
}

func (p *EducationPage) VerifyPageSlogan(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	return p.expectText(ctx, "page slogan", p.pageSlogan, portfolio.EducationSlogan)
}

// VerifyCertificationImages checks each logo, in order, against the
// certification fixture.
func (p *EducationPage) VerifyCertificationImages(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	if err := p.session.Wait(ctx, p.certificationImages); err != nil {
		return fmt.Errorf("certification images: %w", err)
	}
	count, err := p.session.Count(ctx, p.certificationImages)
	if err != nil {
		return err
	}
	if count != len(portfolio.CertificationImages) {
		return &MismatchError{What: "certification image count", Locator: p.certificationImages.String(),
			Want: fmt.Sprint(len(portfolio.CertificationImages)), Got: fmt.Sprint(count)}
	}
	for i := 0; i < count; i++ {
		if err := p.expectImage(ctx, fmt.Sprintf("certification image %d", i+1), p.certificationImages.Nth(i), portfolio.CertificationImages[i]); err != nil {
			return err
		}
	}
	return nil
}

// VerifyEducationExperienceList checks school, degree and status of every
// education row.
func (p *EducationPage) VerifyEducationExperienceList(ctx context.Context) error {
	if err := p.WaitUntilPageLoaded(ctx); err != nil {
		return err
	}
	for i, want := range portfolio.Educations {
		n := i + 1
		if err := p.expectTextContent(ctx, fmt.Sprintf("school name %d", n),
			browser.ByTestID(fmt.Sprintf("education-school-name-%d", n)), want.Institution); err != nil {
			return err
		}
		if err := p.expectTextContent(ctx, fmt.Sprintf("school degree %d", n),
			browser.ByTestID(fmt.Sprintf("education-school-degree-%d", n)), portfolio.DegreePrefix+want.Degree); err != nil {
			return err
		}
		if err := p.expectTextContent(ctx, fmt.Sprintf("school status %d", n),
			browser.ByTestID(fmt.Sprintf("education-school-status-%d", n)), portfolio.StatusPrefix+want.Status); err != nil {
			return err
		}
	}
	return nil
}
