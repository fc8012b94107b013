package pages

import (
	"context"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
)

// Page names used by Check.Page.
const (
	PageAboutMe                = "About Me"
	PageEducation              = "Education"
	PageProfessionalExperience = "Professional Experience"
	PageInterests              = "Interests"
	PageNavigation             = "Navigation"
)

// Check is one self-contained verification of the site: it navigates a fresh
// session to its page and runs the page object's Verify methods.
type Check struct {
	Page string
	Name string
	Run  func(ctx context.Context, session browser.Session, baseURL string, opts ...Option) error
}

// Checks returns the full sweep, page by page. Education and Professional
// Experience are reached through the navigation bar from the home page; the
// others are loaded directly.
func Checks() []Check {
	var checks []Check
	checks = append(checks, aboutMeChecks()...)
	checks = append(checks, educationChecks()...)
	checks = append(checks, professionalExperienceChecks()...)
	checks = append(checks, interestsChecks()...)
	checks = append(checks, Check{
		Page: PageNavigation,
		Name: "navigation link text",
		Run: func(ctx context.Context, s browser.Session, baseURL string, opts ...Option) error {
			p := NewNavigationPage(s, baseURL, opts...)
			if err := p.GoToHomePage(ctx); err != nil {
				return err
			}
			return p.VerifyNavigationLinkText(ctx)
		},
	})
	return checks
}

// steps runs fns in order, stopping at the first failure.
func steps(ctx context.Context, fns ...func(context.Context) error) error {
	for _, fn := range fns {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func footerHidden(f *FooterPage) func(context.Context) error {
	return func(ctx context.Context) error { return f.VerifyAdditionalLegalText(ctx, false) }
}

func footerShown(f *FooterPage) func(context.Context) error {
	return func(ctx context.Context) error { return f.VerifyAdditionalLegalText(ctx, true) }
}

func aboutMeChecks() []Check {
	check := func(name string, verify func(*AboutMePage, *FooterPage) []func(context.Context) error) Check {
		return Check{Page: PageAboutMe, Name: name, Run: func(ctx context.Context, s browser.Session, baseURL string, opts ...Option) error {
			p := NewAboutMePage(s, baseURL, opts...)
			f := NewFooterPage(s, baseURL, opts...)
			if err := p.GoTo(ctx); err != nil {
				return err
			}
			return steps(ctx, verify(p, f)...)
		}}
	}
	return []Check{
		check("page title and footer", func(p *AboutMePage, f *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageTitle, f.VerifyLegalText, footerHidden(f)}
		}),
		check("URL", func(p *AboutMePage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyUrl}
		}),
		check("paragraphs", func(p *AboutMePage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyParagraphs}
		}),
		check("name and location", func(p *AboutMePage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyNameAndLocation}
		}),
		check("position titles", func(p *AboutMePage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPositions}
		}),
		check("profile image", func(p *AboutMePage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyProfileImage}
		}),
	}
}

func educationChecks() []Check {
	check := func(name string, verify func(*EducationPage, *FooterPage, *HeaderPage) []func(context.Context) error) Check {
		return Check{Page: PageEducation, Name: name, Run: func(ctx context.Context, s browser.Session, baseURL string, opts ...Option) error {
			p := NewEducationPage(s, baseURL, opts...)
			f := NewFooterPage(s, baseURL, opts...)
			h := NewHeaderPage(s, baseURL, opts...)
			if err := p.GoToHomePage(ctx); err != nil {
				return err
			}
			if err := p.Navigation.ClickNavigationLink(ctx, EducationLink); err != nil {
				return err
			}
			return steps(ctx, verify(p, f, h)...)
		}}
	}
	return []Check{
		check("page title and footer", func(p *EducationPage, f *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageTitle, f.VerifyLegalText, footerShown(f)}
		}),
		check("URL", func(p *EducationPage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyUrl}
		}),
		check("header title", func(p *EducationPage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageHeaderTitle}
		}),
		check("slogan", func(p *EducationPage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageSlogan}
		}),
		check("education experiences", func(p *EducationPage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyEducationExperienceList}
		}),
		check("certification images", func(p *EducationPage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyCertificationImages}
		}),
		check("header contact icons", func(_ *EducationPage, _ *FooterPage, h *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{h.VerifyContactFloatingIcons}
		}),
	}
}

func professionalExperienceChecks() []Check {
	check := func(name string, verify func(*ProfessionalExperiencePage, *FooterPage, *HeaderPage) []func(context.Context) error) Check {
		return Check{Page: PageProfessionalExperience, Name: name, Run: func(ctx context.Context, s browser.Session, baseURL string, opts ...Option) error {
			p := NewProfessionalExperiencePage(s, baseURL, opts...)
			f := NewFooterPage(s, baseURL, opts...)
			h := NewHeaderPage(s, baseURL, opts...)
			if err := p.GoToHomePage(ctx); err != nil {
				return err
			}
			if err := p.Navigation.ClickNavigationLink(ctx, ProfessionalExperienceLink); err != nil {
				return err
			}
			return steps(ctx, verify(p, f, h)...)
		}}
	}
	return []Check{
		check("page title and footer", func(p *ProfessionalExperiencePage, f *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageTitle, f.VerifyLegalText, footerShown(f)}
		}),
		check("URL", func(p *ProfessionalExperiencePage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyUrl}
		}),
		check("header title", func(p *ProfessionalExperiencePage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageHeaderTitle}
		}),
		check("slogan", func(p *ProfessionalExperiencePage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageSlogan}
		}),
		check("professional experiences", func(p *ProfessionalExperiencePage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyProfessionalExperienceList}
		}),
		check("skills", func(p *ProfessionalExperiencePage, _ *FooterPage, _ *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifySkillsList}
		}),
		check("header contact icons", func(_ *ProfessionalExperiencePage, _ *FooterPage, h *HeaderPage) []func(context.Context) error {
			return []func(context.Context) error{h.VerifyContactFloatingIcons}
		}),
	}
}

func interestsChecks() []Check {
	check := func(name string, verify func(*InterestsPage, *FooterPage) []func(context.Context) error) Check {
		return Check{Page: PageInterests, Name: name, Run: func(ctx context.Context, s browser.Session, baseURL string, opts ...Option) error {
			p := NewInterestsPage(s, baseURL, opts...)
			f := NewFooterPage(s, baseURL, opts...)
			if err := p.GoTo(ctx); err != nil {
				return err
			}
			return steps(ctx, verify(p, f)...)
		}}
	}
	return []Check{
		check("page title and footer", func(p *InterestsPage, f *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageTitle, f.VerifyLegalText, footerHidden(f)}
		}),
		check("URL", func(p *InterestsPage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyUrl}
		}),
		check("header title", func(p *InterestsPage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageHeaderTitle}
		}),
		check("slogan", func(p *InterestsPage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyPageSlogan}
		}),
		check("interest titles", func(p *InterestsPage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyInterestTitles}
		}),
		check("interest images", func(p *InterestsPage, _ *FooterPage) []func(context.Context) error {
			return []func(context.Context) error{p.VerifyInterestImages}
		}),
	}
}
