// Package portfolio holds the literal content xengvang.com is expected to
// render. The page objects assert against it and the local fixture site
// renders from it, so the two can never drift apart.
package portfolio

// Image is the attribute triple checked on every <img>.
type Image struct {
	Alt   string
	Src   string
	Class string
}

// Experience is one row of the professional experience list.
type Experience struct {
	Title   string
	Company string
	Tenure  string
}

// Education is one row of the education list.
type Education struct {
	Degree      string
	Institution string
	Status      string
}

// NavLink is one entry of the top navigation bar.
type NavLink struct {
	Label  string
	TestID string
	Path   string
}

// Sub-page paths, relative to the base URL.
const (
	AboutMePath                 = "about-me"
	EducationPath               = "education"
	ProfessionalExperiencesPath = "professional-experiences"
	InterestsPath               = "interests"
)

// Navigation labels.
const (
	AboutMeLabel                = "About Me"
	ProfessionalExperienceLabel = "Professional Experience"
	EducationLabel              = "Education"
	InterestsLabel              = "Interests"
)

// NavLinks is the navigation bar in display order.
var NavLinks = []NavLink{
	{Label: AboutMeLabel, TestID: "about-link", Path: AboutMePath},
	{Label: ProfessionalExperienceLabel, TestID: "experience-link", Path: ProfessionalExperiencesPath},
	{Label: EducationLabel, TestID: "education-link", Path: EducationPath},
	{Label: InterestsLabel, TestID: "interests-link", Path: InterestsPath},
}

// Header contact icons, in display order. ContactLinks[i] wraps ContactIcons[i].
var (
	ContactIcons = []Image{
		{Alt: "Xeng Vang GitHub Profile", Src: "/images/github.png", Class: "white-png-background"},
		{Alt: "Xeng Vang LinkedIn Profile", Src: "/images/linkedin.png", Class: "white-png-background"},
		{Alt: "Email Xeng Vang", Src: "/images/email.png", Class: "white-png-background"},
	}
	ContactLinks = []string{
		"https://github.com/xengvang1984",
		"https://www.linkedin.com/in/xeng-vang-55977613",
		"mailto:professional_xeng_vang@outlook.com",
	}
)

// Footer.
const (
	LegalText           = "© 2025 xengvang.com. All rights reserved."
	AdditionalLegalText = "Images, trademarks, and logos used on this page are the property of their respective owners. All rights reserved."
)
