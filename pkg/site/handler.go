package site

import (
	"bytes"
	"encoding/base64"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/portfolio"
)

// placeholderGIF is a transparent 1x1 GIF served for every image.
var placeholderGIF, _ = base64.StdEncoding.DecodeString("R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

type contactIcon struct {
	TestID string
	Href   string
	Image  portfolio.Image
}

// pageData is what the layout renders. Body is the page-specific content.
type pageData struct {
	Title               string
	NavLinks            []portfolio.NavLink
	ContactIcons        []contactIcon
	LegalText           string
	AdditionalLegalText string // empty hides the notice
	Body                any
}

type route struct {
	path       string
	tmpl       string
	title      string
	body       any
	trademarks bool // renders the additional legal notice
}

var contactTestIDs = []string{"github-icon", "linkedin-icon", "email-icon"}

func contactIcons() []contactIcon {
	icons := make([]contactIcon, len(portfolio.ContactIcons))
	for i, img := range portfolio.ContactIcons {
		icons[i] = contactIcon{TestID: contactTestIDs[i], Href: portfolio.ContactLinks[i], Image: img}
	}
	return icons
}

func pageRoutes() []route {
	aboutMe := route{
		tmpl:  aboutMeHTML,
		title: portfolio.AboutMeTitle,
		body: struct {
			NameLocation string
			Positions    string
			Image        portfolio.Image
			Paragraphs   []string
		}{portfolio.NameLocation, portfolio.Positions, portfolio.ProfileImage, portfolio.AboutParagraphs},
	}
	home := aboutMe
	home.path = "/"
	aboutMe.path = "/" + portfolio.AboutMePath

	return []route{
		home,
		aboutMe,
		{
			path:  "/" + portfolio.EducationPath,
			tmpl:  educationHTML,
			title: portfolio.EducationTitle,
			body: struct {
				HeaderTitle, Slogan, DegreePrefix, StatusPrefix string
				Certifications                                 []portfolio.Image
				Educations                                     []portfolio.Education
			}{portfolio.EducationHeaderTitle, portfolio.EducationSlogan, portfolio.DegreePrefix, portfolio.StatusPrefix,
				portfolio.CertificationImages, portfolio.Educations},
			trademarks: true,
		},
		{
			path:  "/" + portfolio.ProfessionalExperiencesPath,
			tmpl:  professionalExperienceHTML,
			title: portfolio.ProfessionalExperienceTitle,
			body: struct {
				HeaderTitle, Slogan string
				Skills              []string
				Experiences         []portfolio.Experience
			}{portfolio.ProfessionalExperienceHeaderTitle, portfolio.ProfessionalExperienceSlogan,
				portfolio.Skills, portfolio.Experiences},
			trademarks: true,
		},
		{
			path:  "/" + portfolio.InterestsPath,
			tmpl:  interestsHTML,
			title: portfolio.InterestsTitle,
			body: struct {
				HeaderTitle, Slogan string
				Titles              []string
				Images              []portfolio.Image
			}{portfolio.InterestsHeaderTitle, portfolio.InterestsSlogan, portfolio.InterestTitles, portfolio.InterestImages},
		},
	}
}

// routes registers every page plus the image placeholder on r. Pages are
// rendered once up front; the content never changes while serving.
func routes(r *mux.Router, logger *zap.Logger) error {
	layout, err := template.New("layout").Funcs(funcs).Parse(layoutHTML)
	if err != nil {
		return err
	}
	for _, rt := range pageRoutes() {
		tmpl, err := template.Must(layout.Clone()).Parse(rt.tmpl)
		if err != nil {
			return err
		}
		data := pageData{
			Title:        rt.title,
			NavLinks:     portfolio.NavLinks,
			ContactIcons: contactIcons(),
			LegalText:    portfolio.LegalText,
			Body:         rt.body,
		}
		if rt.trademarks {
			data.AdditionalLegalText = portfolio.AdditionalLegalText
		}
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
			return err
		}
		r.Handle(rt.path, servePage(buf.Bytes(), logger)).Methods(http.MethodGet, http.MethodHead)
	}
	r.HandleFunc("/images/{name}", serveImage).Methods(http.MethodGet, http.MethodHead)
	return nil
}

func servePage(page []byte, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(page); err != nil {
			logger.Debug("write page", zap.String("path", r.URL.Path), zap.Error(err))
		}
	})
}

func serveImage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "max-age=3600")
	_, _ = w.Write(placeholderGIF)
}
