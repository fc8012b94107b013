package site

import "html/template"

var funcs = template.FuncMap{
	// inc turns a range index into the 1-based suffix used by data-testid.
	"inc": func(i int) int { return i + 1 },
}

// Elements whose text the page objects compare exactly are kept on one line.
const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; }
nav, header, footer, main { padding: 0 2rem; }
.white-png-background { background: #fff; }
.image-float-right { float: right; max-width: 30%; }
.skill-label { display: inline-block; margin: 0.25rem; padding: 0.25rem 0.5rem; border: 1px solid #ccc; }
</style>
</head>
<body>
<header>
<nav data-testid="top-nav">
{{range .NavLinks}}<a data-testid="{{.TestID}}" href="/{{.Path}}">{{.Label}}</a>
{{end}}</nav>
<div data-testid="top-nav-contact-container">
{{range .ContactIcons}}<a data-testid="{{.TestID}}" href="{{.Href}}"><img src="{{.Image.Src}}" alt="{{.Image.Alt}}" class="{{.Image.Class}}"></a>
{{end}}</div>
</header>
<main>
{{template "content" .Body}}
</main>
<footer>
<p data-testid="footer-legal-text">{{.LegalText}}</p>
{{with .AdditionalLegalText}}<p data-testid="additional-footer-legal-text">{{.}}</p>
{{end}}</footer>
</body>
</html>
`

const aboutMeHTML = `{{define "content"}}
<section data-testid="about-me">
<img data-testid="xeng-vang-image" src="{{.Image.Src}}" alt="{{.Image.Alt}}" class="{{.Image.Class}}">
<h1 data-testid="about-name-location">{{.NameLocation}}</h1>
<h2 data-testid="about-positions">{{.Positions}}</h2>
{{range $i, $p := .Paragraphs}}<p data-testid="about-paragraph-{{inc $i}}">{{$p}}</p>
{{end}}</section>
{{end}}`

const educationHTML = `{{define "content"}}
<div data-testid="education-title"><h1>{{.HeaderTitle}}</h1></div>
<div data-testid="education-slogan"><h2>{{.Slogan}}</h2></div>
<div data-testid="education-certifications-logos">
{{range .Certifications}}<img src="{{.Src}}" alt="{{.Alt}}" class="{{.Class}}">
{{end}}</div>
{{$degree := .DegreePrefix}}{{$status := .StatusPrefix}}
<ul data-testid="education-list">
{{range $i, $e := .Educations}}<li>
<h3 data-testid="education-school-name-{{inc $i}}">{{$e.Institution}}</h3>
<p data-testid="education-school-degree-{{inc $i}}">{{$degree}}{{$e.Degree}}</p>
<p data-testid="education-school-status-{{inc $i}}">{{$status}}{{$e.Status}}</p>
</li>
{{end}}</ul>
{{end}}`

const professionalExperienceHTML = `{{define "content"}}
<div data-testid="experience-title"><h1>{{.HeaderTitle}}</h1></div>
<div data-testid="experience-slogan"><h2>{{.Slogan}}</h2></div>
<div data-testid="skill-labels-section">
{{range .Skills}}<span class="skill-label">{{.}}</span>
{{end}}</div>
<ul data-testid="experience-list">
{{range $i, $e := .Experiences}}<li>
<h3 data-testid="experience-position-{{inc $i}}">{{$e.Title}}</h3>
<p data-testid="experience-company-{{inc $i}}">{{$e.Company}}</p>
<p data-testid="experience-dates-{{inc $i}}">{{$e.Tenure}}</p>
</li>
{{end}}</ul>
{{end}}`

const interestsHTML = `{{define "content"}}
<div data-testid="interest-title"><h1>{{.HeaderTitle}}</h1></div>
<div data-testid="interest-slogan"><h2>{{.Slogan}}</h2></div>
{{range $i, $t := .Titles}}<section>
<h3 data-testid="interest-title-{{inc $i}}">{{$t}}</h3>
{{with index $.Images $i}}<img data-testid="interest-image-{{inc $i}}" src="{{.Src}}" alt="{{.Alt}}" class="{{.Class}}">{{end}}
</section>
{{end}}
{{end}}`
