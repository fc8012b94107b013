package portfolio

const (
	EducationTitle       = "Xeng Vang - Certifications & Education"
	EducationHeaderTitle = "Education"
	EducationSlogan      = "Empowering Minds Through Knowledge"

	// Prefixes rendered in front of the degree and status cells.
	DegreePrefix = "Degree/Certificate: "
	StatusPrefix = "Status: "
)

// CertificationImages are the logos in education-certifications-logos.
var CertificationImages = []Image{
	{Alt: "ASTQB Certification Image", Src: "/images/astqb-certification.svg", Class: "white-png-background"},
	{Alt: "Java Professional Programming Certification Image", Src: "/images/madison-college-java-certification.png", Class: "white-png-background"},
	{Alt: "CompTIA A+ Certification Image", Src: "/images/comptia-a-plus-certification.png", Class: "white-png-background"},
	{Alt: "Microsoft Certified Professional Certification Image", Src: "/images/mcp-certification.gif", Class: "white-png-background"},
	{Alt: "Novell Certification Image", Src: "/images/novell-certification.jpg", Class: "white-png-background"},
}

// Educations is the education list, education-school-*-1 first.
var Educations = []Education{
	{Degree: "IT Java Professional Developer Certificate Program", Institution: "Madison College", Status: "Certificate Obtained"},
	{Degree: "AS Computer Science", Institution: "Herzing University", Status: "Completed One Year"},
	{Degree: "AS Computer Science", Institution: "Kaplan University", Status: "Completed One Semester"},
}
