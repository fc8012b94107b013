package portfolio

const (
	ProfessionalExperienceTitle       = "Xeng Vang - Professional Career & Experiences"
	ProfessionalExperienceHeaderTitle = "Professional Experiences"
	ProfessionalExperienceSlogan      = "Building Quality Through Experience"
)

// Skills are the skill labels in display order.
var Skills = []string{
	"Java",
	"JavaScript",
	"TypeScript",
	"Python",
	"Swift",
	"Ruby",
	".NET",
	"PHP",
	"HTML",
	"CSS",
	"Selenium",
	"Appium",
	"Playwright",
	"Cypress",
	"Grafana K6",
	"JMeter",
	"Locust",
	"API Testing",
	"UI Testing",
	"Regression Testing",
	"Exploratory Testing",
	"Performance Testing",
	"Load Testing",
	"Black Box Testing",
	"White Box Testing",
	"Grey Box Testing",
	"React",
	"Svelte",
	"Android",
	"iOS",
	"TestNG",
	"JUnit",
	"Postgres",
	"Oracle",
	"MSSQL",
	"MySQL",
	"DynamoDB",
	"MongoDB",
	"Solr",
	"Apache Cassandra",
	"Windows",
	"Linux",
	"MacOS",
	"GitLab",
	"GitHub",
	"Kubernetes",
	"Docker",
	"Jenkins",
	"AWS",
	"Azure",
	"CI/CD",
	"Agile Scrum",
	"Kanban",
	"JIRA",
	"Confluence",
	"TestRail",
	"Postman",
	"Copilot",
	"ChatGPT",
}

// Experiences is the experience list, most recent first.
var Experiences = []Experience{
	{Title: "Senior SDET", Company: "Hrvyst - RJ O'Brien | a StoneX Company", Tenure: "October 2024 - Present"},
	{Title: "Owner (100%)", Company: "Dane Fleet Services Inc.", Tenure: "August 2023 - September 2024 (Business Dissolved)"},
	{Title: "Senior QA Automation Engineer", Company: "GrubMarket", Tenure: "December 2022 - July 2023"},
	{Title: "Senior SDET", Company: "Paige", Tenure: "August 2021 - December 2022"},
	{Title: "Software QA Engineer I & II", Company: "Shopbop - An Amazon Subsidiary", Tenure: "April 2010 - May 2021"},
	{Title: "Technical Support I & II", Company: "Shopbop", Tenure: "February 2007 - March 2010"},
}
