package portfolio

const (
	InterestsTitle       = "Xeng Vang - Personal Interests & Interests Outside of Work"
	InterestsHeaderTitle = "Interests"
	InterestsSlogan      = "Exploring Beyond the Workplace"
)

// InterestTitles are the section titles, interest-title-1 first.
var InterestTitles = []string{
	"Volleyball",
	"Travel",
	"There's more to me:",
}

// InterestImages are the section images, interest-image-1 first.
var InterestImages = []Image{
	{Alt: "Volleyball Image", Src: "/images/volleyball.png", Class: "white-png-background image-float-right"},
	{Alt: "Travel Image", Src: "/images/travel.png", Class: "white-png-background image-float-right"},
	{Alt: "Other Activities Image", Src: "/images/interests.png", Class: "white-png-background image-float-right"},
}
