package portfolio

const (
	Name      = "Xeng Vang"
	Location  = "Sun Prairie, WI"
	Positions = "Senior SDET | QA Automation Engineer | Leader | Mentor | Entrepreneur"

	AboutMeTitle = Name + " - " + Positions
	NameLocation = Name + " - " + Location
)

// ProfileImage is the portrait on the About Me page.
var ProfileImage = Image{
	Alt:   "Xeng Vang Image",
	Src:   "/images/xeng-vang.png",
	Class: "about-image",
}

// AboutParagraphs are the About Me paragraphs, about-paragraph-1 first.
var AboutParagraphs = []string{
	"My name is Xeng Vang, and I am a seasoned Senior SDET and Software Quality Assurance Leader with over 15 years of proven experience driving quality, efficiency, and innovation within complex technology ecosystems. Throughout my career, I have specialized in architecting test automation strategies, leading cross-functional teams, and transforming quality engineering practices to help organizations scale with confidence and operational excellence. I currently reside in Sun Prairie, Wisconsin, with my wife and our two young sons.",
	"Having spent more than three decades in Madison, Wisconsin, I remain closely connected to the community where my family roots run deep. These strong family ties have grounded my values of integrity, perseverance, and collaboration—principles that continue to guide my leadership approach. Family gatherings, often centered around barbecues and competitive volleyball and basketball games, reflect the same spirit of teamwork and resilience that I bring into my professional life.",
	"I began my technology career in 2007, joining a startup of approximately ten employees. During this period, I played an integral role in the company's growth and eventual acquisition by Amazon, a Fortune 50 organization. I remained with Amazon for several years following the acquisition, gaining invaluable exposure to operating at enterprise scale while strengthening my passion for quality engineering, process optimization, and continuous improvement.",
	"This trajectory has led me to my current role as Senior SDET at Hrvyst, where I lead their test automation strategy and quality engineering initiative since October 2024. My career spans diverse industries—including financial services, AI-driven cancer diagnostics, and the wholesale food sector—where I have led test automation initiatives, modernized QA practices, and enabled engineering teams to deliver higher-quality software at scale.",
	"Beyond my technical leadership, I bring an entrepreneurial perspective shaped by my experience founding and operating Dane Fleet Services Inc. in 2023. While the business closed after a year, the experience sharpened my operational acumen and strategic leadership skills. It reinforced one of my core philosophies: fail fast, learn quickly, and reallocate resources decisively. This mindset has been instrumental in my ability to guide teams and organizations through periods of rapid change and transformation.",
	"As I look to the future, I remain deeply committed to advancing quality engineering as a strategic driver of innovation and efficiency. My goal is to help organizations undergoing digital transformation build scalable, reliable, and future-ready technology foundations.",
	"Thank you for visiting my website. I look forward to connecting with executives, technologists, and change-makers who share a vision for operational excellence and transformative impact.",
}
