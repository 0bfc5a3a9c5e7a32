package content

import (
	"fmt"

	"github.com/bharatwebpro/platform-api/internal/entity"
)

// PageDraft is one synthesized page. Content is a slug-specific structure
// that marshals to the JSON stored on the page record.
type PageDraft struct {
	Slug    string
	Title   string
	Content any
}

// WebsiteContent is the full synthesized copy for one business.
type WebsiteContent struct {
	Title       string
	Tagline     string
	Description string
	Pages       []PageDraft
}

type CTA struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTA         CTA    `json:"cta"`
	Image       string `json:"image"`
}

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type WhyChooseUs struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

type HomeContent struct {
	Hero        Hero        `json:"hero"`
	Features    []Feature   `json:"features"`
	WhyChooseUs WhyChooseUs `json:"whyChooseUs"`
}

type Location struct {
	Address *string `json:"address"`
	City    string  `json:"city"`
	State   string  `json:"state"`
}

type ContactInfo struct {
	Phone    string  `json:"phone"`
	Whatsapp *string `json:"whatsapp"`
	Address  *string `json:"address,omitempty"`
	City     string  `json:"city,omitempty"`
	State    string  `json:"state,omitempty"`
}

type AboutContent struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    Location    `json:"location"`
	Contact     ContactInfo `json:"contact"`
}

type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ServicesContent struct {
	Title    string        `json:"title"`
	Services []ServiceItem `json:"services"`
}

type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type GalleryContent struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Images      []GalleryImage `json:"images"`
}

type BusinessHours struct {
	Weekdays string `json:"weekdays"`
	Sunday   string `json:"sunday"`
}

type MapInfo struct {
	Enabled bool    `json:"enabled"`
	Address *string `json:"address"`
}

type ContactContent struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Contact       ContactInfo   `json:"contact"`
	BusinessHours BusinessHours `json:"businessHours"`
	Map           MapInfo       `json:"map"`
}

// Tagline returns the localized tagline for a category, degrading to the
// OTHER entry for unknown categories.
func Tagline(category entity.BusinessType, lang string) string {
	return taglineFor(category, lang)
}

// Synthesize produces the title, tagline, description and the five fixed
// pages (home, about, services, gallery, contact) for a business in the
// requested language. Any language other than "hi" renders English copy.
func Synthesize(business *entity.Business, lang string) WebsiteContent {
	return WebsiteContent{
		Title:       business.Name,
		Tagline:     taglineFor(business.Type, lang),
		Description: description(business, lang),
		Pages: []PageDraft{
			{Slug: "home", Title: pickText(lang, "होम", "Home"), Content: homePage(business, lang)},
			{Slug: "about", Title: pickText(lang, "हमारे बारे में", "About Us"), Content: aboutPage(business, lang)},
			{Slug: "services", Title: pickText(lang, "सेवाएं", "Services"), Content: servicesPage(business, lang)},
			{Slug: "gallery", Title: pickText(lang, "गैलरी", "Gallery"), Content: galleryPage(lang)},
			{Slug: "contact", Title: pickText(lang, "संपर्क करें", "Contact Us"), Content: contactPage(business, lang)},
		},
	}
}

func description(business *entity.Business, lang string) string {
	if lang == LanguageHindi {
		return fmt.Sprintf("%s %s में स्थित है। हम उच्च गुणवत्ता वाली सेवाएं प्रदान करते हैं।", business.Name, business.City)
	}
	return fmt.Sprintf("%s is located in %s. We provide high-quality services.", business.Name, business.City)
}

func homePage(business *entity.Business, lang string) HomeContent {
	headline := fmt.Sprintf("Welcome to %s", business.Name)
	if lang == LanguageHindi {
		headline = fmt.Sprintf("%s में आपका स्वागत है", business.Name)
	}

	return HomeContent{
		Hero: Hero{
			Headline:    headline,
			Subheadline: taglineFor(business.Type, lang),
			CTA: CTA{
				Text: pickText(lang, "अभी संपर्क करें", "Contact Us Now"),
				Link: "/contact",
			},
			Image: "/placeholder-hero.jpg",
		},
		Features: []Feature{
			{Icon: "⭐", Title: pickText(lang, "गुणवत्ता", "Quality"), Description: pickText(lang, "उच्च गुणवत्ता वाली सेवा", "High-quality service")},
			{Icon: "💰", Title: pickText(lang, "सस्ती कीमत", "Affordable"), Description: pickText(lang, "प्रतिस्पर्धी मूल्य", "Competitive pricing")},
			{Icon: "🚀", Title: pickText(lang, "तेज़ सेवा", "Fast Service"), Description: pickText(lang, "त्वरित और कुशल", "Quick and efficient")},
		},
		WhyChooseUs: WhyChooseUs{
			Title: pickText(lang, "हमें क्यों चुनें", "Why Choose Us"),
			Points: []string{
				pickText(lang, "अनुभवी और विश्वसनीय", "Experienced & Trusted"),
				pickText(lang, "गुणवत्तापूर्ण सेवा", "Quality Service"),
				pickText(lang, "सस्ती कीमतें", "Affordable Prices"),
				pickText(lang, "ग्राहक संतुष्टि", "Customer Satisfaction"),
			},
		},
	}
}

func aboutPage(business *entity.Business, lang string) AboutContent {
	label := labelFor(business.Type, lang)
	desc := fmt.Sprintf("%s is a leading %s located in %s. We are committed to providing high-quality services to our customers.",
		business.Name, label, business.City)
	if lang == LanguageHindi {
		desc = fmt.Sprintf("%s %s में स्थित एक प्रमुख %s है। हम अपने ग्राहकों को उच्च गुणवत्ता वाली सेवाएं प्रदान करने के लिए प्रतिबद्ध हैं।",
			business.Name, business.City, label)
	}

	return AboutContent{
		Title:       pickText(lang, "हमारे बारे में", "About Us"),
		Description: desc,
		Location: Location{
			Address: business.Address,
			City:    business.City,
			State:   business.State,
		},
		Contact: ContactInfo{
			Phone:    business.Phone,
			Whatsapp: business.Whatsapp,
		},
	}
}

func servicesPage(business *entity.Business, lang string) ServicesContent {
	names := servicesFor(business.Type, lang)
	items := make([]ServiceItem, 0, len(names))
	for _, name := range names {
		desc := fmt.Sprintf("We provide high-quality %s.", name)
		if lang == LanguageHindi {
			desc = fmt.Sprintf("हम उच्च गुणवत्ता वाली %s प्रदान करते हैं।", name)
		}
		items = append(items, ServiceItem{Name: name, Description: desc, Icon: "✓"})
	}

	return ServicesContent{
		Title:    pickText(lang, "हमारी सेवाएं", "Our Services"),
		Services: items,
	}
}

func galleryPage(lang string) GalleryContent {
	return GalleryContent{
		Title:       pickText(lang, "गैलरी", "Gallery"),
		Description: pickText(lang, "हमारे कार्य की झलकियां", "Glimpses of our work"),
		Images: []GalleryImage{
			{URL: "/placeholder-1.jpg", Caption: "Image 1"},
			{URL: "/placeholder-2.jpg", Caption: "Image 2"},
			{URL: "/placeholder-3.jpg", Caption: "Image 3"},
		},
	}
}

func contactPage(business *entity.Business, lang string) ContactContent {
	return ContactContent{
		Title:       pickText(lang, "संपर्क करें", "Contact Us"),
		Description: pickText(lang, "किसी भी पूछताछ के लिए हमसे संपर्क करें", "Get in touch with us for any inquiries"),
		Contact: ContactInfo{
			Phone:    business.Phone,
			Whatsapp: business.Whatsapp,
			Address:  business.Address,
			City:     business.City,
			State:    business.State,
		},
		BusinessHours: BusinessHours{
			Weekdays: pickText(lang, "सोमवार - शनिवार: 9:00 AM - 8:00 PM", "Monday - Saturday: 9:00 AM - 8:00 PM"),
			Sunday:   pickText(lang, "रविवार: बंद", "Sunday: Closed"),
		},
		Map: MapInfo{Enabled: true, Address: business.Address},
	}
}

func pickText(lang, hi, en string) string {
	if lang == LanguageHindi {
		return hi
	}
	return en
}
