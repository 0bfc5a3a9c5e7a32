// Package content synthesizes localized website copy for a business. All
// copy comes from fixed per-category tables keyed by language; unknown
// categories degrade to the OTHER entry and unknown languages to English.
package content

import (
	"fmt"

	"github.com/bharatwebpro/platform-api/internal/entity"
)

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

type localized struct {
	EN string
	HI string
}

func (l localized) pick(lang string) string {
	if lang == LanguageHindi {
		return l.HI
	}
	return l.EN
}

type localizedList struct {
	EN []string
	HI []string
}

func (l localizedList) pick(lang string) []string {
	if lang == LanguageHindi {
		return l.HI
	}
	return l.EN
}

var taglines = map[entity.BusinessType]localized{
	entity.BusinessTypeKirana:        {EN: "Your Daily Needs, Delivered Fresh", HI: "आपकी रोजमर्रा की जरूरतें, ताजा डिलीवर"},
	entity.BusinessTypeRestaurant:    {EN: "Delicious Food, Memorable Experiences", HI: "स्वादिष्ट भोजन, यादगार अनुभव"},
	entity.BusinessTypeClinic:        {EN: "Your Health, Our Priority", HI: "आपका स्वास्थ्य, हमारी प्राथमिकता"},
	entity.BusinessTypeSalon:         {EN: "Look Good, Feel Great", HI: "अच्छे दिखें, बेहतर महसूस करें"},
	entity.BusinessTypeCoaching:      {EN: "Empowering Students for Success", HI: "सफलता के लिए छात्रों को सशक्त बनाना"},
	entity.BusinessTypeRealEstate:    {EN: "Your Dream Home Awaits", HI: "आपका सपनों का घर इंतजार कर रहा है"},
	entity.BusinessTypeTravelAgency:  {EN: "Making Your Travel Dreams Come True", HI: "आपके यात्रा सपनों को साकार करना"},
	entity.BusinessTypeLegal:         {EN: "Expert Legal Solutions", HI: "विशेषज्ञ कानूनी समाधान"},
	entity.BusinessTypeTaxConsultant: {EN: "Smart Tax Solutions", HI: "स्मार्ट टैक्स समाधान"},
	entity.BusinessTypeMedicalStore:  {EN: "Your Trusted Healthcare Partner", HI: "आपका विश्वसनीय स्वास्थ्य साथी"},
	entity.BusinessTypeElectronics:   {EN: "Latest Electronics at Best Prices", HI: "बेहतरीन कीमतों पर नवीनतम इलेक्ट्रॉनिक्स"},
	entity.BusinessTypeClothing:      {EN: "Fashion That Defines You", HI: "फैशन जो आपको परिभाषित करता है"},
	entity.BusinessTypeJewellery:     {EN: "Elegance in Every Piece", HI: "हर टुकड़े में शालीनता"},
	entity.BusinessTypeGym:           {EN: "Transform Your Body, Transform Your Life", HI: "अपने शरीर को बदलें, अपने जीवन को बदलें"},
	entity.BusinessTypeOther:         {EN: "Quality Service, Trusted Partner", HI: "गुणवत्तापूर्ण सेवा, विश्वसनीय साथी"},
}

var typeLabels = map[entity.BusinessType]localized{
	entity.BusinessTypeKirana:        {EN: "Grocery Store", HI: "किराना स्टोर"},
	entity.BusinessTypeRestaurant:    {EN: "Restaurant", HI: "रेस्तरां"},
	entity.BusinessTypeClinic:        {EN: "Clinic", HI: "क्लिनिक"},
	entity.BusinessTypeSalon:         {EN: "Salon", HI: "सैलून"},
	entity.BusinessTypeCoaching:      {EN: "Coaching Center", HI: "कोचिंग सेंटर"},
	entity.BusinessTypeRealEstate:    {EN: "Real Estate", HI: "रियल एस्टेट"},
	entity.BusinessTypeTravelAgency:  {EN: "Travel Agency", HI: "ट्रैवल एजेंसी"},
	entity.BusinessTypeLegal:         {EN: "Legal Services", HI: "कानूनी सेवाएं"},
	entity.BusinessTypeTaxConsultant: {EN: "Tax Consultant", HI: "टैक्स सलाहकार"},
	entity.BusinessTypeMedicalStore:  {EN: "Medical Store", HI: "मेडिकल स्टोर"},
	entity.BusinessTypeElectronics:   {EN: "Electronics", HI: "इलेक्ट्रॉनिक्स"},
	entity.BusinessTypeClothing:      {EN: "Clothing", HI: "कपड़े"},
	entity.BusinessTypeJewellery:     {EN: "Jewellery", HI: "ज्वेलरी"},
	entity.BusinessTypeGym:           {EN: "Gym", HI: "जिम"},
	entity.BusinessTypeOther:         {EN: "Business", HI: "व्यवसाय"},
}

// categoryServices only covers categories with curated service lists; the
// rest fall back to the OTHER entry.
var categoryServices = map[entity.BusinessType]localizedList{
	entity.BusinessTypeKirana: {
		EN: []string{"Groceries", "Vegetables", "Fruits", "Daily Needs"},
		HI: []string{"किराना", "सब्जियां", "फल", "दैनिक आवश्यकताएं"},
	},
	entity.BusinessTypeRestaurant: {
		EN: []string{"Dine-in", "Takeaway", "Home Delivery", "Catering"},
		HI: []string{"डाइन-इन", "टेकअवे", "होम डिलीवरी", "कैटरिंग"},
	},
	entity.BusinessTypeClinic: {
		EN: []string{"Consultation", "Treatment", "Lab Tests", "Health Checkup"},
		HI: []string{"परामर्श", "उपचार", "लैब टेस्ट", "स्वास्थ्य जांच"},
	},
	entity.BusinessTypeSalon: {
		EN: []string{"Haircut", "Styling", "Spa", "Grooming"},
		HI: []string{"हेयरकट", "स्टाइलिंग", "स्पा", "ग्रूमिंग"},
	},
	entity.BusinessTypeCoaching: {
		EN: []string{"Regular Classes", "Test Series", "Study Material", "Doubt Clearing"},
		HI: []string{"नियमित कक्षाएं", "टेस्ट सीरीज", "अध्ययन सामग्री", "संदेह निवारण"},
	},
	entity.BusinessTypeOther: {
		EN: []string{"Service 1", "Service 2", "Service 3"},
		HI: []string{"सेवा 1", "सेवा 2", "सेवा 3"},
	},
}

func taglineFor(category entity.BusinessType, lang string) string {
	if entry, ok := taglines[category]; ok {
		return entry.pick(lang)
	}
	return taglines[entity.BusinessTypeOther].pick(lang)
}

func labelFor(category entity.BusinessType, lang string) string {
	if entry, ok := typeLabels[category]; ok {
		return entry.pick(lang)
	}
	return typeLabels[entity.BusinessTypeOther].pick(lang)
}

func servicesFor(category entity.BusinessType, lang string) []string {
	if entry, ok := categoryServices[category]; ok {
		return entry.pick(lang)
	}
	return categoryServices[entity.BusinessTypeOther].pick(lang)
}

// ValidateTables checks at startup that every business category resolves to
// usable copy in both languages, either via its own entry or via the OTHER
// fallback. Missing-translation bugs surface here instead of at render time.
func ValidateTables() error {
	tables := []struct {
		name string
		has  func(entity.BusinessType) bool
	}{
		{"taglines", func(c entity.BusinessType) bool {
			e, ok := taglines[c]
			return ok && e.EN != "" && e.HI != ""
		}},
		{"labels", func(c entity.BusinessType) bool {
			e, ok := typeLabels[c]
			return ok && e.EN != "" && e.HI != ""
		}},
		{"services", func(c entity.BusinessType) bool {
			e, ok := categoryServices[c]
			return ok && len(e.EN) > 0 && len(e.HI) > 0
		}},
	}

	for _, table := range tables {
		if !table.has(entity.BusinessTypeOther) {
			return fmt.Errorf("content: %s table is missing the OTHER fallback entry", table.name)
		}
	}
	// Taglines and labels carry a dedicated entry per category; services may
	// lean on the fallback.
	for _, category := range entity.AllBusinessTypes {
		for _, table := range tables[:2] {
			if !table.has(category) {
				return fmt.Errorf("content: %s table has no entry for category %s", table.name, category)
			}
		}
	}
	return nil
}
