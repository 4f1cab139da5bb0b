package content

// Built-in fallback copy per section. English and generic: shown whenever the
// CMS is unreachable or has no entry for the requested locale. Keys follow the
// CMS field names so a successful fetch overlays them one for one.

type sectionSpec struct {
	id       string
	populate string
	defaults Slice
}

var sections = []sectionSpec{
	{
		id:       "hero-section-content",
		populate: "*",
		defaults: Slice{
			"title":                 "Le Privê",
			"subtitle":              "Luxury Men's Spa",
			"description":           "An exclusive experience of relaxation and companionship in complete discretion.",
			"premiumExperienceText": "Premium Experience",
			"browseButtonText":      "Browse Companions",
			"learnMoreButtonText":   "Learn More",
		},
	},
	{
		id:       "header-content",
		populate: "*",
		defaults: Slice{
			"navItems":          []any{},
			"callNowButtonText": "Call Now",
			"loginButtonText":   "Login",
		},
	},
	{
		id:       "companions-gallery-content",
		populate: "*",
		defaults: Slice{
			"title":             "Our Elite Collection",
			"subtitle":          "Handpicked companions who embody elegance, intelligence, and sophistication for the most discerning clientele.",
			"viewAllButtonText": "View All Companions",
			"bookNowButtonText": "Book Now",
		},
	},
	{
		id:       "massage-services-content",
		populate: "massageCards,extraCards,partyCard,jacuzziServices,specialOptions,professionalBadge",
		defaults: Slice{
			"title":          "Massage Services",
			"subtitle":       "Professional massage services with various options and durations to suit your preferences",
			"priceListLabel": "Price List",
			"massageCards":   []any{},
		},
	},
	{
		id:       "gallery-content",
		populate: "galleryButton,heroGalleryInfo,slides,facilities,facilitiesIntro,privateEnvironmentButton",
		defaults: Slice{
			"slides":     []any{},
			"facilities": []any{},
		},
	},
	{
		id:       "how-it-works-content",
		populate: "steps",
		defaults: Slice{
			"title": "How It Works",
			"steps": []any{},
		},
	},
	{
		id:       "carousel-content",
		populate: "slides",
		defaults: Slice{
			"slides": []any{},
		},
	},
	{
		id:       "why-choose-content",
		populate: "cards,bottomButton",
		defaults: Slice{
			"sectionTitle": "Why Choose Us",
			"cards":        []any{},
		},
	},
	{
		id:       "footer-content",
		populate: "*",
		defaults: Slice{
			"quickLinks":        []any{},
			"services":          []any{},
			"footerDescription": "Luxury companionship and spa services in complete discretion.",
			"copyrightText":     "© Le Privê. All rights reserved.",
		},
	},
}

// Sections lists the section ids the registry hydrates.
func Sections() []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.id
	}
	return out
}
