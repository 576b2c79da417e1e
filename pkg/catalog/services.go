package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceCategory categoría de servicios facturables con sus subcategorías.
type ServiceCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Subcategories []ServiceSubcategory `json:"subcategories"`
}

// ServiceSubcategory servicio concreto con tarifa horaria sugerida.
type ServiceSubcategory struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SuggestedRate decimal.Decimal `json:"suggested_rate,omitempty"`
}

// ServiceMatch resultado de una búsqueda: la subcategoría junto con su
// categoría padre.
type ServiceMatch struct {
	Category    ServiceCategory    `json:"category"`
	Subcategory ServiceSubcategory `json:"subcategory"`
}

// ServiceCategories catálogo de servicios para facturas de tipo service.
var ServiceCategories = []ServiceCategory{
	{
		ID: "digital-advertising", Name: "Digital Advertising Agency",
		Subcategories: []ServiceSubcategory{
			{ID: "google-ads", Name: "Google Ads Management", Description: "PPC campaign management and optimization", SuggestedRate: decimal.NewFromInt(150)},
			{ID: "facebook-ads", Name: "Facebook Ads Management", Description: "Social media advertising campaigns", SuggestedRate: decimal.NewFromInt(120)},
			{ID: "display-advertising", Name: "Display Advertising", Description: "Banner and visual ad campaigns", SuggestedRate: decimal.NewFromInt(100)},
			{ID: "video-advertising", Name: "Video Advertising", Description: "YouTube and video platform ads", SuggestedRate: decimal.NewFromInt(180)},
			{ID: "retargeting", Name: "Retargeting Campaigns", Description: "Audience retargeting and remarketing", SuggestedRate: decimal.NewFromInt(130)},
		},
	},
	{
		ID: "advertising-agency", Name: "Advertising Agency",
		Subcategories: []ServiceSubcategory{
			{ID: "brand-strategy", Name: "Brand Strategy", Description: "Brand positioning and strategy development", SuggestedRate: decimal.NewFromInt(200)},
			{ID: "creative-campaigns", Name: "Creative Campaigns", Description: "Campaign concept and creative development", SuggestedRate: decimal.NewFromInt(250)},
			{ID: "media-planning", Name: "Media Planning", Description: "Media strategy and planning services", SuggestedRate: decimal.NewFromInt(180)},
			{ID: "market-research", Name: "Market Research", Description: "Consumer and market analysis", SuggestedRate: decimal.NewFromInt(160)},
			{ID: "brand-identity", Name: "Brand Identity Design", Description: "Logo and brand visual identity", SuggestedRate: decimal.NewFromInt(300)},
		},
	},
	{
		ID: "marketing-services", Name: "Marketing Services",
		Subcategories: []ServiceSubcategory{
			{ID: "content-marketing", Name: "Content Marketing", Description: "Content strategy and creation", SuggestedRate: decimal.NewFromInt(100)},
			{ID: "marketing-strategy", Name: "Marketing Strategy", Description: "Comprehensive marketing planning", SuggestedRate: decimal.NewFromInt(180)},
			{ID: "lead-generation", Name: "Lead Generation", Description: "Lead acquisition and nurturing", SuggestedRate: decimal.NewFromInt(140)},
			{ID: "conversion-optimization", Name: "Conversion Optimization", Description: "CRO and funnel optimization", SuggestedRate: decimal.NewFromInt(160)},
			{ID: "marketing-automation", Name: "Marketing Automation", Description: "Automated marketing workflows", SuggestedRate: decimal.NewFromInt(120)},
		},
	},
	{
		ID: "printing-services", Name: "Printing Services",
		Subcategories: []ServiceSubcategory{
			{ID: "business-cards", Name: "Business Cards", Description: "Professional business card printing", SuggestedRate: decimal.NewFromInt(50)},
			{ID: "brochures", Name: "Brochures", Description: "Marketing brochure design and printing", SuggestedRate: decimal.NewFromInt(80)},
			{ID: "flyers", Name: "Flyers", Description: "Promotional flyer printing", SuggestedRate: decimal.NewFromInt(40)},
			{ID: "banners", Name: "Banners", Description: "Large format banner printing", SuggestedRate: decimal.NewFromInt(120)},
			{ID: "packaging", Name: "Packaging Design", Description: "Product packaging design and printing", SuggestedRate: decimal.NewFromInt(200)},
		},
	},
	{
		ID: "digital-marketing", Name: "Digital Marketing Services",
		Subcategories: []ServiceSubcategory{
			{ID: "google-ads-mgmt", Name: "Google Ads", Description: "Google Ads campaign management", SuggestedRate: decimal.NewFromInt(150)},
			{ID: "social-media-mgmt", Name: "Social Media Management", Description: "Social media strategy and management", SuggestedRate: decimal.NewFromInt(100)},
			{ID: "email-marketing", Name: "Email Marketing", Description: "Email campaign design and management", SuggestedRate: decimal.NewFromInt(80)},
			{ID: "influencer-marketing", Name: "Influencer Marketing", Description: "Influencer campaign coordination", SuggestedRate: decimal.NewFromInt(120)},
			{ID: "affiliate-marketing", Name: "Affiliate Marketing", Description: "Affiliate program management", SuggestedRate: decimal.NewFromInt(110)},
		},
	},
	{
		ID: "seo-services", Name: "SEO Services",
		Subcategories: []ServiceSubcategory{
			{ID: "seo-audit", Name: "SEO Audit", Description: "Comprehensive website SEO analysis", SuggestedRate: decimal.NewFromInt(200)},
			{ID: "keyword-research", Name: "Keyword Research", Description: "SEO keyword analysis and strategy", SuggestedRate: decimal.NewFromInt(120)},
			{ID: "on-page-seo", Name: "On-Page SEO", Description: "Website optimization and content SEO", SuggestedRate: decimal.NewFromInt(100)},
			{ID: "link-building", Name: "Link Building", Description: "Authority link acquisition", SuggestedRate: decimal.NewFromInt(150)},
			{ID: "local-seo", Name: "Local SEO", Description: "Local business SEO optimization", SuggestedRate: decimal.NewFromInt(130)},
		},
	},
	{
		ID: "website-services", Name: "Website Services",
		Subcategories: []ServiceSubcategory{
			{ID: "website-redesign", Name: "Website Redesign", Description: "Complete website redesign and modernization", SuggestedRate: decimal.NewFromInt(500)},
			{ID: "ecommerce-dev", Name: "E-commerce Development", Description: "Online store development and setup", SuggestedRate: decimal.NewFromInt(800)},
			{ID: "landing-page", Name: "Landing Page Design", Description: "High-converting landing page creation", SuggestedRate: decimal.NewFromInt(300)},
			{ID: "website-maintenance", Name: "Website Maintenance", Description: "Ongoing website updates and maintenance", SuggestedRate: decimal.NewFromInt(80)},
			{ID: "website-hosting", Name: "Website Hosting", Description: "Web hosting and domain management", SuggestedRate: decimal.NewFromInt(50)},
		},
	},
	{
		ID: "web-development", Name: "Web Development Services",
		Subcategories: []ServiceSubcategory{
			{ID: "frontend-dev", Name: "Frontend Development", Description: "User interface development", SuggestedRate: decimal.NewFromInt(120)},
			{ID: "backend-dev", Name: "Backend Development", Description: "Server-side application development", SuggestedRate: decimal.NewFromInt(140)},
			{ID: "fullstack-dev", Name: "Full-Stack Development", Description: "Complete web application development", SuggestedRate: decimal.NewFromInt(160)},
			{ID: "api-development", Name: "API Development", Description: "REST API and integration services", SuggestedRate: decimal.NewFromInt(130)},
			{ID: "cms-development", Name: "CMS Development", Description: "Content management system development", SuggestedRate: decimal.NewFromInt(150)},
		},
	},
}

// ServiceCategoryByID busca una categoría por id.
func ServiceCategoryByID(categoryID string) (ServiceCategory, bool) {
	for _, c := range ServiceCategories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return ServiceCategory{}, false
}

// ServiceSubcategoryByID busca una subcategoría dentro de una categoría.
func ServiceSubcategoryByID(categoryID, subcategoryID string) (ServiceSubcategory, bool) {
	cat, ok := ServiceCategoryByID(categoryID)
	if !ok {
		return ServiceSubcategory{}, false
	}
	for _, s := range cat.Subcategories {
		if s.ID == subcategoryID {
			return s, true
		}
	}
	return ServiceSubcategory{}, false
}

// SearchServices busca subcategorías cuyo nombre, descripción o nombre de
// categoría contenga la consulta (sin distinguir mayúsculas). Devuelve
// todas las coincidencias en el orden del catálogo, sin ranking.
func SearchServices(query string) []ServiceMatch {
	var results []ServiceMatch
	q := strings.ToLower(query)

	for _, cat := range ServiceCategories {
		for _, sub := range cat.Subcategories {
			if strings.Contains(strings.ToLower(sub.Name), q) ||
				strings.Contains(strings.ToLower(sub.Description), q) ||
				strings.Contains(strings.ToLower(cat.Name), q) {
				results = append(results, ServiceMatch{Category: cat, Subcategory: sub})
			}
		}
	}
	return results
}
