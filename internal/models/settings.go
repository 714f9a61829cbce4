package models

// SiteSettings holds the storefront branding and company details shown in the
// page header, footer and legal blocks.
type SiteSettings struct {
	CompanyName    string `json:"company_name" validate:"required,max=200"`
	CompanyTaxID   string `json:"company_tax_id,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
	CompanyPhone   string `json:"company_phone,omitempty"`
	CompanyEmail   string `json:"company_email,omitempty" validate:"omitempty,email"`
	LogoURL        string `json:"logo_url,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	MetaTitle      string `json:"meta_title,omitempty"`
	MetaDesc       string `json:"meta_description,omitempty"`
}

// SEOSettings holds search-engine related toggles and tracker identifiers.
type SEOSettings struct {
	RobotsTxt       string `json:"robots_txt,omitempty"`
	SitemapEnabled  bool   `json:"sitemap_enabled"`
	GoogleAnalytics string `json:"google_analytics,omitempty"`
	YandexMetrika   string `json:"yandex_metrika,omitempty"`
	StructuredData  bool   `json:"structured_data"`
	OpenGraph       bool   `json:"open_graph"`
}

// SMSSettings holds the SMS gateway configuration used for order
// notifications. Credentials are accepted and persisted as plain JSON
// fields; responses go through Sanitized, which blanks them so omitempty
// drops the keys.
type SMSSettings struct {
	Provider string `json:"provider" validate:"required,oneof=smsc smsru unifone"`
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	Sender   string `json:"sender" validate:"required,max=11"`
}

// Sanitized returns a copy with the gateway credentials blanked out.
func (s SMSSettings) Sanitized() SMSSettings {
	s.Password = ""
	s.APIKey = ""
	return s
}
