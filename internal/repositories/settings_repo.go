package repositories

import "nexx/internal/models"

// SettingsRepository stores the singleton admin-configured settings objects.
// A settings getter returns the zero value when nothing has been saved yet.
type SettingsRepository interface {
	SiteSettings() (*models.SiteSettings, error)
	SaveSiteSettings(settings *models.SiteSettings) error
	SEOSettings() (*models.SEOSettings, error)
	SaveSEOSettings(settings *models.SEOSettings) error
	SMSSettings() (*models.SMSSettings, error)
	SaveSMSSettings(settings *models.SMSSettings) error
}
