package repositories

import (
	"fmt"

	"nexx/internal/models"
	"nexx/internal/store"
)

const (
	siteSettingsKey = "site_settings"
	seoSettingsKey  = "seo_settings"
	smsSettingsKey  = "sms_settings"
)

// StoreSettingsRepository keeps the singleton settings objects in the local
// persistent store, one key per settings group.
type StoreSettingsRepository struct {
	store *store.Store
}

// NewStoreSettingsRepository creates a new StoreSettingsRepository.
func NewStoreSettingsRepository(s *store.Store) *StoreSettingsRepository {
	return &StoreSettingsRepository{store: s}
}

// SiteSettings returns the stored site settings, or defaults when unset.
func (r *StoreSettingsRepository) SiteSettings() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	r.store.Get(siteSettingsKey, &settings)
	return &settings, nil
}

// SaveSiteSettings persists the site settings.
func (r *StoreSettingsRepository) SaveSiteSettings(settings *models.SiteSettings) error {
	if !r.store.Set(siteSettingsKey, settings) {
		return fmt.Errorf("failed to persist site settings")
	}
	return nil
}

// SEOSettings returns the stored SEO settings, or defaults when unset.
func (r *StoreSettingsRepository) SEOSettings() (*models.SEOSettings, error) {
	var settings models.SEOSettings
	r.store.Get(seoSettingsKey, &settings)
	return &settings, nil
}

// SaveSEOSettings persists the SEO settings.
func (r *StoreSettingsRepository) SaveSEOSettings(settings *models.SEOSettings) error {
	if !r.store.Set(seoSettingsKey, settings) {
		return fmt.Errorf("failed to persist SEO settings")
	}
	return nil
}

// SMSSettings returns the stored SMS settings, or defaults when unset.
func (r *StoreSettingsRepository) SMSSettings() (*models.SMSSettings, error) {
	var settings models.SMSSettings
	r.store.Get(smsSettingsKey, &settings)
	return &settings, nil
}

// SaveSMSSettings persists the SMS settings.
func (r *StoreSettingsRepository) SaveSMSSettings(settings *models.SMSSettings) error {
	if !r.store.Set(smsSettingsKey, settings) {
		return fmt.Errorf("failed to persist SMS settings")
	}
	return nil
}
