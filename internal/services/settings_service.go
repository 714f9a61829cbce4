package services

import (
	"nexx/internal/models"
	"nexx/internal/repositories"
)

// SettingsService exposes the admin-configured settings singletons.
type SettingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// SiteSettings returns the current site settings.
func (s *SettingsService) SiteSettings() (*models.SiteSettings, error) {
	return s.repo.SiteSettings()
}

// UpdateSiteSettings replaces the site settings.
func (s *SettingsService) UpdateSiteSettings(settings *models.SiteSettings) error {
	return s.repo.SaveSiteSettings(settings)
}

// SEOSettings returns the current SEO settings.
func (s *SettingsService) SEOSettings() (*models.SEOSettings, error) {
	return s.repo.SEOSettings()
}

// UpdateSEOSettings replaces the SEO settings.
func (s *SettingsService) UpdateSEOSettings(settings *models.SEOSettings) error {
	return s.repo.SaveSEOSettings(settings)
}

// SMSSettings returns the current SMS gateway settings.
func (s *SettingsService) SMSSettings() (*models.SMSSettings, error) {
	return s.repo.SMSSettings()
}

// UpdateSMSSettings replaces the SMS gateway settings.
func (s *SettingsService) UpdateSMSSettings(settings *models.SMSSettings) error {
	return s.repo.SaveSMSSettings(settings)
}
