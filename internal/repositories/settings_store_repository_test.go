package repositories_test

import (
	"testing"

	"nexx/internal/models"
	"nexx/internal/repositories"
	"nexx/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsRepo(t *testing.T) *repositories.StoreSettingsRepository {
	t.Helper()
	s, err := store.New(t.TempDir(), "test")
	require.NoError(t, err)
	return repositories.NewStoreSettingsRepository(s)
}

func TestStoreSettingsRepository_DefaultsWhenUnset(t *testing.T) {
	repo := newSettingsRepo(t)

	site, err := repo.SiteSettings()
	assert.NoError(t, err)
	assert.Equal(t, &models.SiteSettings{}, site)

	seo, err := repo.SEOSettings()
	assert.NoError(t, err)
	assert.Equal(t, &models.SEOSettings{}, seo)

	sms, err := repo.SMSSettings()
	assert.NoError(t, err)
	assert.Equal(t, &models.SMSSettings{}, sms)
}

func TestStoreSettingsRepository_SaveAndReload(t *testing.T) {
	repo := newSettingsRepo(t)

	site := &models.SiteSettings{
		CompanyName:  "Nexx Parts",
		CompanyEmail: "info@nexx.example",
		PrimaryColor: "#102030",
	}
	require.NoError(t, repo.SaveSiteSettings(site))

	loaded, err := repo.SiteSettings()
	assert.NoError(t, err)
	assert.Equal(t, site, loaded)
}

func TestStoreSettingsRepository_SMSCredentialsSurviveReload(t *testing.T) {
	repo := newSettingsRepo(t)

	require.NoError(t, repo.SaveSMSSettings(&models.SMSSettings{
		Provider: "smsc",
		Login:    "gateway-login",
		Password: "gateway-pass",
		APIKey:   "key-123",
		Sender:   "NEXX",
	}))

	loaded, err := repo.SMSSettings()
	assert.NoError(t, err)
	assert.Equal(t, "gateway-pass", loaded.Password)
	assert.Equal(t, "key-123", loaded.APIKey)

	// Sanitized is for responses only; the stored copy keeps the secrets.
	sanitized := loaded.Sanitized()
	assert.Empty(t, sanitized.Password)
	assert.Empty(t, sanitized.APIKey)
	assert.Equal(t, "smsc", sanitized.Provider)
}

func TestStoreSettingsRepository_GroupsAreIndependent(t *testing.T) {
	repo := newSettingsRepo(t)

	require.NoError(t, repo.SaveSEOSettings(&models.SEOSettings{SitemapEnabled: true, GoogleAnalytics: "G-123"}))
	require.NoError(t, repo.SaveSMSSettings(&models.SMSSettings{Provider: "smsc", Sender: "NEXX"}))

	// Saving one group never disturbs another.
	seo, err := repo.SEOSettings()
	assert.NoError(t, err)
	assert.True(t, seo.SitemapEnabled)

	sms, err := repo.SMSSettings()
	assert.NoError(t, err)
	assert.Equal(t, "smsc", sms.Provider)

	site, err := repo.SiteSettings()
	assert.NoError(t, err)
	assert.Empty(t, site.CompanyName)
}
