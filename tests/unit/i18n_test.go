package unit

import (
	"path/filepath"
	"testing"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestI18nLoading(t *testing.T) {
	// tests/unit -> ../../locales
	localePath := filepath.Join("..", "..", "locales")

	err := i18n.LoadTranslations(localePath)
	assert.NoError(t, err, "Should load translations without error")

	assert.Equal(t, "No new activity.", i18n.Translate("en", "inbox.empty"))
	assert.Equal(t, "Yeni bir hareket yok.", i18n.Translate("tr", "inbox.empty"))
	assert.Equal(t, "Yeni fəaliyyət yoxdur.", i18n.Translate("az", "inbox.empty"))

	assert.Equal(t, "Registration successful. Welcome to FIRSATTO!", i18n.Translate("en", "auth.register_success"))

	// Unknown locale falls through to English.
	assert.Equal(t, "No new activity.", i18n.Translate("fr", "inbox.empty"))

	// Unknown key echoes back.
	assert.Equal(t, "no.such.key", i18n.Translate("tr", "no.such.key"))
}
