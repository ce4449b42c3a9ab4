package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// uiKeys lists every translation key defined in config.go.
var uiKeys = []string{
	config.TKeyWinTitle,
	config.TKeyWinSettings,
	config.TKeyLblGroup,
	config.TKeyLblKidName,
	config.TKeyLblMonth,
	config.TKeyLblYear,
	config.TKeyLblDocuments,
	config.TKeyChkAllgemein,
	config.TKeyChkVorschul,
	config.TKeyChkEltern,
	config.TKeyChkUebergang,
	config.TKeyBtnGenerate,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyBtnBrowse,
	config.TKeyBtnSettings,
	config.TKeyLblHomeDir,
	config.TKeyHelpHomeDir,
	config.TKeyLblLanguage,
	config.TKeyHelpLanguage,
	config.TKeyTitleDone,
	config.TKeyTitlePartial,
	config.TKeyTitleError,
	config.TKeyTitleOverwrite,
	config.TKeyMsgDone,
	config.TKeyMsgPartial,
	config.TKeyMsgOverwrite,
	config.TKeyErrHomeUnset,
	config.TKeyErrNotFound,
	config.TKeyErrFileBusy,
	config.TKeyErrValidation,
	config.TKeyErrYearRange,
	config.TKeyErrNameMismatch,
	config.TKeyErrBandNotFound,
	config.TKeyErrNoAge,
	config.TKeyErrIO,
	config.TKeyErrUnexpected,
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in each locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	for _, locale := range []string{"de", "en"} {
		t.Run(locale, func(t *testing.T) {
			jsonMap := loadLocale(t, locale)

			for _, key := range uiKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, locale)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			defined := make(map[string]bool, len(uiKeys))
			for _, k := range uiKeys {
				defined[k] = true
			}
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !defined[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestI18nTemplatePlaceholders ensures both locales carry the template
// variables the dialogs substitute at runtime.
func TestI18nTemplatePlaceholders(t *testing.T) {
	placeholders := map[string][]string{
		config.TKeyMsgOverwrite:    {"{{.File}}"},
		config.TKeyErrNameMismatch: {"{{.SheetName}}", "{{.QueryName}}"},
		config.TKeyErrBandNotFound: {"{{.Value}}"},
	}

	for _, locale := range []string{"de", "en"} {
		jsonMap := loadLocale(t, locale)
		for key, wanted := range placeholders {
			msg, ok := jsonMap[key].(string)
			require.Truef(t, ok, "Key '%s' must be a string in active.%s.json", key, locale)
			for _, ph := range wanted {
				assert.Containsf(t, msg, ph, "Key '%s' in active.%s.json must carry %s", key, locale, ph)
			}
		}
	}
}

func loadLocale(t *testing.T, locale string) map[string]interface{} {
	t.Helper()

	// Adjust path if running test from internal/ui or root
	path := filepath.Join("locales", "active."+locale+".json")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join("..", "..", "internal", "ui", "locales", "active."+locale+".json")
		content, err = os.ReadFile(path)
	}
	require.NoErrorf(t, err, "Must load active.%s.json", locale)

	var jsonMap map[string]interface{}
	err = json.Unmarshal(content, &jsonMap)
	require.NoError(t, err, "JSON must be valid")
	return jsonMap
}
