package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
	"github.com/Wibias/Automatisiertes-Kopieren/internal/engine"
	"github.com/Wibias/Automatisiertes-Kopieren/internal/ui"
)

// TestUserMessage_KindMapping verifies the error-kind to dialog-text routing.
// Without a localizer the translation helpers return the raw key, which makes
// the mapping observable without booting the i18n bundle.
func TestUserMessage_KindMapping(t *testing.T) {
	app := &ui.KopierApp{}

	tests := []struct {
		name    string
		err     error
		wantKey string
	}{
		{
			"Home folder unset",
			&engine.OpError{Kind: engine.KindPrerequisiteMissing},
			config.TKeyErrHomeUnset,
		},
		{
			"Workbook missing",
			&engine.OpError{Kind: engine.KindNotFound},
			config.TKeyErrNotFound,
		},
		{
			"Workbook locked",
			&engine.OpError{Kind: engine.KindResourceBusy},
			config.TKeyErrFileBusy,
		},
		{
			"Generic validation",
			&engine.OpError{Kind: engine.KindValidationFailure, Msg: config.ErrMonthEmpty},
			config.TKeyErrValidation,
		},
		{
			"Year out of range gets its own text",
			&engine.OpError{Kind: engine.KindValidationFailure, Msg: config.ErrYearOutOfRange},
			config.TKeyErrYearRange,
		},
		{
			"Name mismatch",
			&engine.OpError{Kind: engine.KindNameMismatch, SheetName: "Anna Müler", QueryName: "Anna Müller"},
			config.TKeyErrNameMismatch,
		},
		{
			"Band not found",
			&engine.OpError{Kind: engine.KindBandNotFound, Value: 90.00},
			config.TKeyErrBandNotFound,
		},
		{
			"Age extraction failed",
			&engine.OpError{Kind: engine.KindExtraction},
			config.TKeyErrNoAge,
		},
		{
			"IO failure",
			&engine.OpError{Kind: engine.KindIOFailure},
			config.TKeyErrIO,
		},
		{
			"Unclassified kind",
			&engine.OpError{Kind: engine.KindUnexpected},
			config.TKeyErrUnexpected,
		},
		{
			"Plain error",
			errors.New("boom"),
			config.TKeyErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKey, app.UserMessage(tt.err))
		})
	}
}
