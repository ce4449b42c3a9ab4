package engine_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
	"github.com/Wibias/Automatisiertes-Kopieren/internal/engine"
)

func TestValidateBandTable(t *testing.T) {
	assert.NoError(t, engine.ValidateBandTable())
}

func TestResolveBand_Boundaries(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		wantMonths int
		wantOK     bool
	}{
		{"Below domain", 10.14, 0, false},
		{"Domain start", 10.15, 12, true},
		{"Upper-inclusive boundary", 16.14, 12, true},
		{"Lower-inclusive boundary of next band", 16.15, 18, true},
		{"Mid band", 24.50, 24, true},
		{"Last Krippe band upper edge", 39.14, 36, true},
		{"First Ele band lower edge", 39.15, 42, true},
		{"Domain end", 84.00, 72, true},
		{"Above domain", 84.01, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band, ok := engine.ResolveBand(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMonths, band.Months)
			}
		})
	}
}

// TestResolveBand_FullCoverage sweeps the whole months.days domain in day
// steps and asserts exactly one band matches each value. Values go through
// strconv.ParseFloat so they are bit-identical to the table literals.
func TestResolveBand_FullCoverage(t *testing.T) {
	for months := 10; months <= 84; months++ {
		for days := 0; days <= 30; days++ {
			v, err := strconv.ParseFloat(fmt.Sprintf("%d.%02d", months, days), 64)
			require.NoError(t, err)
			if v < config.BandDomainMin || v > config.BandDomainMax {
				continue
			}
			matches := 0
			for _, b := range engine.Bands() {
				if v >= b.From && v <= b.To {
					matches++
				}
			}
			assert.Equalf(t, 1, matches, "value %.2f must match exactly one band", v)
		}
	}
}

func TestAgeBand_TemplateSelection(t *testing.T) {
	krippe, ok := engine.ResolveBand(24.50)
	require.True(t, ok)
	assert.Equal(t, config.TemplateDirKrippe, krippe.TemplateDir())
	assert.Equal(t, "Kind_Protokollbogen_24_Monate.pdf", krippe.BaseName())
	assert.Equal(t, "24_Monate", krippe.DirName())

	ele, ok := engine.ResolveBand(48.00)
	require.True(t, ok)
	assert.Equal(t, config.TemplateDirEle, ele.TemplateDir())
	assert.Equal(t, 48, ele.Months)
}
