package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DirReports", config.DirReports},
		{"DirTemplates", config.DirTemplates},
		{"SheetMonths", config.SheetMonths},
		{"SheetNames", config.SheetNames},
		{"KnownNameAllgemein", config.KnownNameAllgemein},
		{"KnownNameVorschul", config.KnownNameVorschul},
		{"KnownPrefixProtokoll", config.KnownPrefixProtokoll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestGroupsAndMonths checks the UI selection lists.
func TestGroupsAndMonths(t *testing.T) {
	assert.NotEmpty(t, config.Groups)
	seen := make(map[string]bool)
	for _, g := range config.Groups {
		assert.NotEmpty(t, g)
		assert.False(t, seen[g], "duplicate group %q", g)
		seen[g] = true
	}

	assert.Len(t, config.ReportMonths, 12)
	assert.Equal(t, "Januar", config.ReportMonths[0])
	assert.Equal(t, "Dezember", config.ReportMonths[11])
}

// TestSheetWindows ensures the fixed scan windows stay in shape.
func TestSheetWindows(t *testing.T) {
	assert.Equal(t, 25, config.MonthsRowLast-config.MonthsRowFirst+1, "Monatsrechner window holds 25 rows")
	assert.Equal(t, 25, config.NamesRowLast-config.NamesRowFirst+1, "names window holds 25 rows")
	assert.Less(t, config.MonthsColLastName, config.MonthsColFirst)
	assert.Less(t, config.MonthsColBirth, config.MonthsColAge)
}

// TestBoundsAndThresholds checks the numeric domain constants.
func TestBoundsAndThresholds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, config.NameDistanceMax, "two edits tolerated before a name counts as distinct")
	assert.Less(t, config.BandDomainMin, config.BandDomainMax)
	assert.Greater(t, config.EleBandThreshold, config.BandDomainMin)
	assert.Less(t, config.EleBandThreshold, config.BandDomainMax)

	assert.GreaterOrEqual(t, config.MaxReportYear, config.MinReportYear)
	assert.GreaterOrEqual(t, config.MinReportYear, 2000, "report years start well after 2000")
}

// TestDestFormats ensures the filename formats keep their placeholder slots.
func TestDestFormats(t *testing.T) {
	for name, format := range map[string]string{
		"FormatDestAllgemein": config.FormatDestAllgemein,
		"FormatDestVorschul":  config.FormatDestVorschul,
	} {
		assert.Equal(t, 4, strings.Count(format, "%s"), "%s must take kid, month, year and extension", name)
	}
	assert.Contains(t, config.FormatDestProtokoll, "%d", "protocol destination must embed the band months")
	assert.Contains(t, config.FormatWorkbookName, "%s")
	assert.True(t, strings.HasSuffix(config.FormatWorkbookName, ".xlsm"))
	assert.True(t, strings.HasSuffix(config.FormatBackupName, ".bak"))
	assert.True(t, strings.HasSuffix(config.FormatBackupCollide, ".bak"))
}
