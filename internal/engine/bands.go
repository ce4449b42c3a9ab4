package engine

import (
	"fmt"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// AgeBand maps an inclusive months.days interval to the blank protocol sheet
// for that age. The table is static, sorted ascending and gap-free over
// [config.BandDomainMin, config.BandDomainMax].
type AgeBand struct {
	From   float64
	To     float64
	Months int
}

// ageBands is ordered by From. ValidateBandTable checks coverage at startup.
var ageBands = []AgeBand{
	{10.15, 16.14, 12},
	{16.15, 22.14, 18},
	{22.15, 27.14, 24},
	{27.15, 33.14, 30},
	{33.15, 39.14, 36},
	{39.15, 45.14, 42},
	{45.15, 51.14, 48},
	{51.15, 57.14, 54},
	{57.15, 63.14, 60},
	{63.15, 69.14, 66},
	{69.15, 84.00, 72},
}

// TemplateDir returns the template subdirectory for the band: Krippe for
// infant bands, Ele from the 42-month band upward.
func (b AgeBand) TemplateDir() string {
	if b.From >= config.EleBandThreshold {
		return config.TemplateDirEle
	}
	return config.TemplateDirKrippe
}

// BaseName returns the blank protocol sheet filename for the band.
func (b AgeBand) BaseName() string {
	return fmt.Sprintf(config.FormatBandBaseName, b.Months)
}

// DirName returns the band's directory name under the template subtree.
func (b AgeBand) DirName() string {
	return fmt.Sprintf(config.FormatBandDir, b.Months)
}

// ResolveBand finds the band containing the given months.days value.
// Boundaries are inclusive on both ends. A value outside the table yields
// ok=false; callers record the miss and keep the pipeline going.
func ResolveBand(ageMonthsAndDays float64) (AgeBand, bool) {
	for _, b := range ageBands {
		if ageMonthsAndDays >= b.From && ageMonthsAndDays <= b.To {
			return b, true
		}
	}
	return AgeBand{}, false
}

// Bands returns a copy of the band table for validation and display.
func Bands() []AgeBand {
	out := make([]AgeBand, len(ageBands))
	copy(out, ageBands)
	return out
}

// ValidateBandTable verifies the static table at startup: ascending order,
// inclusive non-overlapping intervals, no gaps in months.days arithmetic
// (the day part rolls over at .15/.14), and full domain coverage.
func ValidateBandTable() error {
	if len(ageBands) == 0 {
		return newError(KindUnexpected, config.ErrBandTableInvalid, fmt.Errorf("empty table"))
	}
	if ageBands[0].From != config.BandDomainMin {
		return newError(KindUnexpected, config.ErrBandTableInvalid,
			fmt.Errorf("domain starts at %.2f, want %.2f", ageBands[0].From, config.BandDomainMin))
	}
	if ageBands[len(ageBands)-1].To != config.BandDomainMax {
		return newError(KindUnexpected, config.ErrBandTableInvalid,
			fmt.Errorf("domain ends at %.2f, want %.2f", ageBands[len(ageBands)-1].To, config.BandDomainMax))
	}
	for i, b := range ageBands {
		if b.From > b.To {
			return newError(KindUnexpected, config.ErrBandTableInvalid,
				fmt.Errorf("band %d is inverted: %.2f > %.2f", b.Months, b.From, b.To))
		}
		if i == 0 {
			continue
		}
		// The successor of x.14 in months.days notation is x.15.
		prev := ageBands[i-1]
		want := prev.To + 0.01
		if diff := b.From - want; diff > 1e-9 || diff < -1e-9 {
			return newError(KindUnexpected, config.ErrBandTableInvalid,
				fmt.Errorf("gap or overlap between %d and %d: %.2f -> %.2f", prev.Months, b.Months, prev.To, b.From))
		}
	}
	return nil
}
