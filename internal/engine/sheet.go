package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// Gender as recorded in the names sheet.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// AgeRecord is the immutable product of one successful lookup.
type AgeRecord struct {
	AgeMonths     float64 // rounded to 2 decimal places
	BirthDateText string  // dd.MM.yyyy
	BirthDate     time.Time
	Gender        Gender
}

// Workbook is the read-only cell access the lookup needs. Implementations
// must never persist changes; the group workbook is sacred.
type Workbook interface {
	// CellText returns the trimmed-as-stored text of a cell (1-based row/col).
	CellText(sheet string, row, col int) (string, error)
	// CellDate returns a cell interpreted as a date, handling both serial
	// numbers and formatted text.
	CellDate(sheet string, row, col int) (time.Time, error)
	Close() error
}

// WorkbookOpener opens a workbook file read-only.
type WorkbookOpener interface {
	Open(ctx context.Context, path string) (Workbook, error)
}

// Transliterate converts German umlauts to their ASCII digraphs so group
// names can appear in filenames.
func Transliterate(s string) string {
	r := strings.NewReplacer(
		"ä", "ae", "Ä", "Ae",
		"ö", "oe", "Ö", "Oe",
		"ü", "ue", "Ü", "Ue",
		"ß", "ss",
	)
	return r.Replace(s)
}

// ShortGroupCode returns the first whitespace-delimited token of the
// transliterated group name.
func ShortGroupCode(group string) string {
	fields := strings.Fields(Transliterate(group))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// WorkbookPath builds the group workbook location under the home folder.
func WorkbookPath(home, group string) string {
	translit := Transliterate(group)
	return filepath.Join(
		home,
		config.DirReports,
		fmt.Sprintf(config.FormatGroupDir, translit),
		fmt.Sprintf(config.FormatWorkbookName, ShortGroupCode(group)),
	)
}

// LookupAge scans the group workbook for the child and returns its age record.
//
// The Monatsrechner scan deliberately does not stop at the first exact match:
// the source sheet occasionally lists a child twice after a group move, and
// the bottom entry is the maintained one. A similar-but-unequal name aborts
// the whole scan so a typo never silently resolves to the wrong child.
func (g *Generator) LookupAge(ctx context.Context, group string, name PersonName) (*AgeRecord, error) {
	if g.HomeDir == "" {
		return nil, newError(KindPrerequisiteMissing, config.ErrHomeDirUnset, nil)
	}

	path := WorkbookPath(g.HomeDir, group)
	log := slog.With(
		config.LogKeyComponent, config.CompSheet,
		config.LogKeyGroup, group,
		config.LogKeyFile, path,
	)

	wb, err := g.Workbooks.Open(ctx, path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, newError(KindNotFound, config.ErrWorkbookMissing, err)
		case errors.Is(err, fs.ErrPermission):
			return nil, newError(KindResourceBusy, config.ErrWorkbookLocked, err)
		default:
			return nil, newError(KindUnexpected, config.ErrWorkbookOpen, err)
		}
	}
	defer func() { _ = wb.Close() }()

	rec, err := scanMonthsSheet(wb, name, log)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec.Gender = scanGenderSheet(wb, name, log)
	return rec, nil
}

// scanMonthsSheet walks the fixed row window of the Monatsrechner sheet.
func scanMonthsSheet(wb Workbook, name PersonName, log *slog.Logger) (*AgeRecord, error) {
	var rec *AgeRecord

	for row := config.MonthsRowFirst; row <= config.MonthsRowLast; row++ {
		last, err := wb.CellText(config.SheetMonths, row, config.MonthsColLastName)
		if err != nil {
			return nil, newError(KindUnexpected, config.ErrCellRead, err)
		}
		first, err := wb.CellText(config.SheetMonths, row, config.MonthsColFirst)
		if err != nil {
			return nil, newError(KindUnexpected, config.ErrCellRead, err)
		}

		last = strings.TrimSpace(last)
		first = strings.TrimSpace(first)
		if last == "" || first == "" {
			log.Debug(config.MsgRowSkipped, config.LogKeyRow, row, config.LogKeySheet, config.SheetMonths)
			continue
		}

		sheetName := PersonName{FirstName: first, LastName: last}
		switch Classify(name, sheetName) {
		case MatchExact:
			r, err := extractAgeRow(wb, row)
			if err != nil {
				return nil, err
			}
			log.Debug(config.MsgExactMatch,
				config.LogKeyRow, row,
				config.LogKeyAge, r.AgeMonths,
			)
			// Last exact match in the window wins; keep scanning.
			rec = r
		case MatchSimilar:
			log.Warn(config.ErrNameMismatch,
				config.LogKeyRow, row,
				config.LogKeyQuery, name.String(),
				config.LogKeyValue, sheetName.String(),
			)
			return nil, &OpError{
				Kind:      KindNameMismatch,
				Msg:       config.ErrNameMismatch,
				QueryName: name.String(),
				SheetName: sheetName.String(),
			}
		}
	}

	if rec == nil {
		return nil, newError(KindExtraction, config.ErrNoAgeExtracted, nil)
	}
	return rec, nil
}

// extractAgeRow reads the birth date and age cells of a matched row.
func extractAgeRow(wb Workbook, row int) (*AgeRecord, error) {
	birth, err := wb.CellDate(config.SheetMonths, row, config.MonthsColBirth)
	if err != nil {
		return nil, newError(KindExtraction, config.ErrDateParse, err)
	}

	ageText, err := wb.CellText(config.SheetMonths, row, config.MonthsColAge)
	if err != nil {
		return nil, newError(KindUnexpected, config.ErrCellRead, err)
	}
	age, err := ParseAgeMonths(ageText)
	if err != nil {
		return nil, newError(KindExtraction, config.ErrAgeParse, err)
	}

	return &AgeRecord{
		AgeMonths:     age,
		BirthDate:     birth,
		BirthDateText: birth.Format(config.DateFormatReport),
	}, nil
}

// scanGenderSheet captures the first exact match's gender. Failures here are
// logged but never fail the lookup; Unknown is an acceptable outcome.
func scanGenderSheet(wb Workbook, name PersonName, log *slog.Logger) Gender {
	for row := config.NamesRowFirst; row <= config.NamesRowLast; row++ {
		last, err := wb.CellText(config.SheetNames, row, config.NamesColLastName)
		if err != nil {
			log.Debug(config.ErrCellRead, config.LogKeyRow, row, config.LogKeyError, err)
			continue
		}
		first, err := wb.CellText(config.SheetNames, row, config.NamesColFirst)
		if err != nil {
			log.Debug(config.ErrCellRead, config.LogKeyRow, row, config.LogKeyError, err)
			continue
		}

		last = strings.TrimSpace(last)
		first = strings.TrimSpace(first)
		if last == "" || first == "" {
			continue
		}

		if Classify(name, PersonName{FirstName: first, LastName: last}) != MatchExact {
			continue
		}

		raw, err := wb.CellText(config.SheetNames, row, config.NamesColGender)
		if err != nil {
			log.Debug(config.ErrCellRead, config.LogKeyRow, row, config.LogKeyError, err)
			return GenderUnknown
		}
		g := ParseGender(raw)
		log.Debug(config.MsgGenderFound,
			config.LogKeyRow, row,
			config.LogKeyGender, g.String(),
		)
		return g
	}
	return GenderUnknown
}

// ParseAgeMonths parses an age cell, accepting a comma as decimal separator,
// and rounds to two decimal places.
func ParseAgeMonths(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, fmt.Errorf("empty age cell")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return math.Round(v*100) / 100, nil
}

// ParseGender normalizes the gender cell vocabulary. Anything unrecognized
// maps to Unknown rather than an error.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "männlich", "maennlich", "junge":
		return GenderMale
	case "w", "weiblich", "mädchen", "maedchen":
		return GenderFemale
	default:
		return GenderUnknown
	}
}
