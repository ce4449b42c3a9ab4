package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// TemplateType tags a document with the form schema it carries.
type TemplateType int

const (
	TemplateProtokollbogen TemplateType = iota
	TemplateAllgemein
	TemplateVorschul
	TemplateElterngespraech
	TemplateKrippeUebergang
)

func (t TemplateType) String() string {
	switch t {
	case TemplateProtokollbogen:
		return "Protokollbogen"
	case TemplateAllgemein:
		return "AllgemeinEntwicklungsbericht"
	case TemplateVorschul:
		return "VorschulEntwicklungsbericht"
	case TemplateElterngespraech:
		return "ProtokollElterngespraech"
	case TemplateKrippeUebergang:
		return "KrippeUebergangsbericht"
	default:
		return "unknown"
	}
}

// FormWriter is the capability interface over the PDF layer: list the named
// fields of a document and write values into a copy at outPath. The original
// at path must never be modified by Fill.
type FormWriter interface {
	FieldNames(ctx context.Context, path string) ([]string, error)
	Fill(ctx context.Context, path string, values map[string]string, outPath string) error
}

// FormData carries the values available to any template's schema.
type FormData struct {
	KidName   string
	Group     string
	BirthDate time.Time // zero value means "not supplied"
	Gender    Gender
}

// formSchemas maps each template type to the exact fields it writes.
// FillForm validates this list against the document's actual fields before
// writing anything.
var formSchemas = map[TemplateType][]string{
	TemplateProtokollbogen: {
		config.FieldKidName, config.FieldBirthDate, config.FieldGroup,
		config.FieldToday, config.FieldGenderM, config.FieldGenderW,
	},
	TemplateAllgemein: {
		config.FieldKidName, config.FieldBirthDate, config.FieldGroup, config.FieldToday,
	},
	TemplateVorschul: {
		config.FieldKidName, config.FieldBirthDate, config.FieldToday,
	},
	TemplateElterngespraech: {
		config.FieldKidName, config.FieldToday,
	},
	TemplateKrippeUebergang: {
		config.FieldKidName, config.FieldToday,
	},
}

// FormSchema returns the field list for a template type.
func FormSchema(t TemplateType) []string {
	s := formSchemas[t]
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// buildFieldValues produces the value for every field in the template's
// schema. Dates are dd.MM.yyyy; a missing birth date falls back to today.
// The gender radio pair is mutually exclusive: the matching field gets "On",
// its counterpart "Off". An unknown gender leaves both "Off".
func buildFieldValues(t TemplateType, data FormData, now time.Time) map[string]string {
	today := now.Format(config.DateFormatReport)
	birth := today
	if !data.BirthDate.IsZero() {
		birth = data.BirthDate.Format(config.DateFormatReport)
	}

	values := make(map[string]string, len(formSchemas[t]))
	for _, field := range formSchemas[t] {
		switch field {
		case config.FieldKidName:
			values[field] = TitleCase(data.KidName)
		case config.FieldGroup:
			values[field] = TitleCase(data.Group)
		case config.FieldBirthDate:
			values[field] = birth
		case config.FieldToday:
			values[field] = today
		case config.FieldGenderM:
			values[field] = onOff(data.Gender == GenderMale)
		case config.FieldGenderW:
			values[field] = onOff(data.Gender == GenderFemale)
		}
	}
	return values
}

func onOff(on bool) string {
	if on {
		return config.FieldValueOn
	}
	return config.FieldValueOff
}

// FillForm writes the template's field set into the document at path and
// atomically replaces the original: the filled copy goes to a temp sibling,
// then the original is removed and the temp renamed into its place. On any
// swap failure the temp is cleaned up and the original restored, so the file
// is never left half-written or gone.
func (g *Generator) FillForm(ctx context.Context, path string, t TemplateType, data FormData) error {
	log := slog.With(
		config.LogKeyComponent, config.CompFiller,
		config.LogKeyFile, path,
		config.LogKeyValue, t.String(),
	)

	names, err := g.Forms.FieldNames(ctx, path)
	if err != nil {
		return newError(KindIOFailure, config.ErrFillFailed, err)
	}
	if len(names) == 0 {
		return newError(KindNotFound, config.ErrNoFormFields, nil)
	}
	if missing := missingFields(formSchemas[t], names); len(missing) > 0 {
		return newError(KindNotFound, config.ErrFieldMissing,
			fmt.Errorf("%s: %v", t.String(), missing))
	}

	values := buildFieldValues(t, data, g.Clock.Now())

	tmp := path + config.TempFillSuffix
	if err := g.Forms.Fill(ctx, path, values, tmp); err != nil {
		_ = os.Remove(tmp)
		return newError(KindIOFailure, config.ErrFillFailed, err)
	}

	if err := swapFile(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return newError(KindIOFailure, config.ErrSwapFailed, err)
	}

	log.Info(config.MsgFormFilled)
	return nil
}

// swapFile replaces dst with tmp. If the rename after the removal fails, the
// temp content is copied back so dst always exists afterwards.
func swapFile(tmp, dst string) error {
	if err := os.Remove(dst); err != nil {
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		if cpErr := copyFileContents(tmp, dst); cpErr != nil {
			return fmt.Errorf("rename failed (%w) and restore failed: %v", err, cpErr)
		}
		return err
	}
	return nil
}

// missingFields returns the schema fields absent from the document.
func missingFields(schema, present []string) []string {
	have := make(map[string]bool, len(present))
	for _, n := range present {
		have[n] = true
	}
	var missing []string
	for _, f := range schema {
		if !have[f] {
			missing = append(missing, f)
		}
	}
	return missing
}
