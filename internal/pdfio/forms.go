// Package pdfio adapts PDF AcroForm documents to the engine's FormWriter
// interface using pdfcpu's form export/fill JSON round trip.
package pdfio

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

// Writer implements engine.FormWriter.
type Writer struct {
	conf *model.Configuration
}

// NewWriter creates a Writer with pdfcpu's default configuration.
func NewWriter() *Writer {
	return &Writer{conf: model.NewDefaultConfiguration()}
}

// The subset of pdfcpu's form JSON we read and write. Every field category
// carries at least a name; values differ per category.
type textField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type checkBox struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

type radioGroup struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type formDoc struct {
	TextFields  []textField  `json:"textfield,omitempty"`
	DateFields  []textField  `json:"datefield,omitempty"`
	CheckBoxes  []checkBox   `json:"checkbox,omitempty"`
	RadioGroups []radioGroup `json:"radiobuttongroup,omitempty"`
	ListBoxes   []textField  `json:"listbox,omitempty"`
	ComboBoxes  []textField  `json:"combobox,omitempty"`
}

type formJSON struct {
	Forms []formDoc `json:"forms"`
}

// exportForm dumps the document's form description to JSON and parses it.
func (w *Writer) exportForm(path string) (*formDoc, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "form-*.json")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpName) }()

	if err := api.ExportFormFile(path, tmpName, w.conf); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return nil, err
	}
	var fj formJSON
	if err := json.Unmarshal(data, &fj); err != nil {
		return nil, err
	}
	if len(fj.Forms) == 0 {
		return &formDoc{}, nil
	}
	return &fj.Forms[0], nil
}

// FieldNames lists every named form field in the document.
func (w *Writer) FieldNames(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := w.exportForm(path)
	if err != nil {
		return nil, err
	}
	return fieldNames(doc), nil
}

// Fill writes values into a copy of the document at outPath. The original is
// untouched; the engine owns the swap. String values land in text fields; a
// value on a checkbox name is interpreted as On/Off; radio group names take
// the value verbatim.
func (w *Writer) Fill(ctx context.Context, path string, values map[string]string, outPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := w.exportForm(path)
	if err != nil {
		return err
	}

	fill := buildFillDoc(doc, values)
	data, err := json.Marshal(formJSON{Forms: []formDoc{fill}})
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "fill-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	defer func() { _ = os.Remove(tmpName) }()

	if err := api.FillFormFile(path, tmpName, outPath, w.conf); err != nil {
		return err
	}

	slog.Debug(config.MsgFormFilled,
		config.LogKeyComponent, config.CompPDF,
		config.LogKeyFile, outPath,
	)
	return nil
}

// buildFillDoc routes each value into the category the document declares for
// that field name. Unknown names are dropped; the engine validates the schema
// before calling Fill, so a drop here only happens on a stale document.
func buildFillDoc(doc *formDoc, values map[string]string) formDoc {
	categories := fieldCategories(doc)

	var fill formDoc
	for name, value := range values {
		switch categories[name] {
		case catCheckBox:
			fill.CheckBoxes = append(fill.CheckBoxes, checkBox{Name: name, Value: value == config.FieldValueOn})
		case catRadioGroup:
			fill.RadioGroups = append(fill.RadioGroups, radioGroup{Name: name, Value: value})
		case catDateField:
			fill.DateFields = append(fill.DateFields, textField{Name: name, Value: value})
		case catTextField:
			fill.TextFields = append(fill.TextFields, textField{Name: name, Value: value})
		}
	}
	return fill
}

type fieldCategory int

const (
	catUnknown fieldCategory = iota
	catTextField
	catDateField
	catCheckBox
	catRadioGroup
)

func fieldCategories(doc *formDoc) map[string]fieldCategory {
	cats := make(map[string]fieldCategory)
	for _, f := range doc.TextFields {
		cats[f.Name] = catTextField
	}
	for _, f := range doc.DateFields {
		cats[f.Name] = catDateField
	}
	for _, f := range doc.ListBoxes {
		cats[f.Name] = catTextField
	}
	for _, f := range doc.ComboBoxes {
		cats[f.Name] = catTextField
	}
	for _, f := range doc.CheckBoxes {
		cats[f.Name] = catCheckBox
	}
	for _, f := range doc.RadioGroups {
		cats[f.Name] = catRadioGroup
	}
	return cats
}

func fieldNames(doc *formDoc) []string {
	var names []string
	for _, f := range doc.TextFields {
		names = append(names, f.Name)
	}
	for _, f := range doc.DateFields {
		names = append(names, f.Name)
	}
	for _, f := range doc.CheckBoxes {
		names = append(names, f.Name)
	}
	for _, f := range doc.RadioGroups {
		names = append(names, f.Name)
	}
	for _, f := range doc.ListBoxes {
		names = append(names, f.Name)
	}
	for _, f := range doc.ComboBoxes {
		names = append(names, f.Name)
	}
	return names
}
