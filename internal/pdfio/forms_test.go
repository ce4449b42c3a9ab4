package pdfio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wibias/Automatisiertes-Kopieren/internal/config"
)

func sampleDoc() *formDoc {
	return &formDoc{
		TextFields: []textField{
			{Name: config.FieldKidName},
			{Name: config.FieldGroup},
		},
		DateFields: []textField{
			{Name: config.FieldBirthDate},
			{Name: config.FieldToday},
		},
		CheckBoxes: []checkBox{
			{Name: config.FieldGenderM},
			{Name: config.FieldGenderW},
		},
	}
}

func TestFieldNames(t *testing.T) {
	names := fieldNames(sampleDoc())

	assert.ElementsMatch(t, []string{
		config.FieldKidName, config.FieldGroup,
		config.FieldBirthDate, config.FieldToday,
		config.FieldGenderM, config.FieldGenderW,
	}, names)
}

func TestBuildFillDoc_CategoryRouting(t *testing.T) {
	values := map[string]string{
		config.FieldKidName:   "Anna Müller",
		config.FieldGroup:     "Bären",
		config.FieldBirthDate: "01.03.2024",
		config.FieldToday:     "14.03.2026",
		config.FieldGenderM:   config.FieldValueOff,
		config.FieldGenderW:   config.FieldValueOn,
	}

	fill := buildFillDoc(sampleDoc(), values)

	assert.Len(t, fill.TextFields, 2)
	assert.Len(t, fill.DateFields, 2)
	assert.Len(t, fill.CheckBoxes, 2)
	assert.Empty(t, fill.RadioGroups)

	boxes := map[string]bool{}
	for _, cb := range fill.CheckBoxes {
		boxes[cb.Name] = cb.Value
	}
	assert.False(t, boxes[config.FieldGenderM], "Off must become an unchecked box")
	assert.True(t, boxes[config.FieldGenderW], "On must become a checked box")
}

func TestBuildFillDoc_GenderPairAsRadioGroup(t *testing.T) {
	// Some template revisions model the gender pair as radio groups instead of
	// check boxes; the value passes through verbatim there.
	doc := &formDoc{
		RadioGroups: []radioGroup{{Name: config.FieldGenderM}},
	}
	fill := buildFillDoc(doc, map[string]string{config.FieldGenderM: config.FieldValueOn})

	assert.Len(t, fill.RadioGroups, 1)
	assert.Equal(t, config.FieldValueOn, fill.RadioGroups[0].Value)
}

func TestBuildFillDoc_DropsUnknownNames(t *testing.T) {
	fill := buildFillDoc(sampleDoc(), map[string]string{"Nicht_Vorhanden": "x"})

	assert.Empty(t, fill.TextFields)
	assert.Empty(t, fill.DateFields)
	assert.Empty(t, fill.CheckBoxes)
	assert.Empty(t, fill.RadioGroups)
}
