package models

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"
)

func TestContentTagCompleteness(t *testing.T) {
	full := ContentTag{
		Course: "Class 12", Board: "CBSE", Year: "2025",
		Paper: "Paper 1", Block: "Optics", Topic: "Refraction",
	}
	if !full.IsComplete() {
		t.Error("fully populated tag reported incomplete")
	}
	if missing := full.MissingFields(); missing != nil {
		t.Errorf("MissingFields() = %v, want nil", missing)
	}

	partial := full
	partial.Paper = ""
	partial.Topic = ""
	if partial.IsComplete() {
		t.Error("partial tag reported complete")
	}
	if got, want := partial.MissingFields(), []string{"paper", "topic"}; !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFields() = %v, want %v", got, want)
	}
}

func TestMCQHasOption(t *testing.T) {
	mcq := &MCQEntry{
		Options: datatypes.NewJSONType(map[OptionKey]string{
			OptionA: "one",
			OptionB: "two",
			OptionC: "",
		}),
	}

	if !mcq.HasOption(OptionA) {
		t.Error("existing option not found")
	}
	if mcq.HasOption(OptionC) {
		t.Error("empty option text must not count")
	}
	if mcq.HasOption(OptionD) {
		t.Error("missing key must not count")
	}
}

func TestTaxonomyFieldValid(t *testing.T) {
	for _, field := range TaxonomyFields {
		if !field.Valid() {
			t.Errorf("field %q reported invalid", field)
		}
	}
	if TaxonomyField("galaxies").Valid() {
		t.Error("unknown field reported valid")
	}
}
