package validator

import (
	"errors"
	"testing"

	"product-catalog-api/internal/model"
)

type styleInput struct {
	Name   string        `validate:"required"`
	Status *model.Status `validate:"omitempty,status"`
	Raw    string        `validate:"omitempty,status"`
}

func TestValidateStatusTag(t *testing.T) {
	active := model.StatusActive
	if err := Validate(&styleInput{Name: "x", Status: &active, Raw: "INACTIVE"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(&styleInput{Name: "x"}); err != nil {
		t.Fatalf("omitted status should pass: %v", err)
	}

	bad := model.Status("GONE")
	err := Validate(&styleInput{Name: "x", Status: &bad})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
}

func TestValidateStructReportsField(t *testing.T) {
	errs := ValidateStruct(&styleInput{})
	if len(errs) != 1 {
		t.Fatalf("want one error, got %d", len(errs))
	}
	if errs[0].FailedField != "styleInput.Name" || errs[0].Tag != "required" {
		t.Fatalf("unexpected error %+v", errs[0])
	}
}
