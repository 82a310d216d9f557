package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type mult5Probe struct {
	Balloon int `validate:"gte=0,lte=100,mult5"`
}

func TestValidator_Mult5(t *testing.T) {
	cv := NewValidator()

	for _, ok := range []int{0, 5, 20, 100} {
		if err := cv.Validate(mult5Probe{Balloon: ok}); err != nil {
			t.Fatalf("balloon=%d should validate, got %v", ok, err)
		}
	}
	for _, bad := range []int{3, 13, 99} {
		if err := cv.Validate(mult5Probe{Balloon: bad}); err == nil {
			t.Fatalf("balloon=%d should fail mult5", bad)
		}
	}
}

type contactProbe struct {
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Frequency string `validate:"required,oneof=monthly fortnightly weekly"`
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(contactProbe{Email: "not-an-email", Frequency: "yearly"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	details := ToFieldErrors(err)

	if !containsFieldMsg(details, "Name", "is required") {
		t.Fatalf("missing required detail: %+v", details)
	}
	if !containsFieldMsg(details, "Email", "valid email") {
		t.Fatalf("missing email detail: %+v", details)
	}
	if !containsFieldMsg(details, "Frequency", "must be one of") {
		t.Fatalf("missing oneof detail: %+v", details)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	details := ToFieldErrors(errors.New("boom"))
	if len(details) != 1 || details[0].Field != "_" || details[0].Message != "boom" {
		t.Fatalf("unexpected details: %+v", details)
	}
}
