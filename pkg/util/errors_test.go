package util

import (
	"errors"
	"strings"
	"testing"
)

func TestFieldError(t *testing.T) {
	err := NewFieldError("data VLAN", "4095", "must be between 1 and 4094")
	if !errors.Is(err, ErrValidationFailed) {
		t.Error("FieldError should unwrap to ErrValidationFailed")
	}
	msg := err.Error()
	if !strings.Contains(msg, "data VLAN") || !strings.Contains(msg, "4095") {
		t.Errorf("message should identify field and value, got %q", msg)
	}
}

func TestFieldError_NoValue(t *testing.T) {
	err := NewFieldError("hostname", "", "required")
	if got := err.Error(); got != "invalid hostname: required" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationError_Single(t *testing.T) {
	err := NewValidationError("bad vlan")
	if got := err.Error(); got != "validation failed: bad vlan" {
		t.Errorf("Error() = %q", got)
	}
	if err.First() != "bad vlan" {
		t.Errorf("First() = %q", err.First())
	}
}

func TestValidationError_Multiple(t *testing.T) {
	err := NewValidationError("first", "second")
	if err.First() != "first" {
		t.Errorf("First() = %q, want %q", err.First(), "first")
	}
	if !strings.Contains(err.Error(), "second") {
		t.Errorf("Error() should list all reasons, got %q", err.Error())
	}
}

func TestValidationBuilder(t *testing.T) {
	var b ValidationBuilder
	b.Add(true, "should not appear")
	b.Add(false, "condition failed")
	b.AddErrorf("value %d out of range", 5000)

	if !b.HasErrors() {
		t.Fatal("expected errors")
	}

	err := b.Build()
	if err == nil {
		t.Fatal("Build() returned nil")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Error("built error should unwrap to ErrValidationFailed")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("built error should be *ValidationError")
	}
	if len(verr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(verr.Errors), verr.Errors)
	}
}

func TestValidationBuilder_Empty(t *testing.T) {
	var b ValidationBuilder
	if b.HasErrors() {
		t.Error("empty builder should have no errors")
	}
	if err := b.Build(); err != nil {
		t.Errorf("Build() = %v, want nil", err)
	}
}

func TestDuplicateNameError(t *testing.T) {
	err := NewDuplicateNameError("template", "Phone Port")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("DuplicateNameError should unwrap to ErrAlreadyExists")
	}
	if got := err.Error(); got != `template "Phone Port" already exists` {
		t.Errorf("Error() = %q", got)
	}
}
