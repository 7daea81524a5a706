package vlan

import (
	"errors"
	"reflect"
	"testing"

	"github.com/switchforge/switchforge/pkg/util"
)

func TestRegistry_Declare(t *testing.T) {
	r := NewRegistry()

	if err := r.Declare(10, "USERS"); err != nil {
		t.Fatalf("Declare(10) error = %v", err)
	}
	if !r.Has(10) {
		t.Error("Has(10) = false after Declare")
	}
	if r.Name(10) != "USERS" {
		t.Errorf("Name(10) = %q, want USERS", r.Name(10))
	}

	// Duplicate IDs are rejected
	err := r.Declare(10, "OTHER")
	if !errors.Is(err, util.ErrAlreadyExists) {
		t.Errorf("duplicate Declare error = %v, want ErrAlreadyExists", err)
	}

	// Out-of-range IDs and names with spaces are rejected
	if err := r.Declare(4095, ""); err == nil {
		t.Error("Declare(4095) should fail")
	}
	if err := r.Declare(20, "bad name"); err == nil {
		t.Error("Declare with spaces in name should fail")
	}
}

func TestRegistry_EnsureAndMissing(t *testing.T) {
	r := NewRegistry()
	if err := r.Declare(10, "USERS"); err != nil {
		t.Fatal(err)
	}

	r.Ensure(10) // must not overwrite the name
	if r.Name(10) != "USERS" {
		t.Errorf("Ensure overwrote name: %q", r.Name(10))
	}

	r.Ensure(20)
	if !r.Has(20) {
		t.Error("Has(20) = false after Ensure")
	}

	missing := r.Missing(10, 20, 100, 30, 100, 0)
	want := []int{30, 100}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("Missing = %v, want %v", missing, want)
	}
}

func TestRegistry_IDsSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []int{300, 10, 100} {
		r.Ensure(id)
	}
	want := []int{10, 100, 300}
	if got := r.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestRegistry_MapRoundTrip(t *testing.T) {
	r := NewRegistry()
	if err := r.Declare(10, "USERS"); err != nil {
		t.Fatal(err)
	}
	if err := r.Declare(100, ""); err != nil {
		t.Fatal(err)
	}

	restored := RegistryFromMap(r.Map())
	if !reflect.DeepEqual(restored.IDs(), r.IDs()) {
		t.Errorf("round trip IDs = %v, want %v", restored.IDs(), r.IDs())
	}
	if restored.Name(10) != "USERS" {
		t.Errorf("round trip Name(10) = %q", restored.Name(10))
	}
}

func TestRegistryFromMap_SkipsBadKeys(t *testing.T) {
	r := RegistryFromMap(map[string]string{"10": "OK", "bogus": "X", "9999": "Y"})
	if r.Len() != 1 || !r.Has(10) {
		t.Errorf("expected only VLAN 10, got %v", r.IDs())
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Ensure(10)
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Clear", r.Len())
	}
}

func TestRegistry_Label(t *testing.T) {
	r := NewRegistry()
	_ = r.Declare(10, "USERS")
	_ = r.Declare(20, "")
	if got := r.Label(10); got != "VLAN 10: USERS" {
		t.Errorf("Label(10) = %q", got)
	}
	if got := r.Label(20); got != "VLAN 20" {
		t.Errorf("Label(20) = %q", got)
	}
}
