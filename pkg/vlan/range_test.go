package vlan

import (
	"errors"
	"strings"
	"testing"

	"github.com/switchforge/switchforge/pkg/util"
)

func TestNormalizeRange_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ALL", "ALL"},
		{"all", "ALL"},
		{"AlL", "ALL"},
		{"", "ALL"},
		{"10", "10"},
		{"1,10-20,30", "1,10-20,30"},
		{"1, 10 - 20 ,30", "1,10-20,30"},
		{"10,,20,", "10,20"},
		{"1-4094", "1-4094"},
	}

	for _, tt := range tests {
		got, err := NormalizeRange(tt.in)
		if err != nil {
			t.Errorf("NormalizeRange(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeRange(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeRange_Invalid(t *testing.T) {
	tests := []struct {
		in        string
		wantToken string
	}{
		{"10-5", "10-5"},
		{"4095", "4095"},
		{"0", "0"},
		{"abc", "abc"},
		{"10-", "10-"},
		{"-20", "-20"},
		{"1,bad,3", "bad"},
		{"10,5000-6000", "5000-6000"},
	}

	for _, tt := range tests {
		_, err := NormalizeRange(tt.in)
		if err == nil {
			t.Errorf("NormalizeRange(%q) should fail", tt.in)
			continue
		}
		if !errors.Is(err, util.ErrValidationFailed) {
			t.Errorf("NormalizeRange(%q) error should unwrap to ErrValidationFailed", tt.in)
		}
		var terr *TokenError
		if !errors.As(err, &terr) {
			t.Errorf("NormalizeRange(%q) error should be *TokenError, got %T", tt.in, err)
			continue
		}
		if terr.Token != tt.wantToken {
			t.Errorf("NormalizeRange(%q) offending token = %q, want %q", tt.in, terr.Token, tt.wantToken)
		}
	}
}

func TestIsPartialRange(t *testing.T) {
	accepted := []string{
		"", "A", "AL", "ALL", "al",
		"1", "10", "10-", "10-2", "10-20", "1,", "1,10-20,3",
		"1, 10 -",
	}
	for _, in := range accepted {
		if !IsPartialRange(in) {
			t.Errorf("IsPartialRange(%q) = false, want true", in)
		}
	}

	rejected := []string{
		"4095", "abc", "ALLX", "1,abc", "10-9999", "0",
	}
	for _, in := range rejected {
		if IsPartialRange(in) {
			t.Errorf("IsPartialRange(%q) = true, want false", in)
		}
	}
}

// Every prefix of a valid range string must pass the partial check.
func TestIsPartialRange_AcceptsPrefixes(t *testing.T) {
	for _, full := range []string{"ALL", "1,10-20,30", "4094", "100-200"} {
		for i := 0; i <= len(full); i++ {
			prefix := full[:i]
			if !IsPartialRange(prefix) {
				t.Errorf("prefix %q of %q rejected by partial check", prefix, full)
			}
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"4094", 4094, false},
		{" 10 ", 10, false},
		{"0", 0, true},
		{"4095", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseID(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTokenError_Message(t *testing.T) {
	_, err := NormalizeRange("10-5")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "10-5") {
		t.Errorf("error message should name the offending token: %q", err.Error())
	}
}
