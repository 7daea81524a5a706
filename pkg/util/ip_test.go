package util

import "testing"

func TestIsValidIPv4(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.1", true},
		{"10.0.0.254", true},
		{"0.0.0.0", true},
		{"256.1.1.1", false},
		{"10.0.0", false},
		{"10.0.0.0.0", false},
		{"abc.def.ghi.jkl", false},
		{"", false},
		{"::1", false},
	}

	for _, tt := range tests {
		if got := IsValidIPv4(tt.ip); got != tt.want {
			t.Errorf("IsValidIPv4(%q) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}

func TestIsValidNetmask(t *testing.T) {
	tests := []struct {
		mask string
		want bool
	}{
		{"255.255.255.0", true},
		{"255.255.255.252", true},
		{"255.0.0.0", true},
		{"255.255.255.255", true},
		{"255.0.255.0", false}, // non-contiguous
		{"0.0.0.0", false},
		{"255.255.255", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		if got := IsValidNetmask(tt.mask); got != tt.want {
			t.Errorf("IsValidNetmask(%q) = %v, want %v", tt.mask, got, tt.want)
		}
	}
}
