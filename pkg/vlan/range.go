// Package vlan implements VLAN ID validation, the allowed-VLAN range
// grammar, and the registry of declared VLANs.
package vlan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/switchforge/switchforge/pkg/util"
)

// Valid VLAN ID bounds per 802.1Q
const (
	MinID = 1
	MaxID = 4094
)

// All is the normalized spelling for an allowed-VLAN list covering every VLAN.
const All = "ALL"

// TokenError reports the offending token of a rejected VLAN range string.
type TokenError struct {
	Token  string
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("invalid VLAN specification %q: %s", e.Token, e.Reason)
}

func (e *TokenError) Unwrap() error {
	return util.ErrValidationFailed
}

// ValidateID checks that id is a legal VLAN ID.
func ValidateID(id int) error {
	if id < MinID || id > MaxID {
		return util.NewFieldError("VLAN ID", strconv.Itoa(id), fmt.Sprintf("must be between %d and %d", MinID, MaxID))
	}
	return nil
}

// ParseID parses a decimal VLAN ID string and validates its range.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, util.NewFieldError("VLAN ID", s, "must be a number")
	}
	if err := ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// NormalizeRange validates an allowed-VLAN range string against the commit
// grammar and returns its normalized form. "ALL" (any case) normalizes to
// "ALL". Otherwise the input must be a comma-separated list of single IDs or
// "start-end" pairs, each within 1-4094; empty tokens are skipped. The empty
// string normalizes to "ALL".
func NormalizeRange(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, All) {
		return All, nil
	}

	var normalized []string
	for _, token := range util.SplitCommaSeparated(s) {
		if strings.Contains(token, "-") {
			bounds := strings.SplitN(token, "-", 2)
			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return "", &TokenError{Token: token, Reason: "range start must be a number"}
			}
			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return "", &TokenError{Token: token, Reason: "range end must be a number"}
			}
			if start < MinID || start > MaxID || end < MinID || end > MaxID {
				return "", &TokenError{Token: token, Reason: fmt.Sprintf("values must be between %d and %d", MinID, MaxID)}
			}
			if start > end {
				return "", &TokenError{Token: token, Reason: "range start must not exceed end"}
			}
			normalized = append(normalized, fmt.Sprintf("%d-%d", start, end))
		} else {
			id, err := strconv.Atoi(token)
			if err != nil {
				return "", &TokenError{Token: token, Reason: "must be a number"}
			}
			if err := ValidateID(id); err != nil {
				return "", &TokenError{Token: token, Reason: fmt.Sprintf("must be between %d and %d", MinID, MaxID)}
			}
			normalized = append(normalized, strconv.Itoa(id))
		}
	}

	if len(normalized) == 0 {
		return All, nil
	}
	return strings.Join(normalized, ","), nil
}

// IsPartialRange reports whether s is a plausible prefix of a valid
// allowed-VLAN range string. Used for live keystroke validation; it is
// deliberately looser than NormalizeRange and accepts the empty string,
// prefixes of "ALL", trailing commas, and open-ended tokens like "10-".
func IsPartialRange(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	if strings.HasPrefix(All, strings.ToUpper(s)) {
		return true
	}

	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		bounds := strings.SplitN(token, "-", 2)
		if !isPartialID(bounds[0]) {
			return false
		}
		if len(bounds) == 2 && !isPartialID(bounds[1]) {
			return false
		}
	}
	return true
}

// isPartialID accepts the empty string and any digit string that could still
// grow into (or already is) a valid VLAN ID.
func isPartialID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return id >= MinID && id <= MaxID
}
