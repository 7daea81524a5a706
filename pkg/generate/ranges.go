// Package generate turns port and global configuration state into Cisco-IOS
// style command text.
package generate

import (
	"fmt"
	"strings"

	"github.com/switchforge/switchforge/pkg/util"
)

// CompressRanges converts a set of port numbers into minimal contiguous
// interface-range specifiers. Maximal runs of consecutive ports collapse to
// "{prefix}{start}-{end}"; isolated ports emit "{prefix}{n}". Output follows
// ascending port order and non-adjacent runs are never merged: {1,2,4,5}
// yields "1-2" and "4-5" as two specifiers.
func CompressRanges(ports []int, prefix string) []string {
	if len(ports) == 0 {
		return nil
	}

	sorted := util.SortedInts(ports)

	var specs []string
	start, end := sorted[0], sorted[0]
	for _, p := range sorted[1:] {
		if p == end+1 {
			end = p
			continue
		}
		specs = append(specs, formatSpecifier(prefix, start, end))
		start, end = p, p
	}
	specs = append(specs, formatSpecifier(prefix, start, end))
	return specs
}

func formatSpecifier(prefix string, start, end int) string {
	if start == end {
		return fmt.Sprintf("%s%d", prefix, start)
	}
	return fmt.Sprintf("%s%d-%d", prefix, start, end)
}

// SelectorLine returns the interface-selector command for a specifier: the
// range verb for hyphenated specifiers, the singular verb otherwise.
func SelectorLine(specifier string) string {
	if strings.Contains(specifier, "-") {
		return "interface range " + specifier
	}
	return "interface " + specifier
}
