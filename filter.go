// filter.go
// This file implements Filter, a compact positional pattern matched against
// candidate words.

package wordscapes

import "strconv"

// filterKind is the discriminator for the Filter variants. Dispatch is a
// switch on this tag rather than a virtual call, so matching never re-scans
// the pattern.
type filterKind int

const (
	filterPermissive filterKind = iota
	filterRestrictive
	filterLengthRestricted
	filterExactString
	filterMixed
)

// Filter is a compact variant type representing a positional pattern: a
// decimal integer denotes that many free positions, '-'/'_'/'#' denotes one
// free position, and a letter denotes one fixed position. Which variant is
// chosen at construction time lets Matches dispatch without re-scanning.
type Filter struct {
	kind filterKind
	// pattern holds the fixed/free byte sequence for ExactString, Mixed and
	// (for its length) LengthRestricted.
	pattern []byte
}

// Permissive returns the Filter that matches every word.
func Permissive() Filter {
	return Filter{kind: filterPermissive}
}

// Restrictive returns the Filter that matches no word.
func Restrictive() Filter {
	return Filter{kind: filterRestrictive}
}

// NewFilter parses a filter pattern: a sequence of tokens where a decimal
// integer k denotes k free positions, '-', '_' or '#' denotes one free
// position, and a letter denotes one fixed position (case-insensitive). An
// empty pattern is Permissive, matching every word per the loader contract.
func NewFilter(pattern string) Filter {
	if pattern == "" {
		return Permissive()
	}

	var processed []byte
	onlyAlpha := true
	onlyFree := true

	b := []byte(pattern)
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= '0' && c <= '9' {
			start := i
			for i < len(b) && b[i] >= '0' && b[i] <= '9' {
				i++
			}
			n, _ := strconv.Atoi(string(b[start:i]))
			for k := 0; k < n; k++ {
				processed = append(processed, '_')
			}
			onlyAlpha = false
			i--
			continue
		}
		switch {
		case c == '-' || c == '_' || c == '#':
			processed = append(processed, '_')
			onlyAlpha = false
		case c >= 'a' && c <= 'z':
			processed = append(processed, c)
			onlyFree = false
		}
	}

	switch {
	case len(processed) == 0:
		return Permissive()
	case onlyAlpha:
		return Filter{kind: filterExactString, pattern: processed}
	case onlyFree:
		return Filter{kind: filterLengthRestricted, pattern: processed}
	default:
		return Filter{kind: filterMixed, pattern: processed}
	}
}

// Matches reports whether word satisfies the filter.
func (f Filter) Matches(word string) bool {
	switch f.kind {
	case filterPermissive:
		return true
	case filterRestrictive:
		return false
	case filterExactString:
		return word == string(f.pattern)
	case filterLengthRestricted:
		return len(word) == len(f.pattern)
	case filterMixed:
		if len(word) != len(f.pattern) {
			return false
		}
		for i := 0; i < len(f.pattern); i++ {
			fc := f.pattern[i]
			if fc == '_' {
				continue
			}
			wc := word[i]
			if wc >= 'A' && wc <= 'Z' {
				wc += 'a' - 'A'
			}
			if fc != wc {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Len returns the number of positions the filter constrains (0 for
// Permissive/Restrictive).
func (f Filter) Len() int {
	switch f.kind {
	case filterLengthRestricted, filterExactString, filterMixed:
		return len(f.pattern)
	default:
		return 0
	}
}
