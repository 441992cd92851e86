package domain

import (
	"slices"
	"strings"
)

// ReferenceLocale is the locale whose name is used as the listing tie-break.
const ReferenceLocale = "en"

// SortForms orders forms for listing: sorting key ascending with byte-wise
// comparison, forms without a sorting key last, ties broken by the
// reference-locale name (byte-wise ascending). A form without a
// reference-locale name sorts with the empty string as its name key, so it
// comes before named forms with the same sorting key. The sort is stable,
// so repeated calls over the same data yield the identical sequence.
func SortForms(forms []Form) {
	slices.SortStableFunc(forms, CompareForms)
}

// CompareForms implements the listing total order.
func CompareForms(a, b Form) int {
	if c := compareSortingKeys(a.Sorting, b.Sorting); c != 0 {
		return c
	}

	return strings.Compare(referenceName(a), referenceName(b))
}

func compareSortingKeys(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return strings.Compare(*a, *b)
	}
}

func referenceName(f Form) string {
	return f.Name[ReferenceLocale]
}
