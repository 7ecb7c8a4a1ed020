// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: textlayout/page.go
// Summary: Common paper sizes in 72 DPI points, usable as layout widths.

package textlayout

import "strings"

// PageSize is a portrait page in points.
type PageSize struct {
	Name          string
	Width, Height float64
}

// PageSizes lists ISO A and US sizes.
var PageSizes = []PageSize{
	{"A4", 595, 842},
	{"A5", 420, 595},
	{"A3", 842, 1190},
	{"A2", 1190, 1684},
	{"A1", 1684, 2384},
	{"A0", 2384, 3370},
	{"US Letter", 612, 792},
	{"US Legal", 612, 1008},
	{"US Tabloid", 792, 1224},
	{"US Executive", 522, 756},
}

// LookupPage finds a page size by name, ignoring case, spaces, dashes and
// underscores ("us-letter", "USLetter" and "US Letter" match).
func LookupPage(name string) (PageSize, bool) {
	want := normalizePageName(name)
	for _, p := range PageSizes {
		if normalizePageName(p.Name) == want {
			return p, true
		}
	}
	return PageSize{}, false
}

func normalizePageName(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
