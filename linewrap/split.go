// Copyright © 2026 The linefold authors

package linewrap

import (
	"regexp"
	"strings"
)

var (
	itemSepRe     = regexp.MustCompile(`,\s*`)
	trailingSepRe = regexp.MustCompile(`\s*,\s*$`)
)

// splitItems splits a raw construct body on commas. The split is
// deliberately flat: commas inside nested brackets split too. Item order
// is preserved and no items are merged.
func splitItems(body string) []string {
	return itemSepRe.Split(body, -1)
}

// trimItem strips surrounding whitespace from item. With stripSep set, a
// single trailing comma and any whitespace around it are removed first.
func trimItem(item string, stripSep bool) string {
	if stripSep {
		item = trailingSepRe.ReplaceAllString(item, "")
	}
	return strings.TrimSpace(item)
}
