// Package normalize canonicalizes organization names. Organizations are
// identified by value, so "DevClub", "devclub" and "DEVCLUB " must all land
// on the same key or role lookups and event scoping silently fork.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	fold  = cases.Fold()
	title = cases.Title(language.English)
)

// OrgName returns the canonical lookup form of an organization name:
// case-folded with runs of whitespace collapsed.
func OrgName(s string) string {
	return fold.String(strings.Join(strings.Fields(s), " "))
}

// Display returns the canonical display capitalization for an organization
// name, for responses and exports.
func Display(s string) string {
	return title.String(strings.Join(strings.Fields(s), " "))
}

// Equal reports whether two organization names identify the same
// organization.
func Equal(a, b string) bool {
	return OrgName(a) == OrgName(b)
}
