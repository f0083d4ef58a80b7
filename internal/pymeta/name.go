package pymeta

import (
	"regexp"
	"strings"

	"github.com/frederic-klein/transient/internal/errors"
)

var (
	// Package names per the packaging naming rules: letters, digits and
	// ., -, _ as inner separators.
	nameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

	separatorRe = regexp.MustCompile(`[-_.]+`)
)

// ValidateName checks a package identifier against the normalized
// package-naming rules.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return errors.Newf(errors.ErrInvalidPackageName, "invalid package name %q", name)
	}
	return nil
}

// NormalizeName lowercases a name and collapses runs of separators to a
// single dash, so that differently spelled names compare equal the way
// the package manager compares them.
func NormalizeName(name string) string {
	return strings.ToLower(separatorRe.ReplaceAllString(name, "-"))
}

// EscapeName converts a name to the form used inside wheel filenames
// and dist-info directory names.
func EscapeName(name string) string {
	return strings.ReplaceAll(NormalizeName(name), "-", "_")
}
