package pymeta

import (
	"regexp"
	"strings"

	"github.com/frederic-klein/transient/internal/errors"
)

// Accepts PEP 440 public versions plus epochs and local version labels.
// Hardware-variant builds version as e.g. "2.1.0+cu118", and those are
// exactly the packages this tool aliases.
var versionRe = regexp.MustCompile(`^v?([0-9]+!)?[0-9]+(\.[0-9]+)*((a|b|rc)[0-9]+)?(\.post[0-9]+)?(\.dev[0-9]+)?(\+[A-Za-z0-9.]+)?$`)

// ValidateVersion checks an explicit version string supplied by the
// operator. Versions read back from installed metadata are trusted as-is.
func ValidateVersion(v string) error {
	if !versionRe.MatchString(v) {
		return errors.Newf(errors.ErrInvalidVersion, "invalid version %q", v)
	}
	return nil
}

// NormalizeVersion strips the optional leading "v" so that derived
// filenames match what the package manager normalizes to.
func NormalizeVersion(v string) string {
	return strings.TrimPrefix(v, "v")
}
