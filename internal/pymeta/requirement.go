package pymeta

import (
	"regexp"
	"strings"

	"github.com/frederic-klein/transient/internal/errors"
)

// Accepts "name", "name<op>1.0" and "name (<op>1.0)" for the standard
// comparison operators.
var requirementRe = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)\s*(?:\(\s*(===|==|~=|!=|>=|<=|>|<)\s*([^)\s]+)\s*\)|(===|==|~=|!=|>=|<=|>|<)\s*(\S+))?\s*$`)

// ParseRequirement parses a single dependency declaration as accepted
// on the command line. The version part must still be a plain version;
// ranges and extras are rejected rather than silently passed through.
func ParseRequirement(s string) (Requirement, error) {
	matches := requirementRe.FindStringSubmatch(s)
	if matches == nil {
		return Requirement{}, errors.Newf(errors.ErrInvalidPackageName, "invalid requirement %q", strings.TrimSpace(s))
	}

	req := Requirement{Name: matches[1]}
	if err := ValidateName(req.Name); err != nil {
		return Requirement{}, err
	}

	operator, version := matches[2], matches[3]
	if version == "" {
		operator, version = matches[4], matches[5]
	}
	if version != "" {
		if err := ValidateVersion(version); err != nil {
			return Requirement{}, err
		}
		req.Operator = operator
		req.Version = version
	}

	return req, nil
}
