package pymeta

import "fmt"

// DefaultVersion is used for the placeholder when the source package
// cannot be found in the installed state.
const DefaultVersion = "0.0.0"

// Spec describes a transient package as requested by the operator.
// Source is the package being replaced, Target the package the
// placeholder will depend on. Empty versions mean "resolve later".
type Spec struct {
	Source        string
	SourceVersion string
	Target        string
	TargetVersion string
	Extras        []string // extra requirement strings, e.g. "numpy (>=1.26)"
}

// Requirement is a single dependency declaration. An empty Version
// means the requirement is unpinned; an empty Operator means an exact
// pin.
type Requirement struct {
	Name     string
	Operator string
	Version  string
}

// String renders the requirement as a Requires-Dist value.
func (r Requirement) String() string {
	if r.Version == "" {
		return r.Name
	}
	op := r.Operator
	if op == "" {
		op = "=="
	}
	return fmt.Sprintf("%s (%s%s)", r.Name, op, r.Version)
}

// Resolved is a Spec with both versions concretely decided. It is the
// input to the wheel builder and is not persisted anywhere.
type Resolved struct {
	Name        string
	Version     string
	Requirement Requirement
	Extras      []Requirement
}

// Installed is a read-only record of an installed package as reported
// by the package manager. Transient is set while scanning metadata so
// that marker inspection stays a single field check.
type Installed struct {
	Name      string
	Version   string
	Generator string // value of the WHEEL Generator header, if any
	Transient bool
}
