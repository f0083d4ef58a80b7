package transient

import (
	"github.com/frederic-klein/transient/internal/pymeta"
)

// Create resolves versions for spec and builds the transient wheel
// into outputDir, returning the wheel path. Nothing is installed or
// removed.
func (o *Orchestrator) Create(spec pymeta.Spec, outputDir string) (string, error) {
	resolved, _, err := o.resolve(spec)
	if err != nil {
		return "", err
	}

	path, err := o.builder.Build(resolved, outputDir)
	if err != nil {
		return "", err
	}

	o.logger.Info().
		Str("package", resolved.Name).
		Str("version", resolved.Version).
		Str("requires", resolved.Requirement.String()).
		Str("path", path).
		Msg("created transient package")

	return path, nil
}

// resolve queries the installed state of the source package and
// resolves the spec against it. The bool reports whether the source
// package is currently installed.
func (o *Orchestrator) resolve(spec pymeta.Spec) (pymeta.Resolved, bool, error) {
	installed, found, err := o.manager.Query(spec.Source)
	if err != nil {
		return pymeta.Resolved{}, false, err
	}
	if !found {
		installed = nil
	} else {
		o.logger.Info().
			Str("package", spec.Source).
			Str("version", installed.Version).
			Msg("detected installed source package")
	}

	resolved, err := resolveSpec(spec, installed)
	return resolved, found, err
}
