package transient

import (
	"os"

	"github.com/frederic-klein/transient/internal/errors"
	"github.com/frederic-klein/transient/internal/pymeta"
)

// Install runs the full workflow: resolve versions, uninstall any
// existing package named like the source, build the transient wheel in
// a temporary directory and install it.
//
// The removal in the middle is unconditional and is not rolled back if
// a later step fails; a genuine package sharing the source name is
// removed to make room. Callers must treat this as destructive.
func (o *Orchestrator) Install(spec pymeta.Spec) error {
	resolved, found, err := o.resolve(spec)
	if err != nil {
		return err
	}

	if found {
		o.logger.Warn().
			Str("package", spec.Source).
			Msg("uninstalling existing package to make room for the placeholder")
		if err := o.manager.Uninstall(spec.Source); err != nil {
			return err
		}
		o.logger.Info().Str("package", spec.Source).Msg("uninstalled source package")
	}

	directory, err := os.MkdirTemp("", "transient-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrBuild, "creating temporary directory")
	}
	defer os.RemoveAll(directory)

	path, err := o.builder.Build(resolved, directory)
	if err != nil {
		return err
	}

	if err := o.manager.Install(path); err != nil {
		return err
	}

	o.logger.Info().
		Str("package", resolved.Name).
		Str("version", resolved.Version).
		Str("requires", resolved.Requirement.String()).
		Msg("installed transient package")

	return nil
}
