package transient

import (
	"github.com/frederic-klein/transient/internal/errors"
	"github.com/frederic-klein/transient/internal/pymeta"
)

// Uninstall removes an installed transient package. A package that is
// not installed fails with NOT_INSTALLED; an installed package without
// the transient marker fails with NOT_TRANSIENT before any mutation,
// so a genuine package sharing the name is never removed.
func (o *Orchestrator) Uninstall(name string) error {
	if err := pymeta.ValidateName(name); err != nil {
		return err
	}

	_, found, err := o.manager.Query(name)
	if err != nil {
		return err
	}
	if !found {
		return errors.Newf(errors.ErrNotInstalled, "package %q is not installed", name)
	}

	transient, err := o.IsTransient(name)
	if err != nil {
		return err
	}
	if !transient {
		return errors.Newf(errors.ErrNotTransient, "package %q is not transient", name)
	}

	if err := o.manager.Uninstall(name); err != nil {
		return err
	}

	o.logger.Info().Str("package", name).Msg("uninstalled transient package")
	return nil
}
