package transient

import (
	"github.com/frederic-klein/transient/internal/pymeta"
)

// resolveSpec turns a Spec into a Resolved using the already-queried
// installed record of the source package (nil when absent).
//
// The placeholder takes the installed source version so that consumers
// pinning on the source keep resolving. When the version was detected
// (not explicitly supplied) and no explicit target version was given,
// the target is pinned to the same version; otherwise the target stays
// unpinned.
func resolveSpec(spec pymeta.Spec, installed *pymeta.Installed) (pymeta.Resolved, error) {
	if err := pymeta.ValidateName(spec.Source); err != nil {
		return pymeta.Resolved{}, err
	}
	if err := pymeta.ValidateName(spec.Target); err != nil {
		return pymeta.Resolved{}, err
	}

	sourceVersion := spec.SourceVersion
	detected := false
	switch {
	case sourceVersion != "":
		if err := pymeta.ValidateVersion(sourceVersion); err != nil {
			return pymeta.Resolved{}, err
		}
	case installed != nil:
		sourceVersion = installed.Version
		detected = true
	default:
		sourceVersion = pymeta.DefaultVersion
	}

	targetVersion := spec.TargetVersion
	switch {
	case targetVersion != "":
		if err := pymeta.ValidateVersion(targetVersion); err != nil {
			return pymeta.Resolved{}, err
		}
	case detected:
		targetVersion = sourceVersion
	}

	resolved := pymeta.Resolved{
		Name:    spec.Source,
		Version: sourceVersion,
		Requirement: pymeta.Requirement{
			Name:    spec.Target,
			Version: targetVersion,
		},
	}

	for _, extra := range spec.Extras {
		req, err := pymeta.ParseRequirement(extra)
		if err != nil {
			return pymeta.Resolved{}, err
		}
		resolved.Extras = append(resolved.Extras, req)
	}

	return resolved, nil
}
