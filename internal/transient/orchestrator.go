package transient

import (
	"github.com/rs/zerolog"

	"github.com/frederic-klein/transient/internal/logging"
	"github.com/frederic-klein/transient/internal/pymeta"
	"github.com/frederic-klein/transient/internal/wheel"
)

// PackageManager is the package-management subsystem boundary. The
// real implementation drives pip; tests inject an in-memory fake.
type PackageManager interface {
	// Query returns the installed record for name, and whether one exists.
	Query(name string) (*pymeta.Installed, bool, error)

	// Install installs a built wheel.
	Install(wheelPath string) error

	// Uninstall removes an installed package.
	Uninstall(name string) error
}

// Orchestrator composes version resolution, wheel building and package
// manager calls into the create, install and uninstall workflows. All
// operations are sequential and none is retried; a failed step aborts
// the rest of the run.
type Orchestrator struct {
	manager PackageManager
	builder *wheel.Builder
	logger  zerolog.Logger
}

// New creates an orchestrator over the given package manager and builder.
func New(manager PackageManager, builder *wheel.Builder) *Orchestrator {
	return &Orchestrator{
		manager: manager,
		builder: builder,
		logger:  logging.GetLogger("transient"),
	}
}
