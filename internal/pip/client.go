package pip

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/frederic-klein/transient/internal/errors"
	"github.com/frederic-klein/transient/internal/logging"
	"github.com/frederic-klein/transient/internal/pymeta"
	"github.com/frederic-klein/transient/internal/wheel"
)

// Python snippet printing every directory pip may have installed into.
const sitePackagesScript = `import json, site, sysconfig
paths = list(site.getsitepackages())
paths.append(site.getusersitepackages())
paths.append(sysconfig.get_paths()["purelib"])
print(json.dumps(paths))`

// Client drives pip through a Python interpreter. Queries read the
// interpreter's dist-info directories directly; mutations go through
// "python -m pip". Calls are blocking with no timeout, matching pip's
// own behavior.
type Client struct {
	python string
	logger zerolog.Logger
}

// NewClient creates a client for the given interpreter, e.g. "python3".
func NewClient(python string) *Client {
	return &Client{
		python: python,
		logger: logging.GetLogger("pip"),
	}
}

// Query looks up an installed package by name. The second return value
// reports whether the package was found.
func (c *Client) Query(name string) (*pymeta.Installed, bool, error) {
	dirs, err := c.sitePackages()
	if err != nil {
		return nil, false, err
	}
	return queryDirs(name, dirs)
}

// Install installs a built wheel.
func (c *Client) Install(wheelPath string) error {
	c.logger.Debug().Str("wheel", wheelPath).Msg("running pip install")

	cmd := exec.Command(c.python, "-m", "pip", "install", wheelPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, errors.ErrInstall, "pip install %s: %s", wheelPath, strings.TrimSpace(string(output)))
	}
	return nil
}

// Uninstall removes an installed package.
func (c *Client) Uninstall(name string) error {
	c.logger.Debug().Str("package", name).Msg("running pip uninstall")

	cmd := exec.Command(c.python, "-m", "pip", "uninstall", "--yes", name)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, errors.ErrUninstall, "pip uninstall %s: %s", name, strings.TrimSpace(string(output)))
	}
	return nil
}

// sitePackages asks the interpreter where installed distributions live.
func (c *Client) sitePackages() ([]string, error) {
	cmd := exec.Command(c.python, "-c", sitePackagesScript)
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrQuery, "locating site-packages via %s", c.python)
	}

	var paths []string
	if err := json.Unmarshal(output, &paths); err != nil {
		return nil, errors.Wrap(err, errors.ErrQuery, "parsing site-packages paths")
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		dirs = append(dirs, p)
	}
	return dirs, nil
}

// queryDirs scans dist-info directories for a package whose normalized
// name matches.
func queryDirs(name string, dirs []string) (*pymeta.Installed, bool, error) {
	want := pymeta.NormalizeName(name)

	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.dist-info"))
		if err != nil {
			return nil, false, errors.Wrapf(err, errors.ErrQuery, "scanning %s", dir)
		}

		for _, distInfo := range matches {
			record, ok, err := readDistInfo(distInfo, want)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return record, true, nil
			}
		}
	}

	return nil, false, nil
}

func readDistInfo(distInfo, want string) (*pymeta.Installed, bool, error) {
	file, err := os.Open(filepath.Join(distInfo, "METADATA"))
	if err != nil {
		// dist-info without METADATA is not a distribution we can use
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrQuery, "reading %s", distInfo)
	}
	defer file.Close()

	meta, err := wheel.ParseMetadata(file)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrQuery, "reading %s", distInfo)
	}
	if pymeta.NormalizeName(meta.Name) != want {
		return nil, false, nil
	}

	record := &pymeta.Installed{
		Name:    meta.Name,
		Version: meta.Version,
	}

	// Distributions not installed from a wheel have no WHEEL file;
	// those are never transient.
	wheelFile, err := os.Open(filepath.Join(distInfo, "WHEEL"))
	if err != nil {
		if os.IsNotExist(err) {
			return record, true, nil
		}
		return nil, false, errors.Wrapf(err, errors.ErrQuery, "reading %s", distInfo)
	}
	defer wheelFile.Close()

	info, err := wheel.ParseWheelInfo(wheelFile)
	if err != nil {
		return nil, false, errors.Wrapf(err, errors.ErrQuery, "reading %s", distInfo)
	}
	record.Generator = info.Generator
	record.Transient = wheel.IsTransientGenerator(info.Generator)

	return record, true, nil
}
