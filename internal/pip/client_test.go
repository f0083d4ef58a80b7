package pip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDistInfo lays out a dist-info directory the way pip leaves one
// behind after installing a wheel.
func writeDistInfo(t *testing.T, site, dirName, metadata, wheelFile string) {
	t.Helper()

	distInfo := filepath.Join(site, dirName)
	require.NoError(t, os.MkdirAll(distInfo, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(distInfo, "METADATA"), []byte(metadata), 0o644))
	if wheelFile != "" {
		require.NoError(t, os.WriteFile(filepath.Join(distInfo, "WHEEL"), []byte(wheelFile), 0o644))
	}
}

const tritonMetadata = `Metadata-Version: 2.1
Name: triton
Version: 3.0.0

`

func TestQueryDirsFindsPackage(t *testing.T) {
	site := t.TempDir()
	writeDistInfo(t, site, "triton-3.0.0.dist-info", tritonMetadata, `Wheel-Version: 1.0
Generator: bdist_wheel (0.41.2)
Root-Is-Purelib: true
Tag: py3-none-any

`)

	record, found, err := queryDirs("triton", []string{site})
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "triton", record.Name)
	assert.Equal(t, "3.0.0", record.Version)
	assert.Equal(t, "bdist_wheel (0.41.2)", record.Generator)
	assert.False(t, record.Transient)
}

func TestQueryDirsDetectsTransient(t *testing.T) {
	site := t.TempDir()
	writeDistInfo(t, site, "triton-0.0.0.dist-info", `Metadata-Version: 2.1
Name: triton
Version: 0.0.0
Requires-Dist: triton-pascal

`, `Wheel-Version: 1.0
Generator: transient (1.2.3)
Root-Is-Purelib: true
Tag: py3-none-any

`)

	record, found, err := queryDirs("triton", []string{site})
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, record.Transient)
}

func TestQueryDirsNormalizesNames(t *testing.T) {
	site := t.TempDir()
	writeDistInfo(t, site, "my_package_name-1.0.dist-info", `Metadata-Version: 2.1
Name: My.Package-Name
Version: 1.0

`, "")

	record, found, err := queryDirs("my-package.name", []string{site})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "My.Package-Name", record.Name)
}

func TestQueryDirsAbsent(t *testing.T) {
	site := t.TempDir()
	writeDistInfo(t, site, "other-1.0.dist-info", `Metadata-Version: 2.1
Name: other
Version: 1.0

`, "")

	_, found, err := queryDirs("triton", []string{site})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestQueryDirsNoWheelFileIsNotTransient(t *testing.T) {
	site := t.TempDir()
	// sdist installs have no WHEEL file
	writeDistInfo(t, site, "triton-3.0.0.dist-info", tritonMetadata, "")

	record, found, err := queryDirs("triton", []string{site})
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, record.Transient)
	assert.Empty(t, record.Generator)
}

func TestQueryDirsSkipsMalformedDistInfo(t *testing.T) {
	site := t.TempDir()
	// dist-info without METADATA, then the real one
	require.NoError(t, os.MkdirAll(filepath.Join(site, "broken-1.0.dist-info"), 0o755))
	writeDistInfo(t, site, "triton-3.0.0.dist-info", tritonMetadata, "")

	record, found, err := queryDirs("triton", []string{site})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "triton", record.Name)
}

func TestQueryDirsMissingSiteDirectory(t *testing.T) {
	// pip may report directories that do not exist yet
	_, found, err := queryDirs("triton", []string{filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	assert.False(t, found)
}
