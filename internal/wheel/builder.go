package wheel

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/frederic-klein/transient/internal/errors"
	"github.com/frederic-klein/transient/internal/logging"
	"github.com/frederic-klein/transient/internal/pymeta"
	"github.com/frederic-klein/transient/internal/version"
)

// Builder constructs metadata-only wheels. The wheel carries no code
// payload, only a dist-info directory, so installing it installs
// nothing but a name, a version and a dependency requirement.
type Builder struct {
	tag       string
	generator string
	logger    zerolog.Logger
}

// NewBuilder creates a builder for the given platform tag. An empty
// tag selects DefaultTag.
func NewBuilder(tag string) *Builder {
	if tag == "" {
		tag = DefaultTag
	}
	return &Builder{
		tag:       tag,
		generator: fmt.Sprintf("%s (%s)", GeneratorName, version.Version),
		logger:    logging.GetLogger("wheel"),
	}
}

// Build writes the wheel for res into outputDir and returns its path.
// An existing wheel with the same derived filename is overwritten.
func (b *Builder) Build(res pymeta.Resolved, outputDir string) (string, error) {
	if err := pymeta.ValidateName(res.Name); err != nil {
		return "", err
	}
	if err := pymeta.ValidateName(res.Requirement.Name); err != nil {
		return "", err
	}

	// The filename, the dist-info directory and the embedded metadata
	// must all carry the same version string, normalized the way the
	// package manager will report it back.
	res.Version = pymeta.NormalizeVersion(res.Version)

	escaped := pymeta.EscapeName(res.Name)
	filename := fmt.Sprintf("%s-%s-%s.whl", escaped, res.Version, b.tag)
	wheelPath := filepath.Join(outputDir, filename)

	file, err := os.Create(wheelPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBuild, "creating %s", wheelPath)
	}
	defer file.Close()

	distInfo := fmt.Sprintf("%s-%s.dist-info", escaped, res.Version)

	var metadata, wheelFile bytes.Buffer
	if err := emitMetadata(&metadata, res); err != nil {
		return "", errors.Wrap(err, errors.ErrBuild, "emitting METADATA")
	}
	if err := emitWheel(&wheelFile, b.generator, b.tag); err != nil {
		return "", errors.Wrap(err, errors.ErrBuild, "emitting WHEEL")
	}

	archive := zip.NewWriter(file)
	record := newRecord()

	entries := []struct {
		name string
		data []byte
	}{
		{"METADATA", metadata.Bytes()},
		{"WHEEL", wheelFile.Bytes()},
		{"top_level.txt", []byte("\n")},
	}
	for _, entry := range entries {
		name := path.Join(distInfo, entry.name)
		if err := writeEntry(archive, name, entry.data); err != nil {
			return "", errors.Wrapf(err, errors.ErrBuild, "writing %s", name)
		}
		record.add(name, entry.data)
	}

	recordName := path.Join(distInfo, "RECORD")
	if err := writeEntry(archive, recordName, record.render(recordName)); err != nil {
		return "", errors.Wrapf(err, errors.ErrBuild, "writing %s", recordName)
	}

	if err := archive.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrBuild, "finalizing %s", wheelPath)
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrapf(err, errors.ErrBuild, "finalizing %s", wheelPath)
	}

	b.logger.Debug().
		Str("path", wheelPath).
		Str("requires", res.Requirement.String()).
		Msg("wheel built")

	return wheelPath, nil
}

func writeEntry(archive *zip.Writer, name string, data []byte) error {
	w, err := archive.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// record accumulates the RECORD manifest: one line per archive member
// with its sha256 digest and size.
type record struct {
	lines []string
}

func newRecord() *record {
	return &record{}
}

func (r *record) add(name string, data []byte) {
	sum := sha256.Sum256(data)
	digest := base64.RawURLEncoding.EncodeToString(sum[:])
	r.lines = append(r.lines, fmt.Sprintf("%s,sha256=%s,%d", name, digest, len(data)))
}

func (r *record) render(recordName string) []byte {
	var buf bytes.Buffer
	for _, line := range r.lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	// RECORD cannot carry its own digest
	buf.WriteString(recordName + ",,\n")
	return buf.Bytes()
}
