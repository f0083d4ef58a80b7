package wheel

import (
	"archive/zip"
	"fmt"
	"strings"
)

// Artifact is the metadata read back from a wheel on disk.
type Artifact struct {
	Name      string
	Version   string
	Requires  []string
	Generator string
	Tag       string
}

// Read opens a wheel and returns its dist-info metadata.
func Read(path string) (*Artifact, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening wheel: %w", err)
	}
	defer archive.Close()

	artifact := &Artifact{}
	foundMetadata := false

	for _, file := range archive.File {
		dir, base, ok := strings.Cut(file.Name, "/")
		if !ok || !strings.HasSuffix(dir, ".dist-info") {
			continue
		}

		switch base {
		case "METADATA":
			meta, err := readMetadata(file)
			if err != nil {
				return nil, err
			}
			artifact.Name = meta.Name
			artifact.Version = meta.Version
			artifact.Requires = meta.Requires
			foundMetadata = true
		case "WHEEL":
			info, err := readWheelInfo(file)
			if err != nil {
				return nil, err
			}
			artifact.Generator = info.Generator
			artifact.Tag = info.Tag
		}
	}

	if !foundMetadata {
		return nil, fmt.Errorf("no dist-info METADATA in %s", path)
	}

	return artifact, nil
}

func readMetadata(file *zip.File) (*Metadata, error) {
	r, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Name, err)
	}
	defer r.Close()
	return ParseMetadata(r)
}

func readWheelInfo(file *zip.File) (*WheelInfo, error) {
	r, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", file.Name, err)
	}
	defer r.Close()
	return ParseWheelInfo(r)
}
