package wheel

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/frederic-klein/transient/internal/pymeta"
)

const (
	// GeneratorName in the WHEEL Generator header marks a wheel as a
	// transient placeholder built by this tool. This is the sole signal
	// that authorizes later removal.
	GeneratorName = "transient"

	// DefaultTag is the platform tag for pure metadata wheels.
	DefaultTag = "py3-none-any"

	metadataVersion = "2.1"
	wheelVersion    = "1.0"
)

// Metadata is the subset of the METADATA file this tool reads and writes.
type Metadata struct {
	Name     string
	Version  string
	Requires []string // raw Requires-Dist values
}

// WheelInfo is the subset of the WHEEL file this tool reads and writes.
type WheelInfo struct {
	Generator string
	Tag       string
}

// IsTransientGenerator reports whether a WHEEL Generator value names
// this tool. The version suffix, e.g. "transient (1.2.3)", is ignored.
func IsTransientGenerator(generator string) bool {
	fields := strings.Fields(generator)
	return len(fields) > 0 && fields[0] == GeneratorName
}

func emitMetadata(w io.Writer, res pymeta.Resolved) error {
	if _, err := fmt.Fprintf(w, "Metadata-Version: %s\n", metadataVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Name: %s\n", res.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Version: %s\n", res.Version); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Requires-Dist: %s\n", res.Requirement); err != nil {
		return err
	}
	for _, extra := range res.Extras {
		if _, err := fmt.Fprintf(w, "Requires-Dist: %s\n", extra); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

func emitWheel(w io.Writer, generator, tag string) error {
	if _, err := fmt.Fprintf(w, "Wheel-Version: %s\n", wheelVersion); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Generator: %s\n", generator); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "Root-Is-Purelib: true\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Tag: %s\n", tag); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

// parseHeaders reads RFC 822 style "Key: value" lines up to the first
// blank line. Repeated keys accumulate; lines starting with whitespace
// continue the previous value. This tool never emits folded lines, but
// installed metadata from other tools may carry them.
func parseHeaders(r io.Reader) (map[string][]string, error) {
	headers := make(map[string][]string)
	lastKey := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}

		if lastKey != "" && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
			values := headers[lastKey]
			values[len(values)-1] += " " + strings.TrimSpace(line)
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		headers[key] = append(headers[key], strings.TrimSpace(value))
		lastKey = key
	}

	return headers, scanner.Err()
}

func first(headers map[string][]string, key string) string {
	values := headers[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ParseMetadata reads a METADATA file.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	headers, err := parseHeaders(r)
	if err != nil {
		return nil, fmt.Errorf("parsing METADATA: %w", err)
	}

	return &Metadata{
		Name:     first(headers, "Name"),
		Version:  first(headers, "Version"),
		Requires: headers["Requires-Dist"],
	}, nil
}

// ParseWheelInfo reads a WHEEL file.
func ParseWheelInfo(r io.Reader) (*WheelInfo, error) {
	headers, err := parseHeaders(r)
	if err != nil {
		return nil, fmt.Errorf("parsing WHEEL: %w", err)
	}

	return &WheelInfo{
		Generator: first(headers, "Generator"),
		Tag:       first(headers, "Tag"),
	}, nil
}
