// Package loader reads an analysis report file and normalizes it into the
// model.Report shape.
//
// Two failure kinds exist at load time and both are terminal for the
// session: ErrReportNotFound when the file does not exist, and
// ErrReportMalformed when its content does not decode. Everything below
// the top level is optional; absent sections normalize to empty defaults
// and irregular field shapes degrade to best-effort display records
// instead of failing the load.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/doclens/internal/model"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for the two fatal load failures.
// They wrap the path and underlying cause via fmt.Errorf("%w: ...") so
// callers can test with errors.Is while users still see the file name.
var (
	// ErrReportNotFound is returned when the report file does not exist.
	ErrReportNotFound = errors.New("report file not found")

	// ErrReportMalformed is returned when the report file exists but its
	// content cannot be decoded as JSON or YAML.
	ErrReportMalformed = errors.New("report file is malformed")
)

// Load reads the report at path and returns the normalized Report.
//
// The format is chosen by extension: .yaml and .yml decode as YAML,
// everything else as JSON. Mapping key order is preserved during decoding
// so that displays and the term-frequency tie-break are deterministic.
func Load(path string) (*model.Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var raw fileReport
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReportMalformed, path, err)
	}

	return raw.normalize(), nil
}
