// Package codec reads and writes catalog snapshots in JSON and YAML.
package codec

import (
	"fmt"
	"io"
	"strings"
	"time"

	"realestate/internal/domain"
)

// Snapshot is a full copy of the catalog at one point in time
type Snapshot struct {
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Agencies   []domain.Agency   `json:"agencies" yaml:"agencies"`
	Realtors   []domain.Realtor  `json:"realtors" yaml:"realtors"`
	Properties []domain.Property `json:"properties" yaml:"properties"`
}

// Len returns the number of records in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Agencies) + len(s.Realtors) + len(s.Properties)
}

// Importer parses a snapshot from a stream
type Importer interface {
	Parse(r io.Reader) (*Snapshot, error)
	Format() string
}

// Exporter writes a snapshot to a stream
type Exporter interface {
	Export(s *Snapshot, w io.Writer) error
	Format() string
	ContentType() string
}

// Codec both reads and writes one format
type Codec interface {
	Importer
	Exporter
}

// ForFormat returns the codec for "json" or "yaml" (also "yml").
// Empty format means JSON.
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, domain.InvalidInput(fmt.Sprintf("Unsupported format %q; use json or yaml.", format))
	}
}
