package keyframe

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/maya2harmony/internal/maya"
)

const SheetVersion = "1.0"

// Sheet holds the object name and raw channel strings that feed a commit.
// It is what a read produces and what a user may edit before committing.
type Sheet struct {
	Version  string                  `yaml:"version"`
	Source   string                  `yaml:"source,omitempty"`
	Object   string                  `yaml:"object"`
	Channels map[maya.Channel]string `yaml:"channels"`
}

// NewSheet builds a sheet from a scan result.
func NewSheet(loc *maya.Locator, source string) *Sheet {
	s := &Sheet{
		Version:  SheetVersion,
		Source:   source,
		Object:   loc.Object,
		Channels: make(map[maya.Channel]string, len(loc.Channels)),
	}
	for c, raw := range loc.Channels {
		s.Channels[c] = raw
	}
	return s
}

// Raw returns the raw string of a channel, empty when absent.
func (s *Sheet) Raw(c maya.Channel) string {
	return s.Channels[c]
}

// EncodeSheet writes a sheet as YAML.
func EncodeSheet(w io.Writer, s *Sheet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "failed to encode sheet")
	}
	return enc.Close()
}

// WriteSheet writes a sheet to a YAML file.
func WriteSheet(s *Sheet, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadSheet reads a sheet from a YAML file.
func ReadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, errors.Wrapf(err, "failed to parse sheet %s", path)
	}
	if sheet.Channels == nil {
		sheet.Channels = map[maya.Channel]string{}
	}

	return &sheet, nil
}
