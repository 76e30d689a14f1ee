// Package config reads the description of a processing session: the subject measurements, the
// marker label overrides and the trials to process.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/cgm/kinematics"
	"go.viam.com/cgm/logging"
	"go.viam.com/cgm/markers"
)

// Config describes one subject session.
type Config struct {
	ConfigFilePath string `json:"-"`

	// Measurements are keyed by measurement name; numbers may be given as strings.
	Measurements map[string]interface{} `json:"measurements"`
	// MarkerMap overrides the trial label read for a marker role.
	MarkerMap map[string]string `json:"marker_map,omitempty"`

	StaticTrial  string `json:"static_trial"`
	DynamicTrial string `json:"dynamic_trial"`

	Workers  int           `json:"workers,omitempty"`
	FootFlat bool          `json:"foot_flat,omitempty"`
	LogLevel logging.Level `json:"log_level,omitempty"`

	// LogFile additionally writes logs to a size rotated file.
	LogFile string `json:"log_file,omitempty"`

	// decoded on Validate
	measurements kinematics.Measurements
	mapping      markers.Mapping
}

// Read reads a config from the given file. Environment variables in the file are expanded.
func Read(filePath string, logger logging.Logger) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %q", filePath)
	}
	return FromReader(filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies where, if applicable, the file
// the reader originated from. Relative trial and log paths are resolved against that file's
// directory.
func FromReader(originalPath string, r io.Reader, logger logging.Logger) (*Config, error) {
	cfg := Config{ConfigFilePath: originalPath, LogLevel: logging.INFO}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}
	if originalPath != "" {
		dir := filepath.Dir(originalPath)
		cfg.StaticTrial = resolve(dir, cfg.StaticTrial)
		cfg.DynamicTrial = resolve(dir, cfg.DynamicTrial)
		cfg.LogFile = resolve(dir, cfg.LogFile)
	}
	unused, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	for _, key := range unused {
		logger.Warnw("ignoring unknown measurement", "name", key)
	}
	return &cfg, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// Validate checks the config and decodes its measurements and marker map. Every problem found is
// reported.
func (c *Config) Validate() error {
	_, err := c.validate()
	return err
}

func (c *Config) validate() (unused []string, err error) {
	if c.StaticTrial == "" {
		err = multierr.Append(err, errors.New("static_trial is required"))
	}
	if c.DynamicTrial == "" {
		err = multierr.Append(err, errors.New("dynamic_trial is required"))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, errors.Errorf("workers must not be negative, got %d", c.Workers))
	}

	m, unused, mErr := kinematics.DecodeMeasurements(c.Measurements)
	if mErr != nil {
		err = multierr.Append(err, errors.Wrap(mErr, "measurements"))
	}
	mapping, mapErr := markers.DefaultMapping().With(c.MarkerMap)
	if mapErr != nil {
		err = multierr.Append(err, errors.Wrap(mapErr, "marker_map"))
	}
	if err != nil {
		return nil, err
	}
	c.measurements = m
	c.mapping = mapping
	return unused, nil
}

// SubjectMeasurements returns the decoded measurements. Only valid after a successful Validate.
func (c *Config) SubjectMeasurements() kinematics.Measurements {
	return c.measurements
}

// Mapping returns the marker mapping. Only valid after a successful Validate.
func (c *Config) Mapping() markers.Mapping {
	return c.mapping
}
