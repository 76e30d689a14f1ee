package gait

import (
	"context"

	"github.com/pkg/errors"

	"go.viam.com/cgm/calibration"
	"go.viam.com/cgm/kinematics"
	"go.viam.com/cgm/logging"
	"go.viam.com/cgm/markers"
	sm "go.viam.com/cgm/spatialmath"
)

// RunConfig describes one subject session.
type RunConfig struct {
	Measurements kinematics.Measurements
	Mapping      markers.Mapping
	Finder       sm.JointCenterFinder
	FootFlat     bool
	Workers      int
	Options      []Option
}

// Run calibrates the subject on the static trial and then processes the dynamic trial. A failed
// calibration is returned before any dynamic frame is processed.
func Run(
	ctx context.Context,
	static, dynamic *markers.Trial,
	cfg RunConfig,
	logger logging.Logger,
) (calibration.Result, *TrialResult, error) {
	cal, err := calibration.Calibrate(static, cfg.Measurements, calibration.Options{
		Mapping:  cfg.Mapping,
		Finder:   cfg.Finder,
		FootFlat: cfg.FootFlat,
	}, logger.Sublogger("calibration"))
	if err != nil {
		return calibration.Result{}, nil, errors.Wrap(err, "static calibration failed")
	}

	p, err := NewProcessor(Subject{
		Measurements: cal.Measurements,
		Offsets:      cal.Offsets,
		Mapping:      cfg.Mapping,
		Finder:       cfg.Finder,
	}, logger.Sublogger("gait"), cfg.Options...)
	if err != nil {
		return cal, nil, err
	}
	res, err := p.Trial(ctx, dynamic, cfg.Workers)
	if err != nil {
		return cal, nil, err
	}
	return cal, res, nil
}
