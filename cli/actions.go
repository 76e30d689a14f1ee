package cli

import (
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/cgm/calibration"
	"go.viam.com/cgm/gait"
	"go.viam.com/cgm/report"
)

// CalibrateAction is the corresponding action for 'calibrate'.
func CalibrateAction(c *cli.Context) (err error) {
	s, err := loadSession(c)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	static, err := s.staticTrial()
	if err != nil {
		return err
	}
	res, err := calibration.Calibrate(static, s.cfg.SubjectMeasurements(), calibration.Options{
		Mapping:  s.cfg.Mapping(),
		FootFlat: s.cfg.FootFlat,
	}, s.logger.Sublogger("calibration"))
	if err != nil {
		return err
	}
	return writeJSON(c.App.Writer, "", res)
}

type frameFailure struct {
	Frame int    `json:"frame"`
	Error string `json:"error"`
}

type runOutput struct {
	Calibration calibration.Result    `json:"calibration"`
	Frames      []gait.FrameResult    `json:"frames"`
	Failed      []frameFailure        `json:"failed"`
	Summary     []report.JointSummary `json:"summary"`
}

// RunAction is the corresponding action for 'run'.
func RunAction(c *cli.Context) (err error) {
	s, err := loadSession(c)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	static, err := s.staticTrial()
	if err != nil {
		return err
	}
	dynamic, err := s.dynamicTrial()
	if err != nil {
		return err
	}

	cal, res, err := gait.Run(c.Context, static, dynamic, gait.RunConfig{
		Measurements: s.cfg.SubjectMeasurements(),
		Mapping:      s.cfg.Mapping(),
		FootFlat:     s.cfg.FootFlat,
		Workers:      s.cfg.Workers,
	}, s.logger)
	if err != nil {
		return err
	}

	failed := lo.Map(res.Failed, func(i, _ int) frameFailure {
		return frameFailure{Frame: i, Error: res.Frames[i].Err.Error()}
	})
	if len(failed) > 0 {
		warningf(c.App.ErrWriter, "%d of %d frames failed", len(failed), len(res.Frames))
	}
	summary := report.Summarize(res)
	out := c.String(outputFlag)
	if err := writeJSON(c.App.Writer, out, runOutput{
		Calibration: cal,
		Frames:      res.Frames,
		Failed:      failed,
		Summary:     summary,
	}); err != nil {
		return err
	}
	if out != "" && out != "-" {
		printf(c.App.ErrWriter, "wrote %d frames to %s", len(res.Frames), out)
	}
	if c.Bool(tableFlag) {
		printf(c.App.ErrWriter, "%s", report.SummaryTable(summary))
	}
	return nil
}
