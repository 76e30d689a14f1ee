package cli

import (
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"go.viam.com/cgm/config"
	"go.viam.com/cgm/logging"
	"go.viam.com/cgm/markers"
)

// logFileMaxSizeMB is the size at which the session log file is rotated.
const logFileMaxSizeMB = 64

// session is a config with its command line overrides applied and the logger built from it.
type session struct {
	cfg     *config.Config
	logger  logging.Logger
	closers []io.Closer
}

func loadSession(c *cli.Context) (*session, error) {
	logger := logging.NewWriterLogger("cgm", c.App.ErrWriter, logging.INFO)
	if c.Bool(debugFlag) {
		logger.SetLevel(logging.DEBUG)
	}
	cfg, err := config.Read(c.String(configFlag), logger)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if c.Bool(debugFlag) {
		level = logging.DEBUG
	}
	logger.SetLevel(level)

	if c.IsSet(staticFlag) {
		cfg.StaticTrial = c.String(staticFlag)
	}
	if c.IsSet(dynamicFlag) {
		cfg.DynamicTrial = c.String(dynamicFlag)
	}
	if c.IsSet(workersFlag) {
		cfg.Workers = c.Int(workersFlag)
	}
	if c.IsSet(footFlatFlag) {
		cfg.FootFlat = c.Bool(footFlatFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}
	if cfg.LogFile != "" {
		file := logging.NewRotatingFile(cfg.LogFile, logFileMaxSizeMB)
		s.closers = append(s.closers, file)
		s.logger = logging.NewWriterLogger("cgm", io.MultiWriter(c.App.ErrWriter, file), level)
	}
	return s, nil
}

// Close releases the session log file, if any.
func (s *session) Close() error {
	var err error
	for _, closer := range s.closers {
		err = multierr.Append(err, closer.Close())
	}
	return err
}

func (s *session) staticTrial() (*markers.Trial, error) {
	return markers.ReadTrialFile(s.cfg.StaticTrial)
}

func (s *session) dynamicTrial() (*markers.Trial, error) {
	return markers.ReadTrialFile(s.cfg.DynamicTrial)
}
