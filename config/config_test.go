package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/cgm/logging"
	"go.viam.com/cgm/markers"
)

const sessionJSON = `{
	"measurements": {
		"Bodymass": 72,
		"LeftLegLength": "940",
		"RightLegLength": 940,
		"RightKneeWidth": 105,
		"Comment": "left knee brace"
	},
	"marker_map": {"LKNE": "LKNE_brace"},
	"static_trial": "static.json",
	"dynamic_trial": "/data/${SUBJECT}/walk.json",
	"workers": 3,
	"foot_flat": true,
	"log_level": "debug",
	"log_file": "logs/cgm.log"
}`

func TestRead(t *testing.T) {
	t.Setenv("SUBJECT", "s01")
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	test.That(t, os.WriteFile(path, []byte(sessionJSON), 0o600), test.ShouldBeNil)

	logger, logs := logging.NewObservedTestLogger(t)
	cfg, err := Read(path, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, path)
	test.That(t, cfg.StaticTrial, test.ShouldEqual, filepath.Join(dir, "static.json"))
	test.That(t, cfg.DynamicTrial, test.ShouldEqual, "/data/s01/walk.json")
	test.That(t, cfg.Workers, test.ShouldEqual, 3)
	test.That(t, cfg.FootFlat, test.ShouldBeTrue)
	test.That(t, cfg.LogLevel, test.ShouldEqual, logging.DEBUG)
	test.That(t, cfg.LogFile, test.ShouldEqual, filepath.Join(dir, "logs", "cgm.log"))

	m := cfg.SubjectMeasurements()
	test.That(t, m.LeftLegLength, test.ShouldEqual, 940.0)
	test.That(t, m.RightKneeWidth, test.ShouldEqual, 105.0)
	test.That(t, cfg.Mapping().Label(markers.LKNE), test.ShouldEqual, "LKNE_brace")
	test.That(t, cfg.Mapping().Label(markers.RKNE), test.ShouldEqual, markers.RKNE)

	warnings := logs.FilterMessage("ignoring unknown measurement").All()
	test.That(t, warnings, test.ShouldHaveLength, 1)
	test.That(t, warnings[0].ContextMap()["name"], test.ShouldEqual, "Comment")

	_, err = Read(filepath.Join(dir, "missing.json"), logger)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFromReaderErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)
	for _, tc := range []struct {
		name, doc string
		want      []string
	}{
		{"not json", `{"measurements": `, []string{"cannot parse config"}},
		{"unknown field", `{"static_trial": "a", "dynamic_trial": "b", "speed": 2}`, []string{"speed"}},
		{"bad log level", `{"static_trial": "a", "dynamic_trial": "b", "log_level": "loud"}`, []string{"loud"}},
		{
			"every problem is reported",
			`{"workers": -1, "measurements": {"Height": "tall"}, "marker_map": {"NOSE": "N"}}`,
			[]string{"static_trial", "dynamic_trial", "workers", "measurements", "marker_map"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReader("", strings.NewReader(tc.doc), logger)
			test.That(t, err, test.ShouldNotBeNil)
			for _, want := range tc.want {
				test.That(t, err.Error(), test.ShouldContainSubstring, want)
			}
		})
	}
}

func TestFromReaderKeepsPathsWithoutFile(t *testing.T) {
	cfg, err := FromReader("", strings.NewReader(`{"static_trial": "s.json", "dynamic_trial": "d.json"}`), logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.StaticTrial, test.ShouldEqual, "s.json")
	test.That(t, cfg.LogLevel, test.ShouldEqual, logging.INFO)
	test.That(t, cfg.Validate(), test.ShouldBeNil)
}
