package markers

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/cgm/spatialmath"
)

// Trial is a sequence of frames of raw marker coordinates. Frames[i][j] holds the coordinates of
// Labels[j] in frame i; a nil entry means the marker was not seen. Trials are built with NewTrial
// or ReadTrial and are safe for concurrent reads.
type Trial struct {
	Labels []string      `json:"labels"`
	Frames [][][]float64 `json:"frames"`

	index map[string]int
}

// NewTrial builds a trial and checks that labels are unique and every frame has one entry per label.
func NewTrial(labels []string, frames [][][]float64) (*Trial, error) {
	t := &Trial{Labels: labels, Frames: frames}
	if err := t.init(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trial) init() error {
	if dups := lo.FindDuplicates(t.Labels); len(dups) > 0 {
		return spatialmath.NewInvalidInputErrorf("labels", "duplicate labels %v", dups)
	}
	for i, frame := range t.Frames {
		if len(frame) != len(t.Labels) {
			return spatialmath.NewInvalidInputErrorf("frames", "frame %d has %d markers, expected %d", i, len(frame), len(t.Labels))
		}
	}
	t.index = make(map[string]int, len(t.Labels))
	for i, label := range t.Labels {
		t.index[label] = i
	}
	return nil
}

// Len returns the number of frames.
func (t *Trial) Len() int {
	return len(t.Frames)
}

// Frame resolves frame i through mapping into a role keyed Frame. Roles whose label is not in the
// trial, nil entries and entries containing NaN are absent. A wrong number of coordinates or an
// infinite coordinate is an InvalidInputError.
func (t *Trial) Frame(i int, mapping Mapping) (Frame, error) {
	if i < 0 || i >= len(t.Frames) {
		return nil, errors.Errorf("frame %d out of range [0, %d)", i, len(t.Frames))
	}
	if t.index == nil {
		return nil, errors.New("trial must be built with NewTrial or ReadTrial")
	}
	raw := t.Frames[i]
	frame := make(Frame, len(Canonical))
	for _, role := range Canonical {
		label := mapping.Label(role)
		idx, ok := t.index[label]
		if !ok {
			continue
		}
		coords := raw[idx]
		if coords == nil {
			continue
		}
		p, err := spatialmath.VectorFromSlice(coords)
		if err != nil {
			return nil, spatialmath.NewInvalidInputErrorf(label, "frame %d: expected 3 coordinates, got %d", i, len(coords))
		}
		if spatialmath.IsNaNVector(p) {
			continue
		}
		if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsInf(p.Z, 0) {
			return nil, spatialmath.NewInvalidInputErrorf(label, "frame %d: infinite coordinate %v", i, p)
		}
		frame[role] = p
	}
	return frame, nil
}

// Append adds a frame given as label → point. Labels not already in the trial are rejected.
func (t *Trial) Append(points map[string]r3.Vector) error {
	if t.index == nil {
		if err := t.init(); err != nil {
			return err
		}
	}
	row := make([][]float64, len(t.Labels))
	for label, p := range points {
		idx, ok := t.index[label]
		if !ok {
			return spatialmath.NewInvalidInputErrorf(label, "label not in trial")
		}
		row[idx] = spatialmath.VectorToSlice(p)
	}
	t.Frames = append(t.Frames, row)
	return nil
}

// ReadTrial decodes a JSON trial document of the form
// {"labels": ["RASI", ...], "frames": [[[x, y, z] or null, ...], ...]}.
func ReadTrial(r io.Reader) (*Trial, error) {
	var t Trial
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(err, "cannot parse trial")
	}
	if err := t.init(); err != nil {
		return nil, err
	}
	return &t, nil
}

// ReadTrialFile reads a JSON trial document from path.
func ReadTrialFile(path string) (*Trial, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open trial %q", path)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadTrial(f)
}
