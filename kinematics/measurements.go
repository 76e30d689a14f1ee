// Package kinematics implements the Conventional Gait Model segment axis calculators and the joint
// angle decomposition between adjacent segments.
package kinematics

import (
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"

	"go.viam.com/cgm/spatialmath"
)

// MarkerRadius is half the diameter of a standard 14mm marker, in millimeters. Every joint center
// offset measured from a skin marker adds it.
const MarkerRadius = 7.0

// Measurements are the subject's anthropometric measurements in millimeters and degrees. Keys
// follow the names used in subject measurement files.
type Measurements struct {
	Bodymass float64 `json:"Bodymass"`
	Height   float64 `json:"Height"`

	InterAsisDistance float64 `json:"InterAsisDistance"`
	MeanLegLength     float64 `json:"MeanLegLength"`
	LeftLegLength     float64 `json:"LeftLegLength"`
	RightLegLength    float64 `json:"RightLegLength"`

	LeftAsisToTrocanter  float64 `json:"L_AsisToTrocanterMeasure"`
	RightAsisToTrocanter float64 `json:"R_AsisToTrocanterMeasure"`

	LeftKneeWidth   float64 `json:"LeftKneeWidth"`
	RightKneeWidth  float64 `json:"RightKneeWidth"`
	LeftAnkleWidth  float64 `json:"LeftAnkleWidth"`
	RightAnkleWidth float64 `json:"RightAnkleWidth"`

	// Tibial torsion in degrees.
	LeftTibialTorsion  float64 `json:"LeftTibialTorsion"`
	RightTibialTorsion float64 `json:"RightTibialTorsion"`

	LeftShoulderOffset  float64 `json:"LeftShoulderOffset"`
	RightShoulderOffset float64 `json:"RightShoulderOffset"`
	LeftElbowWidth      float64 `json:"LeftElbowWidth"`
	RightElbowWidth     float64 `json:"RightElbowWidth"`
	LeftWristWidth      float64 `json:"LeftWristWidth"`
	RightWristWidth     float64 `json:"RightWristWidth"`
	LeftHandThickness   float64 `json:"LeftHandThickness"`
	RightHandThickness  float64 `json:"RightHandThickness"`
}

// DecodeMeasurements converts a name → value map into Measurements. Numeric strings are accepted.
// Keys that do not name a measurement are returned in unused. A value that is not a number is an
// InvalidInputError.
func DecodeMeasurements(raw map[string]interface{}) (m Measurements, unused []string, err error) {
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &m,
	})
	if err != nil {
		return Measurements{}, nil, errors.Wrap(err, "error creating measurement decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return Measurements{}, nil, spatialmath.NewInvalidInputError("measurements", err.Error())
	}
	if err := m.Validate(); err != nil {
		return Measurements{}, nil, err
	}
	return m, md.Unused, nil
}

// Validate checks that every measurement is a finite number.
func (m Measurements) Validate() error {
	v := reflect.ValueOf(m)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return spatialmath.NewInvalidInputErrorf(t.Field(i).Tag.Get("json"), "non-finite measurement %v", f)
		}
	}
	return nil
}

// StaticOffsets are the per-subject values derived once from the static trial. Angles are radians.
type StaticOffsets struct {
	InterAsisDistance    float64 `json:"InterAsisDistance"`
	HeadOffset           float64 `json:"HeadOffset"`
	RightStaticRotOff    float64 `json:"RightStaticRotOff"`
	RightStaticPlantFlex float64 `json:"RightStaticPlantFlex"`
	LeftStaticRotOff     float64 `json:"LeftStaticRotOff"`
	LeftStaticPlantFlex  float64 `json:"LeftStaticPlantFlex"`
}
