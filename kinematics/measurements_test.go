package kinematics

import (
	"errors"
	"math"
	"testing"

	"go.viam.com/test"

	sm "go.viam.com/cgm/spatialmath"
)

func TestDecodeMeasurements(t *testing.T) {
	m, unused, err := DecodeMeasurements(map[string]interface{}{
		"Bodymass":                 72.0,
		"MeanLegLength":            "940",
		"R_AsisToTrocanterMeasure": 72.512,
		"L_AsisToTrocanterMeasure": 70,
		"RightTibialTorsion":       "-3.5",
		"Notes":                    1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Bodymass, test.ShouldEqual, 72.0)
	test.That(t, m.MeanLegLength, test.ShouldEqual, 940.0)
	test.That(t, m.RightAsisToTrocanter, test.ShouldEqual, 72.512)
	test.That(t, m.LeftAsisToTrocanter, test.ShouldEqual, 70.0)
	test.That(t, m.RightTibialTorsion, test.ShouldEqual, -3.5)
	test.That(t, m.InterAsisDistance, test.ShouldEqual, 0.0)
	test.That(t, unused, test.ShouldResemble, []string{"Notes"})

	var invalid *sm.InvalidInputError
	_, _, err = DecodeMeasurements(map[string]interface{}{"Height": "tall"})
	test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
	test.That(t, invalid.Field, test.ShouldEqual, "measurements")

	_, _, err = DecodeMeasurements(map[string]interface{}{"RightKneeWidth": math.Inf(1)})
	test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
	test.That(t, invalid.Field, test.ShouldEqual, "RightKneeWidth")
}

func TestMeasurementsValidate(t *testing.T) {
	test.That(t, Measurements{}.Validate(), test.ShouldBeNil)
	test.That(t, Measurements{LeftHandThickness: 30, Height: 1700}.Validate(), test.ShouldBeNil)

	err := Measurements{LeftElbowWidth: math.NaN()}.Validate()
	var invalid *sm.InvalidInputError
	test.That(t, errors.As(err, &invalid), test.ShouldBeTrue)
	test.That(t, invalid.Field, test.ShouldEqual, "LeftElbowWidth")
	test.That(t, err.Error(), test.ShouldContainSubstring, "NaN")
}
