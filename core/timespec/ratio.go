package timespec

import "math"

// maxDenominator bounds the continued-fraction expansion so that float noise
// (0.3333... parsed from a float64) still normalizes to the intended ratio.
const maxDenominator = 1_000_000

// Ratio normalizes a floating speed factor to an exact reduced rational,
// using continued-fraction denominator limiting. The sign is carried on the
// numerator; zero normalizes to 0/1.
func Ratio(value float64) (num, den int64, err error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0, &ConversionError{Literal: value, Reason: "speed is not a finite number"}
	}

	if value == 0 {
		return 0, 1, nil
	}

	sign := int64(1)
	x := value
	if x < 0 {
		sign = -1
		x = -x
	}

	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	for {
		whole := math.Floor(x)
		a := int64(whole)

		p2 := a*p1 + p0
		q2 := a*q1 + q0
		if q2 > maxDenominator {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2

		frac := x - whole
		if frac < 1e-12 {
			break
		}
		x = 1 / frac
	}

	return sign * p1, q1, nil
}
