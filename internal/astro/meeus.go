package astro

import "math"

// Low-precision solar and lunar position series. Angles are handled in
// degrees throughout and only converted to radians at the trig boundary.

const degToRad = math.Pi / 180

// normDeg normalizes an angle in degrees to [0, 360).
func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func sinDeg(a float64) float64 {
	return math.Sin(a * degToRad)
}

// apparentSolarLongitude returns the sun's apparent ecliptic longitude in
// degrees for a Julian Date (Meeus ch. 25).
func apparentSolarLongitude(jd float64) float64 {
	T := (jd - 2451545.0) / 36525.0

	// Geometric mean longitude and mean anomaly.
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T

	// Equation of center.
	C := (1.914602-0.004817*T-0.000014*T*T)*sinDeg(M) +
		(0.019993-0.000101*T)*sinDeg(2*M) +
		0.000289*sinDeg(3*M)

	// True longitude, corrected for nutation and aberration.
	omega := 125.04 - 1934.136*T
	lambda := L0 + C - 0.00569 - 0.00478*sinDeg(omega)

	return normDeg(lambda)
}

// lunarLongitude returns the moon's apparent ecliptic longitude in degrees
// for a Julian Date. Truncation of the ELP series to the largest periodic
// terms (Meeus ch. 47) keeps the error under ~0.1 degree.
func lunarLongitude(jd float64) float64 {
	T := (jd - 2451545.0) / 36525.0

	Lp := 218.3164477 + 481267.88123421*T // mean longitude
	D := 297.8501921 + 445267.1114034*T   // mean elongation
	M := 357.5291092 + 35999.0502909*T    // sun mean anomaly
	Mp := 134.9633964 + 477198.8675055*T  // moon mean anomaly
	F := 93.2720950 + 483202.0175233*T    // argument of latitude

	lambda := Lp +
		6.288774*sinDeg(Mp) +
		1.274027*sinDeg(2*D-Mp) +
		0.658314*sinDeg(2*D) +
		0.213618*sinDeg(2*Mp) -
		0.185116*sinDeg(M) -
		0.114332*sinDeg(2*F) +
		0.058793*sinDeg(2*D-2*Mp) +
		0.057066*sinDeg(2*D-M-Mp) +
		0.053322*sinDeg(2*D+Mp) +
		0.045758*sinDeg(2*D-M) -
		0.040923*sinDeg(M-Mp) -
		0.034720*sinDeg(D) -
		0.030383*sinDeg(M+Mp)

	return normDeg(lambda)
}
