package astro

import "math"

// MeanObliquityJ2000 is the mean obliquity of the ecliptic at J2000, in
// degrees.
const MeanObliquityJ2000 = 23.4392911

// BrightStar is a catalog star used as a fixed background.
type BrightStar struct {
	Name   string
	RADeg  float64 // J2000 right ascension
	DecDeg float64 // J2000 declination
	Mag    float64 // apparent visual magnitude, lower is brighter
}

// EquatorialToEcliptic rotates a J2000 equatorial vector about the
// equinox axis into the ecliptic frame.
func EquatorialToEcliptic(eq Vec3) Vec3 {
	eps := DegToRad(MeanObliquityJ2000)
	sinE, cosE := math.Sincos(eps)
	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// Direction returns the star's unit direction in the scene frame.
func (s BrightStar) Direction() Vec3 {
	ra, dec := DegToRad(s.RADeg), DegToRad(s.DecDeg)
	eq := Vec3{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
	return EclipticToScene(EquatorialToEcliptic(eq))
}

// BrightStars returns the background catalog, brightest first. The slice
// is shared; callers must not modify it.
func BrightStars() []BrightStar {
	return brightStars
}

// Yale Bright Star Catalog positions, magnitude 2.1 and brighter.
var brightStars = []BrightStar{
	{"Sirius", 101.287, -16.716, -1.46},
	{"Canopus", 95.988, -52.696, -0.74},
	{"Arcturus", 213.915, 19.182, -0.05},
	{"Vega", 279.235, 38.784, 0.03},
	{"Capella", 79.172, 45.998, 0.08},
	{"Rigel", 78.634, -8.202, 0.13},
	{"Procyon", 114.826, 5.225, 0.34},
	{"Achernar", 24.429, -57.237, 0.46},
	{"Betelgeuse", 88.793, 7.407, 0.50},
	{"Hadar", 210.956, -60.373, 0.61},
	{"Altair", 297.696, 8.868, 0.76},
	{"Acrux", 186.650, -63.099, 0.76},
	{"Aldebaran", 68.980, 16.509, 0.85},
	{"Antares", 247.352, -26.432, 0.96},
	{"Spica", 201.298, -11.161, 0.97},
	{"Pollux", 116.329, 28.026, 1.14},
	{"Fomalhaut", 344.413, -29.622, 1.16},
	{"Deneb", 310.358, 45.280, 1.25},
	{"Mimosa", 191.930, -59.689, 1.25},
	{"Regulus", 152.093, 11.967, 1.35},
	{"Adhara", 104.656, -28.972, 1.50},
	{"Castor", 113.650, 31.889, 1.58},
	{"Shaula", 263.402, -37.104, 1.63},
	{"Bellatrix", 81.283, 6.350, 1.64},
	{"Elnath", 81.573, 28.608, 1.65},
	{"Alnilam", 84.053, -1.202, 1.69},
	{"Alnair", 332.058, -46.961, 1.74},
	{"Alioth", 193.507, 55.960, 1.77},
	{"Dubhe", 165.932, 61.751, 1.79},
	{"Mirfak", 51.081, 49.861, 1.79},
	{"Wezen", 107.098, -26.393, 1.84},
	{"Kaus Australis", 276.043, -34.384, 1.85},
	{"Alkaid", 206.885, 49.313, 1.86},
	{"Menkalinan", 89.882, 44.948, 1.90},
	{"Alhena", 99.428, 16.399, 1.93},
	{"Peacock", 306.412, -56.735, 1.94},
	{"Mirzam", 95.675, -17.956, 1.98},
	{"Alphard", 141.897, -8.659, 2.00},
	{"Hamal", 31.793, 23.463, 2.00},
	{"Polaris", 37.954, 89.264, 2.02},
	{"Nunki", 283.816, -26.297, 2.02},
	{"Alpheratz", 2.097, 29.091, 2.06},
}
