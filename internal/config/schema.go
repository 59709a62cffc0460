// Package config defines the input schema for a celestial system and
// loads it from JSON or YAML.
//
// A Document lists bodies either flat, with each body naming its parent
// through ParentID, or nested through Children, or a mix of both. Flatten
// normalizes either form to the flat list consumed by the tree builder.
package config

// Document is the root of a configuration file.
type Document struct {
	Version int           `json:"version" yaml:"version" validate:"gte=0"`
	Bodies  []Body        `json:"bodies" yaml:"bodies" validate:"required,min=1,dive"`
	Phase   *PhaseTriad   `json:"phase,omitempty" yaml:"phase,omitempty"`
	Time    *TimeSettings `json:"time,omitempty" yaml:"time,omitempty"`
}

// Body describes one celestial body. Exactly one of Keplerian and
// Circular is set for every body except the root star.
type Body struct {
	ID                  string  `json:"id" yaml:"id" validate:"required"`
	Name                string  `json:"name,omitempty" yaml:"name,omitempty"`
	Kind                string  `json:"kind" yaml:"kind" validate:"required"`
	ParentID            string  `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	DisplayRadius       float64 `json:"displayRadius" yaml:"displayRadius" validate:"gt=0"`
	PhysicalRadius      float64 `json:"physicalRadius,omitempty" yaml:"physicalRadius,omitempty" validate:"gte=0"`
	Color               string  `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,color"`
	RotationPeriodHours float64 `json:"rotationPeriodHours,omitempty" yaml:"rotationPeriodHours,omitempty" validate:"gte=0"`
	AxialTiltDeg        float64 `json:"axialTiltDeg,omitempty" yaml:"axialTiltDeg,omitempty"`

	Atmosphere  bool `json:"atmosphere,omitempty" yaml:"atmosphere,omitempty"`
	Rings       bool `json:"rings,omitempty" yaml:"rings,omitempty"`
	Synchronous bool `json:"synchronous,omitempty" yaml:"synchronous,omitempty"`

	Keplerian *KeplerianMotion `json:"keplerian,omitempty" yaml:"keplerian,omitempty"`
	Circular  *CircularMotion  `json:"circular,omitempty" yaml:"circular,omitempty"`
	Star      *StarSettings    `json:"star,omitempty" yaml:"star,omitempty"`

	Children []Body `json:"children,omitempty" yaml:"children,omitempty" validate:"dive"`
}

// KeplerianMotion holds orbital elements in one of two forms: argument of
// perihelion with mean anomaly, or longitude of perihelion with mean
// longitude. Every element and the epoch must be given; a zero angle is
// written out as 0.
type KeplerianMotion struct {
	SemiMajorAxis    float64  `json:"semiMajorAxis" yaml:"semiMajorAxis" validate:"gt=0"`
	Eccentricity     *float64 `json:"eccentricity" yaml:"eccentricity" validate:"required,gte=0,lt=1"`
	InclinationDeg   *float64 `json:"inclinationDeg" yaml:"inclinationDeg" validate:"required"`
	AscendingNodeDeg *float64 `json:"ascendingNodeDeg" yaml:"ascendingNodeDeg" validate:"required"`

	ArgPerihelionDeg *float64 `json:"argPerihelionDeg,omitempty" yaml:"argPerihelionDeg,omitempty"`
	MeanAnomalyDeg   *float64 `json:"meanAnomalyDeg,omitempty" yaml:"meanAnomalyDeg,omitempty"`

	LongPerihelionDeg *float64 `json:"longPerihelionDeg,omitempty" yaml:"longPerihelionDeg,omitempty"`
	MeanLongitudeDeg  *float64 `json:"meanLongitudeDeg,omitempty" yaml:"meanLongitudeDeg,omitempty"`

	// MotionConstant is the mean motion in degrees per day of an orbit
	// with semi-major axis 1 in this orbit's unit around this orbit's
	// primary. Zero means the solar Gaussian value (AU, days, one solar
	// mass); satellites set it to k·sqrt(M_primary/M_sun).
	MotionConstant float64 `json:"motionConstant,omitempty" yaml:"motionConstant,omitempty" validate:"gte=0"`

	// Epoch is an RFC 3339 timestamp, e.g. "2000-01-01T12:00:00Z" for
	// J2000.0.
	Epoch string `json:"epoch" yaml:"epoch" validate:"required,rfc3339"`
}

// UsesMeanLongitude reports whether the planetary form was given.
func (k *KeplerianMotion) UsesMeanLongitude() bool {
	return k.LongPerihelionDeg != nil || k.MeanLongitudeDeg != nil
}

// CircularMotion is the simplified motion mode: a circle in the reference
// plane around the parent at a constant angular rate.
type CircularMotion struct {
	OrbitRadius          float64 `json:"orbitRadius" yaml:"orbitRadius" validate:"gt=0"`
	AngularRateDegPerSec float64 `json:"angularRateDegPerSec" yaml:"angularRateDegPerSec"`
	InitialPhaseDeg      float64 `json:"initialPhaseDeg,omitempty" yaml:"initialPhaseDeg,omitempty"`
}

// StarSettings carries star-only attributes.
type StarSettings struct {
	Luminosity    float64 `json:"luminosity,omitempty" yaml:"luminosity,omitempty" validate:"gte=0"`
	TemperatureK  float64 `json:"temperatureK,omitempty" yaml:"temperatureK,omitempty" validate:"gte=0"`
	SpectralClass string  `json:"spectralClass,omitempty" yaml:"spectralClass,omitempty"`
}

// PhaseTriad names the bodies used for the illumination readout.
type PhaseTriad struct {
	Observed  string `json:"observed" yaml:"observed" validate:"required"`
	Reference string `json:"reference" yaml:"reference" validate:"required"`
	Light     string `json:"light" yaml:"light" validate:"required"`
}

// TimeSettings seeds the simulation clock.
type TimeSettings struct {
	Scale  *float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Start  string   `json:"start,omitempty" yaml:"start,omitempty" validate:"omitempty,rfc3339"`
	Paused bool     `json:"paused,omitempty" yaml:"paused,omitempty"`
}
