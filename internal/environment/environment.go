// Package environment converts scenario conditions into the numeric to-hit,
// heat and movement modifiers the combat engine folds into its calculations.
package environment

// Light levels.
type Light int

const (
	LightDay Light = iota
	LightDusk
	LightNight
)

// Precipitation states.
type Precipitation int

const (
	PrecipNone Precipitation = iota
	PrecipLightRain
	PrecipHeavyRain
	PrecipLightSnow
	PrecipHeavySnow
)

// Fog density.
type Fog int

const (
	FogNone Fog = iota
	FogLight
	FogHeavy
)

// Wind strength.
type Wind int

const (
	WindCalm Wind = iota
	WindModerate
	WindHigh
)

// Conditions describes the scenario environment for a game.
type Conditions struct {
	Light         Light
	Precipitation Precipitation
	Fog           Fog
	Wind          Wind
	TemperatureC  int
	GravityG      float64 // 1.0 = standard
	Vacuum        bool
}

// Standard returns clear daytime conditions at standard gravity.
func Standard() Conditions {
	return Conditions{GravityG: 1.0, TemperatureC: 20}
}

// Modifier is one named to-hit contribution, kept separate so ToHitResult
// stays auditable.
type Modifier struct {
	Name  string
	Value int
}

// Modifiers is the full set of effects derived from Conditions.
type Modifiers struct {
	ToHit        []Modifier // applies to every attack
	MissileToHit []Modifier // applies to missile weapons only
	HeatPerTurn  int        // extra heat (may be negative) per turn
	MPMod        int        // movement-point adjustment, consumed by the movement subsystem
}

// Resolve converts conditions into modifiers.
func Resolve(c Conditions) Modifiers {
	var m Modifiers

	switch c.Light {
	case LightDusk:
		m.ToHit = append(m.ToHit, Modifier{"dusk", 1})
	case LightNight:
		m.ToHit = append(m.ToHit, Modifier{"night", 2})
	}

	switch c.Precipitation {
	case PrecipLightRain, PrecipLightSnow:
		m.ToHit = append(m.ToHit, Modifier{"light precipitation", 1})
	case PrecipHeavyRain, PrecipHeavySnow:
		m.ToHit = append(m.ToHit, Modifier{"heavy precipitation", 2})
		m.MPMod = -1
	}

	switch c.Fog {
	case FogLight:
		m.ToHit = append(m.ToHit, Modifier{"light fog", 1})
	case FogHeavy:
		m.ToHit = append(m.ToHit, Modifier{"heavy fog", 2})
	}

	if c.Wind == WindHigh {
		m.MissileToHit = append(m.MissileToHit, Modifier{"high wind", 1})
	}

	// Each started 25 degrees over 50 adds a point of heat per turn;
	// severe cold sheds one.
	if c.TemperatureC > 50 {
		m.HeatPerTurn = (c.TemperatureC-50+24)/25
	} else if c.TemperatureC < -30 {
		m.HeatPerTurn = -1
	}

	// Low gravity is a movement-phase concern; report it, do not touch
	// to-hit.
	if c.GravityG != 0 && c.GravityG < 0.8 {
		m.MPMod++
	}

	return m
}

// Sum adds up a modifier list.
func Sum(mods []Modifier) int {
	total := 0
	for _, m := range mods {
		total += m.Value
	}
	return total
}
