package arbor

import "strconv"

// Unit selects how a Coordinate value is interpreted.
type Unit uint8

const (
	UnitPixel   Unit = iota // absolute pixels, multiplied by the container's scaling
	UnitPercent             // percentage of the container size
)

// Coordinate is either an absolute pixel offset or a percentage of the
// container size. Coordinates compare structurally with ==.
type Coordinate struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel coordinate.
func Px(v float64) Coordinate { return Coordinate{Value: v, Unit: UnitPixel} }

// Pct returns a percentage coordinate.
func Pct(v float64) Coordinate { return Coordinate{Value: v, Unit: UnitPercent} }

// ToPixels resolves the coordinate against a container size in pixels and the
// container's cumulative scaling. Percentages ignore scaling because the
// container size is already in screen pixels.
func (c Coordinate) ToPixels(containerSize, scaling float64) float64 {
	if c.Unit == UnitPercent {
		return c.Value / 100 * containerSize
	}
	return c.Value * scaling
}

func (c Coordinate) String() string {
	s := strconv.FormatFloat(c.Value, 'g', -1, 64)
	if c.Unit == UnitPercent {
		return s + "%"
	}
	return s + "px"
}
