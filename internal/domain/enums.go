package domain

import "fmt"

type Strategy string

const (
	StrategyGreedy     Strategy = "greedy"
	StrategyExhaustive Strategy = "exhaustive"
	StrategyHybrid     Strategy = "hybrid"
)

// Strategies lists every strategy in display order.
var Strategies = []Strategy{StrategyGreedy, StrategyExhaustive, StrategyHybrid}

// ValidStrategies is the canonical set of accepted strategy strings.
var ValidStrategies = map[string]bool{
	"greedy": true, "exhaustive": true, "hybrid": true,
}

// ParseStrategy converts a user-supplied string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	if !ValidStrategies[s] {
		return "", fmt.Errorf("unknown strategy %q (expected greedy, exhaustive or hybrid)", s)
	}
	return Strategy(s), nil
}

// Method records which search branch actually produced a day's selection.
type Method string

const (
	MethodNone        Method = ""
	MethodGreedy      Method = "greedy"
	MethodExhaustive  Method = "exhaustive"
	MethodLocalSearch Method = "local_search"
)

type ScoringPolicy string

const (
	PolicyDecay      ScoringPolicy = "decay"
	PolicyEqualShare ScoringPolicy = "equal_share"
)

// Axis is one binary classification dimension of an exercise.
type Axis int

const (
	AxisSize Axis = iota
	AxisMechanics
	AxisEquipment
	AxisLaterality
	axisCount
)

// Axes lists every axis in canonical order.
var Axes = [axisCount]Axis{AxisSize, AxisMechanics, AxisEquipment, AxisLaterality}

func (a Axis) String() string {
	switch a {
	case AxisSize:
		return "size"
	case AxisMechanics:
		return "mechanics"
	case AxisEquipment:
		return "equipment"
	case AxisLaterality:
		return "laterality"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// MarshalText lets axes key JSON objects by name.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// SideLabels returns the human names of the First and Second side of an axis.
func (a Axis) SideLabels() (first, second string) {
	switch a {
	case AxisSize:
		return "major", "minor"
	case AxisMechanics:
		return "compound", "isolation"
	case AxisEquipment:
		return "free weight", "machine"
	case AxisLaterality:
		return "bilateral", "unilateral"
	default:
		return "first", "second"
	}
}

// ParseAxis maps a config key to an Axis.
func ParseAxis(s string) (Axis, bool) {
	for _, a := range Axes {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}

// Side is the side of an axis an exercise falls on.
type Side int

const (
	SideNone Side = iota
	SideFirst
	SideSecond
)
