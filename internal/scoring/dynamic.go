package scoring

import (
	"fmt"

	"github.com/alexanderramin/liftplan/internal/domain"
)

// Day is the same-day and same-week context the dynamic scorer reads.
// Records are placed in position order; the weekly set is never written.
type Day struct {
	cls      *domain.Classification
	weekly   domain.IDSet
	placed   []int
	families map[string]struct{}
	sides    [len(domain.Axes)][3]int
	covered  map[string]int
}

// NewDay starts an empty day against the given weekly-used set.
func (s *Scorer) NewDay(weekly domain.IDSet) *Day {
	return &Day{
		cls:      s.cls,
		weekly:   weekly,
		families: make(map[string]struct{}),
		covered:  make(map[string]int),
	}
}

// Place appends id at the next position.
func (d *Day) Place(id int) {
	d.placed = append(d.placed, id)
	if fam := d.cls.FamilyOf(id); fam != "" {
		d.families[fam] = struct{}{}
	}
	for _, axis := range domain.Axes {
		d.sides[axis][d.cls.SideOf(axis, id)]++
	}
	for _, cat := range d.cls.CategoriesOf(id) {
		d.covered[cat]++
	}
}

// Reset clears today's placements, keeping the weekly set.
func (d *Day) Reset() {
	d.placed = d.placed[:0]
	clear(d.families)
	clear(d.covered)
	d.sides = [len(domain.Axes)][3]int{}
}

func (d *Day) Len() int {
	return len(d.placed)
}

// Placed returns the ids placed so far, in position order.
func (d *Day) Placed() []int {
	return d.placed
}

func (d *Day) usesFamily(fam string) bool {
	_, ok := d.families[fam]
	return ok
}

type ReasonCode string

const (
	ReasonPositionBonus  ReasonCode = "POSITION_BONUS"
	ReasonBalancePenalty ReasonCode = "BALANCE_PENALTY"
	ReasonSameFamily     ReasonCode = "SAME_FAMILY"
	ReasonWeeklyRepeat   ReasonCode = "WEEKLY_REPEAT"
	ReasonMuscleOverlap  ReasonCode = "MUSCLE_GROUP_OVERLAP"
)

// Reason explains one non-zero dynamic factor.
type Reason struct {
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
	Delta   float64    `json:"delta"`
}

type factor struct {
	code    ReasonCode
	eval    func(id, position int, d *Day) float64
	message func(id int, d *Day) string
}

// Dynamic returns the position- and history-dependent adjustment for placing
// id at the zero-based position after the records already in d.
func (s *Scorer) Dynamic(id, position int, d *Day) float64 {
	var score float64
	for _, f := range s.factors {
		score += f.eval(id, position, d)
	}
	return score
}

// Explain breaks Dynamic down into one Reason per non-zero factor.
func (s *Scorer) Explain(id, position int, d *Day) []Reason {
	var reasons []Reason
	for _, f := range s.factors {
		delta := f.eval(id, position, d)
		if delta == 0 {
			continue
		}
		reasons = append(reasons, Reason{
			Code:    f.code,
			Message: f.message(id, d),
			Delta:   delta,
		})
	}
	return reasons
}

func (s *Scorer) buildFactors() []factor {
	var factors []factor
	for _, axis := range domain.Axes {
		if table, ok := s.weights.Position[axis]; ok {
			factors = append(factors, s.positionFactor(axis, table))
		}
	}
	for _, axis := range domain.Axes {
		if rule, ok := s.weights.Balance[axis]; ok {
			factors = append(factors, s.balanceFactor(axis, rule))
		}
	}
	return append(factors,
		s.sameFamilyFactor(),
		s.weeklyRepeatFactor(),
		s.muscleOverlapFactor(),
	)
}

func (s *Scorer) sideLabel(axis domain.Axis, id int) string {
	first, second := axis.SideLabels()
	if s.cls.SideOf(axis, id) == domain.SideSecond {
		return second
	}
	return first
}

func (s *Scorer) positionFactor(axis domain.Axis, table PositionTable) factor {
	return factor{
		code: ReasonPositionBonus,
		eval: func(id, position int, _ *Day) float64 {
			var scores []float64
			switch s.cls.SideOf(axis, id) {
			case domain.SideFirst:
				scores = table.First
			case domain.SideSecond:
				scores = table.Second
			}
			if position < 0 || position >= len(scores) {
				return 0
			}
			return scores[position]
		},
		message: func(id int, _ *Day) string {
			return fmt.Sprintf("%s exercise at this position", s.sideLabel(axis, id))
		},
	}
}

func (s *Scorer) balanceFactor(axis domain.Axis, rule BalanceRule) factor {
	return factor{
		code: ReasonBalancePenalty,
		eval: func(id, _ int, d *Day) float64 {
			side := s.cls.SideOf(axis, id)
			if side == domain.SideNone {
				return 0
			}
			if d.sides[axis][side] >= rule.Threshold {
				return rule.Penalty
			}
			return 0
		},
		message: func(id int, d *Day) string {
			return fmt.Sprintf("already %d %s exercises today", d.sides[axis][s.cls.SideOf(axis, id)], s.sideLabel(axis, id))
		},
	}
}

func (s *Scorer) sameFamilyFactor() factor {
	return factor{
		code: ReasonSameFamily,
		eval: func(id, _ int, d *Day) float64 {
			fam := s.cls.FamilyOf(id)
			if fam != "" && d.usesFamily(fam) {
				return s.weights.Penalties.SameFamily
			}
			return 0
		},
		message: func(id int, _ *Day) string {
			return fmt.Sprintf("%s family already trained today", s.cls.FamilyOf(id))
		},
	}
}

func (s *Scorer) weeklyRepeatFactor() factor {
	return factor{
		code: ReasonWeeklyRepeat,
		eval: func(id, _ int, d *Day) float64 {
			if d.weekly.Has(id) {
				return s.weights.Penalties.WeeklyRepeat
			}
			return 0
		},
		message: func(int, *Day) string {
			return "already selected earlier this week"
		},
	}
}

func (s *Scorer) muscleOverlapFactor() factor {
	overlap := func(id int, d *Day) int {
		n := 0
		for _, cat := range s.cls.CategoriesOf(id) {
			if d.covered[cat] > 0 {
				n++
			}
		}
		return n
	}
	return factor{
		code: ReasonMuscleOverlap,
		eval: func(id, _ int, d *Day) float64 {
			return s.weights.Penalties.SameMuscleGroup * float64(overlap(id, d))
		},
		message: func(id int, d *Day) string {
			return fmt.Sprintf("%d muscle group(s) already covered today", overlap(id, d))
		},
	}
}
