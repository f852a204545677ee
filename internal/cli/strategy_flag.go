package cli

import (
	"strings"

	"github.com/alexanderramin/liftplan/internal/domain"
	"github.com/spf13/pflag"
)

// strategyValue is a pflag.Value that only accepts known strategies.
type strategyValue struct {
	s *domain.Strategy
}

var _ pflag.Value = (*strategyValue)(nil)

func newStrategyValue(p *domain.Strategy) *strategyValue {
	return &strategyValue{s: p}
}

func (v *strategyValue) String() string {
	if v.s == nil {
		return ""
	}
	return string(*v.s)
}

func (v *strategyValue) Set(raw string) error {
	s, err := domain.ParseStrategy(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return err
	}
	*v.s = s
	return nil
}

func (v *strategyValue) Type() string {
	return "strategy"
}

// strategyListValue is a comma-separated list of strategies.
type strategyListValue struct {
	list    *[]domain.Strategy
	changed bool
}

var _ pflag.Value = (*strategyListValue)(nil)

func newStrategyListValue(p *[]domain.Strategy, defaults ...domain.Strategy) *strategyListValue {
	*p = defaults
	return &strategyListValue{list: p}
}

func (v *strategyListValue) String() string {
	parts := make([]string, len(*v.list))
	for i, s := range *v.list {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

// Set replaces the defaults on first use and appends afterwards, so
// "--strategies greedy --strategies exhaustive" works like "greedy,exhaustive".
func (v *strategyListValue) Set(raw string) error {
	var parsed []domain.Strategy
	for _, part := range strings.Split(raw, ",") {
		var s domain.Strategy
		if err := newStrategyValue(&s).Set(part); err != nil {
			return err
		}
		parsed = append(parsed, s)
	}
	if !v.changed {
		*v.list = nil
		v.changed = true
	}
	*v.list = append(*v.list, parsed...)
	return nil
}

func (v *strategyListValue) Type() string {
	return "strategies"
}
