package convention

import (
	"fmt"

	"github.com/nao1215/fancyindex/internal/daterange"
	"github.com/nao1215/fancyindex/internal/model"
)

// datedFragment is a fragment whose text parsed to a range.
type datedFragment struct {
	dates  daterange.Range
	struck bool
}

// pair combines name chunks and date fragments into instances.
//
// Alternative names yield one instance per date carrying a combined
// override. Otherwise N names and D dates pair positionally when N == D,
// one name repeats for every date, or one date is shared by every name.
// Any other shape is an error.
func pair(names nameCell, dates []datedFragment, virtual bool) ([]model.ConventionInstance, error) {
	n, d := len(names.chunks), len(dates)
	if n == 0 || d == 0 {
		return nil, fmt.Errorf("row has %d names and %d dates", n, d)
	}

	var out []model.ConventionInstance
	build := func(c chunk, f datedFragment, cancelled bool, override string) {
		inst := c.instance()
		inst.Dates = f.dates.WithCancelled(f.struck)
		inst.Cancelled = cancelled
		inst.Virtual = virtual && !cancelled
		inst.Override = override
		out = append(out, inst)
	}

	switch {
	case names.alternatives:
		override := names.override()
		struck := names.anyStruck()
		for _, f := range dates {
			build(names.chunks[0], f, struck || f.struck, override)
		}
	case n == d:
		for i := range names.chunks {
			build(names.chunks[i], dates[i], names.chunks[i].struck || dates[i].struck, "")
		}
	case n == 1:
		for _, f := range dates {
			build(names.chunks[0], f, names.chunks[0].struck || f.struck, "")
		}
	case d == 1:
		for _, c := range names.chunks {
			build(c, dates[0], c.struck || dates[0].struck, "")
		}
	default:
		return nil, fmt.Errorf("cannot pair %d names with %d dates", n, d)
	}
	return out, nil
}
