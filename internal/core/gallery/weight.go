package gallery

import "math"

// Default weighting constants.
const (
	DefaultBoost     = 0.6
	DefaultShrink    = 0.3
	DefaultMinWeight = 0.5
)

// Policy controls how hover changes tile weights within a row.
type Policy struct {
	Boost     float64 // added to the hovered entry's weight
	Shrink    float64 // subtracted from each sibling of the hovered entry
	MinWeight float64 // floor applied to shrunk siblings
}

// DefaultPolicy returns the weighting used when a row sets none.
func DefaultPolicy() Policy {
	return Policy{
		Boost:     DefaultBoost,
		Shrink:    DefaultShrink,
		MinWeight: DefaultMinWeight,
	}
}

// IsZero reports whether no field of p is set.
func (p Policy) IsZero() bool {
	return p == Policy{}
}

// OrDefault returns p, or def when p is the zero value.
func (p Policy) OrDefault(def Policy) Policy {
	if p.IsZero() {
		return def
	}
	return p
}

// EntryWeight computes the layout weight of one entry from its base weight
// and the hover state of its row. It holds no state.
func EntryWeight(weight float64, hovered, siblingHovered bool, p Policy) float64 {
	switch {
	case hovered:
		return weight + p.Boost
	case siblingHovered:
		return math.Max(weight-p.Shrink, p.MinWeight)
	default:
		return weight
	}
}

// Weights returns the current layout weight of every entry in the section,
// indexed by row then column. hovered is a flattened index; pass ok=false
// when nothing is hovered.
func Weights(s Section, hovered int, ok bool, def Policy) [][]float64 {
	hoverRow, hoverCol := -1, -1
	if ok {
		if r, c, found := s.Locate(hovered); found {
			hoverRow, hoverCol = r, c
		}
	}

	out := make([][]float64, len(s.Rows))
	for r, row := range s.Rows {
		p := row.Policy.OrDefault(def)
		ws := make([]float64, len(row.Entries))
		for c, e := range row.Entries {
			isHovered := r == hoverRow && c == hoverCol
			sibling := r == hoverRow && c != hoverCol
			ws[c] = EntryWeight(e.Weight, isHovered, sibling, p)
		}
		out[r] = ws
	}
	return out
}
