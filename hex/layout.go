package hex

// Layout selects how a Rectangle's offset (col, row) grid maps to axial
// coordinates. Pointy-top layouts shove alternate rows by half a cell,
// flat-top layouts shove alternate columns. The zero value is OddR.
type Layout uint8

const (
	// OddR is pointy-top with odd rows shoved right.
	OddR Layout = iota
	// EvenR is pointy-top with even rows shoved right.
	EvenR
	// OddQ is flat-top with odd columns shoved down.
	OddQ
	// EvenQ is flat-top with even columns shoved down.
	EvenQ
)

var layoutNames = [...]string{"odd-r", "even-r", "odd-q", "even-q"}

// String returns the layout name as accepted by ParseLayout.
func (l Layout) String() string {
	if !l.Valid() {
		return "layout(?)"
	}

	return layoutNames[l]
}

// ParseLayout is the inverse of String.
func ParseLayout(s string) (Layout, bool) {
	for i, name := range layoutNames {
		if name == s {
			return Layout(i), true
		}
	}

	return 0, false
}

// Valid reports whether l is one of the four known layouts.
func (l Layout) Valid() bool {
	return int(l) < len(layoutNames)
}

// PointyTop reports whether the shoved axis is the row.
func (l Layout) PointyTop() bool {
	return l == OddR || l == EvenR
}

// ToAxial converts an offset coordinate in layout l to axial. Every
// numerator below is even, so truncating division is exact for negatives.
func (l Layout) ToAxial(o Offset) Axial {
	switch l {
	case EvenR:
		return Axial{Q: o.Col - (o.Row+(o.Row&1))/2, R: o.Row}
	case OddQ:
		return Axial{Q: o.Col, R: o.Row - (o.Col-(o.Col&1))/2}
	case EvenQ:
		return Axial{Q: o.Col, R: o.Row - (o.Col+(o.Col&1))/2}
	default:
		return Axial{Q: o.Col - (o.Row-(o.Row&1))/2, R: o.Row}
	}
}

// FromAxial converts a to an offset coordinate in layout l.
func (l Layout) FromAxial(a Axial) Offset {
	switch l {
	case EvenR:
		return Offset{Col: a.Q + (a.R+(a.R&1))/2, Row: a.R}
	case OddQ:
		return Offset{Col: a.Q, Row: a.R + (a.Q-(a.Q&1))/2}
	case EvenQ:
		return Offset{Col: a.Q, Row: a.R + (a.Q+(a.Q&1))/2}
	default:
		return Offset{Col: a.Q + (a.R-(a.R&1))/2, Row: a.R}
	}
}
