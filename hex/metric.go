package hex

// Distance returns the hex distance between a and b: the largest absolute
// difference of their cube components.
func Distance(a, b Axial) int {
	dq, dr, ds := abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S())

	return max(dq, dr, ds)
}

// Ring returns the cells at exactly radius steps from center, clockwise,
// starting at the NW corner. Radius 0 yields the center alone; a negative
// radius yields nil.
func Ring(center Axial, radius int) []Axial {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Axial{center}
	}
	out := make([]Axial, 0, 6*radius)
	c := center.Add(directions[NW].Scale(radius))
	for d := range directions {
		for k := 0; k < radius; k++ {
			out = append(out, c)
			c = c.Add(directions[d])
		}
	}

	return out
}

// Spiral returns every cell within radius of center, ring by ring from the
// center outwards. len = 3R(R+1)+1.
func Spiral(center Axial, radius int) []Axial {
	if radius < 0 {
		return nil
	}
	out := make([]Axial, 0, hexagonCount(radius))
	for k := 0; k <= radius; k++ {
		out = append(out, Ring(center, k)...)
	}

	return out
}

// Range returns every cell within radius of center ordered by r, then q.
func Range(center Axial, radius int) []Axial {
	if radius < 0 {
		return nil
	}
	out := make([]Axial, 0, hexagonCount(radius))
	for r := -radius; r <= radius; r++ {
		for q := max(-radius, -r-radius); q <= min(radius, -r+radius); q++ {
			out = append(out, center.Add(Axial{Q: q, R: r}))
		}
	}

	return out
}

func hexagonCount(radius int) int {
	return 3*radius*(radius+1) + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}

	return v
}
