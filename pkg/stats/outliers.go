package stats

// Band is a closed interval [Lower, Upper].
type Band struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies inside the band, bounds included.
func (b Band) Contains(v float64) bool {
	return v >= b.Lower && v <= b.Upper
}

// PercentileBand returns the [lower, upper] percentile interval of x.
func PercentileBand(x []float64, lower, upper float64) Band {
	return Band{Lower: Percentile(x, lower), Upper: Percentile(x, upper)}
}

// Mask marks which rows satisfy a predicate.
type Mask []bool

// WithinBand marks the values of x that fall inside b.
func WithinBand(x []float64, b Band) Mask {
	m := make(Mask, len(x))
	for i, v := range x {
		m[i] = b.Contains(v)
	}
	return m
}

// LessEq marks rows where a[i] <= b[i].
func LessEq(a, b []float64) Mask {
	m := make(Mask, len(a))
	for i := range a {
		m[i] = a[i] <= b[i]
	}
	return m
}

// And combines masks of equal length; a row survives only if every mask keeps it.
func And(masks ...Mask) Mask {
	if len(masks) == 0 {
		return nil
	}
	out := make(Mask, len(masks[0]))
	for i := range out {
		out[i] = true
		for _, m := range masks {
			if !m[i] {
				out[i] = false
				break
			}
		}
	}
	return out
}

// Count returns the number of kept rows.
func (m Mask) Count() int {
	n := 0
	for _, keep := range m {
		if keep {
			n++
		}
	}
	return n
}
