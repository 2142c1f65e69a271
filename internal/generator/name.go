package generator

import "github.com/jonathan/cvgen/internal/tables"

// Name is a synthesized Spanish full name with two surnames
type Name struct {
	First     string
	LastName1 string
	LastName2 string
}

// Full returns "First Last1 Last2".
func (n Name) Full() string {
	return n.First + " " + n.LastName1 + " " + n.LastName2
}

// Name draws a first name and two distinct surnames.
func (g *Generator) Name() Name {
	last := tables.LastNames
	i := g.rng.IntN(len(last))
	// Draw the second surname from the remaining n-1 values.
	j := g.rng.IntN(len(last) - 1)
	if j >= i {
		j++
	}
	return Name{
		First:     g.pick(tables.FirstNames),
		LastName1: last[i],
		LastName2: last[j],
	}
}
