package subset

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/prysmaticlabs/go-bitfield"
)

var (
	// ErrIndexOutOfRange indicates a site index < 0 or >= the universe size.
	ErrIndexOutOfRange = errors.New("subset: site index out of range")
	// ErrDuplicateSite indicates the same site listed twice in a selection.
	ErrDuplicateSite = errors.New("subset: duplicate site index")
	// ErrBadCardinality indicates operands whose active counts differ.
	ErrBadCardinality = errors.New("subset: operands select different numbers of sites")
	// ErrLengthMismatch indicates operands over different universe sizes.
	ErrLengthMismatch = errors.New("subset: operands cover different universes")
)

// Subset is a selection of sites out of a fixed universe of candidates.
// The zero value is unusable; build one with FromIndices or Random.
type Subset struct {
	bits bitfield.Bitlist
}

// FromIndices builds a selection over universe sites activating exactly the
// given indices. Indices may arrive in any order; duplicates are rejected.
func FromIndices(universe int, indices []int) (Subset, error) {
	s := empty(universe)
	for _, idx := range indices {
		if idx < 0 || idx >= universe {
			return Subset{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, idx, universe)
		}
		if s.bits.BitAt(uint64(idx)) {
			return Subset{}, fmt.Errorf("%w: %d", ErrDuplicateSite, idx)
		}
		s.bits.SetBitAt(uint64(idx), true)
	}
	return s, nil
}

// Random draws a uniformly random selection of size sites from a universe
// candidates, using the first size entries of a permutation of the universe.
func Random(universe, size int, rng *rand.Rand) Subset {
	s := empty(universe)
	for _, idx := range rng.Perm(universe)[:size] {
		s.bits.SetBitAt(uint64(idx), true)
	}
	return s
}

func empty(universe int) Subset {
	return Subset{bits: bitfield.NewBitlist(uint64(universe))}
}

// Len returns the universe size L.
func (s Subset) Len() int { return int(s.bits.Len()) }

// Count returns the number of active sites M.
func (s Subset) Count() int { return int(s.bits.Count()) }

// Contains reports whether site idx is active.
func (s Subset) Contains(idx int) bool {
	if idx < 0 || idx >= s.Len() {
		return false
	}
	return s.bits.BitAt(uint64(idx))
}

// Indices returns the active site indices in ascending order.
func (s Subset) Indices() []int { return s.bits.BitIndices() }

// Equal reports whether both selections cover the same universe and
// activate the same sites.
func (s Subset) Equal(o Subset) bool {
	return s.bits.Len() == o.bits.Len() && bytes.Equal(s.bits, o.bits)
}

// Clone returns an independent copy; mutating it leaves s untouched.
func (s Subset) Clone() Subset {
	c := Subset{bits: make(bitfield.Bitlist, len(s.bits))}
	copy(c.bits, s.bits)
	return c
}

// String renders the selection as its active indices over the universe,
// e.g. "{0,3,7}/10".
func (s Subset) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, idx := range s.Indices() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteString("}/")
	b.WriteString(strconv.Itoa(s.Len()))
	return b.String()
}

// Crossover combines two parents of equal universe and cardinality into a
// child of the same cardinality, drawn uniformly from the parents' union of
// active sites. Should the union ever hold fewer sites than the required
// cardinality, the child is a copy of the first parent, which keeps the
// selection feasible. With identical parents the child equals them.
func Crossover(a, b Subset, rng *rand.Rand) (Subset, error) {
	if a.bits.Len() != b.bits.Len() {
		return Subset{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	if a.bits.Count() != b.bits.Count() {
		return Subset{}, fmt.Errorf("%w: %d vs %d", ErrBadCardinality, a.Count(), b.Count())
	}

	var union []int
	for idx := 0; idx < a.Len(); idx++ {
		if a.Contains(idx) || b.Contains(idx) {
			union = append(union, idx)
		}
	}
	need := a.Count()
	if len(union) < need {
		return a.Clone(), nil
	}

	child := empty(a.Len())
	rng.Shuffle(len(union), func(i, j int) { union[i], union[j] = union[j], union[i] })
	for _, idx := range union[:need] {
		child.bits.SetBitAt(uint64(idx), true)
	}
	return child, nil
}

// Mutate swaps one uniformly chosen active site for one uniformly chosen
// inactive site, in place. When every site is active (or none is) there is
// nothing to swap and the selection is left unchanged.
func (s *Subset) Mutate(rng *rand.Rand) {
	active := s.Indices()
	if len(active) == 0 || len(active) == s.Len() {
		return
	}
	inactive := make([]int, 0, s.Len()-len(active))
	for idx := 0; idx < s.Len(); idx++ {
		if !s.bits.BitAt(uint64(idx)) {
			inactive = append(inactive, idx)
		}
	}
	out := active[rng.Intn(len(active))]
	in := inactive[rng.Intn(len(inactive))]
	s.bits.SetBitAt(uint64(out), false)
	s.bits.SetBitAt(uint64(in), true)
}
