// Package code - Distribution helpers.
//
// A Distribution is the ordered multiset of slot codes to be arranged into
// one packet template. It is supplied by the host (e.g. read from a
// spreadsheet column) and stays fixed for the duration of one solve.
package code

// Distribution is the ordered multiset of Codes for one packet.
type Distribution []Code

// ParseDistribution converts raw host cells into a Distribution,
// dropping empty-string placeholders. Cell order is preserved.
//
// Complexity: O(n) time, O(n) space.
func ParseDistribution(cells []string) Distribution {
	dist := make(Distribution, 0, len(cells))

	var cell string
	for _, cell = range cells {
		if cell == "" {
			continue // blank filler cells carry no slot
		}
		dist = append(dist, Code(cell))
	}

	return dist
}

// Clone returns an independent copy of d. Solvers mutate their working
// arrangement in place; callers clone first to keep the source pristine.
//
// Complexity: O(n) time and space.
func (d Distribution) Clone() Distribution {
	if d == nil {
		return nil
	}
	out := make(Distribution, len(d))
	copy(out, d)

	return out
}

// Strings renders d back into the host's cell representation.
//
// Complexity: O(n) time and space.
func (d Distribution) Strings() []string {
	out := make([]string, len(d))

	var i int
	for i = 0; i < len(d); i++ {
		out[i] = string(d[i])
	}

	return out
}
