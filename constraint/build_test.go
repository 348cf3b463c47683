package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/packetforge/code"
	"github.com/katalvlaran/packetforge/constraint"
)

// BuildSuite exercises constraint construction across flags, counts, and
// boundary roundings.
type BuildSuite struct {
	suite.Suite
}

// adjacencyOf filters cs down to adjacency constraints (empty Bound).
func adjacencyOf(cs []constraint.Constraint) []constraint.Constraint {
	out := make([]constraint.Constraint, 0, len(cs))
	for _, c := range cs {
		if c.Bound == "" {
			out = append(out, c)
		}
	}

	return out
}

// windowsOf filters cs down to window constraints bound to prefix.
func windowsOf(cs []constraint.Constraint, prefix string) []constraint.Constraint {
	out := make([]constraint.Constraint, 0, len(cs))
	for _, c := range cs {
		if string(c.Bound) == prefix {
			out = append(out, c)
		}
	}

	return out
}

// TestAdjacencyPerPair verifies size−1 adjacency constraints over
// consecutive positions.
func (s *BuildSuite) TestAdjacencyPerPair() {
	dist := code.Distribution{"1A1a", "2B1a", "3C1c", "4D1d", "5E1e", "6F1f"}
	adj := adjacencyOf(constraint.Build(dist))

	require.Len(s.T(), adj, len(dist)-1)
	for i, c := range adj {
		require.Equal(s.T(), i, c.Start)
		require.Equal(s.T(), i+1, c.End)
	}
}

// TestDegenerateSizes verifies that sizes 0 and 1 emit nothing.
func (s *BuildSuite) TestDegenerateSizes() {
	require.Empty(s.T(), constraint.Build(nil))
	require.Empty(s.T(), constraint.Build(code.Distribution{"1A1a"}))
}

// TestSpreadWindows checks flag 'A': count windows of width size/count,
// limit 1 each.
func (s *BuildSuite) TestSpreadWindows() {
	// "1A" appears twice with flag 'A'; "2C"/"3D" flags are unconstrained.
	dist := code.Distribution{"1A1x", "2C1x", "1A2x", "2C2x", "3D1x", "3D2x"}
	cs := constraint.Build(dist)

	ws := windowsOf(cs, "1A")
	require.Len(s.T(), ws, 2)
	require.Equal(s.T(), 0, ws[0].Start)
	require.Equal(s.T(), 2, ws[0].End)
	require.Equal(s.T(), 3, ws[1].Start)
	require.Equal(s.T(), 5, ws[1].End)
	for _, w := range ws {
		require.Equal(s.T(), 1, w.Limit)
	}

	// Unconstrained flags contribute no windows at either granularity.
	require.Empty(s.T(), windowsOf(cs, "2C"))
	require.Empty(s.T(), windowsOf(cs, "3D"))
}

// TestSplitWindows checks flag 'B': two halves, limit ceil(count/2).
func (s *BuildSuite) TestSplitWindows() {
	dist := code.Distribution{"2B1x", "2B2x", "2B3x", "3C1x", "4D1x", "5E1x"}
	ws := windowsOf(constraint.Build(dist), "2B")

	require.Len(s.T(), ws, 2)
	require.Equal(s.T(), 0, ws[0].Start)
	require.Equal(s.T(), 2, ws[0].End)
	require.Equal(s.T(), 3, ws[1].Start)
	require.Equal(s.T(), 5, ws[1].End)
	require.Equal(s.T(), 2, ws[0].Limit) // ceil(3/2)
	require.Equal(s.T(), 2, ws[1].Limit)
}

// TestRoundedWindowBounds pins the round(i·w)..round((i+1)·w−1) tiling on
// non-integral widths (size 7).
func (s *BuildSuite) TestRoundedWindowBounds() {
	// "2B" twice in a 7-slot packet: width 3.5 ⇒ halves [0..3] and [4..6].
	split := code.Distribution{"2B1x", "3C1x", "2B2x", "4D1x", "5E1x", "6F1x", "7G1x"}
	ws := windowsOf(constraint.Build(split), "2B")
	require.Len(s.T(), ws, 2)
	require.Equal(s.T(), [2]int{0, 3}, [2]int{ws[0].Start, ws[0].End})
	require.Equal(s.T(), [2]int{4, 6}, [2]int{ws[1].Start, ws[1].End})

	// "1A" three times in a 7-slot packet: width 7/3 ⇒ [0..1],[2..4],[5..6].
	spread := code.Distribution{"1A1x", "3C1x", "1A2x", "4D1x", "1A3x", "6F1x", "7G1x"}
	ws = windowsOf(constraint.Build(spread), "1A")
	require.Len(s.T(), ws, 3)
	require.Equal(s.T(), [2]int{0, 1}, [2]int{ws[0].Start, ws[0].End})
	require.Equal(s.T(), [2]int{2, 4}, [2]int{ws[1].Start, ws[1].End})
	require.Equal(s.T(), [2]int{5, 6}, [2]int{ws[2].Start, ws[2].End})
}

// TestSubcategoryWindows checks the 4-char granularity with 'a'/'b' flags.
func (s *BuildSuite) TestSubcategoryWindows() {
	// Category "3C" has flag 'C' (unconstrained) but subkey "3C1a" repeats
	// with subflag 'a' ⇒ two spread windows of width 2.
	dist := code.Distribution{"3C1a", "2B1x", "3C1a", "4D1x"}
	cs := constraint.Build(dist)

	require.Empty(s.T(), windowsOf(cs, "3C"))

	ws := windowsOf(cs, "3C1a")
	require.Len(s.T(), ws, 2)
	require.Equal(s.T(), [2]int{0, 1}, [2]int{ws[0].Start, ws[0].End})
	require.Equal(s.T(), [2]int{2, 3}, [2]int{ws[1].Start, ws[1].End})
	require.Equal(s.T(), 1, ws[0].Limit)
}

// TestSingletonGroupsSkipped verifies count < 2 emits nothing even for
// flagged codes.
func (s *BuildSuite) TestSingletonGroupsSkipped() {
	dist := code.Distribution{"1A1a", "2B1b", "3C1c"}
	cs := constraint.Build(dist)

	require.Empty(s.T(), windowsOf(cs, "1A"))
	require.Empty(s.T(), windowsOf(cs, "2B"))
	require.Empty(s.T(), windowsOf(cs, "1A1a"))
	require.Empty(s.T(), windowsOf(cs, "2B1b"))
}

// TestShortTokensTolerated verifies malformed codes degrade coverage
// instead of crashing.
func (s *BuildSuite) TestShortTokensTolerated() {
	dist := code.Distribution{"1A", "x", "1A1a", ""}
	require.NotPanics(s.T(), func() { constraint.Build(dist) })

	// "1A" and "1A1a" still group at category granularity (count 2,
	// flag 'A') even though only one carries a subkey.
	ws := windowsOf(constraint.Build(dist), "1A")
	require.Len(s.T(), ws, 2)
}

// TestBuildOnlyReads verifies the distribution is not reordered or mutated.
func (s *BuildSuite) TestBuildOnlyReads() {
	dist := code.Distribution{"1A1a", "1A2a", "2B1a", "2B2a"}
	before := dist.Clone()

	_ = constraint.Build(dist)
	require.Equal(s.T(), before, dist)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}
