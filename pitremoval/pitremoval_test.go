package pitremoval_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/relief/dem"
	"github.com/katalvlaran/relief/pitremoval"
)

const noData = -9999.0

// mustGrid builds a dem.Grid or fails the test.
func mustGrid(t require.TestingT, values [][]float64) *dem.Grid {
	g, err := dem.New(values, noData)
	require.NoError(t, err)

	return g
}

// RemovePitsSuite exercises RemovePits end to end on small crafted grids.
type RemovePitsSuite struct {
	suite.Suite
}

// TestNilGrid verifies the fail-fast nil check.
func (s *RemovePitsSuite) TestNilGrid() {
	_, err := pitremoval.RemovePits(nil)
	require.ErrorIs(s.T(), err, pitremoval.ErrNilGrid)
}

// TestInvalidStepSize verifies that a non-positive step fails fast with
// ErrInvalidStepSize and leaves the input grid untouched.
func (s *RemovePitsSuite) TestInvalidStepSize() {
	values := [][]float64{
		{10, 10, 10},
		{10, 2, 10},
		{10, 10, 10},
	}
	g := mustGrid(s.T(), values)

	for _, step := range []float64{0, -0.1} {
		res, err := pitremoval.RemovePits(g, pitremoval.WithStepSize(step))
		require.ErrorIs(s.T(), err, pitremoval.ErrInvalidStepSize)
		require.Nil(s.T(), res)
		require.Equal(s.T(), values, g.Values(), "input grid must stay untouched")
	}
}

// TestFlatPlaneWithSinglePit runs the canonical scenario: a 5×5 plane of
// elevation 10 with one interior pit at 2, bordered by a descending ramp
// to 0. The pit must end with a downhill path to the border, nothing may
// exceed the original crest, and since the depression holds only the pit
// cell the balance point is the pit elevation itself: the outflow channel
// is carved down to it.
func (s *RemovePitsSuite) TestFlatPlaneWithSinglePit() {
	g := mustGrid(s.T(), [][]float64{
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 2, 10, 10},
		{10, 10, 10, 10, 10},
		{0, 4, 10, 10, 10},
	})

	res, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)

	requireNoPits(s.T(), res.Grid)
	requireOutletsReachable(s.T(), res.Grid, res.Flow)

	// Exactly one pit, resolved at its own elevation: fill and cut balance
	// at zero volume, and the channel to the border is carved to level 2.
	require.Len(s.T(), res.Pits, 1)
	p := res.Pits[0]
	require.Equal(s.T(), 2, p.Row)
	require.Equal(s.T(), 2, p.Col)
	require.Equal(s.T(), 2.0, p.PitElev)
	require.Equal(s.T(), 10.0, p.CrestElev)
	require.Equal(s.T(), 2.0, p.IdealLevel)
	require.Equal(s.T(), 0.0, p.FillVolume)
	require.Equal(s.T(), 0.0, p.CutVolume)
	require.Equal(s.T(), 8.0, p.CrestFillVolume)

	// The carved channel follows the flood front that reached the pit
	// first: (2,2) -> (1,1) -> (0,0), all at level 2.
	out := res.Grid.Values()
	require.Equal(s.T(), 2.0, out[2][2])
	require.Equal(s.T(), 2.0, out[1][1])
	require.Equal(s.T(), 2.0, out[0][0])

	// Nothing exceeds the original local crest, and untouched cells
	// (including the ramp) keep their elevations.
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			require.LessOrEqual(s.T(), out[r][c], 10.0)
		}
	}
	require.Equal(s.T(), 0.0, out[4][0])
	require.Equal(s.T(), 4.0, out[4][1])

	requireMonotonePitPaths(s.T(), res)
}

// TestHybridBalance verifies the cut/fill balance point on a depression
// whose outflow chain passes through an unconfirmed saddle: a pit at 1
// drains through a cell at 7 toward a 10-elevation rim. Filling costs
// (level−1), cutting the saddle costs (7−level), so the volumes balance at
// level 4: the pit is raised and the channel carved to meet in the middle.
func (s *RemovePitsSuite) TestHybridBalance() {
	g := mustGrid(s.T(), [][]float64{
		{10, 10, 10, 10, 10},
		{10, 7, 10, 10, 10},
		{10, 10, 1, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
	})

	res, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)

	require.Len(s.T(), res.Pits, 1)
	p := res.Pits[0]
	require.Equal(s.T(), 1.0, p.PitElev)
	require.Equal(s.T(), 10.0, p.CrestElev)
	require.InDelta(s.T(), 4.0, p.IdealLevel, 1e-9)
	require.InDelta(s.T(), 3.0, p.FillVolume, 1e-9)
	require.InDelta(s.T(), 3.0, p.CutVolume, 1e-9)
	require.Equal(s.T(), 12.0, p.CrestFillVolume)

	out := res.Grid.Values()
	require.InDelta(s.T(), 4.0, out[2][2], 1e-9) // pit filled up
	require.InDelta(s.T(), 4.0, out[1][1], 1e-9) // saddle cut down
	require.InDelta(s.T(), 4.0, out[0][0], 1e-9) // channel opened to border

	requireNoPits(s.T(), res.Grid)
	requireOutletsReachable(s.T(), res.Grid, res.Flow)
	requireMonotonePitPaths(s.T(), res)
}

// TestCarveReachesSpillBeyondFilledCells covers a depression whose outflow
// chain first crosses cells of its own extent before the saddle: pit 1
// drains through 2 and then over a saddle at 6. The fill raises the 2-cell
// to the ideal level 3, and the carve must keep walking through that
// freshly filled cell to cut the saddle (and the rim beyond), or the pool
// stays sealed at 6.
func (s *RemovePitsSuite) TestCarveReachesSpillBeyondFilledCells() {
	g := mustGrid(s.T(), [][]float64{
		{10, 10, 10, 10, 10},
		{10, 6, 10, 10, 10},
		{10, 2, 10, 10, 10},
		{10, 1, 10, 10, 10},
		{10, 10, 10, 10, 10},
	})

	res, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)

	// One pit: fill (3-1)+(3-2) balances cut (6-3) at level 3.
	require.Len(s.T(), res.Pits, 1)
	p := res.Pits[0]
	require.Equal(s.T(), 3, p.Row)
	require.Equal(s.T(), 1, p.Col)
	require.Equal(s.T(), 1.0, p.PitElev)
	require.Equal(s.T(), 10.0, p.CrestElev)
	require.InDelta(s.T(), 3.0, p.IdealLevel, 1e-9)
	require.InDelta(s.T(), 3.0, p.FillVolume, 1e-9)
	require.InDelta(s.T(), 3.0, p.CutVolume, 1e-9)
	require.Equal(s.T(), 21.0, p.CrestFillVolume)

	// The whole channel is open: pit and in-extent cell filled to 3, the
	// saddle and the rim carved down to 3.
	out := res.Grid.Values()
	require.InDelta(s.T(), 3.0, out[3][1], 1e-9)
	require.InDelta(s.T(), 3.0, out[2][1], 1e-9)
	require.InDelta(s.T(), 3.0, out[1][1], 1e-9, "saddle must be carved, not left sealing the pool")
	require.InDelta(s.T(), 3.0, out[0][0], 1e-9)

	requireNoPits(s.T(), res.Grid)
	requireOutletsReachable(s.T(), res.Grid, res.Flow)
	requireMonotonePitPaths(s.T(), res)

	// The opened channel survives a second pass untouched.
	again, aerr := pitremoval.RemovePits(res.Grid)
	require.NoError(s.T(), aerr)
	require.Equal(s.T(), res.Grid.Values(), again.Grid.Values())
}

// TestFlatPairDepression covers a two-cell plateau depression: two adjacent
// cells at 2 in a plane of 10. The first cell popped is saved by its
// equal-elevation unvisited twin, the second is the pit; the carve then has
// to pass through the unconfirmed twin (already at the ideal level) and cut
// the rim behind it.
func (s *RemovePitsSuite) TestFlatPairDepression() {
	g := mustGrid(s.T(), [][]float64{
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 2, 2, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
	})

	res, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)

	// One pit at the twin reached second; the balance point is the plateau
	// elevation itself, so no volume moves inside the depression.
	require.Len(s.T(), res.Pits, 1)
	p := res.Pits[0]
	require.Equal(s.T(), 2, p.Row)
	require.Equal(s.T(), 3, p.Col)
	require.Equal(s.T(), 2.0, p.PitElev)
	require.Equal(s.T(), 10.0, p.CrestElev)
	require.Equal(s.T(), 2.0, p.IdealLevel)
	require.Equal(s.T(), 0.0, p.FillVolume)
	require.Equal(s.T(), 0.0, p.CutVolume)
	require.Equal(s.T(), 16.0, p.CrestFillVolume)

	// The rim behind the twin is carved to the plateau level; the plateau
	// itself is untouched.
	out := res.Grid.Values()
	require.Equal(s.T(), 2.0, out[2][2])
	require.Equal(s.T(), 2.0, out[2][3])
	require.Equal(s.T(), 2.0, out[1][1], "rim behind the plateau must be carved open")
	require.Equal(s.T(), 2.0, out[0][0])

	requireNoPits(s.T(), res.Grid)
	requireOutletsReachable(s.T(), res.Grid, res.Flow)
	requireMonotonePitPaths(s.T(), res)

	again, aerr := pitremoval.RemovePits(res.Grid)
	require.NoError(s.T(), aerr)
	require.Equal(s.T(), res.Grid.Values(), again.Grid.Values())
}

// TestPitAdjacentToNoData verifies that a pit one cell away from a no-data
// region needs no work at all: the outlet is immediate, so the grid comes
// back unchanged and the seed's flow direction points into the no-data
// neighbor.
func (s *RemovePitsSuite) TestPitAdjacentToNoData() {
	values := [][]float64{
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
		{noData, 1, 10, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
	}
	g := mustGrid(s.T(), values)

	res, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)

	require.Empty(s.T(), res.Pits, "an immediate outlet leaves nothing to resolve")
	require.Equal(s.T(), values, res.Grid.Values())

	d, err := res.Flow.Dir(2, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), dem.W, d, "seed must point toward its no-data neighbor")

	// No-data propagates unchanged and keeps an undefined direction.
	require.True(s.T(), res.Grid.IsNoData(2, 0))
	d, err = res.Flow.Dir(2, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), dem.DirUndefined, d)
}

// TestInputNeverMutated verifies the clone contract on a successful run.
func (s *RemovePitsSuite) TestInputNeverMutated() {
	values := [][]float64{
		{10, 10, 10, 10, 10},
		{10, 7, 10, 10, 10},
		{10, 10, 1, 10, 10},
		{10, 10, 10, 10, 10},
		{10, 10, 10, 10, 10},
	}
	g := mustGrid(s.T(), values)

	_, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), values, g.Values())
}

// TestIdempotence verifies that a second run on the output changes nothing.
func (s *RemovePitsSuite) TestIdempotence() {
	g := mustGrid(s.T(), [][]float64{
		{10, 10, 10, 10, 10},
		{10, 7, 10, 10, 10},
		{10, 10, 1, 10, 10},
		{10, 10, 10, 10, 10},
		{0, 4, 10, 3, 10},
	})

	first, err := pitremoval.RemovePits(g)
	require.NoError(s.T(), err)
	second, err := pitremoval.RemovePits(first.Grid)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first.Grid.Values(), second.Grid.Values())
}

func TestRemovePitsSuite(t *testing.T) {
	suite.Run(t, new(RemovePitsSuite))
}
