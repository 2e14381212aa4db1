// SPDX-License-Identifier: MIT

package search_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/metapath/core"
	"github.com/katalvlaran/metapath/filter"
	"github.com/katalvlaran/metapath/internal/observability"
	"github.com/katalvlaran/metapath/internal/testnet"
	"github.com/katalvlaran/metapath/model"
	"github.com/katalvlaran/metapath/pathway"
	"github.com/katalvlaran/metapath/search"
)

const succToIcit = "SUCDi-->fum_c FUM-->mal__L_c MDH-->oaa_c CS-->cit_c ACONTa-->acon_C_c ACONTb-->icit_c"

// SearchSuite runs pathway queries against the toy network.
type SearchSuite struct {
	suite.Suite
	m *model.Model
	e *search.Engine
}

func (s *SearchSuite) SetupTest() {
	s.m = testnet.Model(s.T())
	e, err := search.New(s.m)
	s.Require().NoError(err)
	s.e = e
}

// requireWellFormed checks connectivity and reaction uniqueness.
func requireWellFormed(t require.TestingT, p *pathway.Pathway) {
	seen := make(map[int]bool)
	for i := 0; i < p.Len(); i++ {
		e := p.Element(i)
		require.False(t, seen[e.Reaction().ID], "reaction %s reused", e.Reaction().BiggID)
		seen[e.Reaction().ID] = true
		if i > 0 {
			require.True(t, e.Consumes(p.Element(i-1).Output()), "step %d does not connect", i)
		}
	}
}

func (s *SearchSuite) avoid(ids ...string) filter.Filter {
	f, err := filter.NewAvoid(filter.Params{Avoid: ids, Model: s.m})
	s.Require().NoError(err)
	return f
}

func (s *SearchSuite) include(ids ...string) filter.Filter {
	f, err := filter.NewInclude(filter.Params{Include: ids, Model: s.m})
	s.Require().NoError(err)
	return f
}

func (s *SearchSuite) TestGetPathway_Shortest() {
	p, ok := s.e.GetPathway("succ_c", "icit_c")
	s.Require().True(ok)
	s.Equal(succToIcit, p.String())
	s.Equal("icit_c", p.Goal())
	s.True(p.IsComplete())
	requireWellFormed(s.T(), p)
}

func (s *SearchSuite) TestGetPathway_ShortcutThroughGlyoxylate() {
	p, ok := s.e.GetPathway("icit_c", "mal__L_c")
	s.Require().True(ok)
	s.Equal("ICL-->glx_c MALS-->mal__L_c", p.String())
}

func (s *SearchSuite) TestGetPathway_Avoid() {
	p, ok := s.e.GetPathway("icit_c", "mal__L_c", s.avoid("glx_c"))
	s.Require().True(ok)
	s.Equal("ICL-->succ_c SUCDi-->fum_c FUM-->mal__L_c", p.String())
	for _, e := range p.Elements() {
		s.NotEqual("glx_c", e.Output())
	}
}

func (s *SearchSuite) TestGetPathway_Include() {
	p, ok := s.e.GetPathway("icit_c", "mal__L_c", s.include("CITL"))
	s.Require().True(ok)
	s.Equal("ACONTb<--acon_C_c ACONTa<--cit_c CITL-->oaa_c MDH<--mal__L_c", p.String())
	s.True(p.IncludesAll([]string{"CITL"}))
	requireWellFormed(s.T(), p)
}

func (s *SearchSuite) TestGetPathway_IncludeImpossible() {
	s.m.Reaction("ACONTa").SetActive(core.Forward)
	s.m.Reaction("ACONTb").SetActive(core.Forward)

	p, ok := s.e.GetPathway("icit_c", "mal__L_c", s.include("CITL"))
	s.False(ok)
	s.Nil(p)
}

func (s *SearchSuite) TestGetPathway_Unsatisfiable() {
	_, ok := s.e.GetPathway("ac_c", "mal__L_c")
	s.False(ok, "ac_c has no successors")

	_, ok = s.e.GetPathway("succ_c", "accoa_c")
	s.False(ok, "accoa_c has no producers")
}

func (s *SearchSuite) TestGetPathway_LengthLimit() {
	e, err := search.New(s.m, search.WithMaxPathLen(3))
	s.Require().NoError(err)
	s.Equal(3, e.MaxPathLen())

	_, ok := e.GetPathway("succ_c", "icit_c")
	s.False(ok)
}

func (s *SearchSuite) TestExtendPathway_KeepsPrefix() {
	p, ok := s.e.GetPathway("succ_c", "icit_c")
	s.Require().True(ok)

	ext, ok := s.e.ExtendPathway(p, "glu__L_c")
	s.Require().True(ok)
	s.Equal(8, ext.Len())
	for i := 0; i < p.Len(); i++ {
		s.Equal(p.Element(i), ext.Element(i))
	}
	s.Equal("ICDHyr-->akg_c", ext.Element(6).String())
	s.Equal("GLUDy<--glu__L_c", ext.Element(7).String())
	s.Equal("icit_c", p.Goal(), "the input pathway is untouched")
	requireWellFormed(s.T(), ext)
}

func (s *SearchSuite) TestExtendPathway_AvoidCoversPrefix() {
	p, ok := s.e.GetPathway("succ_c", "icit_c")
	s.Require().True(ok)

	_, ok = s.e.ExtendPathway(p, "glu__L_c", s.avoid("fum_c"))
	s.False(ok, "the prefix already reaches fum_c")

	ext, ok := s.e.ExtendPathway(p, "glu__L_c", s.avoid("glx_c"))
	s.Require().True(ok)
	s.Equal(8, ext.Len())
}

func (s *SearchSuite) TestLoopPathway_Irreversible() {
	p, ok := s.e.GetPathway("succ_c", "icit_c")
	s.Require().True(ok)
	s.False(p.IsReversible())

	loop, ok := s.e.LoopPathway(p, "succ_c")
	s.Require().True(ok)
	s.Equal(succToIcit+" ICL-->succ_c", loop.String())
	s.Equal("succ_c", loop.Terminus())
	requireWellFormed(s.T(), loop)
}

func (s *SearchSuite) TestLoopPathway_ReversibleSingleStep() {
	p, ok := s.e.GetPathway("x_c", "y_c")
	s.Require().True(ok)
	s.Equal("XYISO-->y_c", p.String())

	loop, ok := s.e.LoopPathway(p, "x_c")
	s.Require().True(ok)
	s.Equal("XYISO<--x_c", loop.String())
	s.Equal(1, loop.Len())
}

func (s *SearchSuite) TestWellFormedEverywhere() {
	compounds := []string{"succ_c", "icit_c", "akg_c", "fum_c", "mal__L_c", "oaa_c", "cit_c", "glx_c"}
	for _, from := range compounds {
		for _, to := range compounds {
			if from == to {
				continue
			}
			p, ok := s.e.GetPathway(from, to)
			if !ok {
				continue
			}
			requireWellFormed(s.T(), p)
			s.True(p.First().Consumes(from), "%s→%s", from, to)
			s.Equal(to, p.Terminus())
		}
	}
}

func (s *SearchSuite) TestPaint() {
	dist, err := s.e.Paint("icit_c")
	s.Require().NoError(err)
	s.Equal(6, dist["succ_c"])
	s.Equal(1, dist["acon_C_c"])
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func TestGetPathway_Chain(t *testing.T) {
	m := testnet.Chain(t)
	e, err := search.New(m)
	require.NoError(t, err)

	p, ok := e.GetPathway("a_c", "c_c")
	require.True(t, ok)
	require.Equal(t, "R1-->b_c R2-->c_c", p.String())

	_, ok = e.GetPathway("c_c", "a_c")
	require.False(t, ok)
}

func TestNew_Validation(t *testing.T) {
	_, err := search.New(nil)
	require.ErrorIs(t, err, search.ErrNilModel)

	m := testnet.Chain(t)
	_, err = search.New(m, search.WithMaxPathLen(0))
	require.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.New(m, search.WithProgressInterval(-1))
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestSearch_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewSearchMetrics(reg)
	m := testnet.Model(t)
	e, err := search.New(m, search.WithMetrics(metrics), search.WithProgressInterval(1))
	require.NoError(t, err)

	_, ok := e.GetPathway("succ_c", "icit_c")
	require.True(t, ok)
	_, ok = e.GetPathway("ac_c", "icit_c")
	require.False(t, ok)

	require.Equal(t, 1.0, testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues(observability.OutcomeFound)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues(observability.OutcomeInfeasible)))
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Paintings))
	require.Greater(t, testutil.ToFloat64(metrics.PathsProcessed), 5.0)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg := prometheus.NewRegistry()
	metrics := observability.NewSearchMetrics(reg)
	e, err := search.New(testnet.Model(t), search.WithContext(ctx), search.WithMetrics(metrics))
	require.NoError(t, err)

	_, ok := e.GetPathway("succ_c", "icit_c")
	require.False(t, ok)
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.SearchesTotal.WithLabelValues(observability.OutcomeCancelled)))
}
