// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/metapath/internal/testnet"
)

// CLISuite runs the command against the toy map written to a temp dir.
type CLISuite struct {
	suite.Suite
	dir     string
	mapPath string
	aliases string
}

func (s *CLISuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.mapPath = s.write("toy.json", string(testnet.MapJSON))
	s.aliases = s.write("aliases.tsv", string(testnet.AliasTable))
}

func (s *CLISuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes metapath with args and returns stdout.
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "disabled", "--aliases", s.aliases}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func (s *CLISuite) read(path string) string {
	body, err := os.ReadFile(path)
	s.Require().NoError(err)

	return string(body)
}

func dataLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")[1:]
}

func (s *CLISuite) TestPathway() {
	out, err := s.run("pathway", s.mapPath, "succ_c", "icit_c")
	s.Require().NoError(err)
	rows := dataLines(out)
	s.Require().Len(rows, 6)
	s.True(strings.HasPrefix(rows[0], "1\tSUCDi\t"))
	s.True(strings.HasPrefix(rows[5], "6\tACONTb\t"))
}

func (s *CLISuite) TestPathway_Extend() {
	out, err := s.run("pathway", s.mapPath, "succ_c", "icit_c", "glu__L_c")
	s.Require().NoError(err)
	s.Len(dataLines(out), 8)
}

func (s *CLISuite) TestPathway_Filters() {
	out, err := s.run("pathway", s.mapPath, "icit_c", "mal__L_c", "--include", "CITL")
	s.Require().NoError(err)
	s.Contains(out, "\tCITL\t")

	out, err = s.run("pathway", s.mapPath, "icit_c", "mal__L_c", "--filter", "avoid", "--avoid", "glx_c")
	s.Require().NoError(err)
	s.NotContains(out, "\tglx_c\t")

	_, err = s.run("pathway", s.mapPath, "icit_c", "mal__L_c", "--include", "NOPE")
	s.Require().Error(err)
	_, err = s.run("pathway", s.mapPath, "icit_c", "mal__L_c", "--filter", "sideways")
	s.Require().Error(err)
}

func (s *CLISuite) TestPathway_NoneFound() {
	out, err := s.run("pathway", s.mapPath, "ac_c", "icit_c")
	s.Require().NoError(err)
	s.Equal(noPathway+"\n", out)
}

func (s *CLISuite) TestPathway_Mods() {
	mods := s.write("mods.tbl", "type\tgenes\nforward\tb0118 b1276\n")
	out, err := s.run("pathway", s.mapPath, "icit_c", "mal__L_c", "--include", "CITL", "--mods", mods)
	s.Require().NoError(err)
	s.Equal(noPathway+"\n", out)
}

func (s *CLISuite) TestPathway_SaveLoadLoop() {
	saved := filepath.Join(s.dir, "path.json")
	_, err := s.run("pathway", s.mapPath, "succ_c", "icit_c", "--save", saved)
	s.Require().NoError(err)
	s.FileExists(saved)

	out, err := s.run("pathway", s.mapPath, "--load", saved, "glu__L_c")
	s.Require().NoError(err)
	rows := dataLines(out)
	s.Require().Len(rows, 8)
	s.Contains(rows[0], "\tsucc_c\tfum_c\t")

	out, err = s.run("pathway", s.mapPath, "--load", saved, "--loop", "--origin", "succ_c")
	s.Require().NoError(err)
	rows = dataLines(out)
	s.Require().Len(rows, 7)
	s.True(strings.HasPrefix(rows[6], "7\tICL\t"))

	_, err = s.run("pathway", s.mapPath, "--load", saved, "--loop")
	s.Require().ErrorIs(err, errLoopOrigin)
}

func (s *CLISuite) TestPathway_Loop() {
	out, err := s.run("pathway", s.mapPath, "x_c", "y_c", "--loop")
	s.Require().NoError(err)
	rows := dataLines(out)
	s.Require().Len(rows, 1)
	fields := strings.Split(rows[0], "\t")
	s.Equal("XYISO", fields[1])
	s.Equal("y_c", fields[4], "the mirrored step consumes the old terminus")
	s.Equal("x_c", fields[5])
	s.Equal("Y", fields[6])
}

func (s *CLISuite) TestPathway_SideTables() {
	inputs := filepath.Join(s.dir, "inputs.tsv")
	triggers := filepath.Join(s.dir, "triggers.tsv")
	branches := filepath.Join(s.dir, "branches.tsv")
	out, err := s.run("pathway", s.mapPath, "succ_c", "icit_c",
		"--inputs", inputs, "--triggers", triggers, "--branches", branches)
	s.Require().NoError(err)
	s.Len(dataLines(out), 6)

	rows := dataLines(s.read(inputs))
	s.Require().NotEmpty(rows)
	s.Equal("h2o_c\t3\tY", rows[0])
	s.Contains(rows, "accoa_c\t1\t")

	rows = dataLines(s.read(triggers))
	s.Len(rows, 6)
	s.Contains(rows, "CS\tb0720\tpeg.0720")

	s.Equal([]string{"cit_c\tCITL\tcitrate lyase\tcit_c --> ac_c + oaa_c"}, dataLines(s.read(branches)))
}

func (s *CLISuite) TestPathway_SideTablesNotWrittenWhenNoneFound() {
	inputs := filepath.Join(s.dir, "inputs.tsv")
	out, err := s.run("pathway", s.mapPath, "ac_c", "icit_c", "--inputs", inputs)
	s.Require().NoError(err)
	s.Equal(noPathway+"\n", out)
	s.NoFileExists(inputs)
}

func (s *CLISuite) TestPathway_Args() {
	_, err := s.run("pathway", s.mapPath, "succ_c")
	s.Require().Error(err)
}

func (s *CLISuite) TestOutputAndMetricsFiles() {
	outFile := filepath.Join(s.dir, "out.tsv")
	metrics := filepath.Join(s.dir, "metrics.prom")
	out, err := s.run("pathway", s.mapPath, "succ_c", "icit_c", "-o", outFile, "--metrics-file", metrics)
	s.Require().NoError(err)
	s.Empty(out)

	data, err := os.ReadFile(outFile)
	s.Require().NoError(err)
	s.Contains(string(data), "ACONTb")

	data, err = os.ReadFile(metrics)
	s.Require().NoError(err)
	s.Contains(string(data), `metapath_search_searches_total{outcome="found"} 1`)
}

func (s *CLISuite) TestReports() {
	out, err := s.run("distance", s.mapPath, "icit_c")
	s.Require().NoError(err)
	s.Contains(out, "succ_c\t6\n")

	out, err = s.run("stats", s.mapPath)
	s.Require().NoError(err)
	s.Equal("h2o_c\t6\tY", dataLines(out)[0])

	out, err = s.run("reactions", s.mapPath, "orphan")
	s.Require().NoError(err)
	s.Len(dataLines(out), 2)

	out, err = s.run("reactions", s.mapPath, "producer", "cit_c")
	s.Require().NoError(err)
	s.Len(dataLines(out), 2)

	_, err = s.run("reactions", s.mapPath, "consumer")
	s.Require().Error(err)
	_, err = s.run("reactions", s.mapPath, "catalyst", "cit_c")
	s.Require().Error(err)

	out, err = s.run("triggered", s.mapPath, "peg.0118")
	s.Require().NoError(err)
	s.Len(dataLines(out), 2)

	out, err = s.run("compounds", s.mapPath)
	s.Require().NoError(err)
	s.Contains(out, "cit_c\t2\t2\t2\t50\t20\n")

	out, err = s.run("connectivity", s.mapPath)
	s.Require().NoError(err)
	s.Contains(out, "compound\tscore\n")
}

func (s *CLISuite) TestSBMLImport() {
	doc := s.write("extra.xml", `<?xml version="1.0"?>
<sbml xmlns="http://www.sbml.org/sbml/level3/version1/core" level="3" version="1">
  <model id="extra">
    <listOfReactions>
      <reaction id="R_YZ" name="y to z" reversible="false">
        <listOfReactants><speciesReference species="M_y_c"/></listOfReactants>
        <listOfProducts><speciesReference species="M_z_c"/></listOfProducts>
      </reaction>
    </listOfReactions>
  </model>
</sbml>`)
	out, err := s.run("pathway", s.mapPath, "x_c", "z_c", "--sbml", doc)
	s.Require().NoError(err)
	s.Len(dataLines(out), 2)
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestRoot_BadConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "stats", "map.json"})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--log-level", "loud", "stats", "map.json"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}
