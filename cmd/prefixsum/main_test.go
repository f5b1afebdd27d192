package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func fixedClock() time.Time {
	return time.Unix(1700000000, 0)
}

type RunSuite struct {
	suite.Suite
	stdout, stderr bytes.Buffer
}

func (s *RunSuite) SetupTest() {
	s.stdout.Reset()
	s.stderr.Reset()
}

func (s *RunSuite) run(args ...string) int {
	return run(args, &s.stdout, &s.stderr, fixedClock)
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

func (s *RunSuite) TestPositionalArgsAllPass() {
	code := s.run("-workers", "4", "-grain", "16", "1000", "42")
	s.Require().Equal(exitOK, code, s.stderr.String())

	out := s.stdout.String()
	s.Contains(out, "Time to do O(N-1) prefix sum on a 1000 elements")
	s.Contains(out, "Time to do O(NlogN) parallel prefix sum on a 1000 elements")
	s.Contains(out, "Time to do 2(N-1) parallel prefix sum on a 1000 elements")
	s.Equal(2, strings.Count(out, "\nPass\n"))
	s.NotContains(s.stderr.String(), "There was an error")
	s.NotContains(s.stderr.String(), "usage:")
}

func (s *RunSuite) TestNonPowerOfTwoWithTrials() {
	code := s.run("-trials", "3", "-workers", "3", "-grain", "1", "1023", "7")
	s.Require().Equal(exitOK, code, s.stderr.String())
	s.Contains(s.stdout.String(), "hillis-steele")
	s.Contains(s.stdout.String(), "blelloch")
	s.NotContains(s.stdout.String(), "FAIL")
}

func (s *RunSuite) TestDefaultsUseTimeSeed() {
	code := s.run("-n", "64")
	s.Require().Equal(exitOK, code, s.stderr.String())
	s.Contains(s.stderr.String(), "usage:")
	s.Contains(s.stdout.String(), "using 64 elements and time as seed")
}

func (s *RunSuite) TestSeedFlagSkipsTimeSeed() {
	code := s.run("-n", "32", "-seed", "5")
	s.Require().Equal(exitOK, code, s.stderr.String())
	s.NotContains(s.stdout.String(), "time as seed")
}

func (s *RunSuite) TestAlgoSelection() {
	code := s.run("-algo", "blelloch", "100", "1")
	s.Require().Equal(exitOK, code, s.stderr.String())
	out := s.stdout.String()
	s.Contains(out, "2(N-1)")
	s.NotContains(out, "O(NlogN)")
	s.Equal(1, strings.Count(out, "\nPass\n"))
}

func (s *RunSuite) TestUnknownAlgo() {
	code := s.run("-algo", "bogus", "100", "1")
	s.Equal(exitUsage, code)
	s.Contains(s.stderr.String(), "unknown algorithm")
}

func (s *RunSuite) TestInvalidElementCount() {
	s.Equal(exitUsage, s.run("abc", "1"))
	s.Contains(s.stderr.String(), "invalid element count")
}

func (s *RunSuite) TestZeroElements() {
	s.Equal(exitUsage, s.run("0", "1"))
	s.Contains(s.stderr.String(), "element count must be > 0")
}

func (s *RunSuite) TestInvalidSeed() {
	s.Equal(exitUsage, s.run("10", "x"))
	s.Contains(s.stderr.String(), "invalid seed")
}

func (s *RunSuite) TestList() {
	s.Require().Equal(exitOK, s.run("-list"))
	out := s.stdout.String()
	s.Contains(out, "serial")
	s.Contains(out, "reference")
	s.Contains(out, "hillis-steele")
	s.Contains(out, "blelloch")
	s.Empty(s.stderr.String())
}

func (s *RunSuite) TestFeatures() {
	s.Require().Equal(exitOK, s.run("-features"))
	s.Contains(s.stdout.String(), "default workers")
	s.Contains(s.stdout.String(), "vector kernels")
}

func (s *RunSuite) TestHelp() {
	s.Equal(exitOK, s.run("-h"))
	s.Contains(s.stderr.String(), "Flags:")
}

func (s *RunSuite) TestVerboseLogsTrials() {
	code := s.run("-v", "-trials", "2", "50", "3")
	s.Require().Equal(exitOK, code)
	s.Contains(s.stderr.String(), "trial done")
	s.Contains(s.stderr.String(), "algo=blelloch")
}

func TestParseArgsAlgoList(t *testing.T) {
	o, err := parseArgs([]string{"-algo", " Blelloch, hillis-steele ,", "10", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []string{"blelloch", "hillis-steele"}, o.algos)
	require.Equal(t, 10, o.n)
	require.Equal(t, int64(2), o.seed)
	require.True(t, o.seedSet)
}

func TestParseArgsRejectsBadTrials(t *testing.T) {
	_, err := parseArgs([]string{"-trials", "0", "10", "2"}, &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}
