//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package testsuite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haldorsen/corvid/internal/config"
)

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func writeEpd(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.epd")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseTestRecognizesBm(t *testing.T) {
	test := parseTest(`4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1 bm d2d5; id "hanging queen";`)
	require.NotNil(t, test)
	assert.Equal(t, bm, test.tType)
	assert.Equal(t, "hanging queen", test.id)
	assert.Equal(t, 1, test.targetMoves.Len())
}

func TestParseTestRecognizesDm(t *testing.T) {
	test := parseTest(`6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1 dm 1; id "back rank";`)
	require.NotNil(t, test)
	assert.Equal(t, dm, test.tType)
	assert.Equal(t, 1, test.mateDepth)
}

func TestParseTestRejectsBlankAndComments(t *testing.T) {
	assert.Nil(t, parseTest(""))
	assert.Nil(t, parseTest("   "))
	assert.Nil(t, parseTest("# a comment line"))
}

func TestParseTestRejectsIllegalTargetMove(t *testing.T) {
	// e2e5 is not a legal move from the startpos; with no legal token
	// surviving, the EPD line is dropped entirely.
	test := parseTest(`rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 bm e2e5; id "bad";`)
	assert.Nil(t, test)
}

func TestRunTestsBestMoveSuiteSucceeds(t *testing.T) {
	path := writeEpd(t, `4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1 bm d2d5; id "hanging queen";`)
	ts, err := NewTestSuite(path, 0, 3)
	require.NoError(t, err)
	require.Len(t, ts.Tests, 1)

	ts.RunTests()
	require.NotNil(t, ts.LastResult)
	assert.Equal(t, 1, ts.LastResult.Counter)
	assert.Equal(t, 1, ts.LastResult.SuccessCounter)
	assert.Equal(t, success, ts.Tests[0].rType)
}

func TestRunTestsAvoidMoveSuiteSucceeds(t *testing.T) {
	path := writeEpd(t, `4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1 am e1e2; id "dont dawdle";`)
	ts, err := NewTestSuite(path, 0, 3)
	require.NoError(t, err)
	require.Len(t, ts.Tests, 1)

	ts.RunTests()
	assert.Equal(t, success, ts.Tests[0].rType)
}

func TestRunTestsDirectMateSuiteSucceeds(t *testing.T) {
	path := writeEpd(t, `6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1 dm 1; id "back rank";`)
	ts, err := NewTestSuite(path, 0, 3)
	require.NoError(t, err)
	require.Len(t, ts.Tests, 1)

	ts.RunTests()
	assert.Equal(t, success, ts.Tests[0].rType)
	assert.Equal(t, "a1a8", ts.Tests[0].actual.StringUci())
}

func TestResultTypeAndTestTypeStrings(t *testing.T) {
	assert.Equal(t, "success", success.String())
	assert.Equal(t, "failed", failed.String())
	assert.Equal(t, "bm", bm.String())
	assert.Equal(t, "dm", dm.String())
}
