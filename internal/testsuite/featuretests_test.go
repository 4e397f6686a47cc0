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
)

func TestFeatureTestsRunsEveryEpdInFolder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mates.epd"),
		[]byte(`6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1 dm 1; id "back rank";`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "captures.epd"),
		[]byte(`4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1 bm d2d5; id "hanging queen";`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte("not an epd file, should be ignored\n"), 0o644))

	report := FeatureTests(dir, 0, 3)
	assert.Contains(t, report, "mates.epd")
	assert.Contains(t, report, "captures.epd")
	assert.NotContains(t, report, "notes.txt")
	assert.Contains(t, report, "TOTAL")
}

func TestFeatureTestsEmptyFolderReturnsReport(t *testing.T) {
	dir := t.TempDir()
	report := FeatureTests(dir, 0, 1)
	assert.Contains(t, report, "TOTAL")
}
