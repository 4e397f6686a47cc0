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
	"sort"
	"strings"
	"time"
)

// FeatureTests runs every ".epd" file in folder through a fresh
// TestSuite and returns a formatted report, the same shape a CI job
// would capture as a build artifact.
func FeatureTests(folder string, searchTime time.Duration, searchDepth int) string {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if log != nil {
			log.Errorf("reading %q: %v", folder, err)
		}
		return ""
	}

	var files []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".epd" {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	results := make(map[string]*TestSuite, len(files))
	start := time.Now()
	for _, name := range files {
		ts, err := NewTestSuite(filepath.Join(folder, name), searchTime, searchDepth)
		if err != nil {
			if log != nil {
				log.Warningf("skipping %q: %v", name, err)
			}
			continue
		}
		ts.RunTests()
		results[name] = ts
	}
	elapsed := time.Since(start)

	var report strings.Builder
	report.WriteString(out.Sprintf("Feature Test Result Report\n"))
	report.WriteString(out.Sprintf("Folder:      %s\n", folder))
	report.WriteString(out.Sprintf("Took:        %s\n", elapsed))
	report.WriteString(out.Sprintf("Setup:       search time %s, max depth %d\n", searchTime, searchDepth))
	report.WriteString(out.Sprintf("Test suites: %d\n\n", len(results)))
	report.WriteString(out.Sprintf(" %-28s | %-10s | %6s | %6s | %6s | %6s\n",
		"Test Suite", "Success %", "OK", "Fail", "Skip", "N/A"))

	var totalOK, totalFail, totalSkip, totalNA, totalCount int
	for _, name := range files {
		ts, ok := results[name]
		if !ok || ts.LastResult == nil {
			continue
		}
		r := ts.LastResult
		rate := 0.0
		if r.Counter > 0 {
			rate = 100 * float64(r.SuccessCounter) / float64(r.Counter)
		}
		report.WriteString(out.Sprintf(" %-28s |    %5.1f %% | %6d | %6d | %6d | %6d\n",
			name, rate, r.SuccessCounter, r.FailedCounter, r.SkippedCounter, r.NotTestedCounter))
		totalOK += r.SuccessCounter
		totalFail += r.FailedCounter
		totalSkip += r.SkippedCounter
		totalNA += r.NotTestedCounter
		totalCount += r.Counter
	}
	totalRate := 0.0
	if totalCount > 0 {
		totalRate = 100 * float64(totalOK) / float64(totalCount)
	}
	report.WriteString(out.Sprintf(" %-28s |    %5.1f %% | %6d | %6d | %6d | %6d\n",
		"TOTAL", totalRate, totalOK, totalFail, totalSkip, totalNA))

	return report.String()
}
