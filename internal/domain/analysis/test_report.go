package analysis

import (
	"errors"
	"strings"
)

// ErrNoTestFiles is returned when a directory contains no recognizable
// test files.
var ErrNoTestFiles = errors.New("no test files found")

// TestReport aggregates static metrics over the test files below a directory.
type TestReport struct {
	Directory        string
	TestFiles        int
	TestFunctions    int
	Assertions       int
	Lines            int
	AssertionDensity float64
	Categories       map[string]int
	Recommendations  []string
}

// TestMetrics are the raw counters extracted from one test file.
type TestMetrics struct {
	Lines         int
	TestFunctions int
	Assertions    int
	Categories    []string
}

var testFileSuffixes = []string{"_test.go", "_test.py", ".test.js", ".spec.js", ".test.ts", ".spec.ts"}

var testFunctionMarkers = []string{"func test", "def test", "it(", "test("}

// testCategories are counted per file by keyword presence.
var testCategories = []string{"unit", "integration", "functional", "performance", "security"}

// IsTestFile reports whether a file name follows a known test convention.
func IsTestFile(name string) bool {
	lowered := strings.ToLower(name)
	if strings.HasPrefix(lowered, "test_") && strings.HasSuffix(lowered, ".py") {
		return true
	}
	for _, suffix := range testFileSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	return false
}

// MeasureTestSource counts test functions, assertions and category markers
// in one test file.
func MeasureTestSource(content string) TestMetrics {
	lowered := strings.ToLower(content)
	lines := strings.Split(lowered, "\n")

	var functions, asserts int
	for _, line := range lines {
		for _, marker := range testFunctionMarkers {
			if strings.Contains(line, marker) {
				functions++
				break
			}
		}
		asserts += strings.Count(line, "assert")
	}

	var categories []string
	for _, category := range testCategories {
		if strings.Contains(lowered, category) {
			categories = append(categories, category)
		}
	}

	return TestMetrics{
		Lines:         len(lines),
		TestFunctions: functions,
		Assertions:    asserts,
		Categories:    categories,
	}
}

// RecommendTests derives improvement hints from an aggregated report.
func RecommendTests(report *TestReport) []string {
	var recommendations []string

	if report.Categories["unit"] == 0 {
		recommendations = append(recommendations, "No unit tests found. Consider adding unit tests.")
	}
	if report.Categories["integration"] == 0 {
		recommendations = append(recommendations, "No integration tests found. Consider adding integration tests.")
	}
	if report.AssertionDensity < 0.1 {
		recommendations = append(recommendations, "Low assertion density. Consider adding more assertions to tests.")
	}

	return recommendations
}
