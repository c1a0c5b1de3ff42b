//go:build unit
// +build unit

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"adder_test.go", true},
		{"Adder_Test.GO", true},
		{"test_login.py", true},
		{"helpers_test.py", true},
		{"app.spec.ts", true},
		{"button.test.js", true},
		{"main.go", false},
		{"testdata.txt", false},
		{"contest.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTestFile(tt.name))
		})
	}
}

func TestMeasureTestSource(t *testing.T) {
	src := "// unit coverage for the adder\n" +
		"func TestAdd(t *testing.T) {\n" +
		"\tassert.Equal(t, 2, Add(1, 1))\n" +
		"\tassert.True(t, Add(1, 1) == 2)\n" +
		"}\n"

	m := MeasureTestSource(src)
	assert.Equal(t, 6, m.Lines)
	assert.Equal(t, 1, m.TestFunctions)
	assert.Equal(t, 2, m.Assertions)
	assert.Equal(t, []string{"unit"}, m.Categories)
}

func TestMeasureTestSource_Python(t *testing.T) {
	src := "# integration against the real database\n" +
		"def test_roundtrip():\n" +
		"    assert save() == load()\n"

	m := MeasureTestSource(src)
	assert.Equal(t, 1, m.TestFunctions)
	assert.Equal(t, 1, m.Assertions)
	assert.Equal(t, []string{"integration"}, m.Categories)
}

func TestRecommendTests(t *testing.T) {
	covered := &TestReport{
		AssertionDensity: 0.2,
		Categories:       map[string]int{"unit": 3, "integration": 1},
	}
	assert.Empty(t, RecommendTests(covered))

	bare := &TestReport{Categories: map[string]int{}}
	recommendations := RecommendTests(bare)
	assert.Len(t, recommendations, 3)

	sparse := &TestReport{
		AssertionDensity: 0.05,
		Categories:       map[string]int{"unit": 2},
	}
	recommendations = RecommendTests(sparse)
	assert.Len(t, recommendations, 2)
	assert.Contains(t, recommendations[0], "integration")
	assert.Contains(t, recommendations[1], "assertion density")
}
