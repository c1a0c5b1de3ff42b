//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyAnalysisService_GoModule(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"go.mod": "module example.com/app\n" +
			"\n" +
			"go 1.22\n" +
			"\n" +
			"require (\n" +
			"\tgithub.com/gin-gonic/gin v1.10.0\n" +
			"\tgorm.io/gorm v1.25.12\n" +
			")\n" +
			"\n" +
			"require github.com/spf13/cobra v1.8.1\n",
	})

	report, err := services.DependencyAnalysisSvc.AnalyzeDependencies(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "go", report.PackageManager)
	assert.Equal(t, "go.mod", report.Manifest)
	require.Len(t, report.Dependencies, 3)
	assert.Equal(t, analysis.Dependency{Name: "github.com/gin-gonic/gin", Version: "v1.10.0"}, report.Dependencies[0])
	assert.Equal(t, analysis.Dependency{Name: "github.com/spf13/cobra", Version: "v1.8.1"}, report.Dependencies[1])
	assert.Equal(t, analysis.Dependency{Name: "gorm.io/gorm", Version: "v1.25.12"}, report.Dependencies[2])
}

func TestDependencyAnalysisService_Requirements(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"requirements.txt": "# pinned deps\n" +
			"requests==2.31.0\n" +
			"flask>=2.0 # web framework\n" +
			"\n" +
			"click\n",
	})

	report, err := services.DependencyAnalysisSvc.AnalyzeDependencies(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "python", report.PackageManager)
	require.Len(t, report.Dependencies, 3)
	assert.Equal(t, analysis.Dependency{Name: "click"}, report.Dependencies[0])
	assert.Equal(t, analysis.Dependency{Name: "flask", Version: "2.0"}, report.Dependencies[1])
	assert.Equal(t, analysis.Dependency{Name: "requests", Version: "2.31.0"}, report.Dependencies[2])
}

func TestDependencyAnalysisService_PackageJSON(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"package.json": `{"dependencies":{"express":"^4.18.0"},"devDependencies":{"jest":"^29.0.0"}}`,
	})

	report, err := services.DependencyAnalysisSvc.AnalyzeDependencies(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "node", report.PackageManager)
	require.Len(t, report.Dependencies, 2)
	assert.Equal(t, analysis.Dependency{Name: "express", Version: "^4.18.0"}, report.Dependencies[0])
	assert.Equal(t, analysis.Dependency{Name: "jest", Version: "^29.0.0"}, report.Dependencies[1])
}

func TestDependencyAnalysisService_GoModuleWinsOverNode(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"go.mod":       "module example.com/app\n\ngo 1.22\n",
		"package.json": `{"dependencies":{"express":"^4.18.0"}}`,
	})

	report, err := services.DependencyAnalysisSvc.AnalyzeDependencies(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, "go", report.PackageManager)
	assert.Empty(t, report.Dependencies)
}

func TestDependencyAnalysisService_NoManifest(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"main.go": "package main\n",
	})

	_, err := services.DependencyAnalysisSvc.AnalyzeDependencies(context.Background(), root)
	assert.ErrorIs(t, err, analysis.ErrNoPackageManager)
}

func TestDependencyAnalysisService_MissingDirectory(t *testing.T) {
	services := SetupTestServices(t)

	_, err := services.DependencyAnalysisSvc.AnalyzeDependencies(context.Background(), "/does/not/exist")
	assert.Error(t, err)
}

func TestTestAnalysisService_AnalyzeTests(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"adder.go": "package adder\n",
		"adder_test.go": "// unit coverage for the adder\n" +
			"func TestAdd(t *testing.T) {\n" +
			"\tassert.Equal(t, 2, Add(1, 1))\n" +
			"}\n",
		"storage/db_test.py": "# integration against the real database\n" +
			"def test_roundtrip():\n" +
			"    assert save() == load()\n",
	})

	report, err := services.TestAnalysisService.AnalyzeTests(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TestFiles)
	assert.Equal(t, 2, report.TestFunctions)
	assert.Equal(t, 2, report.Assertions)
	assert.Equal(t, 1, report.Categories["unit"])
	assert.Equal(t, 1, report.Categories["integration"])
	assert.Greater(t, report.AssertionDensity, 0.1)
	assert.Empty(t, report.Recommendations)
}

func TestTestAnalysisService_SkipsExcludedDirs(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"button.test.js":             "test(\"renders\", () => { assert(render()); });\n",
		"node_modules/dep/x.test.js": "test(\"vendored\", () => { assert(true); });\n",
		".git/hooks/sample_test.py":  "def test_hook():\n    assert True\n",
	})

	report, err := services.TestAnalysisService.AnalyzeTests(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TestFiles)
}

func TestTestAnalysisService_NoTestFiles(t *testing.T) {
	services := SetupTestServices(t)

	root := testutil.WriteTestTree(t, map[string]string{
		"main.go": "package main\n",
	})

	_, err := services.TestAnalysisService.AnalyzeTests(context.Background(), root)
	assert.ErrorIs(t, err, analysis.ErrNoTestFiles)
}
