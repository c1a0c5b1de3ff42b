package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"system_ai_service/internal/domain/analysis"
	"system_ai_service/internal/pkg/config"
	"system_ai_service/internal/pkg/logger"
)

// dependencyAnalysisService implements the DependencyAnalysisService interface
type dependencyAnalysisService struct {
	logger logger.Logger
}

// NewDependencyAnalysisService creates a new instance of DependencyAnalysisService
func NewDependencyAnalysisService(logger logger.Logger) (analysis.DependencyAnalysisService, error) {
	return &dependencyAnalysisService{logger: logger}, nil
}

func (s *dependencyAnalysisService) AnalyzeDependencies(ctx context.Context, dir string) (*analysis.DependencyReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	manager, manifest, found := detectPackageManager(dir)
	if !found {
		return nil, analysis.ErrNoPackageManager
	}

	dependencies, err := parseManifest(filepath.Join(dir, manifest), manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifest, err)
	}

	sort.Slice(dependencies, func(i, j int) bool {
		return dependencies[i].Name < dependencies[j].Name
	})

	s.logger.Info("Found ", len(dependencies), " dependencies in ", dir, " via ", manifest)
	return &analysis.DependencyReport{
		Directory:      dir,
		PackageManager: manager,
		Manifest:       manifest,
		Dependencies:   dependencies,
	}, nil
}

// detectPackageManager probes the directory for known manifest files.
func detectPackageManager(dir string) (manager, manifest string, found bool) {
	for _, pm := range analysis.PackageManagers {
		for _, m := range pm.Manifests {
			if info, err := os.Stat(filepath.Join(dir, m)); err == nil && !info.IsDir() {
				return pm.Name, m, true
			}
		}
	}
	return "", "", false
}

// parseManifest extracts declared dependencies from the manifest formats the
// service understands. Manifests of detected but unparsed formats yield an
// empty list rather than an error.
func parseManifest(path, manifest string) ([]analysis.Dependency, error) {
	switch manifest {
	case "go.mod":
		return parseGoMod(path)
	case "requirements.txt":
		return parseRequirements(path)
	case "package.json":
		return parsePackageJSON(path)
	default:
		return nil, nil
	}
}

func parseGoMod(path string) ([]analysis.Dependency, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dependencies []analysis.Dependency
	inBlock := false
	for _, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "require (":
			inBlock = true
		case inBlock && line == ")":
			inBlock = false
		case inBlock:
			fields := strings.Fields(line)
			if len(fields) >= 2 && !strings.HasPrefix(fields[0], "//") {
				dependencies = append(dependencies, analysis.Dependency{Name: fields[0], Version: fields[1]})
			}
		case strings.HasPrefix(line, "require "):
			fields := strings.Fields(line)
			if len(fields) >= 3 {
				dependencies = append(dependencies, analysis.Dependency{Name: fields[1], Version: fields[2]})
			}
		}
	}
	return dependencies, nil
}

// requirementSeparators split a requirements.txt line into name and version
// constraint. Order matters, two-character separators must match first.
var requirementSeparators = []string{"==", ">=", "<=", "~=", "!=", ">", "<"}

func parseRequirements(path string) ([]analysis.Dependency, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dependencies []analysis.Dependency
	for _, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if comment := strings.Index(line, " #"); comment >= 0 {
			line = strings.TrimSpace(line[:comment])
		}

		name, version := line, ""
		for _, sep := range requirementSeparators {
			if idx := strings.Index(line, sep); idx >= 0 {
				name = strings.TrimSpace(line[:idx])
				version = strings.TrimSpace(line[idx+len(sep):])
				break
			}
		}
		if name != "" {
			dependencies = append(dependencies, analysis.Dependency{Name: name, Version: version})
		}
	}
	return dependencies, nil
}

func parsePackageJSON(path string) ([]analysis.Dependency, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil, err
	}

	dependencies := make([]analysis.Dependency, 0, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name, version := range manifest.Dependencies {
		dependencies = append(dependencies, analysis.Dependency{Name: name, Version: version})
	}
	for name, version := range manifest.DevDependencies {
		dependencies = append(dependencies, analysis.Dependency{Name: name, Version: version})
	}
	return dependencies, nil
}

// testAnalysisService implements the TestAnalysisService interface
type testAnalysisService struct {
	settings *config.ScanSettings
	logger   logger.Logger
}

// NewTestAnalysisService creates a new instance of TestAnalysisService
func NewTestAnalysisService(settings *config.ScanSettings, logger logger.Logger) (analysis.TestAnalysisService, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan settings: %w", err)
	}
	return &testAnalysisService{settings: settings, logger: logger}, nil
}

func (s *testAnalysisService) AnalyzeTests(ctx context.Context, dir string) (*analysis.TestReport, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	report := &analysis.TestReport{
		Directory:  dir,
		Categories: make(map[string]int),
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && excludedDir(d.Name(), s.settings.ExcludedDirs) {
				return filepath.SkipDir
			}
			return nil
		}
		if !analysis.IsTestFile(d.Name()) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable test file ", path, ": ", err)
			return nil
		}

		metrics := analysis.MeasureTestSource(string(content))
		report.TestFiles++
		report.TestFunctions += metrics.TestFunctions
		report.Assertions += metrics.Assertions
		report.Lines += metrics.Lines
		for _, category := range metrics.Categories {
			report.Categories[category]++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("test analysis of %s aborted: %w", dir, err)
	}

	if report.TestFiles == 0 {
		return nil, analysis.ErrNoTestFiles
	}

	if report.Lines > 0 {
		report.AssertionDensity = float64(report.Assertions) / float64(report.Lines)
	}
	report.Recommendations = analysis.RecommendTests(report)

	s.logger.Info("Analyzed ", report.TestFiles, " test files under ", dir)
	return report, nil
}
