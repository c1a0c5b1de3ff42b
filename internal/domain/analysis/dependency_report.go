package analysis

import "errors"

// ErrNoPackageManager is returned when a directory carries no recognized
// dependency manifest.
var ErrNoPackageManager = errors.New("no supported package manager found")

// Dependency is one dependency declared in a project manifest.
type Dependency struct {
	Name    string
	Version string
}

// DependencyReport describes the declared dependencies of a project directory.
type DependencyReport struct {
	Directory      string
	PackageManager string
	Manifest       string
	Dependencies   []Dependency
}

// PackageManager couples a manager name with the manifest files that
// identify it.
type PackageManager struct {
	Name      string
	Manifests []string
}

// PackageManagers lists the supported managers in detection order. Earlier
// entries win when a project carries several manifests.
var PackageManagers = []PackageManager{
	{Name: "go", Manifests: []string{"go.mod"}},
	{Name: "python", Manifests: []string{"requirements.txt", "setup.py", "Pipfile", "pyproject.toml"}},
	{Name: "node", Manifests: []string{"package.json"}},
	{Name: "ruby", Manifests: []string{"Gemfile"}},
	{Name: "php", Manifests: []string{"composer.json"}},
	{Name: "java", Manifests: []string{"pom.xml", "build.gradle"}},
}
