// Package analysis contains the domain model for source code analysis:
// report entities, language detection, source metrics and the contracts
// implemented by the analysis services and repositories.
package analysis
