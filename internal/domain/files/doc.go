// Package files contains the domain model of the file index: metadata
// entities, query types and the contracts implemented by the scanning,
// watching and persistence layers.
package files
