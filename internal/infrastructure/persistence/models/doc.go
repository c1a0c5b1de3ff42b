// Package models contains the GORM database models and their mappings to
// and from the domain entities.
package models
