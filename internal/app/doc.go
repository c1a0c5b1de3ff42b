// Package app implements the application services on top of the domain
// contracts: directory scanning, code analysis, model-backed reviews,
// document retrieval and the directory watcher lifecycle.
package app
