// Package documents contains the domain model of the document store:
// extracted text entities and the contracts implemented by the scanning,
// querying and persistence layers.
package documents
