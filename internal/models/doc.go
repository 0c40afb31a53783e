// Package models defines the data model for the iTunes Seeker application.
//
// [CatalogRecord] mirrors the raw records returned by the iTunes search and
// lookup endpoints; [Track] is the snapshot persisted in the user's local
// collection. JSON field names follow the catalog wire format so persisted
// snapshots stay byte-compatible with the API payloads they came from.
package models
