// package repositories provides the local persistence layer.
//
// The application persists exactly two values - the saved-track collection
// and the per-track ratings - each as a single JSON blob under one key in a
// SQLite-backed key-value table. Every mutation is a whole-value
// read-modify-write; there is no incremental format and no cross-key
// transaction.
package repositories

// Storage key names. Changing these orphans existing data.
const (
	CollectionKey = "myCollection"
	RatingsKey    = "ratings"
)
