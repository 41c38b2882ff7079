// Package engine provides the core branch relationship tracker: an in-memory
// forest of branch records, the flat-file store that persists it, and the
// scoped session that guarantees the tree is written back on every exit path.
package engine
