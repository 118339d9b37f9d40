package domain

// Selection carries the resolved "where am I" pointers for the UI: the
// selected project and workstream, or nil when nothing valid is selected.
// It is recomputed by a single resolver rather than scattered ID fallbacks,
// so a stale persisted pointer degrades to nil instead of a dangling ID.
type Selection struct {
	Project    *Project
	Workstream *Workstream
}
