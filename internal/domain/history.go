package domain

import "time"

// Snapshot is a full copy of one day's activity list, taken before and
// after each edit so the edit can be reversed.
type Snapshot []Activity

// HistoryEntry records one itinerary mutation as a reversible
// (previous, next) pair.
type HistoryEntry struct {
	ID        string
	TripID    string
	DayID     string
	Timestamp time.Time
	EditType  string
	Previous  Snapshot
	Next      Snapshot
	Metadata  map[string]string
}

// History is the per-trip edit log: an append-only entry list plus a
// cursor ranging from -1 (before the first entry) to len(Entries)-1.
//
// History is a value type. Every operation takes the current state and
// returns a new one; caller-held state is never mutated, which keeps the
// log safe under optimistic last-writer-wins persistence. It is a linear
// command log with destructive redo-branch pruning, not an undo tree.
type History struct {
	Entries []HistoryEntry
	Cursor  int
}

// NewHistory returns an empty log with the cursor before the first entry.
func NewHistory() History {
	return History{Cursor: -1}
}

// CanUndo reports whether an undo would apply. Pure predicate.
func (h History) CanUndo() bool {
	return h.Cursor >= 0 && h.Cursor < len(h.Entries)
}

// CanRedo reports whether a redo would apply. Pure predicate.
func (h History) CanRedo() bool {
	return h.Cursor < len(h.Entries)-1
}

// Append records a new edit. If undos have moved the cursor off the end
// of the log, every entry past the cursor is discarded first: redo
// history is permanently lost once a new edit is made after an undo.
func (h History) Append(e HistoryEntry) History {
	kept := h.Cursor + 1
	if kept > len(h.Entries) {
		kept = len(h.Entries)
	}
	entries := make([]HistoryEntry, kept, kept+1)
	copy(entries, h.Entries[:kept])
	entries = append(entries, e)

	return History{
		Entries: entries,
		Cursor:  len(entries) - 1,
	}
}

// Undo steps the cursor left and returns the snapshot to restore (the
// previous itinerary of the entry the cursor sat on). With nothing to
// undo it is a no-op: the input state comes back unchanged with ok=false.
func (h History) Undo() (History, Snapshot, bool) {
	if !h.CanUndo() {
		return h, nil, false
	}
	snap := h.Entries[h.Cursor].Previous
	return History{Entries: h.Entries, Cursor: h.Cursor - 1}, snap, true
}

// Redo steps the cursor right and returns the snapshot to restore (the
// next itinerary of the entry the cursor lands on). With nothing to redo
// it is a no-op with ok=false.
func (h History) Redo() (History, Snapshot, bool) {
	if !h.CanRedo() {
		return h, nil, false
	}
	cursor := h.Cursor + 1
	return History{Entries: h.Entries, Cursor: cursor}, h.Entries[cursor].Next, true
}

// Trim drops the oldest entries until at most max remain, keeping the
// cursor pointing at the same logical entry. Used by the history janitor
// to bound persisted log growth; max <= 0 leaves the log untouched.
func (h History) Trim(max int) History {
	if max <= 0 || len(h.Entries) <= max {
		return h
	}
	drop := len(h.Entries) - max
	entries := make([]HistoryEntry, max)
	copy(entries, h.Entries[drop:])
	cursor := h.Cursor - drop
	if cursor < -1 {
		cursor = -1
	}
	return History{Entries: entries, Cursor: cursor}
}
