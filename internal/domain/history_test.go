package domain

import "testing"

func snap(titles ...string) Snapshot {
	s := make(Snapshot, 0, len(titles))
	for _, title := range titles {
		s = append(s, Activity{Kind: KindPlace, ID: title, Title: title})
	}
	return s
}

func sameSnapshot(a, b Snapshot) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func TestHistoryAppendUndo(t *testing.T) {
	e1 := HistoryEntry{ID: "e1", Previous: snap(), Next: snap("shrine")}
	e2 := HistoryEntry{ID: "e2", Previous: snap("shrine"), Next: snap("shrine", "museum")}

	h := NewHistory()
	if h.Cursor != -1 {
		t.Fatalf("new history cursor = %d, want -1", h.Cursor)
	}
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("empty history should have nothing to undo or redo")
	}

	h = h.Append(e1).Append(e2)
	if h.Cursor != 1 || len(h.Entries) != 2 {
		t.Fatalf("after two appends cursor=%d len=%d, want 1 and 2", h.Cursor, len(h.Entries))
	}

	h, restored, ok := h.Undo()
	if !ok {
		t.Fatal("Undo() should apply")
	}
	if h.Cursor != 0 {
		t.Errorf("cursor after undo = %d, want 0", h.Cursor)
	}
	// Undoing e2 restores its previous snapshot, which is e1's next.
	if !sameSnapshot(restored, e1.Next) {
		t.Errorf("undo restored %v, want e1.Next", restored)
	}
}

func TestHistoryBranchPruning(t *testing.T) {
	e1 := HistoryEntry{ID: "e1", Next: snap("a")}
	e2 := HistoryEntry{ID: "e2", Previous: snap("a"), Next: snap("a", "b")}
	e3 := HistoryEntry{ID: "e3", Previous: snap("a"), Next: snap("a", "c")}

	h := NewHistory().Append(e1).Append(e2)
	h, _, _ = h.Undo()

	// A new edit after an undo discards the redo branch permanently.
	h = h.Append(e3)
	if len(h.Entries) != 2 {
		t.Fatalf("log length after branch overwrite = %d, want 2", len(h.Entries))
	}
	if h.Entries[1].ID != "e3" {
		t.Errorf("tail entry = %q, want e3", h.Entries[1].ID)
	}
	if h.CanRedo() {
		t.Error("redo history must be lost after branch overwrite")
	}
}

func TestHistoryRedo(t *testing.T) {
	e1 := HistoryEntry{ID: "e1", Next: snap("a")}
	e2 := HistoryEntry{ID: "e2", Previous: snap("a"), Next: snap("a", "b")}

	h := NewHistory().Append(e1).Append(e2)
	h, _, _ = h.Undo()
	h, _, _ = h.Undo()
	if h.Cursor != -1 {
		t.Fatalf("cursor after undoing everything = %d, want -1", h.Cursor)
	}

	h, restored, ok := h.Redo()
	if !ok {
		t.Fatal("Redo() should apply")
	}
	if h.Cursor != 0 {
		t.Errorf("cursor after redo = %d, want 0", h.Cursor)
	}
	if !sameSnapshot(restored, e1.Next) {
		t.Errorf("redo restored %v, want e1.Next", restored)
	}
}

func TestHistoryNoOpBoundaries(t *testing.T) {
	h := NewHistory()

	h2, snap2, ok := h.Undo()
	if ok || snap2 != nil || h2.Cursor != -1 {
		t.Error("undo at cursor -1 must be a silent no-op")
	}

	h = h.Append(HistoryEntry{ID: "only", Next: snap("a")})
	h2, snap2, ok = h.Redo()
	if ok || snap2 != nil || h2.Cursor != h.Cursor {
		t.Error("redo at the log's end must be a silent no-op")
	}
}

func TestHistoryValueSemantics(t *testing.T) {
	h := NewHistory().Append(HistoryEntry{ID: "e1", Next: snap("a")})

	// Operations must not mutate the receiver.
	_, _, _ = h.Undo()
	if h.Cursor != 0 {
		t.Errorf("Undo() mutated caller state: cursor = %d, want 0", h.Cursor)
	}

	before := len(h.Entries)
	_ = h.Append(HistoryEntry{ID: "e2"})
	if len(h.Entries) != before {
		t.Error("Append() mutated caller state")
	}
}

func TestHistoryTrim(t *testing.T) {
	h := NewHistory()
	for _, id := range []string{"e1", "e2", "e3", "e4"} {
		h = h.Append(HistoryEntry{ID: id})
	}

	trimmed := h.Trim(2)
	if len(trimmed.Entries) != 2 {
		t.Fatalf("Trim(2) kept %d entries, want 2", len(trimmed.Entries))
	}
	if trimmed.Entries[0].ID != "e3" || trimmed.Entries[1].ID != "e4" {
		t.Error("Trim must drop the oldest entries")
	}
	if trimmed.Cursor != 1 {
		t.Errorf("cursor after trim = %d, want 1", trimmed.Cursor)
	}

	if got := h.Trim(0); len(got.Entries) != 4 {
		t.Error("Trim(0) must leave the log untouched")
	}
	if got := h.Trim(10); len(got.Entries) != 4 {
		t.Error("Trim above length must leave the log untouched")
	}
}
