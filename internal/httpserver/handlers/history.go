package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayfarelabs/wayfare/internal/domain"
	"github.com/wayfarelabs/wayfare/internal/httpserver/deps"
	"github.com/wayfarelabs/wayfare/internal/logger"
	redisstore "github.com/wayfarelabs/wayfare/internal/store/redis"
)

type appendHistoryRequest struct {
	DayID    string            `json:"day_id"`
	EditType string            `json:"edit_type"`
	Previous []activityPayload `json:"previous"`
	Next     []activityPayload `json:"next"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type historyStateResponse struct {
	EntryID string `json:"entry_id,omitempty"`
	Length  int    `json:"length"`
	Cursor  int    `json:"cursor"`
	CanUndo bool   `json:"can_undo"`
	CanRedo bool   `json:"can_redo"`
}

type historyStepResponse struct {
	Applied  bool              `json:"applied"`
	Reason   string            `json:"reason,omitempty"`
	Snapshot []activityPayload `json:"snapshot,omitempty"`
	Length   int               `json:"length"`
	Cursor   int               `json:"cursor"`
	CanUndo  bool              `json:"can_undo"`
	CanRedo  bool              `json:"can_redo"`
}

// AppendHistory records one itinerary edit on the trip's log. Appending
// past an undone edit discards the redo branch.
func AppendHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		tripID := chi.URLParam(r, "tripID")

		var req appendHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
			return
		}
		if req.EditType == "" {
			writeError(w, http.StatusBadRequest, "invalid_body", "edit_type is required")
			return
		}

		h, err := store.GetHistory(r.Context(), tripID)
		if err != nil {
			d.Logger.Error("failed to load history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		entry := domain.HistoryEntry{
			ID:        uuid.NewString(),
			TripID:    tripID,
			DayID:     req.DayID,
			Timestamp: d.TimeNow(),
			EditType:  req.EditType,
			Previous:  fromSnapshotPayload(req.Previous),
			Next:      fromSnapshotPayload(req.Next),
			Metadata:  req.Metadata,
		}

		h = h.Append(entry)
		if err := store.SaveHistory(r.Context(), tripID, h); err != nil {
			d.Logger.Error("failed to save history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		writeJSON(w, http.StatusCreated, historyStateResponse{
			EntryID: entry.ID,
			Length:  len(h.Entries),
			Cursor:  h.Cursor,
			CanUndo: h.CanUndo(),
			CanRedo: h.CanRedo(),
		})
	}
}

// UndoHistory steps the cursor back and returns the snapshot to restore.
// An exhausted log answers 200 with applied=false, not an error.
func UndoHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		tripID := chi.URLParam(r, "tripID")

		h, err := store.GetHistory(r.Context(), tripID)
		if err != nil {
			d.Logger.Error("failed to load history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		next, snap, ok := h.Undo()
		if !ok {
			writeJSON(w, http.StatusOK, historyStepResponse{
				Applied: false,
				Reason:  "nothing_to_undo",
				Length:  len(h.Entries),
				Cursor:  h.Cursor,
				CanUndo: h.CanUndo(),
				CanRedo: h.CanRedo(),
			})
			return
		}

		if err := store.SaveHistory(r.Context(), tripID, next); err != nil {
			d.Logger.Error("failed to save history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		writeJSON(w, http.StatusOK, historyStepResponse{
			Applied:  true,
			Snapshot: toSnapshotPayload(snap),
			Length:   len(next.Entries),
			Cursor:   next.Cursor,
			CanUndo:  next.CanUndo(),
			CanRedo:  next.CanRedo(),
		})
	}
}

// RedoHistory re-applies the next undone edit, if any.
func RedoHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		tripID := chi.URLParam(r, "tripID")

		h, err := store.GetHistory(r.Context(), tripID)
		if err != nil {
			d.Logger.Error("failed to load history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		next, snap, ok := h.Redo()
		if !ok {
			writeJSON(w, http.StatusOK, historyStepResponse{
				Applied: false,
				Reason:  "nothing_to_redo",
				Length:  len(h.Entries),
				Cursor:  h.Cursor,
				CanUndo: h.CanUndo(),
				CanRedo: h.CanRedo(),
			})
			return
		}

		if err := store.SaveHistory(r.Context(), tripID, next); err != nil {
			d.Logger.Error("failed to save history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		writeJSON(w, http.StatusOK, historyStepResponse{
			Applied:  true,
			Snapshot: toSnapshotPayload(snap),
			Length:   len(next.Entries),
			Cursor:   next.Cursor,
			CanUndo:  next.CanUndo(),
			CanRedo:  next.CanRedo(),
		})
	}
}

// GetHistory reports the log's current shape without returning entries.
func GetHistory(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)

	return func(w http.ResponseWriter, r *http.Request) {
		tripID := chi.URLParam(r, "tripID")

		h, err := store.GetHistory(r.Context(), tripID)
		if err != nil {
			d.Logger.Error("failed to load history",
				logger.String("trip_id", tripID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", "")
			return
		}

		writeJSON(w, http.StatusOK, historyStateResponse{
			Length:  len(h.Entries),
			Cursor:  h.Cursor,
			CanUndo: h.CanUndo(),
			CanRedo: h.CanRedo(),
		})
	}
}

func fromSnapshotPayload(ps []activityPayload) domain.Snapshot {
	if ps == nil {
		return nil
	}
	snap := make(domain.Snapshot, 0, len(ps))
	for _, p := range ps {
		snap = append(snap, fromActivityPayload(p))
	}
	return snap
}

func toSnapshotPayload(snap domain.Snapshot) []activityPayload {
	out := make([]activityPayload, 0, len(snap))
	for _, a := range snap {
		out = append(out, toActivityPayload(a))
	}
	return out
}
