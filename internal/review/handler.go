package review

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers revision endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/revision", h.GetRevision).Methods("GET")
	protected.HandleFunc("/revision/mastered", h.MarkMastered).Methods("POST")
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GetRevision(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	items, err := h.store.ListActiveMistakes(userID)
	if err != nil {
		log.Printf("[review] GetRevision error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get revision list"})
		return
	}

	if items == nil {
		items = []models.RevisionItem{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mistakes": items,
		"total":    len(items),
	})
}

func (h *Handler) MarkMastered(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.MarkMasteredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.QuestionID <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_id is required"})
		return
	}

	if err := h.store.MarkMastered(userID, req.QuestionID); err != nil {
		if errors.Is(err, ErrMistakeNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Mistake not found"})
			return
		}
		log.Printf("[review] MarkMastered error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to mark mastered"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
