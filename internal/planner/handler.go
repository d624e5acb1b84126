package planner

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers planner endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/dashboard", h.GetDashboard).Methods("GET")
	protected.HandleFunc("/tasks", h.GetTasks).Methods("GET")
	protected.HandleFunc("/tasks/manage", h.ManageTask).Methods("POST")
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.store.PlanDashboard(r.Context(), userID)
	if err != nil {
		log.Printf("[planner] GetDashboard error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	if resp.Tasks == nil {
		resp.Tasks = []models.Task{}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	tasks, err := h.store.ListTasks(userID)
	if err != nil {
		log.Printf("[planner] GetTasks error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list tasks"})
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

func (h *Handler) ManageTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.ManageTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	switch req.Action {
	case "add":
		title := strings.TrimSpace(req.Title)
		if title == "" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Title is required"})
			return
		}
		task, err := h.store.AddTask(userID, title)
		if err != nil {
			log.Printf("[planner] AddTask error: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add task"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{"status": "ok", "task": task})

	case "toggle":
		if err := h.store.ToggleTask(userID, req.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
				return
			}
			log.Printf("[planner] ToggleTask error: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to toggle task"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	case "delete":
		if err := h.store.DeleteTask(userID, req.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Task not found"})
				return
			}
			log.Printf("[planner] DeleteTask error: %v", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete task"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})

	default:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "action must be 'add', 'toggle' or 'delete'"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
