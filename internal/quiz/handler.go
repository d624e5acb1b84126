package quiz

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RAGHVENDRA12/railwayntpc-exam-test/internal/models"
	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers quiz endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/quiz", h.GetQuiz).Methods("GET")
	protected.HandleFunc("/mock", h.GetMock).Methods("GET")
	protected.HandleFunc("/quiz/submit", h.SubmitQuiz).Methods("POST")
	protected.HandleFunc("/results/{resultID}", h.GetResult).Methods("GET")
	protected.HandleFunc("/analytics", h.GetAnalytics).Methods("GET")
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserID(r); !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	subject := r.URL.Query().Get("subject")
	count := intQueryParam(r.URL.Query(), "count", 10)
	if count > MockQuestionCount {
		count = MockQuestionCount
	}

	questions, err := h.service.SampleQuiz(subject, count)
	if err != nil {
		if errors.Is(err, ErrEmptyPool) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No questions available"})
			return
		}
		log.Printf("[quiz] GetQuiz error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build quiz"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuizPageResponse{
		Subject:   subject,
		Questions: questions,
		Total:     len(questions),
	})
}

func (h *Handler) GetMock(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserID(r); !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	questions, err := h.service.SampleMock()
	if err != nil {
		if errors.Is(err, ErrEmptyPool) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "No questions available"})
			return
		}
		log.Printf("[quiz] GetMock error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to build mock"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuizPageResponse{
		Questions: questions,
		Total:     len(questions),
	})
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.SubmitQuiz(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidQuizKind) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quiz type"})
			return
		}
		log.Printf("[quiz] SubmitQuiz error for user %d: %v", userID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit quiz"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetResult(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resultID, err := strconv.ParseInt(mux.Vars(r)["resultID"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid result ID"})
		return
	}

	resp, err := h.service.GetResult(userID, resultID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Result not found"})
			return
		}
		log.Printf("[quiz] GetResult error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get result"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.service.GetAnalytics(userID)
	if err != nil {
		log.Printf("[quiz] GetAnalytics error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get analytics"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func intQueryParam(values url.Values, key string, defaultVal int) int {
	if v := values.Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
