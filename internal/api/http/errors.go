package http

import (
	"encoding/json"
	"net/http"

	"github.com/medialit/quizfeedback/internal/quiz"
)

type errorResponse struct {
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{ErrorKind: kind, Message: msg})
}

// writeQuizError maps a domain error onto the response envelope. Template and
// configuration failures mean broken static content, not a bad request.
func writeQuizError(w http.ResponseWriter, err error) {
	kind := quiz.KindOf(err)
	switch kind {
	case "":
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	case quiz.KindConfiguration, quiz.KindMissingTemplate:
		writeError(w, http.StatusInternalServerError, kind, err.Error())
	default:
		writeError(w, http.StatusBadRequest, kind, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
