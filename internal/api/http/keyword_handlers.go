package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medialit/quizfeedback/internal/keywords"
)

// ExtractKeywordsHandler ranks keyphrases in the posted text. max_keywords
// caps the phrase length in words, mirroring the original extraction API.
func ExtractKeywordsHandler(ex keywords.Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text        string `json:"text"`
			MaxKeywords int    `json:"max_keywords"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "bad json: "+err.Error())
			return
		}
		if req.Text == "" {
			writeError(w, http.StatusBadRequest, "bad_request", `"text" is required`)
			return
		}
		if req.MaxKeywords < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", `"max_keywords" must not be negative`)
			return
		}
		writeJSON(w, ex.Extract(req.Text, req.MaxKeywords, keywords.DefaultTopN))
	}
}

// ExtractKeywordsPathHandler is the GET variant with the document in the URL.
func ExtractKeywordsPathHandler(ex keywords.Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := chi.URLParam(r, "text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "bad_request", "text is required")
			return
		}
		writeJSON(w, ex.Extract(text, 0, keywords.DefaultTopN))
	}
}
