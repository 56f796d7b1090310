package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/medialit/quizfeedback/internal/api/http"
	"github.com/medialit/quizfeedback/internal/config"
	"github.com/medialit/quizfeedback/internal/content"
	"github.com/medialit/quizfeedback/internal/feedback"
	"github.com/medialit/quizfeedback/internal/keywords"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- Static content (fatal on structural errors) ---
	bank, err := content.BuildBank()
	if err != nil {
		log.Fatalf("question bank: %v", err)
	}
	if err := feedback.ValidateTemplates(); err != nil {
		log.Fatalf("feedback templates: %v", err)
	}
	log.Printf("question bank loaded: %d questions", bank.Len())

	// Constructed here and injected; the handlers never reach for a global.
	extractor := keywords.NewRAKE()

	var rng *rand.Rand
	if cfg.FeedbackSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.FeedbackSeed))
		log.Printf("feedback phrasing pinned to seed %d", cfg.FeedbackSeed)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/quiz", func(qr chi.Router) {
		qr.Get("/questions", api.ListQuestionsHandler(bank))
		qr.Post("/feedback", api.QuizFeedbackHandler(bank, rng))
	})

	r.Post("/keywords", api.ExtractKeywordsHandler(extractor))
	r.Get("/keywords/{text}", api.ExtractKeywordsPathHandler(extractor))

	log.Printf("quizd listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
