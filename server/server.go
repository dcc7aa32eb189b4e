package server

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/plugin/ai"
	"github.com/burnout-fit/burnout/server/chatbot"
	apiv1 "github.com/burnout-fit/burnout/server/router/api/v1"
	"github.com/burnout-fit/burnout/store"
)

// Server hosts the JSON API and owns the startup ingestion of the
// chatbot reference corpus.
type Server struct {
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
}

func NewServer(ctx context.Context, p *profile.Profile, s *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	server := &Server{
		Profile:    p,
		Store:      s,
		echoServer: e,
	}

	if err := loadFoodData(ctx, s, p.FoodDataPath); err != nil {
		return nil, err
	}

	responder, err := server.setupChatbot(ctx)
	if err != nil {
		return nil, err
	}

	apiService := apiv1.NewAPIV1Service(p, s, responder)
	apiService.RegisterRoutes(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Service ready.")
	})

	return server, nil
}

// setupChatbot ingests the reference corpus and wires the responder.
// Returns nil when AI is disabled so the rest of the server still runs.
func (s *Server) setupChatbot(ctx context.Context) (*chatbot.Responder, error) {
	if !s.Profile.IsAIEnabled() {
		slog.Info("ai disabled, chat endpoint will be unavailable")
		return nil, nil
	}

	cfg, err := ai.NewConfigFromProfile(s.Profile)
	if err != nil {
		return nil, errors.Wrap(err, "invalid ai configuration")
	}
	embedder, err := ai.NewEmbeddingService(&cfg.Embedding)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create embedding service")
	}
	generator, err := ai.NewLLMService(&cfg.LLM)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create llm service")
	}

	chunks, err := s.buildCorpus(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("reference corpus chunked", slog.Int("chunks", len(chunks)))

	searcher, err := s.buildSearcher(ctx, embedder, chunks)
	if err != nil {
		return nil, err
	}

	retriever := ai.NewRetriever(embedder, searcher, ai.DefaultRetrievalK)
	return chatbot.NewResponder(retriever, generator), nil
}

// buildCorpus combines the reference document's paragraphs with one
// passage per known food so calorie lookups are answerable.
func (s *Server) buildCorpus(ctx context.Context) ([]string, error) {
	var paragraphs []string
	if s.Profile.DocPath != "" {
		loaded, err := ai.LoadParagraphs(s.Profile.DocPath)
		if err != nil {
			if !os.IsNotExist(errors.Cause(err)) {
				return nil, err
			}
			slog.Warn("reference document missing, corpus will hold food data only", slog.String("path", s.Profile.DocPath))
		}
		paragraphs = loaded
	}

	chunks := ai.ChunkParagraphs(paragraphs, ai.DefaultChunkSize, ai.DefaultChunkOverlap)

	foods, err := s.Store.ListFoodCalories(ctx, &store.FindFoodCalorie{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food calories")
	}
	for _, food := range foods {
		chunks = append(chunks, fmt.Sprintf("%s contains %s calories.", food.Food, food.Calories))
	}

	return chunks, nil
}

// buildSearcher persists embeddings through pgvector on postgres and
// falls back to an in-memory index elsewhere.
func (s *Server) buildSearcher(ctx context.Context, embedder ai.EmbeddingService, chunks []string) (ai.Searcher, error) {
	if s.Profile.Driver == "postgres" {
		if err := ai.PersistChunks(ctx, s.Store, embedder, chunks); err != nil {
			return nil, errors.Wrap(err, "failed to persist corpus embeddings")
		}
		slog.Info("corpus embeddings persisted", slog.String("model", embedder.Model()))
		return ai.NewStoreIndex(s.Store, embedder.Model()), nil
	}

	index, err := ai.BuildFlatIndex(ctx, embedder, chunks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build corpus index")
	}
	slog.Info("in-memory corpus index built", slog.Int("size", index.Len()))
	return index, nil
}

// loadFoodData upserts the food calorie CSV into the store. A missing
// path or file is not an error.
func loadFoodData(ctx context.Context, s *store.Store, path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("food data file missing, skipping", slog.String("path", path))
			return nil
		}
		return errors.Wrapf(err, "failed to open food data %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read food data %s", path)
		}

		food, calories := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		if food == "" || strings.EqualFold(food, "food") {
			continue
		}
		if _, err := s.UpsertFoodCalorie(ctx, &store.FoodCalorie{Food: food, Calories: calories}); err != nil {
			return errors.Wrapf(err, "failed to upsert food %q", food)
		}
		count++
	}

	slog.Info("food data loaded", slog.Int("rows", count))
	return nil
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server listening", slog.String("addr", addr))
	return s.echoServer.Start(addr)
}

// Shutdown drains in-flight requests and closes the store.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", slog.String("error", err.Error()))
	}
	slog.Info("server shutdown complete")
}
