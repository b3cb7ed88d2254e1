// Package http exposes the assistant's call contract over an HTTP API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/dealerdesk/dealerdesk/internal/domain/entities"
	"github.com/dealerdesk/dealerdesk/internal/domain/ports"
	"github.com/dealerdesk/dealerdesk/internal/domain/usecases"
)

// Answerer is the slice of the assistant the server needs.
type Answerer interface {
	Answer(ctx context.Context, query string, role entities.Role) (*entities.QueryResult, error)
}

// Options configures the listener.
type Options struct {
	Addr         string
	AllowOrigins []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server wires the assistant, dataset, vector store and query log into an
// echo application.
type Server struct {
	assistant Answerer
	data      ports.DatasetProvider
	embedder  ports.EmbeddingService
	store     ports.VectorStore
	queryLog  ports.QueryLog
	logger    *zap.Logger
	opts      Options
	echo      *echo.Echo
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(
	assistant Answerer,
	data ports.DatasetProvider,
	embedder ports.EmbeddingService,
	store ports.VectorStore,
	queryLog ports.QueryLog,
	logger *zap.Logger,
	opts Options,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		assistant: assistant,
		data:      data,
		embedder:  embedder,
		store:     store,
		queryLog:  queryLog,
		logger:    logger,
		opts:      opts,
		echo:      echo.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.opts.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.GET("/healthz", s.handleHealth)
	e.POST("/api/query", s.handleQuery)
	e.GET("/api/dataset/summary", s.handleDatasetSummary)
	e.GET("/api/analytics", s.handleAnalytics)
	e.GET("/api/analytics/roles/:role", s.handleRoleAnalytics)
	e.POST("/api/documents", s.handleAddDocument)
	e.GET("/api/collections", s.handleCollections)
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.echo.Server.ReadTimeout = s.opts.ReadTimeout
	s.echo.Server.WriteTimeout = s.opts.WriteTimeout

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("server listening", zap.String("addr", s.opts.Addr))
	if err := s.echo.Start(s.opts.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler exposes the echo engine for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

type queryRequest struct {
	Query string `json:"query"`
	Role  string `json:"role"`
}

type queryResponse struct {
	Response string                 `json:"response"`
	Data     *dataEnvelope          `json:"data,omitempty"`
	Metadata entities.QueryMetadata `json:"metadata"`
}

// dataEnvelope tags the typed payload variant on the wire.
type dataEnvelope struct {
	Kind    string              `json:"kind"`
	Payload entities.ResultData `json:"payload"`
}

func (s *Server) handleQuery(c echo.Context) error {
	var req queryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// Role arrives unverified; it only scopes the claims view.
	role := entities.Role(req.Role)

	result, err := s.assistant.Answer(c.Request().Context(), req.Query, role)
	if err != nil {
		// The chat surface never sees a raw failure.
		s.logger.Error("assistant failed", zap.Error(err))
		return c.JSON(http.StatusOK, queryResponse{
			Response: usecases.Apology,
			Metadata: entities.QueryMetadata{Category: entities.CategoryGeneral},
		})
	}

	s.queryLog.Record(entities.QueryLogEntry{
		Query:            req.Query,
		Role:             role,
		Category:         result.Metadata.Category,
		ProcessingTimeMs: result.Metadata.ProcessingTimeMs,
		Confidence:       result.Metadata.Confidence,
		VectorResults:    result.Metadata.VectorResults,
		TopSimilarity:    result.Metadata.TopSimilarity,
	})

	resp := queryResponse{Response: result.Response, Metadata: result.Metadata}
	if result.Data != nil {
		resp.Data = &dataEnvelope{Kind: result.Data.Kind(), Payload: result.Data}
	}
	return c.JSON(http.StatusOK, resp)
}

type datasetSummary struct {
	Dealers        int   `json:"dealers"`
	InventoryItems int   `json:"inventoryItems"`
	Claims         int   `json:"claims"`
	Sales          int   `json:"sales"`
	InventoryValue int64 `json:"inventoryValue"`
	ClaimValue     int64 `json:"claimValue"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

func (s *Server) handleDatasetSummary(c echo.Context) error {
	dataset := s.data.Dataset()

	summary := datasetSummary{
		Dealers:        len(dataset.Dealers),
		InventoryItems: len(dataset.Inventory),
		Claims:         len(dataset.Claims),
		Sales:          len(dataset.Sales),
	}
	for _, item := range dataset.Inventory {
		summary.InventoryValue += int64(item.Quantity) * item.UnitPrice
	}
	for _, claim := range dataset.Claims {
		summary.ClaimValue += claim.Amount
	}
	for _, sale := range dataset.Sales {
		summary.TotalRevenue += sale.TotalAmount
	}
	return c.JSON(http.StatusOK, summary)
}

func (s *Server) handleAnalytics(c echo.Context) error {
	return c.JSON(http.StatusOK, s.queryLog.Stats())
}

func (s *Server) handleRoleAnalytics(c echo.Context) error {
	role := entities.Role(c.Param("role"))
	return c.JSON(http.StatusOK, s.queryLog.StatsForRole(role))
}

type addDocumentRequest struct {
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata"`
	Collection string            `json:"collection"`
}

func (s *Server) handleAddDocument(c echo.Context) error {
	var req addDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	vec, err := s.embedder.Embed(c.Request().Context(), req.Content)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "embedding failed")
	}
	id, err := s.store.Add(c.Request().Context(), entities.VectorDocument{
		Content:   req.Content,
		Metadata:  req.Metadata,
		Embedding: vec,
	}, req.Collection)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "storing document failed")
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleCollections(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Stats())
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
