// Package handler provides HTTP handlers for the review API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/code-review-reporter/internal/core"
)

// Reviewer runs one review and always produces a response.
type Reviewer interface {
	Handle(ctx context.Context, req *core.ReviewRequest) core.ReviewResponse
}

// ReviewHandler serves POST /api/v1/reviews.
type ReviewHandler struct {
	reviewer     Reviewer
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewReviewHandler creates a review handler. A non-positive maxBodyBytes disables the body limit.
func NewReviewHandler(reviewer Reviewer, maxBodyBytes int64, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewer:     reviewer,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// Handle decodes the request, runs the review and writes the response as-is.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("request_id", middleware.GetReqID(r.Context()))

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	// An empty body is a request without files, as in the Lambda adapter.
	var req core.ReviewRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		logger.Warn("could not decode review request", "error", err)
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), status)
		return
	}

	resp := h.reviewer.Handle(r.Context(), &req)
	logger.Info("review request finished", "status", resp.StatusCode, "files", len(req.Files))

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write([]byte(resp.Body))
}
