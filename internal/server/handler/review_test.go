package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/code-review-reporter/internal/core"
)

type stubReviewer struct {
	resp core.ReviewResponse
	got  *core.ReviewRequest
}

func (s *stubReviewer) Handle(_ context.Context, req *core.ReviewRequest) core.ReviewResponse {
	s.got = req
	return s.resp
}

func TestReviewHandler_Handle(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		maxBody     int64
		resp        core.ReviewResponse
		wantStatus  int
		wantBody    string
		wantHeader  map[string]string
		wantForward bool
	}{
		{
			name:        "success",
			body:        `{"files": ["print('hi')"]}`,
			resp:        core.NewSuccessResponse("https://b.s3.amazonaws.com/reports/code-review-1.pdf"),
			wantStatus:  http.StatusOK,
			wantBody:    `"pdf_url":"https://b.s3.amazonaws.com/reports/code-review-1.pdf"`,
			wantHeader:  map[string]string{"Content-Type": "application/json"},
			wantForward: true,
		},
		{
			name:        "no files",
			body:        `{"files": []}`,
			resp:        core.NewErrorResponse(core.NewStageError(core.StageInput, "validate", core.ErrNoFiles)),
			wantStatus:  http.StatusBadRequest,
			wantBody:    "No files provided",
			wantForward: true,
		},
		{
			name:        "provider failure",
			body:        `{"files": ["a"]}`,
			resp:        core.NewErrorResponse(core.NewStageError(core.StageProvider, "generate review", errors.New("timeout"))),
			wantStatus:  http.StatusInternalServerError,
			wantBody:    "timeout",
			wantHeader:  map[string]string{core.StageHeader: "provider"},
			wantForward: true,
		},
		{
			name:        "empty body",
			body:        "",
			resp:        core.NewErrorResponse(core.NewStageError(core.StageInput, "validate", core.ErrNoFiles)),
			wantStatus:  http.StatusBadRequest,
			wantBody:    "No files provided",
			wantForward: true,
		},
		{
			name:       "malformed json",
			body:       `{"files": [`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
		{
			name:       "body too large",
			body:       `{"files": ["` + strings.Repeat("a", 256) + `"]}`,
			maxBody:    64,
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviewer := &stubReviewer{resp: tt.resp}
			h := NewReviewHandler(reviewer, tt.maxBody, slog.New(slog.NewTextHandler(io.Discard, nil)))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			for k, v := range tt.wantHeader {
				assert.Equal(t, v, rec.Header().Get(k))
			}
			assert.Equal(t, tt.wantForward, reviewer.got != nil)
			if tt.body == "" && reviewer.got != nil {
				assert.Empty(t, reviewer.got.Files)
				assert.NotContains(t, rec.Body.String(), "EOF")
			}
		})
	}
}
