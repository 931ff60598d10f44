package core

import (
	"encoding/json"
	"net/http"
)

// SuccessMessage is the confirmation returned with every generated report.
const SuccessMessage = "PDF generated successfully"

// StageHeader carries the failing stage on error responses.
const StageHeader = "X-Review-Stage"

// ReviewResponse is the result of one invocation. Its JSON form matches the
// API Gateway proxy response shape.
type ReviewResponse struct {
	StatusCode int               `json:"statusCode" yaml:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body       string            `json:"body" yaml:"body"`
}

// SuccessBody is the JSON document carried in the body of a 200 response.
type SuccessBody struct {
	Message string `json:"message" yaml:"message"`
	PDFURL  string `json:"pdf_url" yaml:"pdf_url"`
}

// NewSuccessResponse builds the 200 response for an uploaded report.
func NewSuccessResponse(url string) ReviewResponse {
	body, _ := json.Marshal(SuccessBody{Message: SuccessMessage, PDFURL: url})
	return ReviewResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

// NewErrorResponse maps err to a client or server error. Input errors become
// 400; everything else becomes 500 with the failing stage in StageHeader.
func NewErrorResponse(err error) ReviewResponse {
	stage := StageOf(err)
	headers := map[string]string{"Content-Type": "text/plain; charset=utf-8"}

	if stage == StageInput {
		return ReviewResponse{StatusCode: http.StatusBadRequest, Headers: headers, Body: err.Error()}
	}
	if stage != "" {
		headers[StageHeader] = string(stage)
	}
	return ReviewResponse{StatusCode: http.StatusInternalServerError, Headers: headers, Body: err.Error()}
}
