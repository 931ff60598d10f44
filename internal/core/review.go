package core

// ReviewRequest is the payload of a single review invocation.
type ReviewRequest struct {
	Files []string `json:"files"`
}

// ReviewPromptData is a type-safe struct for rendering the code review prompt.
type ReviewPromptData struct {
	Code string
}

// ReviewReport describes the artifact produced by one successful invocation.
type ReviewReport struct {
	ID   string
	Key  string
	URL  string
	Text string
}
