package core

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline step a failure belongs to.
type Stage string

const (
	StageInput    Stage = "input"
	StageProvider Stage = "provider"
	StageRender   Stage = "render"
	StageStorage  Stage = "storage"
)

// ErrNoFiles is returned when a request carries no files. Its text is sent to
// clients verbatim.
var ErrNoFiles = errors.New("No files provided") //nolint:staticcheck // client-facing message

// StageError wraps a failure with the stage and operation that produced it.
type StageError struct {
	Stage Stage
	Op    string
	Err   error
}

// NewStageError builds a StageError. It returns nil when err is nil.
func NewStageError(stage Stage, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Op: op, Err: err}
}

func (e *StageError) Error() string {
	if e.Stage == StageInput {
		return e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Op, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf reports the stage of err, or an empty Stage when err carries none.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
