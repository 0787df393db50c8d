package execution

import (
	"time"

	"mdt/internal/domain"
)

// Executor executes extracted tests and returns ordered results
type Executor interface {
	Execute(tests []domain.Test) ([]domain.Result, time.Duration, error)
}
