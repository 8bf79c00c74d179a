package history

import (
	"time"

	"pomotick/internal/core/model"
)

// Entry records one completed or abandoned phase.
type Entry struct {
	ID        int64
	Phase     model.Phase
	StartedAt time.Time
	EndedAt   time.Time
	Goal      string
	Abandoned bool
}
