package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/crateq/internal/core/ports"
)

const (
	statusCompleted = "done"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// Journal is a progrock.Writer that reports every finished vertex once
// through the logger at debug level.
type Journal struct {
	logger ports.Logger

	mu       sync.Mutex
	finished map[string]bool
	closed   bool
}

// NewJournal creates a Journal writing to logger.
func NewJournal(logger ports.Logger) *Journal {
	return &Journal{
		logger:   logger,
		finished: make(map[string]bool),
	}
}

// WriteStatus records the vertex updates of one status update.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	for _, v := range update.Vertexes {
		if v.Completed == nil || j.finished[v.Id] {
			continue
		}
		j.finished[v.Id] = true
		j.logger.Debug(describe(v))
	}
	return nil
}

// Close stops the journal. Later updates are ignored.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.closed = true
	return nil
}

func describe(v *progrock.Vertex) string {
	var b strings.Builder
	b.WriteString(v.Name)
	b.WriteString(": ")

	switch {
	case v.Error != nil:
		b.WriteString(statusFailed)
		b.WriteString(" (")
		b.WriteString(*v.Error)
		b.WriteString(")")
		return b.String()
	case v.Cached:
		b.WriteString(statusCached)
	default:
		b.WriteString(statusCompleted)
	}

	if v.Started != nil {
		b.WriteString(" in ")
		b.WriteString(v.Completed.AsTime().Sub(v.Started.AsTime()).String())
	}
	return b.String()
}
