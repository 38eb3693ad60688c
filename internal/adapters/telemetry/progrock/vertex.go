package progrock

import (
	"fmt"

	"github.com/vito/progrock"
	"go.trai.ch/crateq/internal/core/domain"
)

// Vertex implements ports.Vertex. Stdout, Stderr and Cached come from the
// embedded recorder.
type Vertex struct {
	*progrock.VertexRecorder
}

// Log writes msg to the vertex stderr, prefixed with its level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.Stderr(), "%s: %s\n", level, msg)
}

// Complete finishes the vertex, failed when err is not nil.
func (v *Vertex) Complete(err error) {
	v.Done(err)
}
