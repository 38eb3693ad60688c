package ports

import "go.trai.ch/crateq/internal/core/domain"

// Renderer prints an extracted view.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render writes the complete report. Nothing is written for a nil report.
	Render(report *domain.Report) error
}
