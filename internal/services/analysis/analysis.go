// Package analysis defines the dialog analysis port and its
// implementations: a deterministic stub and a client for an external
// analysis engine. The app wires the stub unless an engine URL is
// configured.
package analysis

import (
	"context"

	"github.com/neurobond/neurobond/internal/models"
)

// Provider scores a dialog transcript.
type Provider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	Analyze(ctx context.Context, dialog string) (*models.DialogAnalysis, error)
}
