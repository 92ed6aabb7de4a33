package ports

import (
	"context"

	"github.com/bnema/nx-sentinel/internal/domain"
)

const ThreatSampleSize = 10

// ContentProvider fronts the generative content service. Both calls are
// single-shot: no retry, no streaming.
type ContentProvider interface {
	ThreatNarrative(ctx context.Context, members []domain.MemberRecord) (string, error)
	// OperationScript returns an ordered list of narrative steps. A malformed
	// response yields zero steps rather than an error.
	OperationScript(ctx context.Context, target string) ([]string, error)
}
