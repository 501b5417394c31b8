package ports

import (
	"context"

	"github.com/forPelevin/clipmine/internal/types"
)

// TranscriptSource yields the transcript the engine analyzes. The
// engine itself never touches files; transcription and parsing live
// behind this boundary.
type TranscriptSource interface {
	Load(ctx context.Context, path string) (types.Transcript, error)
}

// RunStore persists analysis runs so results survive the process.
type RunStore interface {
	CreateRun(ctx context.Context, id, source string) error
	CompleteRun(ctx context.Context, id string, clips []types.Clip) error
	FailRun(ctx context.Context, id, errMsg string) error
	GetRun(ctx context.Context, id string) (types.Run, error)
	Close() error
}
