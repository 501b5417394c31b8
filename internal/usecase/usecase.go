package usecase

import (
	"context"
	"fmt"

	"github.com/forPelevin/clipmine/internal/domain/clips"
	"github.com/forPelevin/clipmine/internal/ports"
	"github.com/forPelevin/clipmine/internal/types"
)

type Deps struct {
	Source ports.TranscriptSource
	Store  ports.RunStore
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	RunID          string
	TranscriptPath string
	Options        clips.Options
	Logf           func(format string, args ...any)
}

type Result struct {
	Manifest types.Manifest
	Clips    []types.Clip
}

// Run loads a transcript, finds the best clips and persists the run.
// A transcript with no clip-worthy material is a successful run with
// an empty manifest.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if err := u.d.Store.CreateRun(ctx, in.RunID, in.TranscriptPath); err != nil {
		return Result{}, err
	}

	tr, err := u.d.Source.Load(ctx, in.TranscriptPath)
	if err != nil {
		return Result{}, u.failed(ctx, in.RunID, err)
	}
	logf("transcript loaded: %d segments", len(tr.Segments))

	found, err := clips.Find(tr.Segments, in.Options)
	if err != nil {
		return Result{}, u.failed(ctx, in.RunID, err)
	}
	logf("selected %d clips", len(found))

	if err := u.d.Store.CompleteRun(ctx, in.RunID, found); err != nil {
		return Result{}, err
	}

	m := types.Manifest{RunID: in.RunID, Source: in.TranscriptPath}
	for i, c := range found {
		m.Clips = append(m.Clips, types.ManifestClip{
			ID:          fmt.Sprintf("%03d", i+1),
			StartSec:    c.Start,
			EndSec:      c.End,
			DurationSec: c.Duration(),
			Score:       c.Score,
			Label:       c.Label,
			Dimensions:  c.Dimensions,
			Text:        c.Text,
			SubSegments: c.SubSegments,
		})
	}
	return Result{Manifest: m, Clips: found}, nil
}

// failed records the error on the run before surfacing it; the store
// write is best-effort so the original failure always wins.
func (u Usecase) failed(ctx context.Context, runID string, err error) error {
	_ = u.d.Store.FailRun(ctx, runID, err.Error())
	return err
}
