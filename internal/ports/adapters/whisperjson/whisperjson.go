// Package whisperjson loads whisper-style transcript JSON files:
// {"segments": [{"start", "end", "text", "words": [...]}]}.
package whisperjson

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/forPelevin/clipmine/internal/types"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Load(ctx context.Context, path string) (types.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return types.Transcript{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return types.Transcript{}, fmt.Errorf("read transcript: %w", err)
	}

	var tr types.Transcript
	if err := json.Unmarshal(b, &tr); err != nil {
		return types.Transcript{}, fmt.Errorf("parse transcript %s: %w", path, err)
	}

	// Whisper pads tokens with leading spaces; trim so downstream text
	// joins stay single-spaced.
	for i := range tr.Segments {
		tr.Segments[i].Text = strings.TrimSpace(tr.Segments[i].Text)
		for j := range tr.Segments[i].Words {
			tr.Segments[i].Words[j].Word = strings.TrimSpace(tr.Segments[i].Words[j].Word)
		}
	}
	return tr, nil
}
