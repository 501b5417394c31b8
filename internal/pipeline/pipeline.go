package pipeline

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"lukechampine.com/blake3"

	"github.com/forPelevin/clipmine/internal/domain/clips"
	"github.com/forPelevin/clipmine/internal/ports"
	"github.com/forPelevin/clipmine/internal/ports/adapters/runstore"
	"github.com/forPelevin/clipmine/internal/ports/adapters/whisperjson"
	"github.com/forPelevin/clipmine/internal/usecase"
)

type Config struct {
	TranscriptJSON string
	OutDir         string
	DBPath         string
	Options        clips.Options
	Logf           func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.TranscriptJSON == "" {
		return errors.New("transcript path is empty")
	}
	if _, err := os.Stat(c.TranscriptJSON); err != nil {
		return fmt.Errorf("stat transcript: %w", err)
	}
	if c.Options.MinClipDuration > 0 && c.Options.MaxClipDuration > 0 &&
		c.Options.MinClipDuration > c.Options.MaxClipDuration {
		return fmt.Errorf("min clip duration must be <= max clip duration")
	}
	return nil
}

func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "clipmine.db"
	}
	store, err := runstore.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open run store: %w", err)
	}
	defer store.Close()

	uc := usecase.New(usecase.Deps{
		Source: whisperjson.New(),
		Store:  store,
	})

	runID, err := transcriptID(cfg.TranscriptJSON)
	if err != nil {
		return err
	}
	logf("run %s", runID)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	runOutDir := buildRunOutDir(outDir, cfg.TranscriptJSON, time.Now().UTC())
	if err := os.MkdirAll(runOutDir, 0o755); err != nil {
		return err
	}
	logf("output run dir: %s", runOutDir)

	res, err := uc.Run(ctx, usecase.Input{
		RunID:          runID,
		TranscriptPath: cfg.TranscriptJSON,
		Options:        cfg.Options,
		Logf:           logf,
	})
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	planPath := filepath.Join(runOutDir, "plan.json")
	if err := os.WriteFile(planPath, b, 0o644); err != nil {
		return err
	}
	logf("plan written (%d clips): %s", len(res.Manifest.Clips), planPath)
	return nil
}

// transcriptID derives the run ID from the transcript's content, so
// re-analyzing an identical file maps to the same run.
func transcriptID(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()

	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash transcript: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil))[:12], nil
}

func buildRunOutDir(outRoot, input string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name = normalizePathSegment(name)
	if name == "" {
		name = "input"
	}
	ts := now.UTC().Format("20060102-150405Z")
	runSeed := fmt.Sprintf("%s|%d", input, now.UTC().UnixNano())
	sum := blake3.Sum256([]byte(runSeed))
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, hex.EncodeToString(sum[:])[:6]))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// ensure adapters implement ports
var _ ports.TranscriptSource = (*whisperjson.Adapter)(nil)
var _ ports.RunStore = (*runstore.Store)(nil)
