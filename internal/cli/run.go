package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/forPelevin/clipmine/internal/domain/clips"
	"github.com/forPelevin/clipmine/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	outDir, _ := cmd.Flags().GetString("out")
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = getenvDefault("CLIPMINE_DB", "clipmine.db")
	}

	opts, err := engineOptions(cmd.Flags())
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		TranscriptJSON: absIn,
		OutDir:         outDir,
		DBPath:         dbPath,
		Options:        opts,
		Logf:           log.New(os.Stderr, "", log.LstdFlags).Printf,
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}

// engineOptions resolves the engine knobs: explicit flags win, then
// CLIPMINE_* environment variables, then the flag defaults.
func engineOptions(fs *pflag.FlagSet) (clips.Options, error) {
	minSec, err := floatKnob(fs, "min", "CLIPMINE_MIN")
	if err != nil {
		return clips.Options{}, err
	}
	maxSec, err := floatKnob(fs, "max", "CLIPMINE_MAX")
	if err != nil {
		return clips.Options{}, err
	}
	targetSec, err := floatKnob(fs, "target", "CLIPMINE_TARGET")
	if err != nil {
		return clips.Options{}, err
	}
	gapSec, err := floatKnob(fs, "gap", "CLIPMINE_GAP")
	if err != nil {
		return clips.Options{}, err
	}
	maxClips, err := intKnob(fs, "clips", "CLIPMINE_CLIPS")
	if err != nil {
		return clips.Options{}, err
	}
	smartEdit, err := boolKnob(fs, "smart-edit", "CLIPMINE_SMART_EDIT")
	if err != nil {
		return clips.Options{}, err
	}
	smartScoring, err := boolKnob(fs, "smart-scoring", "CLIPMINE_SMART_SCORING")
	if err != nil {
		return clips.Options{}, err
	}

	return clips.Options{
		MinClipDuration:    minSec,
		MaxClipDuration:    maxSec,
		TargetClipDuration: targetSec,
		MaxClips:           maxClips,
		GapThreshold:       gapSec,
		SmartEdit:          smartEdit,
		SmartScoring:       smartScoring,
	}, nil
}

func floatKnob(fs *pflag.FlagSet, name, env string) (float64, error) {
	if v := os.Getenv(env); v != "" && !fs.Changed(name) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", env, err)
		}
		return f, nil
	}
	return fs.GetFloat64(name)
}

func intKnob(fs *pflag.FlagSet, name, env string) (int, error) {
	if v := os.Getenv(env); v != "" && !fs.Changed(name) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", env, err)
		}
		return n, nil
	}
	return fs.GetInt(name)
}

func boolKnob(fs *pflag.FlagSet, name, env string) (bool, error) {
	if v := os.Getenv(env); v != "" && !fs.Changed(name) {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%s: %w", env, err)
		}
		return b, nil
	}
	return fs.GetBool(name)
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
