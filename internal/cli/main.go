package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRoot()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "clipmine <transcript.json>",
		Short:        "Select clip-worthy time ranges from a transcript",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags; each knob also reads a CLIPMINE_* env variable
	// when the flag is left unset.
	root.Flags().String("out", "out", "Output directory")
	root.Flags().String("db", "", "Run store path (default clipmine.db, or CLIPMINE_DB)")
	root.Flags().Int("clips", 10, "Maximum number of clips")
	root.Flags().Float64("min", 15, "Minimum clip duration seconds")
	root.Flags().Float64("max", 90, "Maximum clip duration seconds")
	root.Flags().Bool("smart-edit", false, "Split clips into silence-trimmed sub-segments")
	root.Flags().Bool("smart-scoring", true, "Score with the four-dimension analyzer")

	// Hidden tuning flags (internal)
	root.Flags().Float64("target", 45, "Target clip duration seconds")
	root.Flags().Float64("gap", 0.8, "Silence gap threshold seconds")
	_ = root.Flags().MarkHidden("target")
	_ = root.Flags().MarkHidden("gap")

	return root
}
