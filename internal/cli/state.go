package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dshills/groom/internal/state"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset a repository's review state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show <repo-path>",
	Short: "Print the recorded review state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		st, err := state.Load(repoRoot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if len(st.ReviewedFiles) == 0 && st.LastReviewTimestamp == "" {
			fmt.Fprintf(os.Stdout, "No review state recorded at %s\n", state.Path(repoRoot))
			return nil
		}
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	},
}

var stateClearCmd = &cobra.Command{
	Use:   "clear <repo-path>",
	Short: "Delete the review state so the next incremental run reviews everything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repoRoot, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		path := state.Path(repoRoot)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(os.Stdout, "No review state to clear.")
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		fmt.Fprintf(os.Stdout, "Removed %s\n", path)
		return nil
	},
}

func init() {
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateClearCmd)
}
