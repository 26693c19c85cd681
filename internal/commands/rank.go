package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/tui"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank visions by the number of days worked on",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		snap, visions, err := snapshot()
		if err != nil {
			return err
		}
		rankings := engine().RankVisions(counted(snap.Sessions, visions), visions)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return writeJSON(out, rankings)
		}
		if len(rankings) == 0 {
			fmt.Fprintln(out, "No focus sessions yet. Use 'mastery focus start <habit>' to begin.")
			return nil
		}
		fmt.Fprintln(out, tui.RenderRankings(rankings))
		return nil
	}),
}

func init() {
	rankCmd.Flags().Bool("json", false, "Output as JSON")
}
