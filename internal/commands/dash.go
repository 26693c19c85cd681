package commands

import (
	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"dashboard"},
	Short:   "Open the interactive progress dashboard",
	Long: `Open the dashboard with the week chart, streaks, rankings and a month heatmap.

Keys:
  ←/h →/l    Previous / next week
  t          Back to this week
  [ ]        Previous / next heatmap month
  tab        Cycle through visions
  q          Quit`,
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		snap, _, err := snapshot()
		if err != nil {
			return err
		}
		return tui.RunDashboardTUI(engine(), snap, cfg.JoinedTime(), clock())
	}),
}
