package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/tui"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show a month of activity as a calendar heatmap",
	Long: `Show a Sunday-first calendar of one month with each day shaded by the minutes logged.

Examples:
  mastery heatmap                          # This month, every vision
  mastery heatmap --vision piano           # One vision
  mastery heatmap --month 2024-02          # A past month
  mastery heatmap --vision piano --months  # Months that have activity`,
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		visionRef, _ := cmd.Flags().GetString("vision")
		habitRef, _ := cmd.Flags().GetString("habit")
		monthStr, _ := cmd.Flags().GetString("month")
		listMonths, _ := cmd.Flags().GetBool("months")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		snap, visions, err := snapshot()
		if err != nil {
			return err
		}
		sc, err := resolveScope(snap, visions, visionRef, habitRef)
		if err != nil {
			return err
		}

		e := engine()
		now := clock()
		out := cmd.OutOrStdout()

		if listMonths {
			months := e.ActivityMonths(sc.Sessions, now, graduatedScope(sc))
			for _, ym := range months {
				fmt.Fprintln(out, ym.String())
			}
			return nil
		}

		today := e.Today(now)
		ym := analytics.YearMonth{Year: today.Year, Month: today.Month}
		if monthStr != "" {
			if ym, err = analytics.ParseYearMonth(monthStr); err != nil {
				return err
			}
		}

		grid := e.MonthHeatmap(sc.Sessions, ym.Year, ym.Month)
		if jsonOutput {
			days := make([]analytics.HeatmapCell, 0, 31)
			for _, row := range grid {
				for _, cell := range row {
					if !cell.Date.IsZero() {
						days = append(days, cell)
					}
				}
			}
			return writeJSON(out, days)
		}
		fmt.Fprintf(out, "%s\n\n", sc.Name)
		fmt.Fprintln(out, tui.RenderHeatmap(grid, ym))
		return nil
	}),
}

// graduatedScope reports whether the scope is a single graduated vision or habit
func graduatedScope(sc scope) bool {
	if sc.Habit != nil {
		return sc.Habit.GraduatedAt != nil
	}
	return sc.Vision != nil && sc.Vision.GraduatedAt != nil
}

func init() {
	heatmapCmd.Flags().StringP("vision", "v", "", "Only this vision")
	heatmapCmd.Flags().String("habit", "", "Only this habit")
	heatmapCmd.Flags().StringP("month", "m", "", "Month as YYYY-MM (default this month)")
	heatmapCmd.Flags().Bool("months", false, "List the months that have activity")
	heatmapCmd.Flags().Bool("json", false, "Output as JSON")
}
