package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/parser"
	"github.com/balkashynov/mastery/internal/tui"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show minutes per vision for each day of a week",
	Long: `Show a Sunday-to-Saturday table of minutes per vision, similar to a timesheet.

Examples:
  mastery week                   # This week
  mastery week --offset -1       # Last week
  mastery week --date 2024-03-01 # The week containing a date
  mastery week --chart           # Stacked bar chart instead of a table

Example output:
  Vision        Sun   Mon   Tue   Wed   Thu   Fri   Sat   Total
  Piano           -   45m   30m     -  1h00m    -     -   2h15m
  Running         -     -   40m     -     -   35m     -   1h15m
  Total           -   45m  1h10m    -  1h00m  35m     -   3h30m`,
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		offset, _ := cmd.Flags().GetInt("offset")
		dateStr, _ := cmd.Flags().GetString("date")
		visionRef, _ := cmd.Flags().GetString("vision")
		chart, _ := cmd.Flags().GetBool("chart")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		e := engine()
		now := clock().In(cfg.Location())
		if dateStr != "" {
			day, err := parser.ParseDate(dateStr, now)
			if err != nil {
				return err
			}
			offset = e.WeekOffsetOf(e.DayKey(day), now)
		}

		snap, visions, err := snapshot()
		if err != nil {
			return err
		}
		sc, err := resolveScope(snap, visions, visionRef, "")
		if err != nil {
			return err
		}

		w := e.WeekWindow(sc.Sessions, sc.Visions, now, offset)
		out := cmd.OutOrStdout()
		switch {
		case jsonOutput:
			return writeJSON(out, w)
		case chart:
			fmt.Fprintln(out, tui.WeekTitle(w))
			fmt.Fprintln(out)
			fmt.Fprintln(out, tui.RenderWeekChart(w, sc.Visions, 10))
			fmt.Fprintf(out, "Week total: %s\n", tui.FormatMinutes(w.TotalMinutes()))
		default:
			if w.TotalMinutes() == 0 {
				fmt.Fprintf(out, "%s: no focus time recorded.\n", tui.WeekTitle(w))
				return nil
			}
			fmt.Fprintln(out, tui.RenderWeekTable(w, sc.Visions))
		}
		return nil
	}),
}

func init() {
	weekCmd.Flags().IntP("offset", "o", 0, "Weeks relative to this one (-1 is last week)")
	weekCmd.Flags().StringP("date", "d", "", "Show the week containing this date")
	weekCmd.Flags().StringP("vision", "v", "", "Only this vision")
	weekCmd.Flags().Bool("chart", false, "Render a stacked bar chart")
	weekCmd.Flags().Bool("json", false, "Output as JSON")
}
