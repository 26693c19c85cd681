package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/analytics"
	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery [vision]",
	Short: "Show time invested per vision and habit",
	Long: `Show how many hours went into each vision and its habits, and over how long.

Windows shorter than 60 days are shown in days, longer ones in months rounded
to the nearest half. Graduated visions and habits stop counting at graduation.

Example output:
  🎯 Piano                    40 hours in 2.5 months (1 day of focus)
     Scales                   22 hours in 2.5 months
     Repertoire               18 hours in 40 days`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		snap, visions, err := snapshot()
		if err != nil {
			return err
		}
		ref, _ := cmd.Flags().GetString("vision")
		if len(args) == 1 {
			ref = args[0]
		}
		if ref != "" {
			row, err := db.GetVision(ref)
			if err != nil {
				return err
			}
			visions = db.ToVisions([]models.Vision{*row})
		}

		out := cmd.OutOrStdout()
		if len(visions) == 0 {
			fmt.Fprintln(out, "No visions found. Use 'mastery vision add \"name\"' to create your first vision.")
			return nil
		}

		e := engine()
		now := clock()
		for i, v := range visions {
			if i > 0 {
				fmt.Fprintln(out)
			}
			icon := "🎯"
			if v.Status == analytics.StatusGraduated {
				icon = "🎓"
			}
			w := e.Mastery(analytics.ForVision(snap.Sessions, v), v.CreatedAt, v.GraduatedAt, now)
			fmt.Fprintf(out, "%s %-24s %s\n", icon, truncate(v.Name, 24), masteryLine(w))

			habits, err := db.ListHabits(v.ID)
			if err != nil {
				return err
			}
			for _, h := range habits {
				sessions := analytics.FilterByHabit(snap.Sessions, h.ID)
				if h.GraduatedAt != nil {
					sessions = analytics.CompletedBefore(sessions, *h.GraduatedAt)
				}
				hw := e.Mastery(sessions, h.CreatedAt, h.GraduatedAt, now)
				fmt.Fprintf(out, "   %-24s %s\n", truncate(h.Name, 24), masteryLine(hw))
			}
		}
		return nil
	}),
}

func init() {
	masteryCmd.Flags().StringP("vision", "v", "", "Only this vision")
}
