package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
}

var habitAddCmd = &cobra.Command{
	Use:     "add <vision> <name>",
	Short:   "Add a habit to a vision",
	Example: `  mastery habit add piano "Scales and arpeggios"`,
	Args:    cobra.MinimumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		habit, err := db.CreateHabit(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ New habit \"%s\" added - ID: %s\n", habit.Name, db.ShortID(habit.ID))
		return nil
	}),
}

var habitListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List habits",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		visionRef, _ := cmd.Flags().GetString("vision")
		all, _ := cmd.Flags().GetBool("all")

		visionID := ""
		if visionRef != "" {
			vision, err := db.GetVision(visionRef)
			if err != nil {
				return err
			}
			visionID = vision.ID
		}

		statuses := []string{models.StatusActive, models.StatusGraduated}
		if all {
			statuses = append(statuses, models.StatusDeleted)
		}
		habits, err := db.ListHabits(visionID, statuses...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(habits) == 0 {
			fmt.Fprintln(out, "No habits found. Use 'mastery habit add <vision> \"name\"' to create one.")
			return nil
		}

		visions, err := db.AllVisions()
		if err != nil {
			return err
		}
		names := make(map[string]string, len(visions))
		for _, v := range visions {
			names[v.ID] = v.Name
		}

		fmt.Fprintf(out, "%-9s %-10s %-30s %s\n", "ID", "STATUS", "NAME", "VISION")
		fmt.Fprintln(out, strings.Repeat("-", 80))
		for _, h := range habits {
			fmt.Fprintf(out, "%-9s %-10s %-30s %s\n", db.ShortID(h.ID), h.Status, truncate(h.Name, 30), names[h.VisionID])
		}
		return nil
	}),
}

var habitGraduateCmd = &cobra.Command{
	Use:   "graduate <habit>",
	Short: "Mark a habit as ingrained",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		habit, err := db.GraduateHabit(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎓 Habit \"%s\" graduated.\n", habit.Name)
		return nil
	}),
}

var habitDeleteCmd = &cobra.Command{
	Use:   "delete <habit>",
	Short: "Delete a habit; its sessions still count for the vision",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		habit, err := db.DeleteHabit(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Habit \"%s\" deleted.\n", habit.Name)
		return nil
	}),
}

func init() {
	habitListCmd.Flags().StringP("vision", "v", "", "Only habits of this vision")
	habitListCmd.Flags().BoolP("all", "a", false, "Include deleted habits")

	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitGraduateCmd, habitDeleteCmd)
}
