package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Track milestones on the way to a vision",
}

var milestoneAddCmd = &cobra.Command{
	Use:   "add <vision> <name>",
	Short: "Add a milestone to a vision",
	Args:  cobra.MinimumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		m, err := db.CreateMilestone(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ New milestone \"%s\" added - ID: %s\n", m.Name, db.ShortID(m.ID))
		return nil
	}),
}

var milestoneListCmd = &cobra.Command{
	Use:     "ls <vision>",
	Aliases: []string{"list"},
	Short:   "List the milestones of a vision",
	Args:    cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		vision, err := db.GetVision(args[0])
		if err != nil {
			return err
		}
		milestones, err := db.ListMilestones(vision.ID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(milestones) == 0 {
			fmt.Fprintf(out, "No milestones for \"%s\" yet.\n", vision.Name)
			return nil
		}

		done := 0
		for _, m := range milestones {
			if m.Status == models.MilestoneCompleted {
				done++
			}
			fmt.Fprintf(out, "%s %-9s %s\n", milestoneIcon(m.Status), db.ShortID(m.ID), m.Name)
		}
		fmt.Fprintf(out, "\n%d/%d completed\n", done, len(milestones))
		return nil
	}),
}

var milestoneStatusCmd = &cobra.Command{
	Use:   "status <milestone> <not_started|in_progress|completed>",
	Short: "Change the status of a milestone",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		m, err := db.SetMilestoneStatus(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Milestone \"%s\" is now %s\n", milestoneIcon(m.Status), m.Name, m.Status)
		return nil
	}),
}

func milestoneIcon(status string) string {
	switch status {
	case models.MilestoneCompleted:
		return "✅"
	case models.MilestoneInProgress:
		return "◐"
	default:
		return "○"
	}
}

func init() {
	milestoneCmd.AddCommand(milestoneAddCmd, milestoneListCmd, milestoneStatusCmd)
}
