package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/mastery/internal/db"
	"github.com/balkashynov/mastery/internal/models"
	"github.com/balkashynov/mastery/internal/parser"
)

var visionCmd = &cobra.Command{
	Use:   "vision",
	Short: "Manage visions",
	Long: `Visions are long-term goals. Habits serve a vision and every focus session
on a habit counts toward it.

Visions can be referenced by full ID, ID prefix or name.`,
}

var visionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new vision",
	Example: `  mastery vision add "Play piano" --color "#329BA4"
  mastery vision add "Run a marathon" -d "Sub-4h by next autumn"`,
	Args: cobra.MinimumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		color, _ := cmd.Flags().GetString("color")
		desc, _ := cmd.Flags().GetString("desc")

		vision, err := db.CreateVision(db.CreateVisionRequest{
			Name:        strings.Join(args, " "),
			Description: desc,
			Color:       color,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ New vision \"%s\" added - ID: %s\n", vision.Name, db.ShortID(vision.ID))
		return nil
	}),
}

var visionListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List visions",
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		statuses := []string{models.StatusActive, models.StatusGraduated}
		if all {
			statuses = append(statuses, models.StatusDeleted)
		}

		visions, err := db.ListVisions(statuses...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(visions) == 0 {
			fmt.Fprintln(out, "No visions found. Use 'mastery vision add \"name\"' to create your first vision.")
			return nil
		}

		now := clock().In(cfg.Location())
		fmt.Fprintf(out, "%-9s %-10s %-8s %-30s %s\n", "ID", "STATUS", "COLOR", "NAME", "CREATED")
		fmt.Fprintln(out, strings.Repeat("-", 80))
		for _, v := range visions {
			fmt.Fprintf(out, "%-9s %-10s %-8s %-30s %s\n",
				db.ShortID(v.ID), v.Status, v.Color, truncate(v.Name, 30), parser.FormatDate(v.CreatedAt, now))
		}
		return nil
	}),
}

var visionGraduateCmd = &cobra.Command{
	Use:   "graduate <vision>",
	Short: "Mark a vision as achieved; its statistics freeze at this moment",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		vision, err := db.GraduateVision(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🎓 Vision \"%s\" graduated. Congratulations!\n", vision.Name)
		return nil
	}),
}

var visionDeleteCmd = &cobra.Command{
	Use:   "delete <vision>",
	Short: "Delete a vision and its habits",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) error {
		vision, err := db.DeleteVision(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Vision \"%s\" deleted.\n", vision.Name)
		return nil
	}),
}

func init() {
	visionAddCmd.Flags().StringP("color", "c", "", "Color as #RRGGBB (default "+db.DefaultVisionColor+")")
	visionAddCmd.Flags().StringP("desc", "d", "", "Short description")
	visionListCmd.Flags().BoolP("all", "a", false, "Include deleted visions")

	visionCmd.AddCommand(visionAddCmd, visionListCmd, visionGraduateCmd, visionDeleteCmd)
}

// truncate shortens s to width runes with an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
