package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for mastery",
	Long:  `Display detailed help for all mastery commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				_ = target.Help()
				return
			}
		}
		showCustomHelp(cmd.OutOrStdout())
	},
}

func showCustomHelp(out io.Writer) {
	fmt.Fprint(out, `
███╗   ███╗ █████╗ ███████╗████████╗███████╗██████╗ ██╗   ██╗
████╗ ████║██╔══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗╚██╗ ██╔╝
██╔████╔██║███████║███████╗   ██║   █████╗  ██████╔╝ ╚████╔╝
██║╚██╔╝██║██╔══██║╚════██║   ██║   ██╔══╝  ██╔══██╗  ╚██╔╝
██║ ╚═╝ ██║██║  ██║███████║   ██║   ███████╗██║  ██║   ██║
╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝   ╚═╝

mastery - Deliberate practice tracker for long-term visions

COMMANDS:

  vision add <name>       Create a vision
    -c, --color           Color as #RRGGBB
    -d, --desc            Short description
  vision ls               List visions (--all includes deleted)
  vision graduate <ref>   Mark a vision as achieved; its stats freeze
  vision delete <ref>     Delete a vision and its habits

  habit add <vision> <name>
                          Add a habit to a vision
  habit ls                List habits (--vision, --all)
  habit graduate <ref>    Mark a habit as ingrained
  habit delete <ref>      Delete a habit

  milestone add <vision> <name>
                          Add a milestone
  milestone ls <vision>   List milestones with progress
  milestone status <ref> <not_started|in_progress|completed>

  focus start <habit>     Start a focus session with the interactive timer
    -i, --intention       What you intend to work on
    --no-ui               Start without the timer
  focus stop              Stop and reflect (--note, --win, --no-ui)
  focus status            Show the running session
  focus cancel            Discard the running session
  focus log <habit> [entry]
                          Record a session after the fact

    Smart syntax:
      45m, 1h30m    Duration
      at:yesterday  Completion date
      win:...       Major win (rest of the line)

    Example:
      mastery focus log scales "Hanon 1-5 45m at:yesterday win:clean at 120bpm"

  focus ls                Session history (--vision, --habit, --limit)
  focus delete <id>       Delete a session

  stats                   Streaks, totals and vision cards (--vision, --habit, --json)
  week                    Minutes per vision per day (--offset, --date, --chart, --json)
  rank                    Visions ranked by active days (--json)
  heatmap                 Month heatmap (--vision, --habit, --month, --months, --json)
  mastery [vision]        Hours invested and over how long
  dash                    Interactive dashboard

  version                 Print version information
  help [command]          Show this help

GLOBAL FLAGS:
  --config <path>         Config file (default ~/.mastery/config.yaml)
  --debug                 Enable debug logging

ENVIRONMENT:
  MASTERY_DB              Database path
  MASTERY_TIMEZONE        IANA time zone used for calendar days
  MASTERY_ORPHANS         totals|exclude for sessions of deleted visions

`)
}
