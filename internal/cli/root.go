package cli

import (
	"time"

	"github.com/alexanderramin/nldates/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dates    service.DateService
	Settings service.SettingsService
	History  service.HistoryService

	// IsInteractive reports whether stdin is a terminal. When nil the root
	// command never opens the picker.
	IsInteractive func() bool

	// Now is the clock history timestamps are shown relative to.
	Now func() time.Time

	HistoryLimit int
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCmd creates the top-level "nldates" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "nldates",
		Short: "Turn natural-language date phrases into dates and note links",
		Long: `nldates resolves phrases such as "next friday", "in 3 days" or
"time:5pm" against the current date and renders them as dates, times or
wikilink/markdown links to daily notes.

With no arguments on a terminal it opens the interactive picker.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runPicker(cmd, app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newParseCmd(app),
		newNowCmd(app),
		newTodayCmd(app),
		newTimeCmd(app),
		newSuggestCmd(app),
		newLinkCmd(app),
		newSettingsCmd(app),
		newHistoryCmd(app),
		newPickCmd(app),
	)

	return root
}
