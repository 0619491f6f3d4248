package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick [query...]",
		Short: "Pick a date interactively and print the inserted text",
		Long: `Open the interactive picker. Type a phrase, move through the suggestions
with the arrow keys and press enter to print the text an editor would
insert. Tab (or alt+enter) keeps the suggestion as the link alias.

The picker draws on stderr, so the result can be piped or captured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, app, args...)
		},
	}
}

func runPicker(cmd *cobra.Command, app *App, query ...string) error {
	m := newPickerModel(cmd.Context(), app, strings.Join(query, " "))
	p := tea.NewProgram(m,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	if pm, ok := final.(pickerModel); ok && pm.result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), pm.result)
	}
	return nil
}
