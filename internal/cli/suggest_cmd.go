package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nldates/internal/cli/formatter"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var (
		line   string
		cursor int
	)

	cmd := &cobra.Command{
		Use:   "suggest [query...]",
		Short: "List autocomplete suggestions for a partial phrase",
		Long: `List autocomplete suggestions for a partial phrase.

With --line, the query is taken from the text after the trigger phrase that
precedes --cursor (default: end of line), the way an editor would.`,
		Example: `  nldates suggest next
  nldates suggest in 3
  nldates suggest --line "lunch @tom"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var suggestions []domain.Suggestion
			if cmd.Flags().Changed("line") {
				if len(args) > 0 {
					return fmt.Errorf("--line and a query argument are mutually exclusive")
				}
				if !cmd.Flags().Changed("cursor") {
					cursor = len(line)
				}
				c, err := app.Dates.Complete(ctx, line, cursor)
				if err != nil {
					return err
				}
				if c != nil {
					suggestions = c.Suggestions
				}
			} else {
				s, err := app.Dates.Suggest(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				suggestions = s
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "editor line to complete")
	cmd.Flags().IntVar(&cursor, "cursor", 0, "byte offset of the cursor in --line")

	return cmd
}

func newLinkCmd(app *App) *cobra.Command {
	var alias bool

	cmd := &cobra.Command{
		Use:   "link <label...>",
		Short: "Render a suggestion label the way selecting it inserts it",
		Example: `  nldates link tomorrow
  nldates link --alias next friday
  nldates link time:in 2 hours`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			label := strings.Join(args, " ")

			text, err := app.Dates.Select(ctx, label, alias)
			if err != nil {
				return err
			}
			if text == domain.InvalidDate {
				fmt.Fprintln(cmd.ErrOrStderr(), domain.InvalidDate)
				return fmt.Errorf("%w: %q", domain.ErrInvalidDate, label)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&alias, "alias", "a", false, "keep the label as the link alias")

	return cmd
}
