package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/nldates/internal/cli/formatter"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/service"
	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	var (
		mode      string
		format    string
		details   bool
		noHistory bool
		weekStart weekStartValue
	)

	cmd := &cobra.Command{
		Use:   "parse <phrase...>",
		Short: "Resolve a phrase and print it in a parse mode",
		Long: `Resolve a phrase and print it.

Modes:
  replace  link to the date in the configured link style, e.g. [[2026-10-15]]
  link     markdown link labelled with the phrase, e.g. [tomorrow](2026-10-15)
  clean    the date alone
  time     the time alone

Phrases starting with "time:" are resolved as times of day.`,
		Example: `  nldates parse next friday
  nldates parse --mode link in 3 days
  nldates parse --week-start sunday next sunday
  nldates parse --format "dddd, MMMM Do" christmas`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if weekStart.set {
				ctx = service.WithWeekStart(ctx, weekStart.value)
			}
			phrase := strings.Join(args, " ")

			pm, err := domain.ValidateParseMode(mode)
			if err != nil {
				return err
			}
			if format != "" {
				pm = domain.ModeClean
			}
			m, text, err := renderPhrase(ctx, app, phrase, pm, format)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if details {
				fmt.Fprintln(out, formatter.FormatMoment(phrase, m, pm, text))
			} else if m.Valid {
				fmt.Fprintln(out, text)
			}
			if !m.Valid {
				if !details {
					fmt.Fprintln(cmd.ErrOrStderr(), domain.InvalidDate)
				}
				return fmt.Errorf("%w: %q", domain.ErrInvalidDate, phrase)
			}

			if !noHistory {
				if _, err := app.History.Record(ctx, phrase, text, pm); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.ModeReplace), "parse mode (replace, link, clean, time)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "custom output pattern, e.g. \"YYYY-MM-DD HH:mm\" (ignores --mode)")
	cmd.Flags().BoolVar(&details, "details", false, "show the resolved moment in a box")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this phrase in history")
	cmd.Flags().Var(&weekStart, "week-start", weekStartUsage())

	_ = cmd.RegisterFlagCompletionFunc("mode", completeFrom(parseModeNames))
	_ = cmd.RegisterFlagCompletionFunc("week-start", completeFrom(weekStartNames))

	return cmd
}

// renderPhrase applies mode, or the custom pattern when one is given.
func renderPhrase(ctx context.Context, app *App, phrase string, mode domain.ParseMode, pattern string) (domain.ParsedMoment, string, error) {
	if pattern != "" {
		m, err := app.Dates.Parse(ctx, phrase, pattern)
		return m, m.Formatted, err
	}
	r, err := app.Dates.Render(ctx, phrase, mode)
	return r.Moment, r.Text, err
}

func newNowCmd(app *App) *cobra.Command {
	return newCurrentCmd("now", "Print the current date and time", func(ctx context.Context) (domain.ParsedMoment, error) {
		return app.Dates.Now(ctx)
	})
}

func newTodayCmd(app *App) *cobra.Command {
	return newCurrentCmd("today", "Print today's date", func(ctx context.Context) (domain.ParsedMoment, error) {
		return app.Dates.Today(ctx)
	})
}

func newTimeCmd(app *App) *cobra.Command {
	return newCurrentCmd("time", "Print the current time", func(ctx context.Context) (domain.ParsedMoment, error) {
		return app.Dates.CurrentTime(ctx)
	})
}

func newCurrentCmd(use, short string, current func(ctx context.Context) (domain.ParsedMoment, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Formatted)
			return nil
		},
	}
}
