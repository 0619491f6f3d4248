package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/nldates/internal/cli/formatter"
	"github.com/alexanderramin/nldates/internal/domain"
	"github.com/alexanderramin/nldates/internal/importer"
	"github.com/alexanderramin/nldates/internal/service"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change formatting, link and autosuggest settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsResetCmd(app),
		newSettingsEditCmd(app),
		newSettingsImportCmd(app),
		newSettingsExportCmd(app),
	)

	return cmd
}

func showSettings(cmd *cobra.Command, app *App) error {
	s, err := app.Settings.Get(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s, service.SettingKeys()))
	return nil
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Change one setting.

Boolean settings (append-time, autosuggest, toggle-link) accept
true/false, yes/no, on/off and 1/0.`,
		Example: `  nldates settings set date-format "MMMM Do, YYYY"
  nldates settings set week-start monday
  nldates settings set link-style markdown`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch {
			case len(args) == 0:
				return matchPrefix(service.SettingKeys(), toComplete), cobra.ShellCompDirectiveNoFileComp
			case args[0] == "week-start":
				return matchPrefix(weekStartNames(), toComplete), cobra.ShellCompDirectiveNoFileComp
			case args[0] == "link-style":
				return matchPrefix([]string{string(domain.LinkWikilink), string(domain.LinkMarkdown)}, toComplete), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Set(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s, []string{args[0]}))
			return nil
		},
	}
}

func newSettingsResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Reset all settings to their defaults? [y/N]: ") {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			s, err := app.Settings.Reset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s, service.SettingKeys()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings in an interactive form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("settings edit needs a terminal; use 'nldates settings set <key> <value>'")
			}
			ctx := cmd.Context()
			current, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			draft := newSettingsDraft(current)
			form := newSettingsForm(draft).
				WithInput(cmd.InOrStdin()).
				WithOutput(cmd.ErrOrStderr())
			if err := form.Run(); err != nil {
				return fmt.Errorf("settings form: %w", err)
			}

			updated, err := draft.settings()
			if err != nil {
				return err
			}
			if err := app.Settings.Save(ctx, updated); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(updated, service.SettingKeys()))
			return nil
		},
	}
}

func newSettingsImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <data.json>",
		Short: "Import settings from the editor plugin's data.json",
		Long: `Import settings from the Natural Language Dates plugin's data.json
(usually .obsidian/plugins/nldates-obsidian/data.json). Keys missing from the
file keep their current values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := importer.LoadPluginSettings(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidatePluginSettings(p); len(errs) > 0 {
				return fmt.Errorf("invalid settings file %s: %w", args[0], errors.Join(errs...))
			}

			current, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			updated := importer.Apply(p, *current)
			if err := app.Settings.Save(ctx, &updated); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(&updated, service.SettingKeys()))
			return nil
		},
	}
}

func newSettingsExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [data.json]",
		Short: "Write settings in the editor plugin's data.json format",
		Long:  "Write settings in the plugin's data.json format, to the given file or stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			data, err := importer.FromSettings(*s).Marshal()
			if err != nil {
				return fmt.Errorf("encoding settings: %w", err)
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	}
}
