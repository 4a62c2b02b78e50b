package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/voyantsec/voyant/internal/config"
	"github.com/voyantsec/voyant/internal/log"
	"github.com/voyantsec/voyant/internal/output"
	"github.com/voyantsec/voyant/internal/schema"
	"github.com/voyantsec/voyant/internal/settings"
	"github.com/voyantsec/voyant/internal/ui/prompt"
	"github.com/voyantsec/voyant/internal/ui/static"
	"github.com/voyantsec/voyant/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage detection settings",
		Aliases: []string{"cfg"},
		Long: `Manage the detection settings record.

Settings record: ~/.voyant/settings.json (see settings_path in config.toml)
Tool config:     ~/.voyant/config.toml`,
		Example: `  voyant config set -o allowed_countries=[IT,FR]   # Replace a list field
  voyant config set --set-default-values           # Fill empty fields with defaults
  voyant config show                               # Show current settings
  voyant config fields                             # List editable fields`,
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigFieldsCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// openStore returns the settings store, honoring the settings_path override
// from the tool config.
func openStore(cmd *cobra.Command) (*settings.Store, error) {
	cfg := config.FromContext(cmd.Context())
	path := cfg.SettingsPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return settings.NewStore(path), nil
}

func newConfigSetCmd() *cobra.Command {
	var (
		overrides   []string
		removes     []string
		appends     []string
		setDefaults bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit settings fields with FIELD=VALUE expressions",
		Args:  cobra.NoArgs,
		Long: `Edit settings fields with FIELD=VALUE expressions.

A value is a bare token (cast to int, float, bool or string) or a bracketed
comma-separated list. Bracket syntax always yields a list, even for one
element. Quote elements that contain spaces or commas.

Assignments are grouped and applied in a fixed order: all overrides first,
then removals, then appends. Everything is validated before anything is
persisted; one bad assignment aborts the whole batch.

With --set-default-values, fields whose current value is empty are filled
with their defaults instead; --force overwrites every field.`,
		Example: `  voyant config set -o allowed_countries=[IT,FR]         # Replace list
  voyant config set -a ignored_users=[bot,audit]         # Append, no duplicates
  voyant config set -r ignored_users=[bot]               # Remove values
  voyant config set -o distance_accepted_km=150          # Scalar override
  voyant config set -o "filtered_alerts_types=['New Device','Imp Travel']"
  voyant config set --set-default-values                 # Fill empty fields
  voyant config set --set-default-values --force         # Reset everything`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force && !setDefaults {
				return fmt.Errorf("--force requires --set-default-values")
			}
			if setDefaults {
				return runSetDefaults(cmd, force)
			}
			if len(overrides)+len(removes)+len(appends) == 0 {
				return fmt.Errorf("nothing to do: pass at least one of --override, --remove, or --append")
			}
			return runSet(cmd, overrides, removes, appends)
		},
	}

	cmd.Flags().StringArrayVarP(&overrides, "override", "o", nil, "Override field value (FIELD=VALUE, repeatable)")
	cmd.Flags().StringArrayVarP(&removes, "remove", "r", nil, "Remove values from a list field (repeatable)")
	cmd.Flags().StringArrayVarP(&appends, "append", "a", nil, "Append values to a list field (repeatable)")
	cmd.Flags().BoolVar(&setDefaults, "set-default-values", false, "Fill empty fields with their default values")
	cmd.Flags().BoolVar(&force, "force", false, "With --set-default-values, overwrite populated fields too")
	cmd.MarkFlagsMutuallyExclusive("set-default-values", "override")
	cmd.MarkFlagsMutuallyExclusive("set-default-values", "remove")
	cmd.MarkFlagsMutuallyExclusive("set-default-values", "append")

	return cmd
}

func runSet(cmd *cobra.Command, overrides, removes, appends []string) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	rec, err := store.Load()
	if err != nil {
		return err
	}
	l.Debugf("loaded settings from %s\n", store.Path())

	assignments, err := collectAssignments(overrides, removes, appends)
	if err != nil {
		return err
	}

	if err := applyAssignments(rec, assignments); err != nil {
		return err
	}

	if err := checkAlertTypes(rec); err != nil {
		return err
	}

	if err := store.Save(rec); err != nil {
		return err
	}

	cfg := config.FromContext(ctx)
	styled := styles.Enabled(cfg.Color)
	out.Println(styles.Render(styles.Success, styled, "Config updated successfully."))
	return nil
}

func runSetDefaults(cmd *cobra.Command, force bool) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	rec, err := store.Load()
	if err != nil {
		return err
	}

	// Overwriting populated fields deserves a second look when a human is
	// driving; piped invocations proceed unprompted.
	if force && isatty.IsTerminal(os.Stdin.Fd()) {
		res, err := prompt.Confirm("Overwrite every settings field with its default?")
		if err != nil {
			return err
		}
		if !res.Confirmed || res.Cancelled {
			return fmt.Errorf("aborted")
		}
	}

	updated := schema.FillDefaults(rec, force)

	if err := store.Save(rec); err != nil {
		return err
	}

	cfg := config.FromContext(ctx)
	styled := styles.Enabled(cfg.Color)
	var msg string
	if force {
		msg = fmt.Sprintf("All %d fields reset to defaults (forced).", len(updated))
	} else {
		msg = fmt.Sprintf("Updated %d empty fields with defaults.", len(updated))
	}
	out.Println(styles.Render(styles.Success, styled, msg))
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		copyOut    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings record",
		Args:  cobra.NoArgs,
		Example: `  voyant config show          # Aligned field/value listing
  voyant config show --json   # Output as JSON
  voyant config show --copy   # Copy JSON to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			rec, err := store.Load()
			if err != nil {
				return err
			}

			if copyOut {
				data, err := json.MarshalIndent(rec, "", "  ")
				if err != nil {
					return err
				}
				if err := clipboard.WriteAll(string(data)); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.Println("Settings copied to clipboard")
				return nil
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			l.Printf("Settings record: %s\n\n", store.Path())

			rows := make([][]string, 0, len(schema.Fields().All()))
			for _, d := range schema.Fields().All() {
				rows = append(rows, []string{d.Name, d.Get(rec).String()})
			}
			out.Print(static.RenderTable([]string{"FIELD", "VALUE"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy JSON to clipboard")
	cmd.MarkFlagsMutuallyExclusive("json", "copy")

	return cmd
}

func newConfigFieldsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List editable settings fields",
		Args:  cobra.NoArgs,
		Long: `List every editable settings field with its type, default value and a
short description. List fields accept bracket syntax and the append/remove
modes; scalar fields only accept override.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				type fieldInfo struct {
					Name    string `json:"name"`
					Type    string `json:"type"`
					Default string `json:"default"`
					Doc     string `json:"doc"`
				}
				infos := make([]fieldInfo, 0, len(schema.Fields().All()))
				for _, d := range schema.Fields().All() {
					infos = append(infos, fieldInfo{
						Name:    d.Name,
						Type:    fieldType(d),
						Default: d.Default().String(),
						Doc:     d.Doc,
					})
				}
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			rows := make([][]string, 0, len(schema.Fields().All()))
			for _, d := range schema.Fields().All() {
				rows = append(rows, []string{d.Name, fieldType(d), d.Default().String(), d.Doc})
			}
			out.Print(static.RenderTable([]string{"FIELD", "TYPE", "DEFAULT", "DESCRIPTION"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// fieldType renders a descriptor's shape for listings.
func fieldType(d *schema.Descriptor) string {
	if d.List {
		return "list of " + d.Elem.String()
	}
	return d.Elem.String()
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default tool config file",
		Args:  cobra.NoArgs,
		Long: `Create the default tool config file at ~/.voyant/config.toml.

This is the CLI's own configuration, not the detection settings record.`,
		Example: `  voyant config init      # Create config.toml
  voyant config init -f   # Overwrite existing config
  voyant config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultContent())
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
