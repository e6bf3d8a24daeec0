package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/inputkit/internal/attrflag"
	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/defaults"
	"github.com/vango-dev/inputkit/pkg/input"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var (
		attrs  []string
		theme  string
		id     string
		prefix string
		suffix string
		output bool
	)

	cmd := &cobra.Command{
		Use:   "render <kind>",
		Short: "Render one input element",
		Long: `Render one <input> element to stdout.

Attribute values are parsed: true and false become booleans, null
removes a default, integers become numbers. A bare name sets a
boolean attribute.

Examples:
  inputkit render text --attr name=email --attr required
  inputkit render range --attr min=0 --attr max=10 --output
  inputkit render checkbox --theme bootstrap --id agree`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return kindNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			el, err := input.New(input.Kind(args[0]))
			if err != nil {
				return errors.New(errors.CodeUnknownKind).WithDetail(err.Error())
			}

			parsed, err := attrflag.ParseAll(attrs)
			if err != nil {
				return err
			}

			reg := defaults.NewRegistry()
			reg.SetLogger(opts.logger)
			themes := cfg.Apply(reg)

			el = el.WithRegistry(reg).Attrs(parsed)

			themeName := cfg.Theme
			if cmd.Flags().Changed("theme") {
				themeName = theme
			}
			if themeName != "" {
				if themes == nil || !themes.HasTheme(themeName) {
					return errors.New(errors.CodeUnknownTheme).
						WithDetail(fmt.Sprintf("theme %q is not defined", themeName)).
						WithSuggestion("Available themes: " + strings.Join(cfg.ThemeNames(), ", "))
				}
				el = el.WithTheme(themeName, themes)
			}
			if cmd.Flags().Changed("id") {
				el = el.ID(attrflag.ParseValue(id))
			}
			if prefix != "" {
				el = el.Prefix(prefix)
			}
			if suffix != "" {
				el = el.Suffix(suffix)
			}
			if output {
				el = el.ShowOutput(true)
			}

			opts.logger.Debug().Str("kind", args[0]).Str("theme", themeName).Int("attributes", len(parsed)).Msg("rendering")
			fmt.Fprintln(cmd.OutOrStdout(), el.Render())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "Attribute as name=value (repeatable)")
	cmd.Flags().StringVarP(&theme, "theme", "t", "", "Theme to apply (default from inputkit.yaml, empty for none)")
	cmd.Flags().StringVar(&id, "id", "", "Element id; null disables the generated id")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Raw markup rendered before the input")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Raw markup rendered after the input")
	cmd.Flags().BoolVar(&output, "output", false, "Render the <output> sibling of a range input")

	return cmd
}

func kindNames() []string {
	kinds := input.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported input kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range kindNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
