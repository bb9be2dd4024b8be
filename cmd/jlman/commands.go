package jlman

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/jlman/internal/version"
	"github.com/arthur-debert/jlman/pkg/config"
	"github.com/arthur-debert/jlman/pkg/export"
	"github.com/arthur-debert/jlman/pkg/man"
	"github.com/arthur-debert/jlman/pkg/render"
	"github.com/arthur-debert/jlman/pkg/resolve"
	"github.com/arthur-debert/jlman/pkg/style"
)

// newManual builds a Manual whose renderer honors the loaded config and
// the --plain and --width flags
func newManual(cmd *cobra.Command) (*man.Manual, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	styleName := cfg.Style
	if plain, _ := cmd.Root().PersistentFlags().GetBool("plain"); plain {
		styleName = "plain"
	}

	width := cfg.Width
	if w, _ := cmd.Root().PersistentFlags().GetInt("width"); w >= 0 {
		width = w
	}

	log.Debug().Str("style", styleName).Int("width", width).Msg("building manual")
	return man.New(man.WithRenderer(render.New(styleName, width))), cfg, nil
}

// topicNamesCompletion offers every alias spelling for completion
func topicNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, b := range resolve.Table() {
		names = append(names, b.Aliases...)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "man <topic>",
		Short:             MsgManShort,
		Long:              MsgManLong,
		Example:           MsgManExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: topicNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := newManual(cmd)
			if err != nil {
				return err
			}
			// Unrecognized topics are absorbed silently, matching the
			// library's lookup contract
			return m.ExplainTopic(cmd.OutOrStdout(), args[0])
		},
	}
}

func newFunCmd() *cobra.Command {
	var extended bool

	cmd := &cobra.Command{
		Use:               "fun <topic>",
		Short:             MsgFunShort,
		Long:              MsgFunLong,
		Example:           MsgFunExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: topicNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, cfg, err := newManual(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("extended") {
				extended = cfg.Extended
			}
			return m.ListOperationsTopic(cmd.OutOrStdout(), args[0], extended)
		},
	}

	cmd.Flags().BoolVarP(&extended, "extended", "e", false, MsgFlagExtended)
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, b := range resolve.Table() {
				title := style.Bold(b.Topic.Title())
				if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
					return err
				}
				aliases := style.MutedStyle.Render(strings.Join(b.Aliases, ", "))
				if _, err := fmt.Fprintf(w, "%s\n", style.Indent(aliases, 1)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tree [type]",
		Short:   MsgTreeShort,
		Long:    MsgTreeLong,
		Example: MsgTreeExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := newManual(cmd)
			if err != nil {
				return err
			}
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			return m.TypeTree(cmd.OutOrStdout(), root)
		},
	}
}

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf(MsgErrExport, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := export.Write(w); err != nil {
				return fmt.Errorf(MsgErrExport, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jlman %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     MsgCompletionShort,
		GroupID:   "misc",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
