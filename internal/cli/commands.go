package cli

import (
	"fmt"

	"github.com/arthur-debert/roster/internal/shell"
	"github.com/arthur-debert/roster/internal/version"
	"github.com/arthur-debert/roster/pkg/commands"
	"github.com/arthur-debert/roster/pkg/config"
	"github.com/arthur-debert/roster/pkg/directory"
	"github.com/arthur-debert/roster/pkg/dispatcher"
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/arthur-debert/roster/pkg/output"
	"github.com/spf13/cobra"
)

// skipSession marks commands that run without loading config or building a
// store
const skipSession = "roster/skip-session"

// session holds what every dispatching command needs. It is built once per
// invocation by the root command's PersistentPreRunE.
type session struct {
	config     *config.Config
	format     output.Format
	dispatcher *dispatcher.Dispatcher
}

func newSession(opts config.LoadOptions) (*session, error) {
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutputFormat, MsgErrFormat)
	}

	store := directory.NewMemoryStore()
	directory.Seed(store, cfg.Seed)

	logger := logging.GetLogger("cli")
	logger.Debug().
		Int("seededDepartments", len(cfg.Seed)).
		Str("format", format.String()).
		Msg("Session ready")

	return &session{
		config:     cfg,
		format:     format,
		dispatcher: commands.NewDispatcher(store, dispatcher.WithUsageHeader(cfg.Usage.Header)),
	}, nil
}

// renderers returns one renderer for results and one for errors
func (s *session) renderers(cmd *cobra.Command) (out output.Renderer, errOut output.Renderer, err error) {
	if out, err = output.NewRenderer(s.format, cmd.OutOrStdout()); err != nil {
		return nil, nil, err
	}
	if errOut, err = output.NewRenderer(s.format, cmd.ErrOrStderr()); err != nil {
		return nil, nil, err
	}
	return out, errOut, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		format     string
		sess       session
	)

	rootCmd := &cobra.Command{
		Use:     "roster",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.CommandPath(), args)

			if cmd.Annotations[skipSession] == "true" {
				return nil
			}

			opts := config.LoadOptions{Path: configPath}
			if cmd.Flags().Changed("format") {
				opts.Overrides = map[string]interface{}{"output.format": format}
			}

			s, err := newSession(opts)
			if err != nil {
				return err
			}
			sess = *s
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, &sess)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newShellCmd(&sess))
	rootCmd.AddCommand(newExecCmd(&sess))
	rootCmd.AddCommand(newUsageCmd(&sess))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runShell(cmd *cobra.Command, sess *session) error {
	out, _, err := sess.renderers(cmd)
	if err != nil {
		return err
	}

	sh := shell.New(sess.dispatcher, out, sess.config.Shell)
	if err := sh.Run(cmd.Context(), cmd.InOrStdin()); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrShellFailed)
	}
	return nil
}

func newShellCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: MsgShellShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, sess)
		},
	}
}

func newUsageCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: MsgUsageShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _, err := sess.renderers(cmd)
			if err != nil {
				return err
			}
			return out.RenderUsage(sess.dispatcher.UsageText())
		},
	}
}

func newConfigCmd() *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:         "config",
		Short:       MsgConfigShort,
		Long:        MsgConfigLong,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.UserConfigPath())
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, MsgFlagPath)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Long:        MsgVersionLong,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSession: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(roster completion bash)

Zsh:
  $ roster completion zsh > "${fpath[1]}/_roster"

Fish:
  $ roster completion fish | source

PowerShell:
  PS> roster completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{skipSession: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
