package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/config"
	"github.com/dmitrijs2005/dungeonkeeper/internal/logging"
	"github.com/spf13/cobra"
)

type rootCommand struct {
	flags  config.Flags
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand builds the dkcli command tree. With no subcommand it starts
// the interactive loop; every REPL command except help is also available as
// a one-shot subcommand.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rc := &rootCommand{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "dkcli",
		Short:         "Dungeon Keeper command-line client",
		Long:          "dkcli manages your Dungeon Keeper tables, characters and stories from the terminal.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: rc.withApp(func(ctx context.Context, a *App, _ []string) error {
			return a.Run(ctx)
		}),
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	rc.flags.Register(root.PersistentFlags())

	for _, r := range routes() {
		if r.replOnly {
			continue
		}
		name := r.name
		root.AddCommand(&cobra.Command{
			Use:     r.use(),
			Short:   r.short,
			Aliases: r.aliases,
			Args:    cobra.MinimumNArgs(r.nargs),
			RunE: rc.withApp(func(ctx context.Context, a *App, args []string) error {
				return a.Dispatch(ctx, name, args)
			}),
		})
	}

	return root
}

// loadConfig layers defaults, file, environment and explicitly set flags.
func (rc *rootCommand) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(rc.flags.ConfigPath, nil)
	if err != nil {
		return nil, err
	}
	rc.flags.Apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withApp opens the App for the duration of one command and always closes it.
func (rc *rootCommand) withApp(fn func(ctx context.Context, a *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := rc.loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		log := logging.New(rc.errOut, cfg.LogLevel)
		a, err := NewApp(ctx, cfg, log, rc.in, rc.out)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, a.Close()) }()

		if err := fn(ctx, a, args); err != nil {
			if errors.Is(err, ErrUnknownCommand) {
				return err
			}
			return errors.New(describeError(err))
		}
		return nil
	}
}

// Execute runs the command tree against the process streams and returns the
// exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln(err)
		return 1
	}
	return 0
}
