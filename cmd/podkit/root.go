package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/podkit/internal/config"
	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/root"
)

const (
	flagConfig  = "config"
	flagVerbose = "verbose"
)

// globalOptions are the persistent root flags.
type globalOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, flagConfig, "", messages.RootConfigFlag)
	cmd.PersistentFlags().BoolVarP(&opts.verbose, flagVerbose, "v", false, messages.RootVerboseFlag)
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	cmd.AddCommand(
		newRenderCmd(opts),
		newKeysCmd(),
		newTemplatesCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionUse,
		Short: messages.VersionShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}

// loadConfig reads --config when given (the file must exist). Otherwise it
// uses the nearest podkit.toml between the working directory and the
// repository root, or an empty config when there is none.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	if opts.configPath != "" {
		return config.Load(opts.configPath)
	}
	cwd, err := getwd()
	if err != nil {
		return nil, err
	}
	path, found, err := root.FindConfig(cwd, config.DefaultFileName)
	if err != nil {
		return nil, err
	}
	if !found {
		return &config.Config{}, nil
	}
	return config.Load(path)
}
