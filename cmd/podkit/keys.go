package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/podkit/internal/messages"
	"github.com/conn-castle/podkit/internal/substitution"
)

var registries = map[string]substitution.Registry{
	"podfile": substitution.PodfileRegistry,
	"podspec": substitution.PodspecRegistry,
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:       messages.KeysUse,
		Short:     messages.KeysShort,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"podfile", "podspec"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"podfile", "podspec"}
			if len(args) == 1 {
				names = args
			}
			out := cmd.OutOrStdout()
			for i, name := range names {
				reg := registries[name]
				if len(names) > 1 {
					if i > 0 {
						_, _ = fmt.Fprintln(out)
					}
					_, _ = fmt.Fprintf(out, messages.KeysHeaderFmt, reg.Name())
				}
				for _, key := range reg.Keys() {
					_, _ = fmt.Fprintln(out, key)
				}
			}
			return nil
		},
	}
}
