// Command rexmin is a thin demonstration CLI over package regex. It is
// the out-of-scope "command-line wrapper" collaborator spec.md treats
// as external to the engine: every subcommand is a direct pass-through
// to Compile/IsMatch/Inspect, never a reimplementation of matching.
package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rexmin",
		Short:         "compile regular expressions to a minimal DFA and test membership",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompileCmd())
	root.AddCommand(newMatchCmd())
	return root
}
