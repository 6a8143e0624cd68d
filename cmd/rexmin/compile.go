package main

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/lnsp/rexmin/automaton"
	"github.com/lnsp/rexmin/regex"
)

func newCompileCmd() *cobra.Command {
	var dump bool
	var dumpNFA bool

	cmd := &cobra.Command{
		Use:   "compile <pattern>",
		Short: "validate a pattern and report Syntax/InvalidRange errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regex.Compile(args[0])
			if err != nil {
				switch err.(type) {
				case *regex.SyntaxError:
					gologger.Error().Msgf("syntax error: %s", err)
				case *regex.InvalidRangeError:
					gologger.Error().Msgf("invalid range: %s", err)
				default:
					gologger.Error().Msgf("%s", err)
				}
				return err
			}

			gologger.Info().Msgf("pattern compiled successfully")

			if dumpNFA {
				fmt.Print(automaton.Dump(re.InspectNFA()))
			}
			if dump {
				fmt.Print(automaton.Dump(re.Inspect()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the minimized DFA")
	cmd.Flags().BoolVar(&dumpNFA, "dump-nfa", false, "print the pre-minimization NFA")
	return cmd
}
