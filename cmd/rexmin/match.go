package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/lnsp/rexmin/regex"
)

// newMatchCmd scans stdin line by line, the same shape as the teacher's
// matchStdin/matchFile loop (bufio.Scanner over lines), rebuilt on top
// of the compiled-DFA matcher instead of the teacher's backtracking one.
func newMatchCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "match <pattern>",
		Short: "report which stdin lines match pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regex.Compile(args[0])
			if err != nil {
				gologger.Error().Msgf("%s", err)
				return err
			}

			found := false
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if re.IsMatch(line) {
					found = true
					if !quiet {
						fmt.Println(line)
					}
				}
			}
			if err := scanner.Err(); err != nil {
				gologger.Error().Msgf("reading stdin: %s", err)
				return err
			}

			if !found {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress matched-line output")
	return cmd
}
