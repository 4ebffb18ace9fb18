package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run multiple commands against one store connection",
		Long: `Open a prompt that accepts any other command by name, reusing the store
connection opened at startup. Type 'help' for the command list, 'exit' or
'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			siblings := siblingCommands(cmd)

			fmt.Println("\nInteractive session. Type 'help' for commands, 'exit' to leave.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}

				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}

				switch fields[0] {
				case "exit", "quit":
					fmt.Println("Bye.")
					return nil
				case "help":
					printSessionHelp(siblings)
					continue
				}

				target, ok := siblings[fields[0]]
				if !ok {
					fmt.Printf("unknown command %q (try 'help')\n", fields[0])
					continue
				}
				if err := dispatch(target, fields[1:]); err != nil {
					fmt.Printf("error: %v\n", err)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}
			return nil
		},
	}
}

// siblingCommands indexes the root's commands by name, leaving out the
// session itself and cobra's built-ins.
func siblingCommands(cmd *cobra.Command) map[string]*cobra.Command {
	out := make(map[string]*cobra.Command)
	for _, c := range cmd.Parent().Commands() {
		switch c.Name() {
		case "interactive", "completion", "help":
			continue
		}
		out[c.Name()] = c
	}
	return out
}

// dispatch runs one command's RunE in-process. Flags are reset to their
// defaults first, since cobra keeps flag state between invocations, and
// PersistentPreRunE is skipped so the store is not reopened.
func dispatch(cmd *cobra.Command, args []string) error {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Changed = false
		f.Value.Set(f.DefValue)
	})

	if err := cmd.ParseFlags(args); err != nil {
		return err
	}
	rest := cmd.Flags().Args()
	if cmd.Args != nil {
		if err := cmd.Args(cmd, rest); err != nil {
			return err
		}
	}

	if cmd.RunE != nil {
		return cmd.RunE(cmd, rest)
	}
	if cmd.Run != nil {
		cmd.Run(cmd, rest)
	}
	return nil
}

func printSessionHelp(commands map[string]*cobra.Command) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nAvailable commands:")
	for _, name := range names {
		fmt.Printf("  %-40s %s\n", commands[name].Use, commands[name].Short)
	}
	fmt.Println("  help")
	fmt.Println("  exit, quit")
}
