// Command dbgspec explains and evaluates dbg enable specifications offline:
// which rules a spec compiles to, and which namespaces it turns on.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"pkt.systems/dbg"
	"pkt.systems/dbg/ansi"
)

var (
	includeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40"))

	excludeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	patternStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func main() {
	app := &cli.Command{
		Name:  "dbgspec",
		Usage: "Explain and evaluate dbg enable specifications",
		Commands: []*cli.Command{
			explainCommand(),
			checkCommand(),
			demoCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func explainCommand() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "Show the ordered rules a specification compiles to",
		ArgsUsage: "<spec>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("explain expects exactly one specification argument")
			}
			spec := cmd.Args().First()
			rules := dbg.ParseSpec(spec)
			if len(rules) == 0 {
				fmt.Println(mutedStyle.Render("empty specification: every namespace is off"))
				return nil
			}
			for i, r := range rules {
				polarity := includeStyle.Render("include")
				if r.Exclude {
					polarity = excludeStyle.Render("exclude")
				}
				fmt.Printf("%2d  %s  %s\n", i+1, polarity, patternStyle.Render(r.Pattern))
			}
			fmt.Println(mutedStyle.Render("canonical: " + serializeRules(rules)))
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Evaluate namespaces against a specification",
		ArgsUsage: "<spec> <namespace>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() < 2 {
				return fmt.Errorf("check expects a specification and at least one namespace")
			}
			args := cmd.Args().Slice()
			rules := dbg.ParseSpec(args[0])
			for _, namespace := range args[1:] {
				verdict := excludeStyle.Render("off")
				if dbg.EnabledIn(namespace, rules) {
					verdict = includeStyle.Render("on")
				}
				reason := mutedStyle.Render(decisionReason(namespace, rules))
				fmt.Printf("%-4s %s  %s\n", verdict, patternStyle.Render(namespace), reason)
			}
			return nil
		},
	}
}

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Emit sample records through the real pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "spec",
				Usage: "Enable specification to demo with",
				Value: "demo:*,-demo:noise",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dbg.Enable(cmd.String("spec"))
			dbg.SetSink(dbg.NewConsoleSink(os.Stdout, dbg.ConsoleOptions{ForceColor: true}))

			server := dbg.New("demo:server")
			worker := server.Extend("worker")
			noise := dbg.New("demo:noise")

			server.Log("listening on %s", ":8080")
			worker.Log("picked up job %d with payload %j", 42, map[string]any{"retries": 0})
			noise.Log("this line is excluded and never rendered")
			server.Log("%d of %d namespaces colored from a %d-entry palette",
				2, 3, ansi.Active().Len())
			return nil
		},
	}
}

// decisionReason names the rule that decided a namespace's verdict, or
// reports the default when nothing matched.
func decisionReason(namespace string, rules []dbg.Rule) string {
	decisive := -1
	for i, r := range rules {
		if dbg.Match(namespace, r.Pattern) {
			decisive = i
		}
	}
	if decisive < 0 {
		return "no rule matches (default off)"
	}
	return fmt.Sprintf("decided by rule %d (%s)", decisive+1, rules[decisive])
}

func serializeRules(rules []dbg.Rule) string {
	tokens := make([]string, len(rules))
	for i, r := range rules {
		tokens[i] = r.String()
	}
	return strings.Join(tokens, ",")
}
