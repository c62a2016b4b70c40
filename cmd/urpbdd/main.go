// Command urpbdd is the batch driver CLI for the URP/BDD engine (spec §2,
// §4.6, §6; SPEC_FULL §5): it fixes the observable command surface over
// the cube-list algebra and BDD construction described by the rest of
// this module. Grounded on the teacher's cli/main.go cobra root command
// and cmd/devcmd/main.go exit-code convention.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/the-pinbo/ROBDD/internal/bdd"
	"github.com/the-pinbo/ROBDD/internal/driver"
	"github.com/the-pinbo/ROBDD/internal/errs"
	"github.com/the-pinbo/ROBDD/internal/expr"
	"github.com/the-pinbo/ROBDD/internal/registry"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var noColor bool

	root := &cobra.Command{
		Use:           "urpbdd",
		Short:         "Boolean function manipulation engine: URP cube-list algebra and ROBDD construction",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized error output")

	root.AddCommand(newRunCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newBDDCmd())
	root.AddCommand(newValidateConfigCmd())

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		formatError(os.Stderr, err, !noColor)
		return exitCodeFor(err)
	}
	return exitSuccess
}

func exitCodeFor(err error) int {
	// The concrete *errs.Error Kind / *cliError Type carries enough
	// information to distinguish usage mistakes from engine failures;
	// anything else (cobra's flag and argument errors) is treated as a
	// usage error.
	switch e := err.(type) {
	case *errs.Error:
		switch e.Kind {
		case errs.KindIOFailure:
			return exitIO
		case errs.KindContractViolate:
			return exitEngine
		}
		return exitParse
	case *cliError:
		switch e.Type {
		case "io":
			return exitIO
		case "parse":
			return exitParse
		case "contract":
			return exitEngine
		}
	}
	return exitUsage
}

func newRunCmd() *cobra.Command {
	var inDir, outDir string
	cmd := &cobra.Command{
		Use:   "run COMMANDFILE",
		Short: "Run a batch command file against .pcn slots (spec §4.6)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := driver.New(inDir, outDir)
			return d.Run(args[0])
		},
	}
	cmd.Flags().StringVar(&inDir, "in", ".", "input directory for `r` commands")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for `p` commands")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var inDir, outDir string
	cmd := &cobra.Command{
		Use:   "watch COMMANDFILE",
		Short: "Rerun a command file whenever an input .pcn changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := driver.New(inDir, outDir)
			stop := make(chan struct{})
			return d.Watch(args[0], stop)
		},
	}
	cmd.Flags().StringVar(&inDir, "in", ".", "input directory for `r` commands")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory for `p` commands")
	return cmd
}

func newBDDCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "bdd FILE.pcn",
		Short: "Build a BDD from a PCN file under an explicit variable order and report it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBDD(args[0], order, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&order, "order", "", "comma-separated ascending variable order, named or positional (e.g. a,b,c or 1,2,3)")
	_ = cmd.MarkFlagRequired("order")
	return cmd
}

func runBDD(path, orderStr string, w io.Writer) error {
	e, err := expr.FromFile(path)
	if err != nil {
		return err
	}

	reg := registry.New()
	order, err := parseOrder(reg, orderStr)
	if err != nil {
		return &cliError{Type: "parse", Message: err.Error()}
	}

	t := bdd.NewTable()
	root := t.Build(e, order)

	nodes := bdd.DFSPreorder(root)
	fmt.Fprintf(w, "nodes: %d\n", len(nodes))
	if root == t.Zero() {
		fmt.Fprintln(w, "function: constant false")
		return nil
	}
	if root == t.One() {
		fmt.Fprintln(w, "function: constant true")
		return nil
	}
	model, ok := t.SatisfyOne(root)
	if !ok {
		fmt.Fprintln(w, "satisfiable: no")
		return nil
	}
	fmt.Fprintln(w, "satisfiable: yes")
	for _, v := range order {
		val, present := model[v]
		if !present {
			continue
		}
		name, _, ok := reg.Name(v)
		if !ok {
			name = fmt.Sprintf("x%d", v)
		}
		fmt.Fprintf(w, "  %s = %v\n", name, val)
	}
	return nil
}

// parseOrder splits --order's comma-separated variable keys and interns
// each into reg in the order given: per spec §3 the registry's uniqid
// assignment is append-only and ascending-uniqid order is the BDD
// variable order, so the first key named becomes variable 1, the second
// variable 2, and so on. Keys may be plain names (a, b, x1) or bare
// integers (1, 2) - the registry treats both as opaque strings.
func parseOrder(reg *registry.Registry, s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("--order must not be empty")
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		name := strings.TrimSpace(f)
		if name == "" {
			return nil, fmt.Errorf("--order field %d is empty", i+1)
		}
		out[i] = reg.Intern(name)
	}
	return out, nil
}

func newValidateConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config FILE",
		Short: "Validate a run-configuration file against its JSON Schema and schemaVersion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := driver.LoadConfig(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: schemaVersion=%s inDir=%s outDir=%s commandFile=%s\n",
				cfg.SchemaVersion, cfg.InDir, cfg.OutDir, cfg.CommandFile)
			return nil
		},
	}
}
