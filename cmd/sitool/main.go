package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/oisee/strided-interval/internal/config"
	"github.com/oisee/strided-interval/pkg/boolresult"
	"github.com/oisee/strided-interval/pkg/si"
	"github.com/oisee/strided-interval/pkg/si/diag"
	"github.com/spf13/cobra"
)

// compareOp dispatches one of the three-valued comparison operations by
// name; name is already validated/lower-cased by runOp's switch.
func compareOp(name string, a, b *si.SI) boolresult.Result {
	switch name {
	case "ult":
		return si.ULT(a, b)
	case "ule":
		return si.ULE(a, b)
	case "ugt":
		return si.UGT(a, b)
	case "uge":
		return si.UGE(a, b)
	case "slt":
		return si.SLT(a, b)
	case "sle":
		return si.SLE(a, b)
	case "sgt":
		return si.SGT(a, b)
	case "sge":
		return si.SGE(a, b)
	case "eq":
		return si.Eq(a, b)
	default:
		return si.Ne(a, b)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitool",
		Short: "Strided-interval abstract domain command-line driver",
	}

	// parse command
	parseCmd := &cobra.Command{
		Use:   "parse [literal]",
		Short: "Parse an SI literal and print its normalized form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := si.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Println(s.String())
			return nil
		},
	}

	// eval command: run a single named operation against SI-literal operands
	var evalArgs []int
	var preserveSign bool
	evalCmd := &cobra.Command{
		Use:   "eval [op] [operands...]",
		Short: "Evaluate a single operation against SI-literal operands",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := config.Op{Op: args[0], Operands: args[1:], Args: evalArgs}
			var sink diag.Sink
			out, err := runOp(op, preserveSign, &sink)
			if err != nil {
				return err
			}
			for _, w := range sink.Warnings() {
				log.Printf("sitool: %s", w.String())
			}
			fmt.Println(out)
			return nil
		},
	}
	evalCmd.Flags().IntSliceVar(&evalArgs, "args", nil, "operation-specific integer arguments (e.g. extract high,low)")
	evalCmd.Flags().BoolVar(&preserveSign, "preserve-sign", false, "arithmetic (sign-preserving) shift for rshift")

	// batch command: run every operation named in a --config JSON file
	var configPath string
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every operation listed in a --config JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			batch, err := config.Load(configPath)
			if err != nil {
				return err
			}
			failed := false
			for i, op := range batch.Ops {
				var sink diag.Sink
				out, err := runOp(op, preserveSign, &sink)
				if err != nil {
					fmt.Fprintf(os.Stderr, "[%d] %s: error: %v\n", i, op.Op, err)
					failed = true
					continue
				}
				for _, w := range sink.Warnings() {
					log.Printf("sitool: [%d] %s", i, w.String())
				}
				fmt.Printf("[%d] %s => %s\n", i, op.Op, out)
			}
			if failed {
				return fmt.Errorf("one or more operations failed")
			}
			return nil
		},
	}
	batchCmd.Flags().StringVar(&configPath, "config", "", "JSON batch file (internal/config.Batch)")

	rootCmd.AddCommand(parseCmd, evalCmd, batchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseOperands(lits []string) ([]*si.SI, error) {
	out := make([]*si.SI, len(lits))
	for i, lit := range lits {
		s, err := si.Parse(lit)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func requireOperands(op config.Op, n int) ([]*si.SI, error) {
	if len(op.Operands) != n {
		return nil, fmt.Errorf("%s: expected %d operand(s), got %d", op.Op, n, len(op.Operands))
	}
	return parseOperands(op.Operands)
}

// runOp dispatches a single config.Op to its pkg/si implementation,
// rendering the result the same way (*si.SI).String / boolresult.Result
// render themselves.
func runOp(op config.Op, preserveSign bool, sink *diag.Sink) (string, error) {
	name := strings.ToLower(op.Op)
	switch name {
	case "add", "sub", "udiv", "sdiv", "mod", "and", "or", "xor", "concat":
		ops, err := requireOperands(op, 2)
		if err != nil {
			return "", err
		}
		var r *si.SI
		switch name {
		case "add":
			r = si.Add(ops[0], ops[1])
		case "sub":
			r = si.Sub(ops[0], ops[1])
		case "udiv":
			r = si.Udiv(ops[0], ops[1])
		case "sdiv":
			r = si.Sdiv(ops[0], ops[1])
		case "mod":
			r = si.Mod(ops[0], ops[1])
		case "and":
			r = si.And(ops[0], ops[1])
		case "or":
			r = si.Or(ops[0], ops[1])
		case "xor":
			r = si.Xor(ops[0], ops[1])
		case "concat":
			r = si.Concat(ops[0], ops[1])
		}
		return r.String(), nil
	case "mul":
		ops, err := requireOperands(op, 2)
		if err != nil {
			return "", err
		}
		return si.Mul(ops[0], ops[1], sink).String(), nil
	case "neg", "not", "complement", "reverse", "materializereverse":
		ops, err := requireOperands(op, 1)
		if err != nil {
			return "", err
		}
		var r *si.SI
		switch name {
		case "neg":
			r = si.Neg(ops[0])
		case "not":
			r = si.Not(ops[0])
		case "complement":
			r = ops[0].Complement()
		case "reverse":
			r = si.Reverse(ops[0])
		case "materializereverse":
			r = si.MaterializeReverse(ops[0], sink)
		}
		return r.String(), nil
	case "lshift", "rshift":
		ops, err := requireOperands(op, 2)
		if err != nil {
			return "", err
		}
		if name == "lshift" {
			return si.Lshift(ops[0], ops[1]).String(), nil
		}
		return si.Rshift(ops[0], ops[1], preserveSign).String(), nil
	case "extract":
		ops, err := requireOperands(op, 1)
		if err != nil {
			return "", err
		}
		if len(op.Args) != 2 {
			return "", fmt.Errorf("extract: expected --args high,low")
		}
		return si.Extract(ops[0], op.Args[0], op.Args[1]).String(), nil
	case "castlow", "zeroextend", "signextend", "agnosticextend":
		ops, err := requireOperands(op, 1)
		if err != nil {
			return "", err
		}
		if len(op.Args) != 1 {
			return "", fmt.Errorf("%s: expected --args width", name)
		}
		w := op.Args[0]
		var r *si.SI
		switch name {
		case "castlow":
			r = si.CastLow(ops[0], w)
		case "zeroextend":
			r = si.ZeroExtend(ops[0], w)
		case "signextend":
			r = si.SignExtend(ops[0], w)
		case "agnosticextend":
			r = si.AgnosticExtend(ops[0], w)
		}
		return r.String(), nil
	case "union":
		ops, err := parseOperands(op.Operands)
		if err != nil {
			return "", err
		}
		if len(ops) == 0 {
			return "", fmt.Errorf("union: expected at least one operand")
		}
		return si.Union(ops...).String(), nil
	case "intersection":
		ops, err := requireOperands(op, 2)
		if err != nil {
			return "", err
		}
		pieces := si.Intersection(ops[0], ops[1])
		rendered := make([]string, len(pieces))
		for i, p := range pieces {
			rendered[i] = p.String()
		}
		return strings.Join(rendered, ", "), nil
	case "widen":
		ops, err := requireOperands(op, 2)
		if err != nil {
			return "", err
		}
		return si.Widen(ops[0], ops[1]).String(), nil
	case "ult", "ule", "ugt", "uge", "slt", "sle", "sgt", "sge", "eq", "ne":
		ops, err := requireOperands(op, 2)
		if err != nil {
			return "", err
		}
		return compareOp(name, ops[0], ops[1]).String(), nil
	default:
		return "", fmt.Errorf("unknown operation %q", op.Op)
	}
}
