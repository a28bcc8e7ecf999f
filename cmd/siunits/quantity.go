package main

import (
	"fmt"

	"siunits"

	"github.com/spf13/cobra"
)

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <quantity>",
		Short: "Parse a quantity and print its canonical form and dimension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := a.parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t[%s]\n", q, q.Dimension())
			return nil
		},
	}
}

func newBaseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "base <quantity>",
		Short: "Express a quantity in unprefixed base units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, args[0], func(q siunits.Quantity) (siunits.Quantity, error) {
				return q.ToBase(), nil
			})
		},
	}
}

func newNoPrefixCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "noprefix <quantity>",
		Short: "Fold unit prefixes into the magnitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, args[0], func(q siunits.Quantity) (siunits.Quantity, error) {
				return q.NoPrefix(), nil
			})
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <quantity> <units>",
		Short: "Convert a quantity to a unit expression of the same dimension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, args[0], func(q siunits.Quantity) (siunits.Quantity, error) {
				return q.To(args[1])
			})
		},
	}
}

func newSwapCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <quantity> <from> <to>",
		Short: "Replace one unit of a quantity by another, keeping the rest",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(cmd, args[0], func(q siunits.Quantity) (siunits.Quantity, error) {
				return q.Swap(args[1], args[2])
			})
		},
	}
}

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <quantity> <quantity>",
		Short: "Compare two quantities of the same dimension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.parse(args[0])
			if err != nil {
				return err
			}
			y, err := a.parse(args[1])
			if err != nil {
				return err
			}
			c, err := x.Cmp(y)
			if err != nil {
				return err
			}
			op := map[int]string{-1: "<", 0: "==", 1: ">"}[c]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", x, op, y)
			return nil
		},
	}
}

func (a *app) print(cmd *cobra.Command, arg string, op func(siunits.Quantity) (siunits.Quantity, error)) error {
	q, err := a.parse(arg)
	if err != nil {
		return err
	}
	out, err := op(q)
	if err != nil {
		return err
	}
	a.logger.Debug("converted", "from", q, "to", out)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
