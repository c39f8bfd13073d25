package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/maya2harmony/internal/hanoi"
)

type hanoiOpts struct {
	disks         int
	from, via, to string
}

func NewHanoiCmd() *cobra.Command {
	opts := &hanoiOpts{}
	hanoiCmd := &cobra.Command{
		Use:     "hanoi",
		Short:   "Print the moves solving the Towers of Hanoi",
		Args:    cobra.NoArgs,
		Example: `maya2harmony hanoi -n 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			n := hanoi.Solve(opts.disks, opts.from, opts.via, opts.to, func(m hanoi.Move) {
				fmt.Fprintln(out, m)
			})
			if n > 0 {
				fmt.Fprintf(out, "%d moves\n", n)
			}
			return nil
		},
	}
	hanoiCmd.Flags().IntVarP(&opts.disks, "disks", "n", 3, fmt.Sprintf("number of disks, at most %d", hanoi.MaxDisks))
	hanoiCmd.Flags().StringVar(&opts.from, "from", "A", "source peg")
	hanoiCmd.Flags().StringVar(&opts.via, "via", "B", "spare peg")
	hanoiCmd.Flags().StringVar(&opts.to, "to", "C", "target peg")
	return hanoiCmd
}
