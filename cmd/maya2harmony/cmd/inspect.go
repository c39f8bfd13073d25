package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ivlev/maya2harmony/internal/keyframe"
	"github.com/ivlev/maya2harmony/internal/maya"
)

func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect [SHEET|FILE]",
		Short:   "Show the channels found for an object and the curves they assemble into",
		Args:    cobra.MaximumNArgs(1),
		Example: `maya2harmony inspect scenes/camera1.ma`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sheet, plan, err := loadPlan(args)
			if err != nil {
				return err
			}
			return printInspect(os.Stdout, sheet, plan)
		},
	}
}

func printInspect(w io.Writer, sheet *keyframe.Sheet, plan *keyframe.Plan) error {
	fmt.Fprintf(w, "object: %s\n", sheet.Object)

	channels := tablewriter.NewWriter(w)
	channels.SetHeader([]string{"channel", "keys", "first", "last"})
	for _, c := range maya.Channels {
		raw, ok := sheet.Channels[c]
		if !ok {
			continue
		}
		series, err := keyframe.ParseSeries(raw)
		if err != nil {
			return err
		}
		first, last := "-", "-"
		if len(series) > 0 {
			first = strconv.FormatFloat(series[0], 'g', -1, 64)
			last = strconv.FormatFloat(series[len(series)-1], 'g', -1, 64)
		}
		channels.Append([]string{string(c), strconv.Itoa(len(series)), first, last})
	}
	channels.Render()

	curves := tablewriter.NewWriter(w)
	curves.SetHeader([]string{"curve", "type", "keyframes"})
	for _, c := range plan.Curves {
		curves.Append([]string{c.Name, string(c.Kind), strconv.Itoa(c.Len())})
	}
	curves.Render()
	return nil
}
