package span

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizday/leave"
)

const (
	usage   = "range <start> <end>"
	short   = "Count business days in a date range"
	long    = "This command counts the business days in an inclusive YYYY-MM-DD range and lists the excluded days"
	example = "bizday range 2025-04-28 2025-05-09"
)

// Cmd is the range command.
var Cmd = &cobra.Command{
	Use:     usage,
	Short:   short,
	Long:    long,
	Aliases: []string{"count"},
	Example: example,
	Args:    cobra.ExactArgs(2),
	RunE:    executeRange,
}

func executeRange(cmd *cobra.Command, args []string) error {
	res, err := leave.NewValidator(nil, nil).Breakdown(args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s to %s: %d business days\n", res.Start, res.End, res.BusinessDays)
	for _, d := range res.Excluded {
		fmt.Fprintf(out, "  excluded %s %s\n", d, d.Weekday().String()[:3])
	}
	return nil
}
