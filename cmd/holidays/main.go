package holidays

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizday/calendar"
	"github.com/alpacahq/bizday/utils"
)

const (
	usage   = "holidays [year]"
	short   = "List the holidays of a year"
	long    = "This command lists every non-working day of a year, including substitute and citizen's holidays"
	example = "bizday holidays 2025 --format csv"

	formatDesc = "output format, one of text, csv, json"
)

var (
	format string

	// Cmd is the holidays command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Aliases: []string{"h"},
		Example: example,
		Args:    cobra.MaximumNArgs(1),
		RunE:    executeHolidays,
	}
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", formatDesc)
}

func executeHolidays(cmd *cobra.Command, args []string) error {
	year := time.Now().In(utils.InstanceConfig.Timezone).Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", args[0], err)
		}
		year = y
	}

	set := calendar.Default.Holidays(year)
	out := cmd.OutOrStdout()
	switch format {
	case "csv":
		return calendar.WriteCSV(out, set)
	case "json":
		return calendar.WriteJSON(out, set)
	case "text":
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, h := range set.Holidays() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", h.Date, h.Date.Weekday().String()[:3], h.Name, h.Kind)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
