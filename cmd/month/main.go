package month

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizday/calendar"
)

const (
	usage   = "month <year> <month>"
	short   = "Print a month grid"
	long    = "This command prints a month grid, marking holidays with * and weekends with brackets"
	example = "bizday month 2025 5"
)

// Cmd is the month command.
var Cmd = &cobra.Command{
	Use:     usage,
	Short:   short,
	Long:    long,
	Aliases: []string{"m"},
	Example: example,
	Args:    cobra.ExactArgs(2),
	RunE:    executeMonth,
}

func executeMonth(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	m, err := strconv.Atoi(args[1])
	if err != nil || m < 1 || m > 12 {
		return fmt.Errorf("invalid month %q", args[1])
	}

	days := calendar.Default.Month(year, time.Month(m))
	fmt.Fprint(cmd.OutOrStdout(), render(days))
	return nil
}

func render(days []calendar.DayStatus) string {
	var b strings.Builder
	if len(days) == 0 {
		return ""
	}
	fmt.Fprintf(&b, "%s %d\n", days[0].Date.Month, days[0].Date.Year)
	b.WriteString(" Sun  Mon  Tue  Wed  Thu  Fri  Sat\n")
	b.WriteString(strings.Repeat("     ", int(days[0].Date.Weekday())))
	for _, d := range days {
		cell := fmt.Sprintf(" %2d ", d.Date.Day)
		switch {
		case d.Holiday:
			cell = fmt.Sprintf(" %2d*", d.Date.Day)
		case d.Weekend:
			cell = fmt.Sprintf("[%2d]", d.Date.Day)
		}
		b.WriteString(cell + " ")
		if d.Date.Weekday() == time.Saturday {
			b.WriteString("\n")
		}
	}
	if days[len(days)-1].Date.Weekday() != time.Saturday {
		b.WriteString("\n")
	}
	return b.String()
}
