package check

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizday/calendar"
	"github.com/alpacahq/bizday/utils"
)

const (
	usage   = "check [date...]"
	short   = "Tell whether dates are business days"
	long    = "This command reports, for each YYYY-MM-DD date, whether it is a business day, a weekend or a holiday. Without arguments it checks today"
	example = "bizday check 2025-05-06 2025-05-07"
)

// Cmd is the check command.
var Cmd = &cobra.Command{
	Use:     usage,
	Short:   short,
	Long:    long,
	Aliases: []string{"is"},
	Example: example,
	RunE:    executeCheck,
}

func executeCheck(cmd *cobra.Command, args []string) error {
	dates := make([]calendar.Date, 0, len(args))
	for _, a := range args {
		d, err := calendar.ParseDate(a)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		dates = append(dates, calendar.DateOf(time.Now().In(utils.InstanceConfig.Timezone)))
	}

	for _, d := range dates {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", d, d.Weekday().String()[:3], describe(d))
	}
	return nil
}

func describe(d calendar.Date) string {
	set := calendar.Default.Holidays(d.Year)
	switch {
	case set.Contains(d):
		return fmt.Sprintf("holiday (%s)", set.Kind(d))
	case calendar.IsWeekend(d):
		return "weekend"
	default:
		return "business day"
	}
}
