package request

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alpacahq/bizday/leave"
)

const (
	usage   = "leave <start> <end>"
	short   = "Validate a leave request"
	long    = "This command validates a leave request against the business-day calendar and a remaining balance"
	example = "bizday leave 2025-05-01 2025-05-09 --balance 10"

	balanceDesc = "remaining leave balance in days"
)

var (
	balance float64

	// Cmd is the leave command.
	Cmd = &cobra.Command{
		Use:     usage,
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.ExactArgs(2),
		RunE:    executeLeave,
	}
)

func init() {
	Cmd.Flags().Float64VarP(&balance, "balance", "b", 0, balanceDesc)
	_ = Cmd.MarkFlagRequired("balance")
}

func executeLeave(cmd *cobra.Command, args []string) error {
	v := leave.NewValidator(nil, leave.StaticBalance(balance))
	res, err := v.Validate(leave.Request{Start: args[0], End: args[1]})
	if err != nil {
		if leave.IsValidationError(err) {
			cmd.SilenceUsage = true
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d business days requested, %g remaining after approval\n",
		res.BusinessDays, balance-float64(res.BusinessDays))
	return nil
}
