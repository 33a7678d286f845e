package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Luka12345937/MULUMBA-Beleive/internal/core/service"
	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List payment options",
	Long:  "List the Mobile Money operators, in-person instructions and official social links",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		payments := service.NewPaymentService(nil)
		out := cmd.OutOrStdout()

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MOBILE MONEY\tACTION")
		for _, op := range payments.Options() {
			fmt.Fprintf(w, "%s\tPay via %s\n", op, op)
		}
		w.Flush()

		fmt.Fprintf(out, "\nIn person: %s\n\n", payments.PhysicalInstructions())

		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NETWORK\tURL")
		for _, link := range payments.SocialLinks() {
			fmt.Fprintf(w, "%s\t%s\n", link.Network, link.URL)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
}
