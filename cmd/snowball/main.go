// Command snowball prints a debt snowball payoff plan for the debts listed
// in a TOML file, without touching the API database.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"easybudget/internal/snowball"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		flagExtra string
		flagJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "snowball <plan.toml>",
		Short: "Debt snowball payoff planner",
		Long: `Plan a debt payoff with the snowball method.

The plan file lists debts and an optional extra monthly payment. Amounts
are quoted decimal strings:

  extra_payment = "100"

  [[debts]]
  name            = "Card"
  balance         = "1500"
  minimum_payment = "50"
  interest_rate   = "19.99"`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pf, err := LoadPlanFile(args[0])
			if err != nil {
				return err
			}

			extra := pf.ExtraPayment
			if cmd.Flags().Changed("extra") {
				extra, err = decimal.NewFromString(flagExtra)
				if err != nil {
					return fmt.Errorf("invalid --extra %q: %w", flagExtra, err)
				}
			}

			plans, err := snowball.Calculate(pf.Debts(), extra)
			if err != nil {
				return err
			}
			summary := snowball.Summarize(plans)

			out := cmd.OutOrStdout()
			if flagJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"extra_payment": extra,
					"plans":         plans,
					"summary":       summary,
				})
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, RenderTitle(fmt.Sprintf("DEBT SNOWBALL  extra %s/mo", extra.StringFixed(2))))
			fmt.Fprintln(out)
			fmt.Fprint(out, RenderPlans(plans, summary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagExtra, "extra", "e", "", "Extra monthly payment (overrides the plan file)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the plan as JSON")

	return cmd
}
