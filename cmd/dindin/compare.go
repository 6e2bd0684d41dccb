package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	"github.com/dindin-invest/backend/internal/cli"
)

func newCompareCmd() *cobra.Command {
	var input calculator.CompareInvestmentsInput

	cmd := &cobra.Command{
		Use:   "compare [product ids...]",
		Short: "Compare investment products after taxes and fees",
		RunE: func(cmd *cobra.Command, args []string) error {
			input.ProductIDs = args

			out, err := calculator.NewCompareInvestmentsUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(out.Results))
			for _, r := range out.Results {
				rows = append(rows, []string{
					r.Product.Name,
					cli.FormatBRL(r.GrossAmount),
					cli.FormatBRL(r.TaxAmount),
					cli.FormatBRL(r.FeeAmount),
					cli.FormatBRL(r.FinalAmount),
					cli.FormatPercent(r.EffectiveAnnualReturn),
				})
			}

			w := cmd.OutOrStdout()
			printTitle(w, fmt.Sprintf("COMPARATIVO  %s em %s", cli.FormatBRL(input.Amount), cli.FormatYears(input.Years)))
			fmt.Fprint(w, cli.RenderTable(cli.Table{
				Headers: []string{"Produto", "Bruto", "IR", "Taxas", "Líquido", "Ret. a.a."},
				Rows:    rows,
			}))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&input.Amount, "amount", "a", 10000, "Amount invested in reais")
	cmd.Flags().IntVarP(&input.Years, "years", "y", 5, "Holding period in years")
	return cmd
}
