package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	"github.com/dindin-invest/backend/internal/cli"
)

func newCompoundCmd() *cobra.Command {
	var input calculator.CompoundInterestInput

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Project compound growth with monthly contributions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := calculator.NewCompoundInterestUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "JUROS COMPOSTOS")
			fmt.Fprint(w, cli.RenderKeyValues("Resultado", [][2]string{
				{"Total investido", cli.FormatBRL(out.Result.TotalInvested)},
				{"Juros", cli.FormatBRL(out.Result.TotalInterest)},
				{"Valor final", cli.FormatBRL(out.Result.FinalAmount)},
			}))
			fmt.Fprintln(w)

			rows := make([][]string, 0, len(out.Series))
			for _, point := range out.Series {
				rows = append(rows, []string{strconv.Itoa(point.Year), cli.FormatBRL(point.Balance)})
			}
			fmt.Fprint(w, cli.RenderTable(cli.Table{
				Title:   "Evolução anual",
				Headers: []string{"Ano", "Saldo"},
				Rows:    rows,
			}))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&input.InitialAmount, "initial", "i", 0, "Initial amount in reais")
	cmd.Flags().Float64VarP(&input.MonthlyContribution, "monthly", "m", 0, "Monthly contribution in reais")
	cmd.Flags().Float64VarP(&input.AnnualRatePercent, "rate", "r", 10, "Annual rate in percent")
	cmd.Flags().IntVarP(&input.Years, "years", "y", 10, "Horizon in years")
	return cmd
}
