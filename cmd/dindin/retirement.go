package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dindin-invest/backend/internal/application/usecase/calculator"
	"github.com/dindin-invest/backend/internal/cli"
)

func newRetirementCmd() *cobra.Command {
	var input calculator.RetirementInput

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Monthly contribution needed to retire with a desired income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := calculator.NewRetirementUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "APOSENTADORIA")
			fmt.Fprint(w, cli.RenderKeyValues("Planejamento", [][2]string{
				{"Anos até a aposentadoria", cli.FormatYears(out.Result.YearsToRetirement)},
				{"Patrimônio necessário", cli.FormatBRL(out.Result.TotalNeeded)},
				{"Valor futuro da reserva atual", cli.FormatBRL(out.Result.FutureValueOfCurrentSavings)},
				{"Aporte mensal necessário", cli.FormatBRL(out.Result.MonthlyContributionNeeded)},
			}))
			fmt.Fprint(w, cli.RenderNote("Meta dimensionada pela regra dos 4% com retorno de 10% ao ano."))
			return nil
		},
	}

	cmd.Flags().IntVar(&input.CurrentAge, "age", 30, "Current age")
	cmd.Flags().IntVar(&input.RetirementAge, "retire-at", 65, "Retirement age")
	cmd.Flags().Float64Var(&input.DesiredMonthlyIncome, "income", 5000, "Desired monthly income in reais")
	cmd.Flags().Float64Var(&input.CurrentSavings, "savings", 0, "Current savings in reais")
	return cmd
}
