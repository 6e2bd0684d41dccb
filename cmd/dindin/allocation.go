package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dindin-invest/backend/internal/application/usecase/recommendation"
	"github.com/dindin-invest/backend/internal/cli"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

func newAllocationCmd() *cobra.Command {
	var (
		input recommendation.SuggestAllocationInput
		risk  string
	)

	cmd := &cobra.Command{
		Use:   "allocation",
		Short: "Show the standard allocation of a risk profile and its projection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			riskProfile, err := parseRiskProfile(risk)
			if err != nil {
				return err
			}
			input.RiskProfile = riskProfile

			out, err := recommendation.NewSuggestAllocationUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			plan := out.Plan

			rows := make([][]string, 0, len(plan.Allocation))
			for _, slice := range plan.Allocation {
				rows = append(rows, []string{slice.Name, cli.FormatPercent(slice.Percent)})
			}

			w := cmd.OutOrStdout()
			printTitle(w, "ALOCAÇÃO  "+riskProfile.Label())
			fmt.Fprint(w, cli.RenderTable(cli.Table{
				Headers: []string{"Classe", "Peso"},
				Rows:    rows,
			}))
			fmt.Fprintln(w)
			fmt.Fprint(w, cli.RenderKeyValues("Projeção", [][2]string{
				{"Retorno esperado", cli.FormatPercent(plan.ExpectedReturn) + " a.a."},
				{"Total investido", cli.FormatBRL(plan.TotalInvested)},
				{"Ganhos", cli.FormatBRL(plan.TotalGains)},
				{"Valor projetado", cli.FormatBRL(plan.ProjectedValue)},
			}))
			fmt.Fprint(w, cli.RenderNote(plan.Recommendation))
			return nil
		},
	}

	cmd.Flags().StringVar(&risk, "risk", string(entity.RiskProfileModerate), "Risk profile: conservative, moderate or aggressive")
	cmd.Flags().Float64VarP(&input.Amount, "amount", "a", 10000, "Initial amount in reais")
	cmd.Flags().IntVarP(&input.Years, "years", "y", 10, "Horizon in years")
	cmd.Flags().Float64VarP(&input.MonthlyContribution, "monthly", "m", 0, "Monthly contribution in reais")
	return cmd
}
