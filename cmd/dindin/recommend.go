package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dindin-invest/backend/internal/cli"
	"github.com/dindin-invest/backend/internal/domain/entity"
	selector "github.com/dindin-invest/backend/internal/domain/recommendation"
)

func newRecommendCmd() *cobra.Command {
	var (
		profile entity.FinancialProfile
		risk    string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest domestic and international investments for a budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			riskProfile, err := parseRiskProfile(risk)
			if err != nil {
				return err
			}
			profile.RiskProfile = riskProfile

			bundle, err := selector.GenerateRecommendations(profile)
			if err != nil {
				return err
			}
			class := selector.Classify(profile)

			w := cmd.OutOrStdout()
			printTitle(w, "RECOMENDAÇÕES  "+riskProfile.Label())
			fmt.Fprint(w, cli.RenderKeyValues("Perfil", [][2]string{
				{"Disponível por mês", cli.FormatBRL(class.AvailableToInvest)},
				{"Renda", class.IncomeLevel.Label()},
				{"Capacidade de risco", class.RiskCapacity.Label()},
			}))
			fmt.Fprintln(w)

			fmt.Fprint(w, suggestionTable("Brasil", bundle.DomesticSuggestions))
			fmt.Fprintln(w)
			fmt.Fprint(w, suggestionTable("Internacional", bundle.InternationalSuggestions))
			fmt.Fprintln(w)

			fmt.Fprint(w, cli.RenderNote(bundle.Summary))
			fmt.Fprint(w, cli.RenderWarnings(bundle.Warnings))
			return nil
		},
	}

	cmd.Flags().Float64Var(&profile.MonthlyIncome, "income", 0, "Monthly income in reais")
	cmd.Flags().Float64Var(&profile.MonthlyEssentialExpenses, "essential", 0, "Monthly essential expenses in reais")
	cmd.Flags().Float64Var(&profile.MonthlyDiscretionaryExpenses, "discretionary", 0, "Monthly discretionary expenses in reais")
	cmd.Flags().IntVar(&profile.Age, "age", 30, "Investor age")
	cmd.Flags().StringVar(&risk, "risk", string(entity.RiskProfileModerate), "Risk profile: conservative, moderate or aggressive")
	return cmd
}

func suggestionTable(title string, suggestions []entity.InvestmentSuggestion) string {
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			s.Name,
			cli.FormatPercent(s.AllocationPercent),
			s.RiskLevel.Label(),
			s.ExpectedReturnDescription,
			cli.FormatBRL(s.MinimumAmount),
		})
	}
	return cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Investimento", "Alocação", "Risco", "Retorno", "Mínimo"},
		Rows:    rows,
	})
}
