package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dindin-invest/backend/internal/cli"
	"github.com/dindin-invest/backend/internal/domain/entity"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dindin",
		Short:         "DinDin investment calculators",
		Long:          "Run the DinDin projection and recommendation engine offline.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newCompoundCmd(),
		newRetirementCmd(),
		newCompareCmd(),
		newRecommendCmd(),
		newAllocationCmd(),
	)
	return root
}

func parseRiskProfile(value string) (entity.RiskProfile, error) {
	profile := entity.RiskProfile(value)
	if !profile.IsValid() {
		return "", fmt.Errorf("invalid risk profile %q: use conservative, moderate or aggressive", value)
	}
	return profile, nil
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(title))
	fmt.Fprintln(w)
}
