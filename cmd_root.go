package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fund-selector",
		Short: "Personalized mutual fund allocation recommendations",
		Long: `fund-selector turns a few financial facts (age, income, expenses, EMI and
stated risk tolerance) into a risk tier and an allocation across fund categories.`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newRecommendCmd())
	return root
}
