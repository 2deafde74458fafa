package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"fund-selector/domain"
	"fund-selector/repository"
	"fund-selector/service"
)

func newRecommendCmd() *cobra.Command {
	var (
		inputPath string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print a recommendation for inputs read from a YAML file",
		Long: `Reads financial inputs from a YAML file (or stdin with --input -) and prints
the resulting risk tier and allocation.

Example input:
  age: 30
  monthly_income: 100000
  monthly_expenses: 40000
  has_debt_service: true
  debt_service_amount: 10000
  stated_risk: MEDIUM`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInputs(inputPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc := service.NewProfileService(
				repository.NewProfileRepositoryMemory(),
				service.NewTemplateTable(),
				zerolog.Nop(),
			)
			profile, err := svc.BuildProfile(context.Background(), in)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profile)
			}
			return renderProfile(cmd.OutOrStdout(), profile)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "YAML file with financial inputs ('-' for stdin)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readInputs(path string, stdin io.Reader) (domain.FinancialInputs, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.FinancialInputs{}, fmt.Errorf("failed to read inputs: %w", err)
	}

	var in domain.FinancialInputs
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return domain.FinancialInputs{}, fmt.Errorf("failed to parse inputs: %w", err)
	}
	return in, nil
}

func renderProfile(w io.Writer, p domain.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Investable surplus:\t%s\n", service.FormatRupees(p.InvestableSurplus))
	fmt.Fprintf(tw, "Horizon:\t%s\n", p.HorizonLabel)
	fmt.Fprintf(tw, "Debt service ratio:\t%s\n", service.FormatPercent(p.DebtServiceRatio))
	fmt.Fprintf(tw, "Savings rate:\t%s\n", service.FormatPercent(p.SavingsRate))
	fmt.Fprintf(tw, "Final risk:\t%s\n", p.FinalRisk)

	split := make([]string, len(p.Allocation.AssetSplit))
	for i, s := range p.Allocation.AssetSplit {
		split[i] = fmt.Sprintf("%s %d%%", s.AssetClass, s.Percent)
	}
	fmt.Fprintf(tw, "Asset split:\t%s\n", strings.Join(split, " / "))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(p.Alerts) > 0 {
		fmt.Fprintln(w, "\nAlerts:")
		for _, a := range p.Alerts {
			fmt.Fprintf(w, "  - %s\n", a.Message)
		}
	}

	fmt.Fprintln(w, "\nCategories:")
	for _, c := range p.Allocation.Categories {
		line := "  - " + c.Name
		if c.Percent != nil {
			line += fmt.Sprintf(" (%d%%)", *c.Percent)
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "      %s\n", c.Description)
		if c.Alternative != "" {
			fmt.Fprintf(w, "      Alternative: %s\n", c.Alternative)
		}
	}
	return nil
}
