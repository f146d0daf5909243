package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/teundejong/mlready/internal/cli/formatter"
)

func newEligibilityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Manage the SME and sector gates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}
			e, err := app.Eligibility.Gate(ctx, a.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatEligibility(e))
			return nil
		},
	}

	cmd.AddCommand(
		newEligibilitySetCmd(app),
		newEligibilityCheckCmd(app),
		newEligibilitySectorCmd(app),
		newEligibilityAllowCmd(app),
		newEligibilityWizardCmd(app),
	)

	return cmd
}

func newEligibilitySetCmd(app *App) *cobra.Command {
	var employees int
	var turnover, balance float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record company size inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}
			e, err := app.Eligibility.SetInputs(ctx, a.ID, employees, turnover, balance)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatEligibility(e))
			return nil
		},
	}

	cmd.Flags().IntVar(&employees, "employees", 0, "Number of employees")
	cmd.Flags().Float64Var(&turnover, "turnover", 0, "Annual turnover in € millions")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Balance sheet total in € millions")
	_ = cmd.MarkFlagRequired("employees")
	_ = cmd.MarkFlagRequired("turnover")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func newEligibilityCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the SME check on the recorded inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}
			sme, err := app.Eligibility.Check(ctx, a.ID)
			if err != nil {
				return err
			}
			if sme {
				fmt.Println(formatter.StyleGreen.Render("✔ The company qualifies as an SME."))
			} else {
				fmt.Println(formatter.StyleRed.Render("✖ The company does not qualify as an SME."))
				fmt.Println(formatter.Dim("Use `mlready eligibility allow --non-sme` to continue anyway."))
			}
			return nil
		},
	}
}

func newEligibilitySectorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sector (yes|no|unsure)",
		Short: "Answer whether the company operates in logistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			var isLogistics *bool
			switch args[0] {
			case "yes":
				v := true
				isLogistics = &v
			case "no":
				v := false
				isLogistics = &v
			case "unsure":
			default:
				return fmt.Errorf("expected yes, no, or unsure, got %q", args[0])
			}

			if err := app.Eligibility.SetSector(ctx, a.ID, isLogistics); err != nil {
				return err
			}

			e, err := app.Eligibility.Gate(ctx, a.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatEligibility(e))
			return nil
		},
	}
}

func newEligibilityAllowCmd(app *App) *cobra.Command {
	var nonSME, nonLogistics bool

	cmd := &cobra.Command{
		Use:   "allow",
		Short: "Acknowledge continuing past a failing gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}
			if err := app.Eligibility.Acknowledge(ctx, a.ID, nonSME, nonLogistics); err != nil {
				return err
			}
			e, err := app.Eligibility.Gate(ctx, a.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatEligibility(e))
			return nil
		},
	}

	cmd.Flags().BoolVar(&nonSME, "non-sme", false, "Continue although the company is not an SME")
	cmd.Flags().BoolVar(&nonLogistics, "non-logistics", false, "Continue although the company is not in logistics")

	return cmd
}

func newEligibilityWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Answer the gate questions interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return fmt.Errorf("the wizard needs a terminal; use `mlready eligibility set` instead")
			}

			ctx := context.Background()
			a, err := resolveAssessment(ctx, app)
			if err != nil {
				return err
			}

			e, err := app.Eligibility.Gate(ctx, a.ID)
			if err != nil {
				return err
			}

			employeesStr := strconv.Itoa(e.Employees)
			turnoverStr := strconv.FormatFloat(e.TurnoverM, 'f', -1, 64)
			balanceStr := strconv.FormatFloat(e.BalanceM, 'f', -1, 64)
			sector := "unsure"
			if e.IsLogistics != nil {
				if *e.IsLogistics {
					sector = "yes"
				} else {
					sector = "no"
				}
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Number of employees").
						Value(&employeesStr).
						Validate(validateNonNegativeInt),
					huh.NewInput().
						Title("Annual turnover (€ millions)").
						Value(&turnoverStr).
						Validate(validateNonNegativeFloat),
					huh.NewInput().
						Title("Balance sheet total (€ millions)").
						Value(&balanceStr).
						Validate(validateNonNegativeFloat),
				),
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Does the company operate in logistics?").
						Options(
							huh.NewOption("Yes", "yes"),
							huh.NewOption("No", "no"),
							huh.NewOption("Not sure", "unsure"),
						).
						Value(&sector),
				),
			).WithTheme(mlreadyHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			employees, _ := strconv.Atoi(employeesStr)
			turnover, _ := strconv.ParseFloat(turnoverStr, 64)
			balance, _ := strconv.ParseFloat(balanceStr, 64)

			if _, err := app.Eligibility.SetInputs(ctx, a.ID, employees, turnover, balance); err != nil {
				return err
			}

			var isLogistics *bool
			switch sector {
			case "yes":
				v := true
				isLogistics = &v
			case "no":
				v := false
				isLogistics = &v
			}
			if err := app.Eligibility.SetSector(ctx, a.ID, isLogistics); err != nil {
				return err
			}

			sme, err := app.Eligibility.Check(ctx, a.ID)
			if err != nil {
				return err
			}

			// Offer the acknowledgment path when a gate fails.
			allowNonSME := false
			if !sme {
				fmt.Println(formatter.StyleRed.Render("✖ The company does not qualify as an SME."))
				if err := formConfirm("Continue with the assessment anyway?", &allowNonSME).Run(); err != nil {
					return err
				}
			}
			allowNonLogistics := false
			if isLogistics == nil || !*isLogistics {
				if err := formConfirm("The tool targets logistics companies. Continue anyway?", &allowNonLogistics).Run(); err != nil {
					return err
				}
			}
			if err := app.Eligibility.Acknowledge(ctx, a.ID, allowNonSME, allowNonLogistics); err != nil {
				return err
			}

			gate, err := app.Eligibility.Gate(ctx, a.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatEligibility(gate))
			return nil
		},
	}
}
