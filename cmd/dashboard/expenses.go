package main

import (
	"fmt"

	"hours-dashboard/lib/metrics"
	projectapimodels "hours-dashboard/models/api/project"

	"github.com/spf13/cobra"
)

func (a *app) expenseCmd() *cobra.Command {
	var (
		description string
		amount      float64
		category    string
		date        string
		recurring   string
	)
	cmd := &cobra.Command{
		Use:   "expense <project-id>",
		Short: "Record an expense on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			request := projectapimodels.NewExpense{
				Description:       description,
				Amount:            amount,
				Category:          category,
				Date:              day,
				IsRecurring:       recurring != "",
				RecurringInterval: projectapimodels.RecurringInterval(recurring),
			}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			expense, err := a.client.Projects.AddExpense(cmd.Context(), args[0], request)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Expense %s recorded: %s, %s\n", expense.ID, money(expense.Amount), expense.Status.ToHuman())
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "desc", "d", "", "what the money was spent on")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&date, "date", "", "expense date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&recurring, "recurring", "", "monthly, quarterly or yearly")
	return cmd
}

func (a *app) paymentCmd() *cobra.Command {
	var (
		amount    float64
		date      string
		status    string
		method    string
		reference string
		notes     string
	)
	cmd := &cobra.Command{
		Use:   "payment <project-id> <expense-id>",
		Short: "Record a payment against an expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date)
			if err != nil {
				return err
			}
			request := projectapimodels.PaymentData{
				Amount:        amount,
				Date:          day,
				Status:        projectapimodels.PaymentStatus(status),
				PaymentMethod: projectapimodels.PaymentMethod(method),
				Reference:     reference,
				Notes:         notes,
			}
			if err := request.Validate(); err != nil {
				return err
			}
			if err := a.loadProjects(cmd.Context()); err != nil {
				return err
			}
			expense, err := a.client.Projects.AddExpensePayment(cmd.Context(), args[0], args[1], request)
			if err != nil {
				return err
			}
			progress := metrics.PaymentProgress(expense.PaidAmount, expense.Amount)
			fmt.Fprintf(cmd.OutOrStdout(), "Expense %s: %s of %s paid (%.0f%%), %s\n",
				expense.ID, money(expense.PaidAmount), money(expense.Amount), progress.Display, expense.Status.ToHuman())
			if progress.Overpaid {
				fmt.Fprintf(cmd.OutOrStdout(), "Overpaid by %s\n", money(expense.PaidAmount-expense.Amount))
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount paid")
	cmd.Flags().StringVar(&date, "date", "", "payment date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&status, "status", string(projectapimodels.PaymentCompleted), "pending, completed or cancelled")
	cmd.Flags().StringVar(&method, "method", string(projectapimodels.BankTransferMethod), "bank-transfer, credit-card, cash or other")
	cmd.Flags().StringVar(&reference, "reference", "", "payment reference")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	return cmd
}
