package main

import (
	"rebill/internal/rebill"

	"github.com/spf13/cobra"
)

func newTransactionsCmd() *cobra.Command {
	var startDate, endDate, status string

	cmd := &cobra.Command{
		Use:   "transactions <customer-id> <rebill-id>",
		Short: "List transactions of a rebill event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := rebill.TransactionQuery{CustomerID: args[0], RebillID: args[1]}
			// unset flags are sent as nil, not as empty strings
			if cmd.Flags().Changed("start-date") {
				q.StartDate = &startDate
			}
			if cmd.Flags().Changed("end-date") {
				q.EndDate = &endDate
			}
			if cmd.Flags().Changed("status") {
				q.Status = &status
			}

			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.Transactions(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	cmd.Flags().StringVar(&startDate, "start-date", "", "lower date bound")
	cmd.Flags().StringVar(&endDate, "end-date", "", "upper date bound")
	cmd.Flags().StringVar(&status, "status", "", "transaction status filter")

	next := &cobra.Command{
		Use:   "next <customer-id> <rebill-id>",
		Short: "Show the next scheduled transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.TransactionNext(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.AddCommand(next)
	return cmd
}
