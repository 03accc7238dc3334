package main

import (
	"github.com/spf13/cobra"
)

func newPaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Manage rebill events",
	}

	var addFields []string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a rebill event (all 14 fields required)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(addFields)
			if err != nil {
				return err
			}
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.PaymentAdd(cmd.Context(), fields)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	addFieldFlag(add, &addFields)

	var editFields []string
	edit := &cobra.Command{
		Use:   "edit <rebill-id>",
		Short: "Update a rebill event (all 14 fields required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFields(editFields)
			if err != nil {
				return err
			}
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.PaymentEdit(cmd.Context(), args[0], fields)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	addFieldFlag(edit, &editFields)

	get := &cobra.Command{
		Use:   "get <customer-id> <rebill-id>",
		Short: "Fetch a rebill event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.PaymentGet(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	del := &cobra.Command{
		Use:   "delete <customer-id> <rebill-id>",
		Short: "Delete a rebill event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.PaymentDelete(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.AddCommand(add, edit, get, del)
	return cmd
}
