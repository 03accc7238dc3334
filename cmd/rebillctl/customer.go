package main

import (
	"github.com/spf13/cobra"
)

func newCustomerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage rebill customers",
	}

	var addFields []string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a customer",
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
			resp, err := client.CustomerAdd(cmd.Context(), fields)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	addFieldFlag(add, &addFields)

	var editFields []string
	edit := &cobra.Command{
		Use:   "edit <customer-id>",
		Short: "Update a customer",
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
			resp, err := client.CustomerEdit(cmd.Context(), args[0], fields)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	addFieldFlag(edit, &editFields)

	get := &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Fetch a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.CustomerGet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	del := &cobra.Command{
		Use:   "delete <customer-id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := client.CustomerDelete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.AddCommand(add, edit, get, del)
	return cmd
}
