package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	leadTitle     string
	leadFieldArgs []string
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Work with CRM leads",
}

var leadAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a lead and print its id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields, err := parseFieldArgs(leadFieldArgs)
		if err != nil {
			return err
		}
		if leadTitle != "" {
			fields["TITLE"] = leadTitle
		}
		id, err := client.AddLead(cmd.Context(), fields, nil)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	leadAddCmd.Flags().StringVar(&leadTitle, "title", "", "lead title (TITLE field)")
	leadAddCmd.Flags().StringArrayVar(&leadFieldArgs, "field", nil, "lead field as KEY=VALUE, repeatable")
	leadCmd.AddCommand(leadAddCmd)
	rootCmd.AddCommand(leadCmd)
}
