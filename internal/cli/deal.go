package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dealTitle        string
	dealFieldArgs    []string
	dealContactName  string
	dealContactPhone string
	dealContactEmail string
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Work with CRM deals",
}

var dealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a deal and print its id",
	Long: `Create a deal. When any of --contact-name, --contact-phone or
--contact-email is given, the contact is resolved (or created) first and
bound to the deal via CONTACT_ID.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields, err := parseFieldArgs(dealFieldArgs)
		if err != nil {
			return err
		}
		if dealTitle != "" {
			fields["TITLE"] = dealTitle
		}

		var id int
		if dealContactName != "" || dealContactPhone != "" || dealContactEmail != "" {
			id, err = client.AddDealWithContact(cmd.Context(), fields, nil,
				dealContactName, dealContactPhone, dealContactEmail)
		} else {
			id, err = client.AddDeal(cmd.Context(), fields, nil)
		}
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	dealAddCmd.Flags().StringVar(&dealTitle, "title", "", "deal title (TITLE field)")
	dealAddCmd.Flags().StringArrayVar(&dealFieldArgs, "field", nil, "deal field as KEY=VALUE, repeatable")
	dealAddCmd.Flags().StringVar(&dealContactName, "contact-name", "", "name of the contact to attach")
	dealAddCmd.Flags().StringVar(&dealContactPhone, "contact-phone", "", "phone of the contact to attach")
	dealAddCmd.Flags().StringVar(&dealContactEmail, "contact-email", "", "email of the contact to attach")
	dealCmd.AddCommand(dealAddCmd)
	rootCmd.AddCommand(dealCmd)
}
