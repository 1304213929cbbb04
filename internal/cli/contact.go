package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	contactName  string
	contactPhone string
	contactEmail string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Work with CRM contacts",
}

var contactFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find a contact by phone or email and print its id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if contactPhone == "" && contactEmail == "" {
			return fmt.Errorf("at least one of --phone or --email is required")
		}
		id, err := client.FindContactByPhoneOrEmail(cmd.Context(), contactPhone, contactEmail)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var contactEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Return an existing contact matching phone/email, creating one if needed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if contactName == "" {
			return fmt.Errorf("--name is required")
		}
		id, err := client.GetOrCreateContact(cmd.Context(), contactName, contactPhone, contactEmail)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{contactFindCmd, contactEnsureCmd} {
		c.Flags().StringVar(&contactPhone, "phone", "", "contact phone")
		c.Flags().StringVar(&contactEmail, "email", "", "contact email")
	}
	contactEnsureCmd.Flags().StringVar(&contactName, "name", "", "contact name")
	contactCmd.AddCommand(contactFindCmd, contactEnsureCmd)
	rootCmd.AddCommand(contactCmd)
}
