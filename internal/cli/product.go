package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	productName      string
	productFieldArgs []string
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Work with catalog products",
}

var productFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find a product by exact name and print its id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if productName == "" {
			return fmt.Errorf("--name is required")
		}
		id, err := client.FindProductByName(cmd.Context(), productName)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product and print its id",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fields, err := parseFieldArgs(productFieldArgs)
		if err != nil {
			return err
		}
		if productName != "" {
			fields["NAME"] = productName
		}
		id, err := client.AddProduct(cmd.Context(), fields)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

func init() {
	productFindCmd.Flags().StringVar(&productName, "name", "", "exact product name")
	productAddCmd.Flags().StringVar(&productName, "name", "", "product name (NAME field)")
	productAddCmd.Flags().StringArrayVar(&productFieldArgs, "field", nil, "product field as KEY=VALUE, repeatable")
	productCmd.AddCommand(productFindCmd, productAddCmd)
	rootCmd.AddCommand(productCmd)
}
