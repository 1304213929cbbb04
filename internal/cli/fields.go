package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var fieldsOutput string

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Inspect entity field metadata",
}

var fieldsListCmd = &cobra.Command{
	Use:   "list <entity>",
	Short: "Dump field metadata for DEAL, LEAD, CONTACT or COMPANY",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := client.GetEntityFields(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		switch fieldsOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(meta)
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(meta)
		default:
			return fmt.Errorf("unsupported output format %q (json or yaml)", fieldsOutput)
		}
	},
}

var fieldsFindCmd = &cobra.Command{
	Use:   "find <entity> <title>",
	Short: "Resolve a custom (UF_) field code by its title",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := client.FindUserFieldCodeByTitle(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

func init() {
	fieldsListCmd.Flags().StringVarP(&fieldsOutput, "output", "o", "json", "output format: json or yaml")
	fieldsCmd.AddCommand(fieldsListCmd, fieldsFindCmd)
	rootCmd.AddCommand(fieldsCmd)
}
