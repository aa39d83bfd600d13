package cmd

import (
	"fmt"

	"github.com/amine-amaach/opcua-json-codec/internal/genstatus"
	"github.com/spf13/cobra"
)

var statusCode uint32

var statusSymbolsCmd = &cobra.Command{
	Use:   "status-symbols",
	Short: "Resolve a status code to its symbolic name",
	RunE:  runStatusSymbols,
}

func init() {
	rootCmd.AddCommand(statusSymbolsCmd)
	statusSymbolsCmd.Flags().Uint32Var(&statusCode, "code", 0, "status code value to resolve")
}

func runStatusSymbols(cmd *cobra.Command, args []string) error {
	name, ok := genstatus.SymbolFor(statusCode)
	if !ok {
		fmt.Printf("no symbol known for status code %d\n", statusCode)
		return nil
	}
	fmt.Println(name)
	return nil
}
