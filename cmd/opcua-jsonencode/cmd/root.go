package cmd

import (
	"fmt"

	"github.com/amine-amaach/opcua-json-codec/utils"
	"github.com/spf13/cobra"
)

const version = "v1.0.0"

var banner = `
 ___    _____   ____                                   ___  ____   ____ _   _   _
|_ _|__|_   _| / ___|  ___ _ __  ___  ___  _ __ ___   / _ \|  _ \ / ___| | | | / \   %s
 | |/ _ \| |   \___ \ / _ \ '_ \/ __|/ _ \| '__/ __| | | | | |_) | |   | | | |/ _ \
 | | (_) | |    ___) |  __/ | | \__ \ (_) | |  \__ \ | |_| |  __/| |___| |_| / ___ \
|___\___/|_|   |____/ \___|_| |_|___/\___/|_|  |___/  \___/|_|    \____|\___/_/   \_\
OPC UA Part 6 JSON Data Encoding
______________________________________________________________________________________
`

var reversibleFlag bool

var rootCmd = &cobra.Command{
	Use:   "opcua-jsonencode",
	Short: "Encode OPC UA built-in values as Part 6 JSON",
	Long:  `opcua-jsonencode renders OPC UA built-in and composite values as reversible or non-reversible JSON text, per OPC UA Part 6 section 5.3.1.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		fmt.Println(utils.Colorize(fmt.Sprintf(banner, version), utils.Cyan))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&reversibleFlag, "reversible", true, "use reversible JSON encoding (default) instead of non-reversible")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
