package cmd

import (
	"fmt"
	"time"

	"github.com/amine-amaach/opcua-json-codec/ua"
	"github.com/amine-amaach/opcua-json-codec/uajson"
	"github.com/amine-amaach/opcua-json-codec/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a built-in sample DataValue and print the resulting JSON",
	RunE:  runEncode,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := utils.GetConfig()
	if cmd.Flags().Changed("reversible") {
		cfg.Reversible = reversibleFlag
	}

	ctx := newEncodingContext(cfg)
	enc := uajson.NewEncoder(ctx)
	enc.SetReversible(cfg.Reversible)

	now := time.Now().UTC()
	var picoseconds uint16
	sample := ua.NewDataValue(
		ua.NewScalarVariant(ua.TypeDouble, 20.734),
		ua.Good,
		&now, &picoseconds,
		&now, &picoseconds,
	)

	if err := enc.WriteDataValue(sample); err != nil {
		return errors.Wrap(err, "encode sample DataValue")
	}
	text, err := enc.Text()
	if err != nil {
		return errors.Wrap(err, "materialize encoded text")
	}
	fmt.Println(text)
	return nil
}
