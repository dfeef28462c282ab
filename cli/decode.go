package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YuxiangJiangCT/billassistant/metrics"
)

func newDecodeCmd() *cobra.Command {
	var omitRaw bool

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a bill (pdf, image or txt) and print the summary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getAppContext(cmd)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			svc := newBillService(app, "", 0, metrics.NewRecorder())
			summary, err := svc.DecodeUpload(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			if omitRaw {
				summary.RawText = ""
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
	cmd.Flags().BoolVar(&omitRaw, "omit-raw", false, "leave raw_text empty in the output")
	return cmd
}
