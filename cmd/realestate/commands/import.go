package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"realestate/internal/codec"
	"realestate/internal/domain"
)

func importCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load a JSON or YAML catalog snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			c, err := codec.ForFormat(format)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open snapshot: %w", err)
			}
			defer f.Close()

			snap, err := c.Parse(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}

			a, err := openApp(contextOf(cmd))
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.portfolio.Import(contextOf(cmd), snap)
			if err != nil {
				return fmt.Errorf("import stopped after %d records: %s", res.Total(), domain.Message(err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d agencies, %d realtors, %d properties.\n",
				res.Agencies, res.Realtors, res.Properties)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default: from file extension)")
	return cmd
}
