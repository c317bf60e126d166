package main

import (
	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/pkg/export"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgExportShort,
		Long:  MsgExportLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			out, err := export.Render(store, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "cfg", MsgFlagFormat)
	return cmd
}
