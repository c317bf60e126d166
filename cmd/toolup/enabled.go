package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/pkg/errors"
)

func newEnabledCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enabled <key>",
		Short: MsgEnabledShort,
		Long:  MsgEnabledLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			// Absent keys gate to "false"; only the literal "true" enables.
			value := store.Get(args[0], "false")
			fmt.Fprintln(cmd.OutOrStdout(), value)

			if value != "true" {
				return errors.Newf(errors.ErrToolDisabled, "%s is not enabled", args[0])
			}
			return nil
		},
	}
}
