package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/pkg/logging"
)

func newGetCmd() *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: MsgGetShort,
		Long:  MsgGetLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.get")

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			value := store.Get(args[0], fallback)
			logger.Debug().
				Str("key", args[0]).
				Str("value", value).
				Bool("present", store.Has(args[0])).
				Msg("Resolved key")

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "default", "", MsgFlagDefault)
	return cmd
}
