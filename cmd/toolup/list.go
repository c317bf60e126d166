package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/pkg/style"
)

func newListCmd() *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			keys := store.Keys()
			if section != "" {
				var filtered []string
				for _, k := range keys {
					if k == section || strings.HasPrefix(k, section+".") {
						filtered = append(filtered, k)
					}
				}
				keys = filtered
			}

			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoKeys)
				return nil
			}

			width := 0
			for _, k := range keys {
				if len(k) > width {
					width = len(k)
				}
			}
			for _, k := range keys {
				padded := k + strings.Repeat(" ", width-len(k))
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
					style.KeyStyle.Render(padded),
					style.Value(store.Get(k, "")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", MsgFlagSection)
	return cmd
}
