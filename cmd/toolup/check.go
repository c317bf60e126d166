package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/pkg/errors"
	"github.com/mfriesen/toolup/pkg/logging"
	"github.com/mfriesen/toolup/pkg/setupfile"
	"github.com/mfriesen/toolup/pkg/style"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")
			path := configPath(cmd)

			store, diags, err := setupfile.ParseFileWithDiagnostics(path, setupfile.Default())
			if err != nil {
				return err
			}
			logger.Debug().
				Str("path", path).
				Int("keys", store.Len()).
				Int("diagnostics", len(diags)).
				Msg("Checked setup file")

			if len(diags) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), MsgCheckClean, path, store.Len())
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgCheckProblems, path, store.Len(), len(diags))
			for _, d := range diags {
				fmt.Fprintln(cmd.OutOrStdout(), style.WarningStyle.Render("  "+d.String()))
			}

			if strict {
				return errors.Newf(errors.ErrConfigInvalid, "%d lines were skipped", len(diags))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}
