package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/internal/platform"
	"github.com/mfriesen/toolup/pkg/config"
	"github.com/mfriesen/toolup/pkg/style"
)

func newManagersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "managers",
		Short: MsgManagersShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := platform.Detect()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				style.TitleStyle.Render("Platform:"), info.OS)

			if len(info.Available) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoManagers)
			}
			for _, m := range info.Available {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s (%s scope, via %s)\n",
					style.EnabledStyle.Render("✓"), m.Name, m.Scope, m.Command)
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			settings, err := config.LoadSettings(store)
			if err != nil {
				return err
			}
			if settings.MinimalInstall {
				fmt.Fprintln(cmd.OutOrStdout(), style.MutedStyle.Render(MsgMinimalNotice))
			}
			return nil
		},
	}
}
