package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zmajumder/portfolio/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		site, err := loadSite(cfg)
		if err != nil {
			return err
		}

		focus, _ := cmd.Flags().GetInt("focus-lines")
		style, _ := cmd.Flags().GetString("style")
		return tui.Run(site, tui.Options{FocusLines: focus, GlamourStyle: style})
	},
}

func init() {
	tuiCmd.Flags().Int("focus-lines", 2, "rows below the top of the view where a section becomes active")
	tuiCmd.Flags().String("style", "", "glamour style for highlights (dark, light, notty); auto-detected when empty")
	rootCmd.AddCommand(tuiCmd)
}
