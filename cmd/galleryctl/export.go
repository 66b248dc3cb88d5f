package main

import (
	"github.com/andreyxaxa/Photo-Gallery/config"
	"github.com/andreyxaxa/Photo-Gallery/internal/app"
	"github.com/andreyxaxa/Photo-Gallery/pkg/logger"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download every image and its metadata into EXPORT_DIR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewExport()
		if err != nil {
			return err
		}

		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.Export.Dir = dir
		}

		l := logger.New(cfg.Log.Level, cfg.Log.Format)

		_, err = app.RunExport(cmd.Context(), cfg, l)

		return err
	},
}

func init() {
	exportCmd.Flags().String("dir", "", "output directory (overrides EXPORT_DIR)")
}
