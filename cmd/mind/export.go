package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/contactmind/internal/config"
	"github.com/sandevgo/contactmind/internal/export"
	"github.com/sandevgo/contactmind/internal/providers/backend"
	"github.com/sandevgo/contactmind/internal/service/roster"
	"github.com/sandevgo/contactmind/internal/storage/sqlite"
	"github.com/sandevgo/contactmind/pkg/log"
)

var exportCmd = &cobra.Command{
	Use:           "export [csv|vcard]",
	Short:         "Export all contacts to a file",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		format := export.FormatCSV
		if len(args) > 0 {
			format = args[0]
		}

		appCfg := config.NewAppConfig(ctx)
		backendCfg := config.NewBackendConfig(ctx)

		db, err := initStorage(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		rosterSvc := roster.New(
			backend.NewClient(backendCfg),
			sqlite.NewContactsRepo(db),
			sqlite.NewQueueRepo(db),
		)

		exporter := export.NewService(rosterSvc, appCfg.GetExportPath())
		path, count, err := exporter.Export(ctx, format)
		if err != nil {
			return err
		}

		logger.Info().Str("path", path).Int("contacts", count).Msg("export complete")
		fmt.Printf("Exported %d contacts to %s\n", count, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
