package main

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sandevgo/contactmind/internal/config"
	"github.com/sandevgo/contactmind/internal/service/setup"
	"github.com/sandevgo/contactmind/pkg/log"
)

var initCmd = &cobra.Command{
	Use:           "init",
	Short:         "Run the first-time setup wizard",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting setup")

		// run wizard (includes save step)
		if _, err := setup.RunWizard(); err != nil {
			return err
		}

		// Load the newly created .env file so the configs can see the values
		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Setup complete! You can now run 'mind start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
