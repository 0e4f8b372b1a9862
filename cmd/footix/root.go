package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/footix/internal/config"
	"github.com/sandevgo/footix/internal/service/ui"
	"github.com/sandevgo/footix/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "footix",
	Short: "Footix, a question and answer chat bot",
	Long: `Footix answers chat messages from a fixed list of questions and answers,
tolerating typos and noise, and notices when it is being made to repeat itself.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging (or FOOTIX_DEBUG=1)")
	CustomizeHelp(rootCmd)
}

// setupLogger loads <runtime>/.env first so that logging options can live
// there too.
func setupLogger(ctx context.Context) (context.Context, func()) {
	envPath, envErr := loadEnv(config.GetRuntimePath())

	logCfg, logErr := config.LoadLogConfig()
	var file *log.FileOutput
	if logErr == nil && logCfg.File != "" {
		file = &log.FileOutput{
			Path:       logCfg.File,
			MaxSizeMB:  logCfg.MaxSizeMB,
			MaxBackups: logCfg.MaxBackups,
			MaxAgeDays: logCfg.MaxAgeDays,
		}
	}

	ctx, flush := log.NewContextWithLogger(ctx, debug || config.IsDebug(), file)

	logger := log.FromCtx(ctx)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("invalid log config, logging to console only")
	}
	switch {
	case envErr != nil:
		logger.Warn().Err(envErr).Str("path", envPath).Msg("failed to load .env file")
	case envPath != "":
		logger.Debug().Str("path", envPath).Msg("loaded .env file")
	}

	return ctx, flush
}

// loadEnv returns the path of the loaded file, or "" when there is none.
func loadEnv(runtimePath string) (string, error) {
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return envFile, err
	}

	if err := godotenv.Load(envFile); err != nil {
		return envFile, err
	}
	return envFile, nil
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
