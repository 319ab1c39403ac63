package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/linegrep/pkg/app"
	"github.com/computerscienceiscool/linegrep/pkg/config"
	"github.com/computerscienceiscool/linegrep/pkg/search"
)

// initConfig reads in config file and ENV variables if set
func initConfig(cmd *cobra.Command, cfgFile string) error {
	setupViper()
	if err := bindFlags(cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and flags
	}
	return nil
}

// buildConfig constructs a config.Config from Viper values
func buildConfig() (*config.Config, error) {
	cfg := &config.Config{
		Revision:     viper.GetString("rev"),
		RepoPath:     viper.GetString("source.repo_path"),
		MaxFileSize:  viper.GetInt64("search.max_file_size"),
		JSONOutput:   viper.GetBool("output.json"),
		CountOnly:    viper.GetBool("count"),
		LineNumbers:  viper.GetBool("output.line_numbers"),
		Color:        viper.GetString("output.color"),
		Verbose:      viper.GetBool("verbose"),
		LogLevel:     viper.GetString("logging.level"),
		LogFormat:    viper.GetString("logging.format"),
		AuditLogPath: viper.GetString("security.audit_log_path"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bootstrapApp wraps the app.Bootstrap function, wiring the command's streams
func bootstrapApp(cfg *config.Config, searchCfg *search.SearchConfig, cmd *cobra.Command) (*app.App, error) {
	return app.Bootstrap(cfg, searchCfg, app.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	})
}
