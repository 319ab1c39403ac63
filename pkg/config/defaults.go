package config

import "github.com/spf13/viper"

// SetViperDefaults sets all default configuration values in Viper
func SetViperDefaults() {
	// Search defaults
	viper.SetDefault("search.ignore_case_env", DefaultIgnoreCaseEnv)
	viper.SetDefault("search.max_file_size", DefaultMaxFileSize)

	// Source defaults
	viper.SetDefault("source.repo_path", DefaultRepoPath)

	// Output defaults
	viper.SetDefault("output.color", ColorAuto)
	viper.SetDefault("output.line_numbers", false)
	viper.SetDefault("output.json", false)

	// Security defaults
	viper.SetDefault("security.audit_log_path", DefaultAuditLogPath)

	// Logging defaults
	viper.SetDefault("logging.level", DefaultLogLevel)
	viper.SetDefault("logging.format", LogFormatConsole)
}

// IgnoreCaseEnv returns the name of the environment variable whose
// presence turns on case-insensitive search
func IgnoreCaseEnv() string {
	if name := viper.GetString("search.ignore_case_env"); name != "" {
		return name
	}
	return DefaultIgnoreCaseEnv
}
