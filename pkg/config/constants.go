package config

// Default values and limits for linegrep
const (
	// Content limits
	DefaultMaxFileSize = 64 * 1024 * 1024 // 64MB - largest file read into memory, 0 disables the check

	// Case toggle
	DefaultIgnoreCaseEnv = "IGNORE_CASE" // presence of this variable selects case-insensitive search

	// Output
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	// Logging
	DefaultLogLevel  = "warn"
	LogFormatConsole = "console"
	LogFormatJSON    = "json"

	// Audit log configuration
	DefaultAuditLogPath = "" // disabled unless configured
	AuditLogMaxSize     = 100 // MB
	AuditLogMaxBackups  = 5
	AuditLogMaxAge      = 30 // days

	// Git source
	DefaultRepoPath = "."

	// Config file lookup
	ConfigFileName = "linegrep.config"
	EnvPrefix      = "LINEGREP"
)
