package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/computerscienceiscool/linegrep/pkg/config"
	"github.com/computerscienceiscool/linegrep/pkg/search"
)

// version is set at build time with -ldflags "-X .../pkg/cli.version=..."
var version = "dev"

// lookupEnv is replaced in tests
var lookupEnv = os.LookupEnv

// flagKeys maps flags to the config file keys they override
var flagKeys = map[string]string{
	"line-number": "output.line_numbers",
	"json":        "output.json",
	"color":       "output.color",
	"max-size":    "search.max_file_size",
	"repo":        "source.repo_path",
	"audit-log":   "security.audit_log_path",
	"log-level":   "logging.level",
	"log-format":  "logging.format",
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "linegrep [flags] QUERY PATH",
		Short: "Print the lines of a file that contain a query",
		Long: `linegrep prints every line of PATH that contains QUERY, in file order.

The search is case sensitive unless --ignore-case is given or the
IGNORE_CASE environment variable is set (to any value). PATH may be "-"
to read standard input, or a file inside a git repository when --rev
selects a revision. With --rev, a relative PATH is resolved from the
current directory while it is inside the worktree, and from the
repository root otherwise.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgFile)
		},
		RunE: runRoot,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./linegrep.config.yaml or $HOME/linegrep.config.yaml)")

	// Search flags
	cmd.Flags().BoolP("ignore-case", "i", false, "Case-insensitive search")
	cmd.Flags().Int64("max-size", config.DefaultMaxFileSize, "Maximum content size in bytes (0 for no limit)")

	// Source flags
	cmd.Flags().String("rev", "", "Read PATH from this git revision instead of the working tree (PATH is relative to the current directory inside the worktree, else to the repository root)")
	cmd.Flags().String("repo", config.DefaultRepoPath, "Git repository used with --rev")

	// Output flags
	cmd.Flags().BoolP("line-number", "n", false, "Prefix each match with its line number")
	cmd.Flags().BoolP("count", "c", false, "Print only the number of matching lines")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().String("color", config.ColorAuto, "Highlight matches: auto, always or never")

	// Diagnostics flags
	cmd.Flags().Bool("verbose", false, "Verbose output")
	cmd.Flags().String("log-level", config.DefaultLogLevel, "Log level for diagnostics on stderr")
	cmd.Flags().String("log-format", config.LogFormatConsole, "Log format: console or json")
	cmd.Flags().String("audit-log", config.DefaultAuditLogPath, "Append an audit record of each search to this file")

	return cmd
}

// bindFlags wires cmd's flags into viper
func bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		if err := viper.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}

func runRoot(cmd *cobra.Command, args []string) error {
	searchCfg, err := search.Build(append([]string{cmd.Name()}, args...), ignoreCaseToggle())
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w (usage: %s)", err, cmd.UseLine())
	}

	// Build config from viper
	cfg, err := buildConfig()
	if err != nil {
		return fmt.Errorf("failed to build config: %w", err)
	}

	// Bootstrap and run application
	app, err := bootstrapApp(cfg, searchCfg, cmd)
	if err != nil {
		return fmt.Errorf("bootstrap failed: %w", err)
	}
	defer app.Close()

	return app.Run()
}

// ignoreCaseToggle samples the case toggle once: the flag, or the mere
// presence of the configured environment variable
func ignoreCaseToggle() bool {
	if viper.GetBool("ignore-case") {
		return true
	}
	_, set := lookupEnv(config.IgnoreCaseEnv())
	return set
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func setupViper() {
	// Set all default values in Viper
	config.SetViperDefaults()

	// Set default config file name
	viper.SetConfigName(config.ConfigFileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	// Enable environment variables with LINEGREP prefix
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}
