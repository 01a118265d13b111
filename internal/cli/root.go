package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/agentx-labs/contentx/internal/branding"
	"github.com/agentx-labs/contentx/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	configFile string
	useBuiltin bool

	// logger is built from the resolved settings before any command runs.
	logger = slog.Default()
)

// flagKeys binds persistent flags to config keys.
var flagKeys = map[string]string{
	"root":       config.KeyContentRoot,
	"manifest":   config.KeyManifestName,
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` loads content described by manifests. Each content folder holds a
manifest listing data files and the loader that reads each one; loaded objects
are indexed by content type and id.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default ~/"+branding.HomeDir()+"/config.yaml)")
	pf.String("root", config.Default(config.KeyContentRoot), "Content root directory")
	pf.String("manifest", config.Default(config.KeyManifestName), "Manifest file base name")
	pf.String("log-level", config.Default(config.KeyLogLevel), "Log level (debug, info, warn, error)")
	pf.String("log-format", config.Default(config.KeyLogFormat), "Log format (text, json)")
	pf.BoolVar(&useBuiltin, "builtin", false, "Use the embedded sample content instead of --root")
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(configFile); err != nil {
		return err
	}
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	l, err := newLogger(config.Get(config.KeyLogLevel), config.Get(config.KeyLogFormat), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
