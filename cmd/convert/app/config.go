package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/constants"
	"github.com/fabric8-launcher/boosterconv/pkg/save"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Conversion
	Catalog        string
	DevRef         string
	Mode           string
	DocumentFormat string
	WorkDir        string
	KeepWorkDir    bool
	CloneContent   bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by the command)
// 2. Environment variables (BOOSTERCONV_*)
// 3. .env files
// 4. Config file (configFile, or ~/.boosterconv.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("dev_ref", constants.DefaultDevelopmentRef)
	v.SetDefault("mode", boosters.ModeEnvironments.String())
	v.SetDefault("output_format", save.FormatYAML.String())
	v.SetDefault("clone_content", true)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)
		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Catalog:        v.GetString("catalog"),
		DevRef:         v.GetString("dev_ref"),
		Mode:           v.GetString("mode"),
		DocumentFormat: v.GetString("output_format"),
		WorkDir:        v.GetString("work_dir"),
		KeepWorkDir:    v.GetBool("keep_work_dir"),
		CloneContent:   v.GetBool("clone_content"),

		// An empty level leaves -v/-q in charge
		LogLevel:  getEnvOrDefault("LOG_LEVEL", ""),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		// godotenv.Load never overrides variables already set, so the
		// more specific file goes first.
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
