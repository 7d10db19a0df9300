package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyIterations          = "iterations"
	KeyWarmup              = "warmup"
	KeyReferenceOnly       = "reference_only"
	KeyVerbose             = "verbose"
	KeyLogFile             = "log_file"
	KeyMetricsAddr         = "metrics_addr"
	KeyReportJSONPath      = "report.json_path"
	KeyReportTextPath      = "report.text_path"
	KeyHistoryFile         = "history_file"
	KeyRegressionThreshold = "regression_threshold"
)

// EnvPrefix namespaces environment overrides, e.g. ACCELBENCH_ITERATIONS.
const EnvPrefix = "ACCELBENCH"

// Load initializes the configuration from file and environment variables.
// A missing default config file is not an error; a missing or broken explicit one is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("accelbench")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyIterations, 5)
	viper.SetDefault(KeyWarmup, true)
	viper.SetDefault(KeyReferenceOnly, false)
	viper.SetDefault(KeyVerbose, false)
	viper.SetDefault(KeyLogFile, "")
	viper.SetDefault(KeyMetricsAddr, "")
	viper.SetDefault(KeyReportJSONPath, "performance_analysis.json")
	viper.SetDefault(KeyReportTextPath, "performance_report.txt")
	viper.SetDefault(KeyHistoryFile, ".accelbench/history.json")
	viper.SetDefault(KeyRegressionThreshold, 10.0)
}

// Settings is a typed snapshot of the loaded configuration.
type Settings struct {
	Iterations          int
	Warmup              bool
	ReferenceOnly       bool
	Verbose             bool
	LogFile             string
	MetricsAddr         string
	ReportJSONPath      string
	ReportTextPath      string
	HistoryFile         string
	RegressionThreshold float64
}

// Current reads the settings from viper.
func Current() Settings {
	return Settings{
		Iterations:          viper.GetInt(KeyIterations),
		Warmup:              viper.GetBool(KeyWarmup),
		ReferenceOnly:       viper.GetBool(KeyReferenceOnly),
		Verbose:             viper.GetBool(KeyVerbose),
		LogFile:             viper.GetString(KeyLogFile),
		MetricsAddr:         viper.GetString(KeyMetricsAddr),
		ReportJSONPath:      viper.GetString(KeyReportJSONPath),
		ReportTextPath:      viper.GetString(KeyReportTextPath),
		HistoryFile:         viper.GetString(KeyHistoryFile),
		RegressionThreshold: viper.GetFloat64(KeyRegressionThreshold),
	}
}
