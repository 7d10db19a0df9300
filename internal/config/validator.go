package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error listing every problem.
// It must be called after Load.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet(KeyIterations) {
		if n := viper.GetInt(KeyIterations); n < 1 {
			errors = append(errors, fmt.Sprintf("iterations must be at least 1, got: %d", n))
		}
	}

	if viper.IsSet(KeyRegressionThreshold) {
		if th := viper.GetFloat64(KeyRegressionThreshold); th < 0 {
			errors = append(errors, fmt.Sprintf("regression_threshold must not be negative, got: %v", th))
		}
	}

	if addr := viper.GetString(KeyMetricsAddr); addr != "" {
		if err := validateListenAddr(addr); err != nil {
			errors = append(errors, fmt.Sprintf("metrics_addr %q is invalid: %v", addr, err))
		}
	}

	for _, key := range []string{KeyReportJSONPath, KeyReportTextPath, KeyHistoryFile} {
		if viper.IsSet(key) && viper.GetString(key) == "" {
			errors = append(errors, fmt.Sprintf("%s must not be empty", key))
		}
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}

func validateListenAddr(addr string) error {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("port %q is not a number", portStr)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got: %d", port)
	}
	return nil
}
