package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"dpscan/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "DPSCAN_LOG_LEVEL")
	viper.BindEnv("scan.packagePath", "DPSCAN_PACKAGE_PATH")
	viper.BindEnv("scan.batchSize", "DPSCAN_BATCH_SIZE")
	viper.BindEnv("scan.workers", "DPSCAN_WORKERS")
	viper.BindEnv("scan.rescan", "DPSCAN_RESCAN_INTERVAL")
	viper.BindEnv("cache.enabled", "DPSCAN_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DPSCAN_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	// The CLI flag overrides the configured package path.
	if flags.PackagePath != "" {
		conf.Scan.PackagePath = flags.PackagePath
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DiscordPackageScanner"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
