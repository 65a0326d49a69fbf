package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the resolved CLI configuration.
type Config struct {
	Spec           string `mapstructure:"spec"`
	Store          string `mapstructure:"store"`
	Prefix         string `mapstructure:"prefix"`
	Compression    string `mapstructure:"compression"`
	Codec          string `mapstructure:"codec"`
	Concurrency    int    `mapstructure:"concurrency"`
	WriteLimit     int64  `mapstructure:"write_limit"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	S3Region       string `mapstructure:"s3_region"`
	S3Endpoint     string `mapstructure:"s3_endpoint"`
	MinioAccessKey string `mapstructure:"minio_access_key"`
	MinioSecretKey string `mapstructure:"minio_secret_key"`
	MinioSecure    bool   `mapstructure:"minio_secure"`
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("hypervec", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)

	fs.String("config", "", "Path to the configuration file")
	fs.String("spec", "", "Format spec used to print vectors (e.g. \".3f\" or \".2fh\")")
	fs.String("store", "./data", "Blob store: a directory, mem://, s3://bucket/prefix or minio://host:port/bucket/prefix")
	fs.String("prefix", "", "Key prefix for collections inside the store")
	fs.String("compression", "none", "Archive compression: none, lz4 or zstd")
	fs.String("codec", "binary", "Per-vector codec: binary, json or go-json")
	fs.Int("concurrency", 8, "Maximum collections processed at once")
	fs.Int64("write-limit", 0, "Write throttle in bytes per second (0 disables)")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	fs.String("log-format", "text", "Log format: text or json")
	fs.String("s3-region", "", "AWS region for s3:// stores")
	fs.String("s3-endpoint", "", "Custom endpoint for s3:// stores")
	fs.String("minio-access-key", "", "Access key for minio:// stores")
	fs.String("minio-secret-key", "", "Secret key for minio:// stores")
	fs.Bool("minio-secure", false, "Use HTTPS for minio:// stores")

	normalizeFunc := fs.GetNormalizeFunc()
	fs.SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(fs, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: hypervec [flags] <command> [args]\n\n%s\nFlags:\n%s", commandUsage, fs.FlagUsages())
	}
	return fs
}

// loadConfig parses flags, environment variables (HYPERVEC_*) and an
// optional YAML file, in decreasing order of precedence. It returns the
// remaining positional arguments.
func loadConfig(args []string, stderr io.Writer) (Config, []string, error) {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	v := viper.New()
	v.SetDefault("store", "./data")
	v.SetDefault("compression", "none")
	v.SetDefault("codec", "binary")
	v.SetDefault("concurrency", 8)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetEnvPrefix("HYPERVEC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, nil, err
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("hypervec")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return cfg, fs.Args(), nil
}
