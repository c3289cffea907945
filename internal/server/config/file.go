package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffql/internal/flagx"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key, e.g. STAFFQL_SECRET_KEY.
const EnvPrefix = "STAFFQL"

// parseFileAndEnv overlays values from the config file named by -c/-config
// (or CONFIG_PATH) and from STAFFQL_* environment variables. Keys that are
// not set in either source leave the current value untouched.
//
// The file format follows its extension (json, yaml, toml, ...).
func parseFileAndEnv(config *Config) error {
	v := viper.New()

	if path := flagx.ConfigFileFlag(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	str := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	str("env", &config.Env)
	str("endpoint_addr_http", &config.EndpointAddrHTTP)
	str("endpoint_addr_grpc", &config.EndpointAddrGRPC)
	str("database_dsn", &config.DatabaseDSN)
	str("secret_key", &config.SecretKey)
	str("s3_access_key", &config.S3AccessKey)
	str("s3_secret_key", &config.S3SecretKey)
	str("s3_bucket", &config.S3Bucket)
	str("s3_region", &config.S3Region)
	str("s3_base_endpoint", &config.S3BaseEndpoint)
	str("s3_public_url", &config.S3PublicURL)

	if v.IsSet("token_validity_duration") {
		config.TokenValidityDuration = v.GetDuration("token_validity_duration")
	}

	return nil
}
