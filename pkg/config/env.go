package config

import (
	"reflect"
	"strings"

	"github.com/spf13/viper"

	"github.com/chinookhq/chinook-api/pkg/readiness"
)

// Environment variables kept for compatibility with existing deployments.
// Each one is checked after its CHINOOK_* counterpart.
const (
	EnvDBMaxRetries = "DB_MAX_RETRIES"
	EnvDBRetryDelay = "DB_RETRY_DELAY"
	EnvCORSOrigins  = "CORS_ORIGINS"
	EnvDatabaseURL  = "DATABASE_URL"
)

var legacyEnv = map[string]string{
	"readiness.max_attempts":      EnvDBMaxRetries,
	"readiness.retry_delay":       EnvDBRetryDelay,
	"server.cors.allowed_origins": EnvCORSOrigins,
	"database.postgres.url":       EnvDatabaseURL,
}

// bindEnv binds every config key to its CHINOOK_* variable.
//
// AutomaticEnv alone only resolves keys viper already knows from a file or a
// default, so without explicit bindings an env-only deployment would see none
// of its overrides.
func bindEnv(v *viper.Viper) {
	for _, key := range configKeys(reflect.TypeOf(Config{}), "") {
		names := []string{envName(key)}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy)
		}
		args := append([]string{key}, names...)
		_ = v.BindEnv(args...)
	}
}

// setViperDefaults registers defaults whose zero value is meaningful, so
// ApplyDefaults cannot fill them in after unmarshalling.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("readiness.max_attempts", readiness.DefaultMaxAttempts)
	v.SetDefault("readiness.retry_delay", readiness.DefaultRetryDelay.String())
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// configKeys walks mapstructure tags and returns dotted leaf keys.
func configKeys(t reflect.Type, prefix string) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.Split(field.Tag.Get("mapstructure"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft.PkgPath() != "time" {
			keys = append(keys, configKeys(ft, key)...)
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
