package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "USERS"

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Telemetry  Telemetry
}

type HTTPServer struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

type Telemetry struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// BindFlags registers the command-line flags that override file and env values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if f := fs.Lookup("port"); f != nil {
		if err := v.BindPFlag("http_server.port", f); err != nil {
			return fmt.Errorf("bind port flag: %w", err)
		}
	}
	return nil
}

// Load reads configPath (or ./config/config.yaml when empty) on top of the
// defaults. A missing default file is not an error; env vars prefixed with
// USERS_ take precedence over the file.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        v.GetString("http_server.address"),
			Port:           v.GetInt("http_server.port"),
			RequestTimeout: v.GetDuration("http_server.request_timeout"),
			ReadTimeout:    v.GetDuration("http_server.read_timeout"),
			WriteTimeout:   v.GetDuration("http_server.write_timeout"),
			IdleTimeout:    v.GetDuration("http_server.idle_timeout"),
		},
		Telemetry: Telemetry{
			Enabled:     v.GetBool("telemetry.enabled"),
			Endpoint:    v.GetString("telemetry.endpoint"),
			ServiceName: v.GetString("telemetry.service_name"),
		},
	}

	return config, nil
}

func MustLoad(v *viper.Viper, configPath string) *Config {
	cfg, err := Load(v, configPath)
	if err != nil {
		log.Printf("Error reading config file: %s", err)
		os.Exit(1)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 9000)
	v.SetDefault("http_server.request_timeout", 5*time.Second)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 10*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.service_name", "user-collection-service")
}
