package config

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration, constructed once at startup and
// passed by reference.
type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT"`

	// Upstream emote API
	EmoteAPIBaseURL string `mapstructure:"EMOTE_API_BASE_URL" validate:"required,url"`
	EmoteClientID   string `mapstructure:"EMOTE_CLIENT_ID"`
	// Comma-separated emote set IDs loaded after auth; "global" is the
	// sentinel for the platform-wide set.
	EmoteSetIDs string `mapstructure:"EMOTE_SET_IDS"`

	// Host platform embedding
	AllowedParentOrigins string `mapstructure:"ALLOWED_PARENT_ORIGINS"`
	TestStreamChannel    string `mapstructure:"TEST_STREAM_CHANNEL"`

	// Viewer session cookie secret; generated when empty.
	SessionSecret string `mapstructure:"SESSION_SECRET"`
}

// EmoteSets returns the parsed emote-set ID list.
func (c Config) EmoteSets() []string {
	var out []string
	for _, part := range strings.Split(c.EmoteSetIDs, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ParentOrigins returns the parsed allowed parent origin list.
func (c Config) ParentOrigins() []string {
	var out []string
	for _, part := range strings.Split(c.AllowedParentOrigins, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag != "" {
			viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("EMOTE_API_BASE_URL", "https://api.twitch.tv/helix")
	viper.SetDefault("EMOTE_SET_IDS", "global")
	viper.SetDefault("TEST_STREAM_CHANNEL", "qa_partner_sirhype")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	slog.Info("Loaded configuration",
		"port", cfg.WebServerPort,
		"emote_api", cfg.EmoteAPIBaseURL,
		"emote_sets", cfg.EmoteSetIDs,
	)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
