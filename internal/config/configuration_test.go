package config

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Success_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, 8080, cfg.WebServerPort)
	require.Equal(t, "https://api.twitch.tv/helix", cfg.EmoteAPIBaseURL)
	require.Equal(t, []string{"global"}, cfg.EmoteSets())
	require.Nil(t, cfg.ParentOrigins())
}

func TestLoadConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("WEBSERVER_PORT", "9000")
	t.Setenv("EMOTE_API_BASE_URL", "http://localhost:8090")
	t.Setenv("EMOTE_SET_IDS", "global, 301590448 ,")
	t.Setenv("ALLOWED_PARENT_ORIGINS", "https://player.example, https://embed.example")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.WebServerPort)
	require.Equal(t, "http://localhost:8090", cfg.EmoteAPIBaseURL)
	require.Equal(t, []string{"global", "301590448"}, cfg.EmoteSets())
	require.Equal(t, []string{"https://player.example", "https://embed.example"}, cfg.ParentOrigins())
}

func TestLoadConfig_ValidationError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("EMOTE_API_BASE_URL", "not a url")

	cfg, err := LoadConfig(context.Background())
	require.Error(t, err)
	require.Nil(t, cfg)
}
