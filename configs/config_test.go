package configs

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv clears for this test
	for _, k := range []string{"DB_DRIVER", "DB_SOURCE", "PORT", "JWT_SECRET", "JWT_TTL_HOURS", "SEED_MENU_DATA"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "bento.db", cfg.DBSource)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.SeedMenuData)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_SOURCE", "host=localhost dbname=bento")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("SEED_MENU_DATA", "true")

	cfg := LoadConfig()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost dbname=bento", cfg.DBSource)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.True(t, cfg.SeedMenuData)
}

func TestLoadConfigBadTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "soon")
	cfg := LoadConfig()
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}
