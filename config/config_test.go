package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TESSDATA_PREFIX", "")
	t.Setenv("SERVER_PORT", "")
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "eng", cfg.TesseractLanguage)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, "wtp_log.csv", cfg.WTPLogPath)
	assert.Equal(t, "event_log.csv", cfg.EventLogPath)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BILLASSIST_SERVER_PORT", "9090")
	t.Setenv("TESSDATA_PREFIX", "/opt/tessdata")
	t.Setenv("BILLASSIST_UPLOAD_MAX_FILE_SIZE_MB", "2")
	t.Setenv("BILLASSIST_EVENTLOG_WTP_PATH", "/var/log/wtp.csv")
	t.Setenv("BILLASSIST_CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://bills.example.com")
	t.Setenv("BILLASSIST_LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/opt/tessdata", cfg.TesseractDataPath)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxFileSize)
	assert.Equal(t, "/var/log/wtp.csv", cfg.WTPLogPath)
	assert.Equal(t, []string{"http://localhost:3000", "https://bills.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "console", cfg.LogFormat)
}
