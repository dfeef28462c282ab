package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort         string
	TesseractDataPath  string
	TesseractLanguage  string
	UploadDir          string
	MaxFileSize        int64
	WTPLogPath         string
	EventLogPath       string
	IndexPath          string
	CORSAllowedOrigins []string
	LogLevel           string
	LogFormat          string
}

// LoadConfig reads configuration from BILLASSIST_* environment variables,
// after loading an optional .env file for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BILLASSIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("tesseract.data_path", "/usr/share/tesseract-ocr/5/tessdata/")
	v.SetDefault("tesseract.language", "eng")
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("eventlog.wtp_path", "wtp_log.csv")
	v.SetDefault("eventlog.event_path", "event_log.csv")
	v.SetDefault("static.index_path", "index.html")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Tesseract's own variable wins over the default; SERVER_PORT is kept for
	// existing deployments.
	_ = v.BindEnv("tesseract.data_path", "BILLASSIST_TESSERACT_DATA_PATH", "TESSDATA_PREFIX")
	_ = v.BindEnv("server.port", "BILLASSIST_SERVER_PORT", "SERVER_PORT")

	var origins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		ServerPort:         v.GetString("server.port"),
		TesseractDataPath:  v.GetString("tesseract.data_path"),
		TesseractLanguage:  v.GetString("tesseract.language"),
		UploadDir:          v.GetString("upload.dir"),
		MaxFileSize:        v.GetInt64("upload.max_file_size_mb") * 1024 * 1024,
		WTPLogPath:         v.GetString("eventlog.wtp_path"),
		EventLogPath:       v.GetString("eventlog.event_path"),
		IndexPath:          v.GetString("static.index_path"),
		CORSAllowedOrigins: origins,
		LogLevel:           v.GetString("log.level"),
		LogFormat:          v.GetString("log.format"),
	}, nil
}
