package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host           string
	Port           int
	AllowOrigins   []string
	LogLevel       string
	LogFile        string
	MaxUploadMB    int
	CatalogFile    string // встроенный каталог H, грузится один раз при старте
	CatalogHeader  int
	LayoutFile     string // YAML с заголовками колонок; пусто = профиль по умолчанию
	RateLimitRPS   float64
	RateLimitBurst int
	PreviewRows    int
}

func Load() Config {
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return Config{
		Host:           getenv("HOST", "127.0.0.1"),
		Port:           getint("PORT", 8082),
		AllowOrigins:   origins,
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFile:        getenv("LOG_FILE", "logs/dr-builder.log"),
		MaxUploadMB:    getint("MAX_UPLOAD_MB", 32),
		CatalogFile:    getenv("CATALOG_FILE", "H.xlsx"),
		CatalogHeader:  getint("CATALOG_HEADER_ROW", 1),
		LayoutFile:     getenv("LAYOUT_FILE", ""),
		RateLimitRPS:   getfloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getint("RATE_LIMIT_BURST", 10),
		PreviewRows:    getint("PREVIEW_ROWS", 5),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v, err := strconv.Atoi(getenv(k, ""))
	if err != nil {
		return def
	}
	return v
}

func getfloat(k string, def float64) float64 {
	v, err := strconv.ParseFloat(getenv(k, ""), 64)
	if err != nil {
		return def
	}
	return v
}
