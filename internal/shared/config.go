package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	DatasetPath string
	Workers     int

	PolarityBase string
	PolarityKey  string

	AvgOrderValue float64
	RecentWindow  int
	TopWords      int

	CacheTTL time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/voiceofdine?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		DatasetPath:   env("DATASET_PATH", "reviews.csv"),
		Workers:       atoi("INGEST_WORKERS", 8),
		PolarityBase:  env("POLARITY_BASE_URL", ""),
		PolarityKey:   env("POLARITY_API_KEY", ""),
		AvgOrderValue: atof("AVG_ORDER_VALUE", 800),
		RecentWindow:  atoi("RECENT_REVIEW_WINDOW", 10),
		TopWords:      atoi("TOP_WORDS", 25),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.PolarityBase != "" && c.PolarityKey == "" {
		log.Warn().Msg("POLARITY_BASE_URL set but POLARITY_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
