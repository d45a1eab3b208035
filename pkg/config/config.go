package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Boletas BoletasConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel y salida opcional a archivo rotado.
type LogConfig struct {
	Level      string // trace, debug, info, warn, error
	File       string // vacío = solo stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
	// PublicBaseURL base absoluta de las URLs de descarga del driver en memoria.
	PublicBaseURL string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Drivers de almacenamiento soportados.
const (
	DriverS3     = "s3"
	DriverMemory = "memory"
)

// StorageConfig bucket de boletas y credenciales del proveedor.
type StorageConfig struct {
	Driver          string // s3 | memory
	Bucket          string // BOLETAS_BUCKET
	Region          string
	Endpoint        string // MinIO / LocalStack
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
	SigningSecret   string // firma de URLs del driver en memoria
}

// BoletasConfig vigencia de las URLs firmadas.
type BoletasConfig struct {
	URLTTL        time.Duration // URL al generar
	RefreshURLTTL time.Duration // URL al regenerar
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BOLETAS_BUCKET, AWS_REGION, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia ya preparada (tests).
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "boletas-api"),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			File:       getString(v, "LOG_FILE", ""),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 50),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getInt(v, "LOG_MAX_AGE_DAYS", 14),
			Compress:   getBool(v, "LOG_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:          getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:          getInt(v, "HTTP_PORT", 8080),
			PublicBaseURL: getString(v, "PUBLIC_BASE_URL", ""),
		},
		Storage: StorageConfig{
			Driver:          strings.ToLower(getString(v, "STORAGE_DRIVER", DriverS3)),
			Bucket:          getString(v, "BOLETAS_BUCKET", ""),
			Region:          getString(v, "AWS_REGION", "us-east-1"),
			Endpoint:        getString(v, "S3_ENDPOINT", ""),
			AccessKeyID:     getString(v, "AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getString(v, "AWS_SECRET_ACCESS_KEY", ""),
			ForcePathStyle:  getBool(v, "S3_FORCE_PATH_STYLE", false),
			SigningSecret:   getString(v, "DOWNLOAD_SIGNING_SECRET", ""),
		},
		Boletas: BoletasConfig{
			URLTTL:        time.Duration(getInt(v, "BOLETA_URL_TTL_SECONDS", 600)) * time.Second,
			RefreshURLTTL: time.Duration(getInt(v, "REFRESH_URL_TTL_SECONDS", 3600)) * time.Second,
		},
	}

	if cfg.HTTP.PublicBaseURL == "" {
		cfg.HTTP.PublicBaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
	}

	switch cfg.Storage.Driver {
	case DriverS3:
	case DriverMemory:
		// En local el bucket es solo un nombre.
		if cfg.Storage.Bucket == "" {
			cfg.Storage.Bucket = "boletas-local"
		}
	default:
		return nil, fmt.Errorf("config: STORAGE_DRIVER desconocido %q (s3|memory)", cfg.Storage.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
