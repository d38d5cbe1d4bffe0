package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/carwash-api/pkg/gst"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Redis   RedisConfig
	Session SessionConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
//
// El pool se dimensiona por la carga de la API: cada petición de dashboard admin
// abre hasta cuatro consultas en paralelo, y compras y reservas toman una conexión
// durante su transacción.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string

	MaxConns               int
	MinConns               int
	MaxConnLifetimeMinutes int
	ConnectTimeoutSeconds  int
	ApplicationName        string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig conexión al almacén de sesiones.
// URL vacía = sesiones en memoria (solo un proceso, útil en desarrollo).
type RedisConfig struct {
	URL string
}

// SessionConfig cookie y vida de la sesión de navegador.
type SessionConfig struct {
	CookieName string
	TTLMinutes int
	Secure     bool
}

// BillingConfig datos del emisor de los recibos PDF y tasa de GST.
type BillingConfig struct {
	CompanyName    string
	CompanyAddress string
	CompanyGSTIN   string
	GSTRate        decimal.Decimal // ej. 0.18
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, REDIS_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	gstRate, err := decimal.NewFromString(getString(v, "BILLING_GST_RATE", "0.18"))
	if err != nil {
		return nil, fmt.Errorf("config: BILLING_GST_RATE inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "carwash-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "carwash"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),

			MaxConns:               getInt(v, "DB_MAX_CONNS", 16),
			MinConns:               getInt(v, "DB_MIN_CONNS", 2),
			MaxConnLifetimeMinutes: getInt(v, "DB_MAX_CONN_LIFETIME_MINUTES", 60),
			ConnectTimeoutSeconds:  getInt(v, "DB_CONNECT_TIMEOUT_SECONDS", 5),
			ApplicationName:        getString(v, "APP_NAME", "carwash-api"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "carwash-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE_NAME", "carwash_session"),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 720),
			Secure:     getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Billing: BillingConfig{
			CompanyName:    getString(v, "BILLING_COMPANY_NAME", "Car Wash Services"),
			CompanyAddress: getString(v, "BILLING_COMPANY_ADDRESS", ""),
			CompanyGSTIN:   getString(v, "BILLING_COMPANY_GSTIN", ""),
			GSTRate:        gstRate,
		},
	}

	if cfg.Billing.CompanyGSTIN != "" {
		if err := gst.ValidateGSTIN(cfg.Billing.CompanyGSTIN); err != nil {
			return nil, fmt.Errorf("config: BILLING_COMPANY_GSTIN: %w", err)
		}
		cfg.Billing.CompanyGSTIN = gst.NormalizeGSTIN(cfg.Billing.CompanyGSTIN)
	}

	if cfg.JWT.Secret == "" && cfg.App.Env == "production" {
		return nil, fmt.Errorf("config: JWT_SECRET es obligatorio en producción")
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
			n, err := strconv.Atoi(v.GetString(key))
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
		return v.GetBool(key)
	}
	return def
}
