package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// defaultAgingThresholdDays se usa también cuando el umbral configurado no es positivo.
const defaultAgingThresholdDays = 80

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
	Report    ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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

// InventoryConfig ubicación del archivo exportado y umbral de antigüedad.
type InventoryConfig struct {
	Dir                string   // directorio donde se busca el archivo
	File               string   // ruta explícita (opcional); tiene prioridad sobre Patterns
	Patterns           []string // patrones glob; vacío = los de tabular.DefaultPatterns
	AgingThresholdDays int      // partidas con más días que este valor se marcan
}

// ReportConfig textos e imágenes del dashboard y del PDF.
type ReportConfig struct {
	CompanyName     string
	LogoPath        string // logo del encabezado del PDF y de la cabecera
	SidebarLogoPath string // logo pequeño del panel lateral
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, INVENTORY_DIR, etc.
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

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya
// preparada (la usa también el CLI, que enlaza sus flags a las mismas claves).
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventario-dashboard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Inventory: InventoryConfig{
			Dir:                getString(v, "INVENTORY_DIR", "."),
			File:               getString(v, "INVENTORY_FILE", ""),
			Patterns:           getList(v, "INVENTORY_PATTERNS"),
			AgingThresholdDays: getInt(v, "AGING_THRESHOLD_DAYS", defaultAgingThresholdDays),
		},
		Report: ReportConfig{
			CompanyName:     getString(v, "COMPANY_NAME", "AFS Logistics"),
			LogoPath:        getString(v, "REPORT_LOGO_PATH", "cropped-Logo-plata-AFS-2021-768x702.png"),
			SidebarLogoPath: getString(v, "SIDEBAR_LOGO_PATH", "cropped-logo-chico-1.png"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Inventory.AgingThresholdDays <= 0 {
		cfg.Inventory.AgingThresholdDays = defaultAgingThresholdDays
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

// getList separa una lista por comas ("*.csv, *.xlsx").
func getList(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v.GetString(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
