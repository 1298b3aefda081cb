package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo).
type Config struct {
	App   AppConfig
	API   APIConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig configuración del backend HTTP.
// Si Habilitada es false el cliente trabaja en modo respaldo local:
// no se hace ninguna llamada de red y los datos viven en StoreConfig.Dir.
type APIConfig struct {
	Habilitada bool
	BaseURL    string        // ej. http://localhost:8000/api
	Timeout    time.Duration // tope por petición; al excederse la petición se cancela
}

// StoreConfig configuración del almacén local de respaldo (análogo a
// localStorage del navegador: listas JSON persistidas en disco).
type StoreConfig struct {
	Dir        string // directorio de ofertas.json / postulaciones.json
	SesionFile string // copia persistida de la sesión (vacío = no persistir)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo .env o config.env). Las env vars tienen prioridad. Nombres esperados:
// APP_ENV, API_BASE_URL, API_HABILITADA, API_TIMEOUT_SECONDS, STORE_DIR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ceo-client"),
		},
		API: APIConfig{
			Habilitada: getBool(v, "API_HABILITADA", true),
			BaseURL:    getString(v, "API_BASE_URL", "http://localhost:8000/api"),
			Timeout:    time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Store: StoreConfig{
			Dir:        getString(v, "STORE_DIR", ".ceo"),
			SesionFile: getString(v, "STORE_SESION_FILE", ".ceo/sesion.json"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch val := v.Get(key).(type) {
		case bool:
			return val
		case string:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return def
			}
			return b
		default:
			return v.GetBool(key)
		}
	}
	return def
}
