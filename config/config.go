package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do cliente administrativo.
type Config struct {
	// Geral
	Environment string
	LogLevel    string

	// API remota
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Sessão
	SessionBackend string // "file", "redis" ou "memory"
	SessionFile    string
	RedisAddr      string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. API remota
		// mustGetEnv garante que o cliente não inicie sem saber com quem falar.
		APIBaseURL:  mustGetEnv("API_BASE_URL"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT_SEC", 15) * time.Second,

		// 3. Sessão
		SessionBackend: getEnv("SESSION_BACKEND", "file"),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
	}

	return cfg
}

// defaultSessionFile coloca a sessão no diretório de config do usuário.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".lojaadmin/sessao.json"
	}
	return dir + "/lojaadmin/sessao.json"
}

// --- Funções Helpers (Auxiliares) ---

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("Erro de Configuração: a variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Aviso: valor de %s (%q) não é um inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}
