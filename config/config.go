// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar, böylece
// her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — Single Responsibility: her struct tek bir concern'ü temsil eder.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Search   SearchConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/peyk.db)
}

// JWTConfig, access token doğrulama ayarları.
// Token üretimi bu servisin işi değil — auth servisi imzalar, biz sadece doğrularız.
// Bu yüzden secret dışında expiry ayarı yoktur.
type JWTConfig struct {
	Secret string // Token imzalama anahtarı — GİZLİ TUTULMALI, auth servisiyle aynı olmalı
}

// CORSConfig, cross-origin istek ayarları.
type CORSConfig struct {
	AllowedOrigins []string
}

// SearchConfig, mesaj arama sayfalama sınırları.
type SearchConfig struct {
	DefaultLimit int // limit parametresi verilmediğinde kullanılan sayfa boyutu
	MaxLimit     int // istemci ne isterse istesin aşılamayan üst sınır
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
//
// Go'da error handling: fonksiyonlar hata durumunda (value, error) tuple'ı döner.
// Çağıran taraf her zaman error'ı kontrol ETMEK ZORUNDADIR.
func Load() (*Config, error) {
	// .env dosyasını yükle — dosya yoksa hata vermez, sessizce devam eder.
	// Production'da bu dosya olmaz, gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	defaultLimit, err := strconv.Atoi(getEnv("SEARCH_DEFAULT_LIMIT", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DEFAULT_LIMIT: %w", err)
	}

	maxLimit, err := strconv.Atoi(getEnv("SEARCH_MAX_LIMIT", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_MAX_LIMIT: %w", err)
	}

	if defaultLimit < 1 || maxLimit < 1 || defaultLimit > maxLimit {
		return nil, fmt.Errorf("invalid search limits: default=%d max=%d", defaultLimit, maxLimit)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/peyk.db"),
		},
		JWT: JWTConfig{
			Secret: jwtSecret,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
		},
		Search: SearchConfig{
			DefaultLimit: defaultLimit,
			MaxLimit:     maxLimit,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitOrigins, virgülle ayrılmış origin listesini parse eder.
// Boş parçalar atlanır ("a,,b" → ["a","b"]).
func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
