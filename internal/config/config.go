package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string           `yaml:"env" env-default:"local"` // environment
	HTTPServer  HTTPServerConfig `yaml:"http_server"`
	Database    DatabaseConfig   `yaml:"database"`
	JWT         JWTConfig        `yaml:"jwt"`
	Storage     StorageConfig    `yaml:"storage"`
	Email       EmailConfig      `yaml:"email"`
	Checkout    CheckoutConfig   `yaml:"checkout"`
	AdminEmails []string         `yaml:"admin_emails" env:"ADMIN_EMAILS" env-separator:","`
	Migrations  MigrationsConfig `yaml:"migrations"`
}

// HTTPServerConfig структура http сервера
type HTTPServerConfig struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// DatabaseConfig структура по работе с БД
type DatabaseConfig struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-required:"true"`
	Password string `yaml:"-" env:"DB_PASSWORD" env-required:"true"`
	Name     string `yaml:"name" env-required:"true"`
}

// JWTConfig — проверка токенов внешнего провайдера аутентификации.
// Время жизни задает провайдер, сервер токены не выпускает.
type JWTConfig struct {
	Secret string `yaml:"-" env:"JWT_SECRET" env-required:"true"`
}

// StorageConfig — S3-совместимое хранилище чеков об оплате
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint" env-default:"localhost:9000"`
	Bucket        string `yaml:"bucket" env-default:"receipts"`
	UseSSL        bool   `yaml:"use_ssl" env-default:"false"`
	PublicBaseURL string `yaml:"public_base_url" env-default:"http://localhost:9000"`
	AccessKey     string `yaml:"-" env:"STORAGE_ACCESS_KEY" env-required:"true"`
	SecretKey     string `yaml:"-" env:"STORAGE_SECRET_KEY" env-required:"true"`
}

// EmailConfig — исходящие уведомления через Resend
type EmailConfig struct {
	APIKey       string `yaml:"-" env:"RESEND_API_KEY" env-required:"true"`
	From         string `yaml:"from" env-default:"CLORY WEARS <onboarding@resend.dev>"`
	AdminAddress string `yaml:"admin_address" env:"ADMIN_NOTIFY_EMAIL" env-default:"orders@clorywears.com"`
}

// CheckoutConfig — лимиты оформления заказа
type CheckoutConfig struct {
	MaxReceiptBytes int64 `yaml:"max_receipt_bytes" env-default:"6291456"` // 6MB
}

type MigrationsConfig struct {
	Path string `yaml:"path" env-default:"./migrations"`
}

// MustLoad - если не загружаем - паникуем
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		log.Fatal("CONFIG_PATH not exists")
	}
	return MustLoadByPath(configPath)
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file not found: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can't read config file %s", configPath)
	}

	return &cfg
}
