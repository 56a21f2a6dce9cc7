package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	// Mode "RO" turns off every write endpoint.
	Mode string
}

type RedisCache struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	Key      string
}

type Postgres struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Images struct {
	DefaultSource string
	StorageDomain string
	Placeholder   string
}

type S3 struct {
	ClientType   string
	MockEndpoint string
	Presign      bool
	PresignTTL   time.Duration
}

type Admin struct {
	Token string
}

type Log struct {
	Env   string
	Debug bool
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Images   Images
	S3       S3
	Admin    Admin
	Log      Log
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()
	log.Printf("%s backend config : %+v\n", logtag, cfg.Redacted())
	return cfg
}

func FromEnv() *Config {
	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Images:   *newImages(),
		S3:       *newS3(),
		Admin:    *newAdmin(),
		Log:      *newLog(),
	}
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	const mask = "***"
	if c.Redis.Password != "" {
		c.Redis.Password = mask
	}
	if c.Postgres.Password != "" {
		c.Postgres.Password = mask
	}
	if c.Admin.Token != "" {
		c.Admin.Token = mask
	}
	return c
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "0.0.0.0"),
		Mode: getenv("HTTP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Enabled:  getbool("REDIS_ENABLED", true),
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getsecret("REDIS_PASSWORD", "shared"),
		Key:      getenv("REDIS_IMAGE_KEY", "image_config"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Enabled:  getbool("DB_ENABLED", true),
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getsecret("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "movies"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newImages() *Images {
	return &Images{
		DefaultSource: getenv("IMAGE_SOURCE", "remote"),
		StorageDomain: getenv("IMAGE_STORAGE_DOMAIN", "s3.amazonaws.com"),
		Placeholder:   getenv("IMAGE_PLACEHOLDER", ""),
	}
}

func newS3() *S3 {
	return &S3{
		ClientType:   getenv("S3_CLIENT_TYPE", "real"),
		MockEndpoint: getenv("MOCK_S3_ENDPOINT", "http://mock-s3-server:9090"),
		Presign:      getbool("S3_PRESIGN", false),
		PresignTTL:   getduration("S3_PRESIGN_TTL", 24*time.Hour),
	}
}

func newAdmin() *Admin {
	return &Admin{
		Token: getsecret("ADMIN_TOKEN", ""),
	}
}

func newLog() *Log {
	return &Log{
		Env:   getenv("APP_ENV", "development"),
		Debug: getbool("LOG_DEBUG", false),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getsecret(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value\n", logtag, key)
		return defaultValue
	}
	fmt.Printf("%s %s is set\n", logtag, key)
	return val
}

func getbool(key string, defaultValue bool) bool {
	raw := getenv(key, strconv.FormatBool(defaultValue))
	val, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Printf("%s %s = %q is not a bool. Using default value %t\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s = %q is not a duration. Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	return val
}
