package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	Port          string
	SessionSecret string
	ResetSecret   string
	UploadDir     string
	MailHost      string
	MailPort      string
	MailUser      string
	MailPassword  string
	MailSender    string
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "goblog"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		Port:          getEnv("PORT", "8080"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret"),
		ResetSecret:   getEnv("RESET_SECRET", "default-secret"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/profile_pics"),
		MailHost:      getEnv("MAIL_HOST", ""),
		MailPort:      getEnv("MAIL_PORT", "587"),
		MailUser:      getEnv("MAIL_USER", ""),
		MailPassword:  getEnv("MAIL_PASSWORD", ""),
		MailSender:    getEnv("MAIL_SENDER", "noreply@demo.com"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
