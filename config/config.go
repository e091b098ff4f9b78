package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// SQLitePath используется, когда DB_HOST не задан
	SQLitePath string
	SecretKey  string
	Port       string
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	// ContactRecipient получает письма с формы /contact
	ContactRecipient string
	TemplatesGlob    string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getenvOrDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		SQLitePath:       getenvOrDefault("SQLITE_PATH", "blog.db"),
		SecretKey:        getenvOrDefault("SECRET_KEY", "simple"),
		Port:             getenvOrDefault("PORT", "8080"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getenvOrDefault("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		ContactRecipient: getenvOrDefault("CONTACT_RECIPIENT", os.Getenv("SMTP_USER")),
		TemplatesGlob:    getenvOrDefault("TEMPLATES_GLOB", "templates/*.html"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
