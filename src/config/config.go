package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config immutable process configuration, built once at startup and passed
// down instead of scattering os.Getenv through handlers.
type Config struct {
	Port     string
	AppURL   string
	MongoURI string
	DBName   string

	JWTSecret string
	OwnerKey  string // guards the /api/owner endpoints

	RedisURI string

	// Google OAuth
	GoogleClientID     string
	GoogleClientSecret string

	// OpenWeather
	OpenWeatherAPIKey string

	// SMTP (report mail)
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// Twilio (SMS check-in) - mocked when empty
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	// Dropbox OAuth
	DropboxAppKey    string
	DropboxAppSecret string

	// OCR microservice (OSHA card extraction)
	OCRServiceURL string
}

// Load reads .env (if present) and snapshots the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	return &Config{
		Port:               getEnv("APP_PORT", "8888"),
		AppURL:             getEnv("APP_URL", "https://blueview.app"),
		MongoURI:           os.Getenv("MONGO_URI"),
		DBName:             getEnv("DB_NAME", "blueview"),
		JWTSecret:          getEnv("JWT_SECRET", "blueview-dev-secret"),
		OwnerKey:           os.Getenv("OWNER_KEY"),
		RedisURI:           os.Getenv("REDIS_URI"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           getEnv("SMTP_PORT", "587"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		SMTPFrom:           getEnv("SMTP_FROM", "Blueview Reports <reports@blueview.app>"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:  os.Getenv("TWILIO_PHONE_NUMBER"),
		DropboxAppKey:      os.Getenv("DROPBOX_APP_KEY"),
		DropboxAppSecret:   os.Getenv("DROPBOX_APP_SECRET"),
		OCRServiceURL:      getEnv("OCR_SERVICE_URL", "http://ocr-service:8000/ocr/osha-card"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
