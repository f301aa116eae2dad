package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret             string
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string
	FirebaseCredsFile     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	RazorpayKeyID = GetEnv("RAZORPAY_KEY_ID")
	RazorpayKeySecret = GetEnv("RAZORPAY_KEY_SECRET")
	RazorpayWebhookSecret = GetEnv("RAZORPAY_WEBHOOK_SECRET")
	FirebaseCredsFile = GetEnv("FIREBASE_CREDENTIALS_FILE")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if RazorpayKeyID == "" || RazorpayKeySecret == "" {
		log.Println("⚠️ Razorpay keys not set, billing endpoints will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
