package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = parseExpiration(os.Getenv("JWT_EXPIRATION"))
}

// parseExpiration accepts any time.ParseDuration string ("12h", "30m").
// Unset, malformed, or non-positive values fall back to 24h.
func parseExpiration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}
