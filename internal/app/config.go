package app

import (
	"strings"
	"time"

	"github.com/skillup-platform/skillup-backend/internal/platform/envutil"
)

type Config struct {
	Addr           string
	AllowedOrigins []string

	JWTSecretKey    string
	JWTIssuer       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	VerifyTokenTTL  time.Duration
	ResetTokenTTL   time.Duration

	AppBaseURL string

	SendgridAPIKey string
	EmailFrom      string
	EmailFromName  string

	RedisAddr     string
	RedisPassword string
	CachePrefix   string

	UploadDir      string
	MaxFileSize    int64
	MaxUserStorage int64
}

func LoadConfig() Config {
	cfg := Config{
		Addr: envutil.String("HTTP_ADDR", ":8080"),

		JWTSecretKey:    envutil.String("JWT_SECRET_KEY", ""),
		JWTIssuer:       envutil.String("JWT_ISSUER", "skillup-backend"),
		AccessTokenTTL:  envutil.Seconds("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: envutil.Seconds("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		VerifyTokenTTL:  envutil.Seconds("VERIFY_TOKEN_TTL", 48*time.Hour),
		ResetTokenTTL:   envutil.Seconds("RESET_TOKEN_TTL", time.Hour),

		AppBaseURL: envutil.String("APP_BASE_URL", "http://localhost:3000"),

		SendgridAPIKey: envutil.String("SENDGRID_API_KEY", ""),
		EmailFrom:      envutil.String("EMAIL_FROM", "no-reply@skillup.local"),
		EmailFromName:  envutil.String("EMAIL_FROM_NAME", "SkillUp"),

		RedisAddr:     envutil.String("REDIS_ADDR", ""),
		RedisPassword: envutil.String("REDIS_PASSWORD", ""),
		CachePrefix:   envutil.String("CACHE_PREFIX", "skillup"),

		UploadDir:      envutil.String("UPLOAD_DIR", "./uploads"),
		MaxFileSize:    envutil.Int64("MAX_FILE_SIZE_BYTES", 25<<20),
		MaxUserStorage: envutil.Int64("MAX_USER_STORAGE_BYTES", 500<<20),
	}

	if origins := envutil.String("ALLOWED_ORIGINS", ""); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}
