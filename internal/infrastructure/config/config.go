package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                    string
	MongoURI                string
	MongoDBName             string
	RedisURL                string
	JWTSecret               string
	AccessTokenExpiry       time.Duration
	AuthProvider            string
	FirebaseCredentialsPath string
	LikeStore               string
	PostgresDSN             string
	KafkaBrokers            []string
	KafkaLikeTopic          string
	RateLimitPerSecond      float64
	LogLevel                string
	CORSAllowOrigins        []string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		MongoURI:                getEnv("MONGODB_URI", ""),
		MongoDBName:             getEnv("MONGODB_DB_NAME", "commune"),
		RedisURL:                getEnv("REDIS_URL", ""),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		AccessTokenExpiry:       time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60)),
		AuthProvider:            strings.ToLower(getEnv("AUTH_PROVIDER", "jwt")),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		LikeStore:               strings.ToLower(getEnv("LIKE_STORE", "mongo")),
		PostgresDSN:             getEnv("POSTGRES_DSN", ""),
		KafkaBrokers:            getEnvAsList("KAFKA_BROKERS"),
		KafkaLikeTopic:          getEnv("KAFKA_LIKE_TOPIC", "community.post.likes"),
		RateLimitPerSecond:      getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins:        getEnvAsListOr("CORS_ALLOW_ORIGINS", []string{"*"}),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetPort() string                     { return c.Port }
func (c *Config) GetMongoURI() string                 { return c.MongoURI }
func (c *Config) GetMongoDBName() string              { return c.MongoDBName }
func (c *Config) GetRedisURL() string                 { return c.RedisURL }
func (c *Config) GetJWTSecret() string                { return c.JWTSecret }
func (c *Config) GetAccessTokenExpiry() time.Duration { return c.AccessTokenExpiry }
func (c *Config) GetAuthProvider() string             { return c.AuthProvider }
func (c *Config) GetFirebaseCredentialsPath() string  { return c.FirebaseCredentialsPath }
func (c *Config) GetLikeStore() string                { return c.LikeStore }
func (c *Config) GetPostgresDSN() string              { return c.PostgresDSN }
func (c *Config) GetKafkaBrokers() []string           { return c.KafkaBrokers }
func (c *Config) GetKafkaLikeTopic() string           { return c.KafkaLikeTopic }
func (c *Config) GetRateLimitPerSecond() float64      { return c.RateLimitPerSecond }
func (c *Config) GetLogLevel() string                 { return c.LogLevel }
func (c *Config) GetCORSAllowOrigins() []string       { return c.CORSAllowOrigins }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping empty items.
func getEnvAsList(name string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(name, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvAsListOr(name string, fallback []string) []string {
	if list := getEnvAsList(name); len(list) > 0 {
		return list
	}
	return fallback
}
