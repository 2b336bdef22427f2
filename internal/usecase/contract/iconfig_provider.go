package usecasecontract

import "time"

// IConfigProvider exposes the configuration values the application depends on.
type IConfigProvider interface {
	GetPort() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetJWTSecret() string
	GetAccessTokenExpiry() time.Duration
	GetAuthProvider() string
	GetFirebaseCredentialsPath() string
	GetLikeStore() string
	GetPostgresDSN() string
	GetKafkaBrokers() []string
	GetKafkaLikeTopic() string
	GetRateLimitPerSecond() float64
	GetLogLevel() string
	GetCORSAllowOrigins() []string
}
