package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	handlerHttp "github.com/mikiasgoitom/Commune/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Commune/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/config"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/database"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/events"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/firebase"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Commune/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/repository/postgres"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/store"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Commune/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	"github.com/mikiasgoitom/Commune/internal/usecase/legacy"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	appConfig := config.NewConfig()

	appLogger := logger.NewZapLogger(appConfig.GetLogLevel())
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if appConfig.GetMongoURI() == "" {
		appLogger.Fatalf("MONGODB_URI environment variable not set")
	}
	mongoClient, err := database.NewMongoDBClient(appConfig.GetMongoURI())
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()
	db := mongoClient.Database(appConfig.GetMongoDBName())
	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to create MongoDB indexes: %v", err)
	}

	if err := validator.RegisterCustomValidators(); err != nil {
		appLogger.Fatalf("Failed to register validators: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db)
	postRepo := mongodb.NewCommunityPostRepository(db)
	var likeRepo contract.ILikeRepository = mongodb.NewLikeRepository(db)
	if appConfig.GetLikeStore() == "postgres" {
		pg, err := database.NewPostgresDB(appConfig.GetPostgresDSN())
		if err != nil {
			appLogger.Fatalf("Failed to open like store: %v", err)
		}
		defer database.ClosePostgres(pg)
		likeRepo = postgres.NewLikeRepository(pg)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	uuidGenerator := uuidgen.NewGenerator()
	appValidator := validator.NewValidator()
	if appConfig.GetJWTSecret() == "" {
		appLogger.Fatalf("JWT_SECRET environment variable not set")
	}
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(appConfig.GetJWTSecret(), appConfig.GetAccessTokenExpiry()))

	var verifier contract.ITokenVerifier = jwtService
	if appConfig.GetAuthProvider() == string(entity.AuthProviderFirebase) {
		client, err := firebase.NewAuthClient(ctx, appConfig.GetFirebaseCredentialsPath())
		if err != nil {
			appLogger.Fatalf("Failed to initialise Firebase: %v", err)
		}
		verifier = firebase.NewTokenVerifier(client)
	}
	identity := usecase.NewSessionResolver(verifier)

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)
	postUsecase := usecase.NewCommunityPostUsecase(postRepo, uuidGenerator, appLogger)
	likeUsecase := usecase.NewLikeUsecase(likeRepo, postRepo, identity, uuidGenerator, appLogger)
	legacyPosts := legacy.NewPostUsecase(postUsecase)

	// Optional Dependency Injection: Redis cache
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
		if err != nil {
			appLogger.Warnf("Redis unavailable, running without cache: %v", err)
		} else {
			defer redisclient.Close(rdb)
			postCache := store.NewPostCacheStore(rdb)
			postUsecase.SetPostCache(postCache)
			likeUsecase.SetPostCache(postCache)
		}
	}

	// Optional: like events
	if brokers := appConfig.GetKafkaBrokers(); len(brokers) > 0 {
		publisher := events.NewKafkaPublisher(brokers, appConfig.GetKafkaLikeTopic())
		defer publisher.Close()
		likeUsecase.SetEventPublisher(publisher)
	}

	router := gin.New()
	requestLogger := appLogger.Zap().WithOptions(zap.AddCallerSkip(-1))
	handlerHttp.NewRouter(userUsecase, postUsecase, legacyPosts, likeUsecase, identity, requestLogger, appConfig).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Server shutdown failed: %v", err)
	}
	appLogger.Infof("Server stopped")
}
