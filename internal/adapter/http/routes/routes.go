package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"preditor_imoveis/internal/adapter/http/handlers"
	"preditor_imoveis/internal/adapter/persistence/repository"
	"preditor_imoveis/internal/infrastructure/database"
	"preditor_imoveis/internal/infrastructure/forest"
	"preditor_imoveis/internal/usecase"
	"preditor_imoveis/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPort      = 8000
	DefaultModelPath = "models/house_price_forest.json"

	shutdownTimeout = 10 * time.Second
)

// Config holds the startup settings of the service.
type Config struct {
	Port           int
	ModelPath      string
	HistoryEnabled bool
}

// ConfigFromEnv reads PORT, MODEL_PATH and PREDICTION_HISTORY_ENABLED.
func ConfigFromEnv() Config {
	cfg := Config{
		Port:      DefaultPort,
		ModelPath: getenvDefault("MODEL_PATH", DefaultModelPath),
	}
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		cfg.Port = v
	}
	cfg.HistoryEnabled, _ = strconv.ParseBool(os.Getenv("PREDICTION_HISTORY_ENABLED"))
	return cfg
}

// LoadModel reads the artifact at path. A failure is logged and yields a nil
// model: the service still starts and reports itself unavailable.
func LoadModel(path string) interfaces.IPriceModel {
	m, err := forest.Load(path)
	if err != nil {
		log.Printf("[startup][model] load failed path=%s err=%v", path, err)
		return nil
	}
	info := m.Info()
	log.Printf("[startup][model] loaded path=%s name=%s version=%s trees=%d", path, info.Name, info.Version, info.Trees)
	return m
}

// NewPredictionUseCase builds the service context shared by every request.
func NewPredictionUseCase(ctx context.Context, cfg Config) *usecase.PredictionUseCase {
	model := LoadModel(cfg.ModelPath)

	var repo interfaces.IPredictionRepository
	if cfg.HistoryEnabled {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			log.Printf("[startup][history] dynamodb not configured; history disabled err=%v", err)
		} else {
			repo = repository.NewPredictionDynamoRepository(ddb)
			log.Printf("[startup][history] enabled table=%s", getenvDefault("PREDICTIONS_TABLE", "predictions"))
		}
	}

	return usecase.NewPredictionUseCase(model, repo)
}

// NewRouter wires middlewares and routes around an already built use case.
func NewRouter(uc usecase.IPredictionUseCase) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serviceHandler := handlers.NewServiceHandler(uc)
	predictionHandler := handlers.NewPredictionHandler(uc)

	router.GET("/", serviceHandler.Root)
	router.GET("/health", serviceHandler.Health)
	// Unversioned path kept for existing web clients.
	router.POST(PathPredict, predictionHandler.Predict)

	v1 := router.Group("/v1")
	addPredictionRoutes(v1, predictionHandler)
	return router
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, cfg Config) error {
	uc := NewPredictionUseCase(ctx, cfg)
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(uc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[startup][http] listening addr=%s model_loaded=%t", srv.Addr, uc.ModelLoaded())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Printf("[shutdown][http] stopping addr=%s", srv.Addr)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig()))
}

// corsConfig accepts any origin, method and header, credentials included.
// The request origin is echoed back in Access-Control-Allow-Origin.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
