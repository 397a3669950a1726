package routes

import (
	"log"
	"os"
	"strconv"
	_ "wastebazaar/docs" // This will be auto-generated
	"wastebazaar/internal/adapter/http/handlers"
	repository2 "wastebazaar/internal/adapter/persistence/repository"
	"wastebazaar/internal/config"
	"wastebazaar/internal/infrastructure/database"
	"wastebazaar/internal/infrastructure/logger"
	"wastebazaar/internal/infrastructure/market"
	"wastebazaar/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	getRoutes(cfg, zlog)

	err = router.Run(cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, zlog *zap.Logger) {
	ddb := database.ConnectDynamoDB(cfg.AWS)

	ruleRepo := repository2.NewPricingRuleDynamoRepository(ddb, cfg.AWS.RulesTable)

	oracle, err := market.New(cfg.Market, zlog)
	if err != nil {
		log.Fatalf("Failed to configure market data source: %v", err)
	}

	pricingUseCase := usecase.NewPricingUseCase(ruleRepo, oracle, usecase.DefaultTables(), zlog)
	ruleAdminUseCase := usecase.NewRuleAdminUseCase(ruleRepo, zlog)

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	ruleHandler := handlers.NewRuleHandler(ruleAdminUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, pricingHandler, ruleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
