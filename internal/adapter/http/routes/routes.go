package routes

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/bozone403/afterhourshvac-sub001/docs" // This will be auto-generated
	"github.com/bozone403/afterhourshvac-sub001/internal/adapter/http/handlers"
	repository2 "github.com/bozone403/afterhourshvac-sub001/internal/adapter/persistence/repository"
	"github.com/bozone403/afterhourshvac-sub001/internal/config"
	"github.com/bozone403/afterhourshvac-sub001/internal/infrastructure/database"
	"github.com/bozone403/afterhourshvac-sub001/internal/infrastructure/payments"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase"
	"github.com/bozone403/afterhourshvac-sub001/internal/usecase/interfaces"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cfg := config.Load()
	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	pricingCfg, err := config.LoadPricing(cfg.MultipliersPath, cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load pricing configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb, pricingCfg.Table)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)
	requestRepo := repository2.NewQuoteRequestDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, pricingCfg.Catalog, pricingCfg.Table, cfg.DefaultRates)
	requestUseCase := usecase.NewQuoteRequestUseCase(requestRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	catalogHandler := handlers.NewCatalogHandler(pricingCfg.Catalog)
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)
	intakeHandler := handlers.NewQuoteIntakeHandler(requestUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, catalogHandler, paymentHandler, intakeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
