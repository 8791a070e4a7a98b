package handler

import (
	"wallet-transaction-engine/internal/adapter/http/middleware"
	"wallet-transaction-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RegistrationSvc ports.RegistrationService
	WalletSvc       ports.WalletService
	TransactionSvc  ports.TransactionService
	TokenSvc        ports.TokenService
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL partitions + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.RegistrationSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)
	txnHandler := NewTransactionHandler(deps.TransactionSvc)

	walletTypes := v1.Group("/wallet-types", jwtAuth)
	{
		walletTypes.GET("", walletHandler.ListWalletTypes)
	}

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.POST("", walletHandler.CreateWallet)
		wallets.GET("", walletHandler.ListWallets)
		wallets.GET("/:uid", walletHandler.GetWallet)
	}

	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.POST("/:type/init", txnHandler.Init)
		transactions.POST("/:type/confirm", txnHandler.Confirm)
		transactions.GET("", txnHandler.Search)
		transactions.GET("/:uid/status", txnHandler.GetStatus)
	}

	return r
}
