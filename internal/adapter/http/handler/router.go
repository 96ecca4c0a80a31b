package handler

import (
	"time"

	"merchant-settlement/internal/adapter/http/middleware"
	redisStore "merchant-settlement/internal/adapter/storage/redis"
	"merchant-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	TransactionSvc ports.TransactionService
	SettlementSvc  ports.SettlementService
	PayoutSvc      ports.PayoutProcessingService
	SweepLock      ports.SweepLock
	SweepLockTTL   time.Duration
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
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

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	txHandler := NewTransactionHandler(deps.TransactionSvc)
	transactions := v1.Group("/transactions")
	{
		transactions.POST("", rl("transactions"), txHandler.Submit)
		transactions.GET("", rl("queries"), txHandler.List)
		transactions.GET("/:id", rl("queries"), txHandler.Get)
		transactions.PUT("/:id/status", rl("transactions"), txHandler.UpdateStatus)
		transactions.POST("/bulk-status", rl("transactions"), txHandler.BulkStatus)
		transactions.POST("/bulk-pending", rl("transactions"), txHandler.BulkPending)
	}

	settlementHandler := NewSettlementHandler(deps.SettlementSvc, deps.SweepLock, deps.SweepLockTTL, deps.Logger)
	settlements := v1.Group("/settlements")
	{
		settlements.POST("/run", rl("settlements"), settlementHandler.RunSweep)
	}

	payoutHandler := NewPayoutHandler(deps.PayoutSvc)
	payouts := v1.Group("/payouts")
	{
		payouts.GET("", rl("queries"), settlementHandler.ListPayouts)
		payouts.GET("/:id", rl("queries"), settlementHandler.GetPayout)
		payouts.GET("/:id/transactions", rl("queries"), settlementHandler.PayoutTransactions)
		payouts.GET("/:id/attempts", rl("queries"), payoutHandler.Attempts)
		payouts.POST("/:id/process", rl("payouts"), payoutHandler.Process)
		payouts.POST("/process-ready", rl("payouts_batch"), payoutHandler.ProcessReady)
	}

	return r
}
