package routes

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "ledger-classifier-backend/internal/handlers"
	"ledger-classifier-backend/internal/repository"
	service "ledger-classifier-backend/internal/services/processing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *log.Logger) {
	statementRepo := repository.NewStatementRepository(db)
	bankStatementRepo := repository.NewBankStatementRepository(db)
	cardRepo := repository.NewCardRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	svc := service.NewService(
		statementRepo,
		bankStatementRepo,
		cardRepo,
		ruleRepo,
		recordRepo,
		logger,
	)

	ledgerHandler := handler.NewLedgerHandler(svc, logger)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Statement ingestion
	statements := api.Group("/statements")
	statements.POST("", ledgerHandler.CreateStatement)
	statements.POST("/upload", ledgerHandler.UploadStatements)
	statements.GET("/pending", ledgerHandler.ListPendingStatements)
	statements.GET("/:id", ledgerHandler.GetStatement)

	api.POST("/bank-statements", ledgerHandler.CreateBankStatement)
	api.POST("/cards", ledgerHandler.CreateCard)

	// Classification rules
	rules := api.Group("/rules")
	{
		rules.POST("", ledgerHandler.CreateRule)
		rules.GET("", ledgerHandler.ListRules)
	}

	// Processing runs, triggered by the external scheduler
	processing := api.Group("/processing")
	processing.POST("/statements", ledgerHandler.ProcessStatements)
	processing.POST("/bank-statements", ledgerHandler.ProcessBankStatements)

	// Ledger output
	api.GET("/records", ledgerHandler.ListRecords)
}
