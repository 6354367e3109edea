package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-management-backend/internal/auth"
	"cafe-management-backend/internal/config"
	handler "cafe-management-backend/internal/handlers"
	"cafe-management-backend/internal/report"
	"cafe-management-backend/internal/repository"
	service "cafe-management-backend/internal/services/billing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	billRepo := repository.NewBillRepository(db)
	renderer := report.NewRenderer(cfg.StoreLocation)

	billService := service.NewBillService(billRepo, renderer)

	billHandler := handler.NewBillHandler(billService)
	dashboardHandler := handler.NewDashboardHandler(billRepo)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authed := api.Group("/", auth.Middleware(cfg.JWTSecret))

	bill := authed.Group("/bill")
	bill.POST("/generateReport", billHandler.GenerateReport)
	bill.POST("/getPdf", billHandler.GetPdf)
	bill.GET("/getBills", billHandler.GetBills)
	bill.POST("/delete/:id", billHandler.DeleteBill)
	bill.GET("/reconcile", billHandler.Reconcile)

	dashboard := authed.Group("/dashboard")
	dashboard.GET("/details", dashboardHandler.GetDetails)
}
