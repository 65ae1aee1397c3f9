package app

import (
	"Taller/internal/cache"
	"Taller/internal/config"
	"Taller/internal/handlers"
	"Taller/internal/repo"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine. Resources are mounted
// at the root: /invoice/, /invoice_item/, /task/, /vehicle/, /work/,
// /setting/.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	settingCache := cache.NewSettingCache(rdb, cfg.Redis.DefaultTTL.Duration())
	settingSvc := service.NewSettingService(repo.NewPGSettingRepo(db), settingCache)

	registerInvoiceRoutes(r, handlers.NewInvoiceHandler(
		service.NewInvoiceService(repo.NewPGInvoiceRepo(db))))
	registerInvoiceItemRoutes(r, handlers.NewInvoiceItemHandler(
		service.NewInvoiceItemService(repo.NewPGInvoiceItemRepo(db))))
	registerTaskRoutes(r, handlers.NewTaskHandler(
		service.NewTaskService(repo.NewPGTaskRepo(db), settingSvc)))
	registerVehicleRoutes(r, handlers.NewVehicleHandler(
		service.NewVehicleService(repo.NewPGVehicleRepo(db))))
	registerWorkRoutes(r, handlers.NewWorkHandler(
		service.NewWorkService(repo.NewPGWorkRepo(db))))
	registerSettingRoutes(r, handlers.NewSettingHandler(settingSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Taller API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerInvoiceRoutes(r *gin.Engine, h *handlers.InvoiceHandler) {
	g := r.Group("/invoice")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func registerInvoiceItemRoutes(r *gin.Engine, h *handlers.InvoiceItemHandler) {
	g := r.Group("/invoice_item")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func registerTaskRoutes(r *gin.Engine, h *handlers.TaskHandler) {
	g := r.Group("/task")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func registerVehicleRoutes(r *gin.Engine, h *handlers.VehicleHandler) {
	g := r.Group("/vehicle")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func registerWorkRoutes(r *gin.Engine, h *handlers.WorkHandler) {
	g := r.Group("/work")
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func registerSettingRoutes(r *gin.Engine, h *handlers.SettingHandler) {
	g := r.Group("/setting")
	g.GET("/", h.List)
	g.GET("/:key", h.Get)
	g.PUT("/:key", h.Update)
}
