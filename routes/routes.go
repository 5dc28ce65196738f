package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qwerty0999999/payment-projek/controllers"
	"github.com/qwerty0999999/payment-projek/middleware"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	requireLogin := middleware.RequireLogin(ctrl.Sessions)
	requireSuper := middleware.RequireSuper(ctrl.Sessions)

	// Halaman statis; halaman admin hanya untuk sesi aktif
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/login.html", "./public/login.html")
	r.GET("/admin.html", requireLogin, func(c *gin.Context) {
		c.File("./public/admin.html")
	})
	r.Static("/uploads", ctrl.Cfg.UploadDir)

	// Otentikasi
	r.POST("/auth", ctrl.Login)
	r.GET("/logout", ctrl.Logout)

	// Form pembayaran pelanggan (publik, multipart)
	r.POST("/bayar", ctrl.CreateOrder)

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)
		api.GET("/me", ctrl.Me)

		// Rute publik pelanggan
		api.GET("/products", ctrl.GetProducts)
		api.POST("/track", ctrl.TrackOrder)
		api.GET("/data", ctrl.GetOrders)

		// Rute pesanan, butuh sesi aktif
		api.POST("/update", requireLogin, ctrl.AcceptOrder)
		api.POST("/reject", requireLogin, ctrl.RejectOrder)
		api.POST("/delete", requireLogin, ctrl.DeleteOrder)
		api.GET("/export-excel", requireLogin, ctrl.ExportExcel)

		// Rute khusus superuser
		api.GET("/users", requireSuper, ctrl.GetUsers)
		api.POST("/users/add", requireSuper, ctrl.AddUser)
		api.POST("/users/delete", requireSuper, ctrl.DeleteUser)
		api.GET("/logs", requireSuper, ctrl.GetLogs)
		api.POST("/products/add", requireSuper, ctrl.AddProduct)
		api.POST("/products/update", requireSuper, ctrl.UpdateProduct)
		api.POST("/products/delete", requireSuper, ctrl.DeleteProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
