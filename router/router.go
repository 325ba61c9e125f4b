package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alimentosKerrys/grub-genius-system/controllers"
	"github.com/alimentosKerrys/grub-genius-system/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	ingCtrl := controllers.NewIngredientController(db)
	supplierCtrl := controllers.NewSupplierController(db)
	platoCtrl := controllers.NewPlatoController(db)
	menuDataCtrl := controllers.NewMenuDataController(db)
	mesaCtrl := controllers.NewMesaController(db)
	pedidoCtrl := controllers.NewPedidoController(db)
	comprasCtrl := controllers.NewComprasController(db)
	plannerCtrl := controllers.NewPlannerController(db)
	dashCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// WebSocket auth travels in the query string
	r.GET("/ws", middlewares.WebSocketAuthMiddleware(), controllers.LiveFeedHandler)

	// ----------------------------------------------------------------
	//                      PROTECTED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", userCtrl.Logout)
		api.GET("/profile", userCtrl.GetProfile)

		ingredientes := api.Group("/ingredientes")
		{
			ingredientes.GET("", ingCtrl.GetAllIngredientes)
			ingredientes.POST("", ingCtrl.CreateIngrediente)
			ingredientes.GET("/metricas", ingCtrl.GetInventarioMetricas)
			ingredientes.PATCH("/:id", ingCtrl.UpdateIngrediente)
			ingredientes.PATCH("/:id/stock", ingCtrl.UpdateStock)
			ingredientes.PATCH("/:id/precio", ingCtrl.UpdatePrecio)
			ingredientes.DELETE("/:id", ingCtrl.DeactivateIngrediente)
		}

		api.GET("/proveedores", supplierCtrl.GetAllProveedores)

		platos := api.Group("/platos")
		{
			platos.GET("", platoCtrl.GetAllPlatos)
			platos.POST("", platoCtrl.CreatePlato)
			platos.GET("/metricas", platoCtrl.GetPlatosMetricas)
			platos.PATCH("/:id", platoCtrl.UpdatePlato)
			platos.DELETE("/:id", platoCtrl.DeactivatePlato)
			platos.POST("/:id/duplicar", platoCtrl.DuplicatePlato)
			platos.GET("/:id/recetas", platoCtrl.GetRecetas)
			platos.POST("/:id/recetas", platoCtrl.AddReceta)
			platos.GET("/:id/costo", platoCtrl.GetRecipeCost)
		}

		api.GET("/entradas", menuDataCtrl.GetEntradas)
		api.GET("/menus", menuDataCtrl.GetMenus)

		mesas := api.Group("/mesas")
		{
			mesas.GET("", mesaCtrl.GetAllMesas)
			mesas.POST("", mesaCtrl.CreateMesa)
			mesas.PATCH("/:id/estado", mesaCtrl.UpdateMesaEstado)
			mesas.DELETE("/:id", mesaCtrl.DeactivateMesa)
		}

		pedidos := api.Group("/pedidos")
		{
			pedidos.GET("", pedidoCtrl.GetPedidosAbiertos)
			pedidos.POST("", pedidoCtrl.CreatePedido)
			pedidos.GET("/:id", pedidoCtrl.GetPedidoByID)
			pedidos.PATCH("/:id/estado", pedidoCtrl.UpdateEstado)
		}

		api.GET("/compras", comprasCtrl.GetListaCompras)

		planificacion := api.Group("/planificacion")
		{
			planificacion.GET("/semana", plannerCtrl.GetSemana)
			planificacion.POST("", plannerCtrl.CreatePlanDia)
			planificacion.PATCH("/:id/ventas", plannerCtrl.RegisterVenta)
		}

		admin := api.Group("/dashboard")
		admin.Use(middlewares.RequireRole("admin"))
		{
			admin.GET("/stats", dashCtrl.GetStats)
		}
	}

	return r
}
