package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
	"hotel-booking/services"
)

// Deps is everything the router needs to wire handlers.
type Deps struct {
	Log *zerolog.Logger

	Rooms     *controllers.RoomController
	Customers *controllers.CustomerController
	Bookings  *controllers.BookingController
	Services  *controllers.ServiceController
	System    *controllers.SystemController
	Auth      *controllers.AuthController

	// Authenticator guards mutating routes when RequireAuth is set.
	Authenticator services.Authenticator
	RequireAuth   bool
	LoginLimiter  *middleware.IPRateLimiter

	CORSOrigins []string
	// StaticDir, when set, is served at / for the admin front end.
	StaticDir string
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(d.Log), middleware.Metrics(), cors.New(corsConfig(d.CORSOrigins)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// write guards POST/PUT/DELETE routes behind a session when required.
	write := []gin.HandlerFunc{}
	if d.RequireAuth && d.Authenticator != nil {
		write = append(write, middleware.RequireSession(d.Authenticator))
	}
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), h)
	}

	api := r.Group("/api")
	{
		login := []gin.HandlerFunc{}
		if d.LoginLimiter != nil {
			login = append(login, middleware.RateLimit(d.LoginLimiter))
		}
		api.POST("/login", append(login, d.Auth.Login)...)

		api.GET("/health", d.System.Health)
		api.GET("/database/status", d.System.DatabaseStatus)
		api.GET("/database/tables", d.System.DatabaseTables)
		api.GET("/stats", d.System.Stats)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", d.Rooms.ListAvailable)
			rooms.GET("/all", d.Rooms.ListAll)
			rooms.POST("", guarded(d.Rooms.Create)...)
		}

		api.POST("/customers", guarded(d.Customers.Create)...)

		bookings := api.Group("/bookings")
		{
			bookings.GET("", d.Bookings.List)
			bookings.GET("/export", d.Bookings.Export)
			bookings.POST("", guarded(d.Bookings.Create)...)
			bookings.PUT("/:id", guarded(d.Bookings.Update)...)
			bookings.DELETE("/:id", guarded(d.Bookings.Delete)...)
		}

		api.POST("/services", guarded(d.Services.Attach)...)
	}

	if d.StaticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(d.StaticDir))))
	}

	return r
}
