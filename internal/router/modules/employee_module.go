package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/employee-management-api/internal/interface/http"
	"github.com/oksasatya/employee-management-api/internal/interface/middleware"
	"github.com/oksasatya/employee-management-api/pkg/helpers"
)

// Module wires the employee HTTP handlers into routes.
// All routes require a valid bearer token; write routes carry a per-user
// rate limit on top of the per-IP limit.

type Module struct {
	Handler *handlers.EmployeeHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func New(h *handlers.EmployeeHandler, jwt *helpers.JWTManager, rdb *redis.Client) *Module {
	return &Module{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *Module) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Redis, m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()))

	writeLimiter := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil)

	{
		auth.GET("/employees", m.Handler.List) // ?email= and ?summary=true variants
		auth.GET("/employees/:id", m.Handler.GetByID)
		auth.GET("/departments/:id/employees", m.Handler.ListByDepartment)

		auth.POST("/employees", writeLimiter, m.Handler.Create)
		auth.PUT("/employees/:id", writeLimiter, m.Handler.Update)
		auth.DELETE("/employees/:id", writeLimiter, m.Handler.Delete)
		auth.POST("/employees/:id/photo", writeLimiter, m.Handler.UploadPhoto)
	}
}
