package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/golang-migrate/migrate/v4"
	mongomigrate "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/oksasatya/employee-management-api/config"
	"github.com/oksasatya/employee-management-api/internal/application/commands"
	"github.com/oksasatya/employee-management-api/internal/application/dispatch"
	"github.com/oksasatya/employee-management-api/internal/application/dto"
	"github.com/oksasatya/employee-management-api/internal/application/queries"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	"github.com/oksasatya/employee-management-api/internal/domain/event"
	domainvalidation "github.com/oksasatya/employee-management-api/internal/domain/validation"
	"github.com/oksasatya/employee-management-api/internal/infrastructure/departments"
	"github.com/oksasatya/employee-management-api/internal/infrastructure/events"
	mongoinfra "github.com/oksasatya/employee-management-api/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/employee-management-api/internal/interface/http"
	"github.com/oksasatya/employee-management-api/internal/interface/middleware"
	"github.com/oksasatya/employee-management-api/internal/router"
	"github.com/oksasatya/employee-management-api/internal/router/modules"
	"github.com/oksasatya/employee-management-api/pkg/helpers"
	"github.com/oksasatya/employee-management-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// MongoDB
	client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.MongoMaxPool, 10*time.Second)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := runMigrations(client, cfg.MongoDatabase, cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	// Redis
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	// GCS is optional; photo uploads answer 503 without it
	var gcsClient *storage.Client
	if cfg.GCSBucket != "" {
		c, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = c.Close() }()
		gcsClient = c
	}

	// JWT (verification only; tokens are issued by the identity service)
	jwtManager := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.AccessTTL)

	// Event sinks: always the in-process bus, plus RabbitMQ when reachable.
	// The broker being down must not block writes, so its absence is a warning.
	bus := events.NewInProcessBus(logger)
	bus.Subscribe(event.EmployeeCreatedType, event.HandlerFunc(func(_ context.Context, evt event.Event) error {
		logger.WithField("event_type", evt.EventType()).Info("domain event")
		return nil
	}))

	sinks := []event.Publisher{bus}
	rabbit, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		logger.WithError(err).Warn("rabbitmq unavailable, events stay in-process")
	} else {
		defer rabbit.Close()
		sinks = append(sinks, events.NewBrokerPublisher(rabbit, logger))
	}
	publisher := events.NewFanout(logger, sinks...)

	// Application wiring
	deptClient := departments.NewClient(cfg.DepartmentServiceURL, cfg.DepartmentServiceTimeout, logger)
	validator := domainvalidation.NewEmployeeValidator(deptClient, logger)
	factory := mongoinfra.NewFactory(client, cfg.MongoDatabase, logger)

	mediator := dispatch.NewMediator()
	dispatch.MustRegister[commands.CreateEmployee, dto.EmployeeResponse](mediator, commands.NewCreateEmployeeHandler(factory, validator, publisher, logger))
	dispatch.MustRegister[commands.UpdateEmployee, dto.EmployeeResponse](mediator, commands.NewUpdateEmployeeHandler(factory, validator, logger))
	dispatch.MustRegister[commands.DeleteEmployee, int64](mediator, commands.NewDeleteEmployeeHandler(factory, logger))
	dispatch.MustRegister[commands.SetEmployeePhoto, dto.EmployeeResponse](mediator, commands.NewSetEmployeePhotoHandler(factory, logger))
	dispatch.MustRegister[queries.GetEmployeeByID, dto.EmployeeResponse](mediator, queries.NewGetEmployeeByIDHandler(factory))
	dispatch.MustRegister[queries.GetEmployeeByEmail, dto.EmployeeResponse](mediator, queries.NewGetEmployeeByEmailHandler(factory))
	dispatch.MustRegister[queries.ListEmployees, []dto.EmployeeResponse](mediator, queries.NewListEmployeesHandler(factory))
	dispatch.MustRegister[queries.ListEmployeeSummaries, []entity.EmployeeSummary](mediator, queries.NewListEmployeeSummariesHandler(factory))
	dispatch.MustRegister[queries.GetEmployeesByDepartment, []dto.EmployeeResponse](mediator, queries.NewGetEmployeesByDepartmentHandler(factory))

	employeeHandler := handlers.NewEmployeeHandler(mediator, logger, gcsClient, cfg.GCSBucket)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestIDMiddleware())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	r.GET("/healthz", healthHandler(client))

	reg := router.NewRegistry(r)
	reg.Add(modules.New(employeeHandler, jwtManager, rdb))
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func healthHandler(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func runMigrations(client *mongo.Client, database, migrationsDir string, logger *logrus.Logger) error {
	driver, err := mongomigrate.WithInstance(client, &mongomigrate.Config{DatabaseName: database})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), database, driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
