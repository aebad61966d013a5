package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/traintower/backend/internal/analytics"
	"github.com/traintower/backend/internal/appointments"
	"github.com/traintower/backend/internal/auth"
	"github.com/traintower/backend/internal/clients"
	"github.com/traintower/backend/internal/config"
	"github.com/traintower/backend/internal/db"
	"github.com/traintower/backend/internal/measurements"
	"github.com/traintower/backend/internal/middleware"
	"github.com/traintower/backend/internal/misc"
	"github.com/traintower/backend/internal/programs"
	"github.com/traintower/backend/internal/tasks"
	"github.com/traintower/backend/internal/telemetry/metrics"
	"github.com/traintower/backend/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry

	otelShutdown func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("ping db pool: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	if status := rdb.Ping(ctx); status.Err() != nil {
		log.Errorf("ping redis: %s", status.Err())
	} else {
		log.Debugf("redis ping: %s", status.Val())
	}
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(8 * time.Hour) {
			authService.ScanAndClean(ctx)
		}
	}()

	otelShutdown, err := tracing.HoneycombSetup(
		params.HoneycombTracingEnabled,
		"traintower-backend",
	)
	if err != nil {
		return nil, fmt.Errorf("honeycomb setup: %w", err)
	}

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		authService:    authService,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	programsRepo := programs.NewRepo(s.dbPool)
	programsHandler := programs.NewHandler(
		programsRepo,
		programs.NewService(programsRepo),
		s.metricsManager,
	)
	r.HandleFunc("/programs", programsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-programs")
	r.HandleFunc("/programs", programsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-program")
	r.HandleFunc("/programs/{id}", programsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-program")
	r.HandleFunc("/programs/{id}", programsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-program")
	r.HandleFunc("/programs/{id}", programsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-program")
	r.HandleFunc("/programs/{id}/duplicate", programsHandler.HandleDuplicate).Methods("POST", "OPTIONS").Name("duplicate-program")

	clientsHandler := clients.NewHandler(clients.NewRepo(s.dbPool))
	r.HandleFunc("/clients", clientsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-clients")
	r.HandleFunc("/clients", clientsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-client")
	r.HandleFunc("/clients/{id}", clientsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-client")
	r.HandleFunc("/clients/{id}", clientsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-client")
	r.HandleFunc("/clients/{id}", clientsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-client")

	measurementsHandler := measurements.NewHandler(measurements.NewRepo(s.dbPool))
	r.HandleFunc("/clients/{id}/measurements", measurementsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/clients/{id}/measurements", measurementsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/clients/{id}/measurements/{mid}", measurementsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-measurement")

	appointmentsRepo := appointments.NewRepo(s.dbPool)
	appointmentsHandler := appointments.NewHandler(
		appointments.NewService(appointmentsRepo),
		appointmentsRepo,
		s.metricsManager,
	)
	r.HandleFunc("/appointments/availability", appointmentsHandler.HandleGetAvailability).Methods("GET", "OPTIONS").Name("get-availability")
	r.HandleFunc("/appointments/availability", appointmentsHandler.HandleAddAvailability).Methods("POST", "OPTIONS").Name("new-availability")
	r.HandleFunc("/appointments", appointmentsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-appointments")
	r.HandleFunc("/appointments", appointmentsHandler.HandleBook).Methods("POST", "OPTIONS").Name("book-appointment")
	r.HandleFunc("/appointments/{id}", appointmentsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-appointment")

	tasksHandler := tasks.NewHandler(tasks.NewRepo(s.dbPool))
	r.HandleFunc("/tasks", tasksHandler.HandleList).Methods("GET", "OPTIONS").Name("list-tasks")
	r.HandleFunc("/tasks", tasksHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-task")
	r.HandleFunc("/tasks/{id}", tasksHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-task")
	r.HandleFunc("/tasks/{id}", tasksHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-task")

	analyticsHandler := analytics.NewHandler(
		analytics.NewAnalyzer(analytics.NewRepo(s.dbPool), s.config.AnalyticsCacheSize),
	)
	r.HandleFunc("/analytics/report", analyticsHandler.HandleGetReport).Methods("GET", "OPTIONS").Name("analytics-report")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(auth.NewRepo(s.dbPool), s.authService, s.versionInfo)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
