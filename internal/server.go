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
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/titanlift/internal/config"
	"github.com/2beens/titanlift/internal/db"
	"github.com/2beens/titanlift/internal/exercises"
	"github.com/2beens/titanlift/internal/logging"
	"github.com/2beens/titanlift/internal/middleware"
	"github.com/2beens/titanlift/internal/profile"
	"github.com/2beens/titanlift/internal/rewards"
	"github.com/2beens/titanlift/internal/telemetry/metrics"
	"github.com/2beens/titanlift/internal/telemetry/tracing"
	"github.com/2beens/titanlift/internal/templates"
	"github.com/2beens/titanlift/internal/users"
	"github.com/2beens/titanlift/internal/workouts"
	"github.com/2beens/titanlift/pkg"
)

const serviceName = "titanlift-backend"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appSecret         string // sent by the app with every write request
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	profileCache  *profile.ProfileCache
	// stops the profile invalidations listener
	stopListeners context.CancelFunc

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppSecret               string
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName)
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		MaxConns:       params.Config.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("titanlift", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	return &Server{
		appSecret:   params.AppSecret,
		versionInfo: params.VersionInfo,

		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,

		profileCache: profile.NewProfileCache(rdb, params.Config.ProfileCacheSizeMB, params.Config.ProfileCacheTTL),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("titanlift-router"))

	workoutsRepo := workouts.NewRepo(s.dbPool)
	rewardsEngine := rewards.NewEngine(workoutsRepo, s.config.Rewards.Policy(), nil)
	profileService := profile.NewService(
		profile.NewRepo(s.dbPool),
		rewardsEngine,
		profile.NewLeaderboardCache(s.redisClient, s.config.LeaderboardCacheTTL),
		s.profileCache,
		s.metricsManager,
	)

	workoutsHandler := workouts.NewHandler(workoutsRepo, rewardsEngine, profileService, s.metricsManager)
	profileHandler := profile.NewHandler(profileService)
	usersHandler := users.NewHandler(users.NewRepo(s.dbPool), profileService)
	templatesHandler := templates.NewHandler(templates.NewRepo(s.dbPool))
	exercisesHandler := exercises.NewHandler(exercises.NewRepo(s.dbPool))

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")
	// preflight requests are answered by the auth middleware
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}).Name("preflight")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestTimeout(s.config.QueryTimeout))

	writes := api.Methods("POST", "PUT", "DELETE").Subrouter()
	writes.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"api-writes",
		s.config.WriteRequestsPerMinute,
	))

	writes.HandleFunc("/users", usersHandler.HandleCreate).Methods("POST").Name("new-user")
	writes.HandleFunc("/users/{id}/weight", usersHandler.HandleUpdateWeight).Methods("PUT").Name("update-user-weight")
	writes.HandleFunc("/workouts", workoutsHandler.HandleCreateWorkout).Methods("POST").Name("new-workout")
	writes.HandleFunc("/workouts/{id}/finish", workoutsHandler.HandleFinishWorkout).Methods("POST").Name("finish-workout")
	writes.HandleFunc("/sets", workoutsHandler.HandleLogSet).Methods("POST").Name("log-set")
	writes.HandleFunc("/sets/{id}", workoutsHandler.HandleDeleteSet).Methods("DELETE").Name("delete-set")
	writes.HandleFunc("/templates", templatesHandler.HandleCreate).Methods("POST").Name("new-template")
	writes.HandleFunc("/templates/{id}/exercises", templatesHandler.HandleAddExercise).Methods("POST").Name("add-template-exercise")
	writes.HandleFunc("/templates/{id}/exercises", templatesHandler.HandleReplaceExercises).Methods("PUT").Name("replace-template-exercises")

	api.HandleFunc("/users/{id}", usersHandler.HandleGet).Methods("GET").Name("get-user")
	api.HandleFunc("/profile/{userId}", profileHandler.HandleProfile).Methods("GET").Name("get-profile")
	api.HandleFunc("/leaderboard", profileHandler.HandleLeaderboard).Methods("GET").Name("get-leaderboard")
	api.HandleFunc("/users/{userId}/history", workoutsHandler.HandleWorkoutHistory).Methods("GET").Name("get-history")
	api.HandleFunc("/users/{userId}/workouts/active", workoutsHandler.HandleActiveWorkout).Methods("GET").Name("get-active-workout")
	api.HandleFunc("/sets", workoutsHandler.HandleListSets).Methods("GET").Name("list-sets")
	api.HandleFunc("/templates", templatesHandler.HandleList).Methods("GET").Name("list-templates")
	api.HandleFunc("/templates/{id}", templatesHandler.HandleGet).Methods("GET").Name("get-template")
	api.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET").Name("list-exercises")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.appSecret)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.dbPool == nil {
		pkg.WriteJSON(w, healthResponse{Status: "db not configured", Version: s.versionInfo}, http.StatusServiceUnavailable)
		return
	}
	if err := s.dbPool.Ping(ctx); err != nil {
		log.Errorf("health: ping db: %s", err)
		pkg.WriteJSON(w, healthResponse{Status: "db unavailable", Version: s.versionInfo}, http.StatusServiceUnavailable)
		return
	}

	pkg.WriteJSON(w, healthResponse{Status: "ok", Version: s.versionInfo}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(host, strconv.Itoa(s.config.MetricsPort))
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	listenersCtx, stopListeners := context.WithCancel(context.Background())
	s.stopListeners = stopListeners
	go s.profileCache.ListenForInvalidations(listenersCtx)

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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop accepting requests before the pool and redis go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.stopListeners != nil {
		s.stopListeners()
	}

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

	logging.Flush()
}
