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
	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/config"
	"github.com/gorillabuild/gorillabuild/internal/db"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/friends"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/goals"
	progressmcp "github.com/gorillabuild/gorillabuild/internal/gymstats/mcp"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/plans"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/users"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/workouts"
	"github.com/gorillabuild/gorillabuild/internal/identity"
	"github.com/gorillabuild/gorillabuild/internal/middleware"
	"github.com/gorillabuild/gorillabuild/internal/misc"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/metrics"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"
	"github.com/gorillabuild/gorillabuild/internal/webhooks"
)

type Server struct {
	httpServer         *http.Server
	metricsHttpServer  *http.Server
	clerkWebhookSecret string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	profiles    *identity.CachedSource
	knownUsers  *users.KnownUsers
	resolver    auth.Resolver

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	ClerkSecretKey          string
	ClerkAPIURL             string // empty means the public Clerk API
	ClerkWebhookSecret      string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.RunMigrations {
		if err := db.RunMigrations(dbParams); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
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
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gorillabuild-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	// session verification (JWKS) goes through the global clerk backend
	clerk.SetKey(params.ClerkSecretKey)

	var resolver auth.Resolver = auth.ClerkResolver{}
	if params.Config.DevAuthEnabled {
		log.Warnln("dev auth enabled: X-Dev-User-Id is trusted")
		resolver = auth.DevResolver{Next: resolver}
	}

	s := &Server{
		clerkWebhookSecret: params.ClerkWebhookSecret,
		config:             params.Config,
		dbPool:             dbPool,
		redisClient:        rdb,
		profiles: identity.NewCachedSource(
			identity.NewClerkSource(params.ClerkSecretKey, params.ClerkAPIURL, tracedHttpClient),
			rdb,
			params.Config.ProfileCacheTTL.Duration,
			metricsManager,
		),
		knownUsers: users.NewKnownUsers(users.NewRepo(dbPool), params.Config.KnownUsersCacheSize),
		resolver:   resolver,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	usersRepo := users.NewRepo(s.dbPool)
	exercisesRepo := exercises.NewRepo(s.dbPool)
	bodyWeightRepo := bodyweight.NewRepo(s.dbPool)
	goalsRepo := goals.NewRepo(s.dbPool)
	exercisesService := exercises.NewService(exercisesRepo, bodyWeightRepo, goalsRepo)

	healthHandler := misc.NewHandler(s.dbPool)
	r.HandleFunc("/api/health", healthHandler.HandleHealth).Methods("GET", "OPTIONS").Name("health")

	webhookHandler := webhooks.NewClerkHandler(s.clerkWebhookSecret, usersRepo, s.profiles, s.knownUsers, s.metricsManager)
	r.HandleFunc("/api/webhooks/clerk", webhookHandler.HandleEvent).Methods("POST", "OPTIONS").Name("clerk-webhook")

	usersHandler := users.NewHandler(usersRepo, s.profiles)
	r.HandleFunc("/api/users/me", usersHandler.HandleGetMe).Methods("GET", "OPTIONS").Name("get-me")
	r.HandleFunc("/api/users/me", usersHandler.HandleUpdateMe).Methods("PATCH", "OPTIONS").Name("update-me")

	exercisesHandler := exercises.NewHandler(exercisesService)
	r.HandleFunc("/api/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	workoutsHandler := workouts.NewHandler(workouts.NewRepo(s.dbPool), s.metricsManager)
	r.HandleFunc("/api/workouts", workoutsHandler.HandleGetActive).Methods("GET", "OPTIONS").Name("active-workout")
	r.HandleFunc("/api/workouts", workoutsHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/api/workouts/{id}", workoutsHandler.HandleFinish).Methods("PATCH", "OPTIONS").Name("finish-workout")
	r.HandleFunc("/api/workouts/{id}/exercises", workoutsHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-workout-exercise")
	r.HandleFunc("/api/workout-exercises/{id}/sets", workoutsHandler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/api/sets/{id}", workoutsHandler.HandleUpdateSet).Methods("PATCH", "OPTIONS").Name("update-set")
	r.HandleFunc("/api/sets/{id}", workoutsHandler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")

	plansHandler := plans.NewHandler(plans.NewRepo(s.dbPool))
	r.HandleFunc("/api/plans", plansHandler.HandleList).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/api/plans", plansHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-plan")
	r.HandleFunc("/api/plans/{id}", plansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/api/plans/{id}", plansHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-plan")
	r.HandleFunc("/api/plans/{id}", plansHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-plan")

	friendsHandler := friends.NewHandler(
		friends.NewService(friends.NewRepo(s.dbPool), exercisesRepo, bodyWeightRepo, s.profiles),
	)
	friendRequestsLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"friend-requests",
		s.config.FriendRequestsPerMin,
	)
	r.HandleFunc("/api/friends", friendsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-friends")
	r.Handle("/api/friends", friendRequestsLimit(http.HandlerFunc(friendsHandler.HandleCreate))).Methods("POST").Name("request-friend")
	r.HandleFunc("/api/friends/requests", friendsHandler.HandleRequests).Methods("GET", "OPTIONS").Name("friend-requests")
	r.HandleFunc("/api/friends/{id}/accept", friendsHandler.HandleAccept).Methods("PATCH", "OPTIONS").Name("accept-friend")
	r.HandleFunc("/api/friends/{id}", friendsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-friend")
	r.HandleFunc("/api/friends/{id}/exercises", friendsHandler.HandleExercises).Methods("GET", "OPTIONS").Name("friend-exercises")
	r.HandleFunc("/api/friends/{id}/exercises/{exerciseId}", friendsHandler.HandleCompare).Methods("GET", "OPTIONS").Name("compare-friend")

	bodyWeightHandler := bodyweight.NewHandler(bodyWeightRepo)
	r.HandleFunc("/api/body-weight", bodyWeightHandler.HandleList).Methods("GET", "OPTIONS").Name("list-body-weight")
	r.HandleFunc("/api/body-weight", bodyWeightHandler.HandleAdd).Methods("POST", "OPTIONS").Name("add-body-weight")

	goalsHandler := goals.NewHandler(goalsRepo)
	r.HandleFunc("/api/goal", goalsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-goals")
	r.HandleFunc("/api/goal", goalsHandler.HandleCreate).Methods("POST", "OPTIONS").Name("create-goal")
	r.HandleFunc("/api/goal/{id}", goalsHandler.HandleUpdate).Methods("PATCH", "OPTIONS").Name("update-goal")
	r.HandleFunc("/api/goal/{id}", goalsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-goal")

	progressService := progressmcp.NewProgressService(
		progressmcp.NewPoolSchemaRepo(s.dbPool),
		exercisesService,
		goalsRepo,
		bodyWeightRepo,
	)
	r.Handle("/mcp", progressmcp.NewHTTPHandler(progressService)).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.Write(w, apierr.NotFound("route"))
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.resolver, s.knownUsers)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(clerkhttp.WithHeaderAuthorization())
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
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
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

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
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
