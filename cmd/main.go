package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tcp_snm/agora/internal/api"
	"github.com/tcp_snm/agora/internal/database"
	"github.com/tcp_snm/agora/internal/email"
	"github.com/tcp_snm/agora/internal/service"
	"github.com/tcp_snm/agora/internal/service/course_service"
	"github.com/tcp_snm/agora/internal/service/problem_service"
	"github.com/tcp_snm/agora/internal/service/qna_service"
	"github.com/tcp_snm/agora/internal/service/user_service"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initLogger() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func initDatabase() *database.SQLStore {
	// get the database url
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		panic("dbURL not found")
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		log.Info("applying database migrations")
		if err := database.Migrate(dbURL); err != nil {
			panic(err)
		}
	}

	// create a conneciton to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	return database.NewStore(pool)
}

func getIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Warnf("invalid %s %q. using default %d", key, raw, fallback)
		return fallback
	}
	return v
}

func initEmailService() *email.EmailService {
	log.Info("starting email workers")
	return email.StartEmailWorkers(
		getIntEnv("EMAIL_WORKERS", 1),
		email.Config{
			Sender:   os.Getenv(email.KeyEmailSender),
			Password: os.Getenv(email.KeyEmailSenderPassword),
			SMTPHost: os.Getenv(email.KeyEmailSMTPHost),
			SMTPPort: getIntEnv(email.KeyEmailSMTPPort, email.DefaultEmailSMTPPort),
		},
	)
}

func initApi(db *database.SQLStore, mailer *email.EmailService) *api.Api {
	log.Info("initializing api config")
	us := user_service.NewUserService(db, getIntEnv("USER_NAME_CACHE_SIZE", user_service.DefaultUserNameCacheSize))
	log.Info("user service created")
	cs := &course_service.CourseService{DB: db}
	log.Info("course service created")
	ps := &problem_service.ProblemService{DB: db}
	log.Info("problem service created")
	qs := &qna_service.QnAService{
		DB:                   db,
		CourseServiceConfig:  cs,
		ProblemServiceConfig: ps,
		UserServiceConfig:    us,
		Mailer:               mailer,
	}
	log.Info("qna service created")
	return &api.Api{
		QnAServiceConfig:    qs,
		CourseServiceConfig: cs,
	}
}

func setup() *email.EmailService {
	godotenv.Load()
	initLogger()
	if os.Getenv(service.KeyJWTSecret) == "" {
		panic("jwt secret not found")
	}
	service.InitializeServices()
	db := initDatabase()
	mailer := initEmailService()
	apiConfig = initApi(db, mailer)
	return mailer
}

const shutdownTimeout = 10 * time.Second

// serve runs srv until ctx is done, then shuts it down gracefully and calls
// onShutdown once no request is in flight.
func serve(ctx context.Context, srv *http.Server, onShutdown func()) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		onShutdown()
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if lErr := <-errCh; lErr != nil && !errors.Is(lErr, http.ErrServerClosed) && err == nil {
		err = lErr
	}
	onShutdown()
	return err
}

func main() {
	mailer := setup()

	router := NewRouter()

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := &http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := serve(ctx, srv, func() {
		log.Info("stopping email workers")
		mailer.Stop()
	})
	if err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
