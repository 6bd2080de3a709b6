package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/latehour/loahelper/internal/commands"
	"github.com/latehour/loahelper/internal/config"
	"github.com/latehour/loahelper/internal/handlers"
	"github.com/latehour/loahelper/pkg/database"
	"github.com/latehour/loahelper/pkg/database/migration"
	"github.com/latehour/loahelper/pkg/database/repository"
	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/lostark"
	lostarkhandler "github.com/latehour/loahelper/pkg/lostark/handler"
	"github.com/latehour/loahelper/pkg/raid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func main() {
	if err := initializeApplication(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
}

// initializeApplication handles the complete application initialization process
func initializeApplication() error {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		// Continue execution as .env file might not exist in production
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewGormDBFromConfig(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Get the underlying *sql.DB for Close() method
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database: %w", err)
	}
	defer sqlDB.Close()

	if err := migration.RunMigration(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := initializeCentralizedLogging(db, cfg.PersistLogs); err != nil {
		return fmt.Errorf("failed to initialize centralized logging: %w", err)
	}

	catalog, err := raid.LoadCatalog(cfg.RaidCatalog)
	if err != nil {
		return fmt.Errorf("failed to load raid catalog: %w", err)
	}

	rosterClient := lostarkhandler.NewClient(cfg.LostArkAPIKey)
	commands.InitializeExpeditionCommands(db, rosterClient)
	commands.InitializeRaidCommands(db, catalog)

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.AddHandler(handlers.InteractionHandler)

	healthServer := startHealthCheckServer(cfg.HealthAddr, sqlDBPinger(db))

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	if err := handlers.RegisterCommands(dg, cfg.GuildID); err != nil {
		dg.Close()
		return fmt.Errorf("failed to register slash commands: %w", err)
	}

	sweeper := startRecruitmentSweep(db)

	log.Println("Bot is running. Press CTRL-C to exit.")
	log.Printf("Health check endpoint available at http://localhost%s/health", cfg.HealthAddr)

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down gracefully...")

	sweeper.Stop()
	shutdownHealthServer(healthServer)
	dg.Close()

	log.Println("Application shutdown complete")
	return nil
}

// initializeCentralizedLogging sets up the centralized logging system
func initializeCentralizedLogging(db *gorm.DB, persistLogs bool) error {
	var loggerFactory logging.LoggerFactory
	if persistLogs {
		logRepo := lostark.NewLogRepositoryAdapter(repository.NewBotLogRepository(db))
		loggerFactory = logging.NewDatabaseLoggerFactory(logRepo)
	} else {
		loggerFactory = logging.NewLoggerFactory()
	}

	logging.SetGlobalLoggerFactory(loggerFactory)

	systemLogger := loggerFactory.CreateLogger("system")
	systemLogger.Info("Centralized logging system initialized successfully", map[string]interface{}{
		"database_connected": true,
		"persist_logs":       persistLogs,
	})

	return nil
}

// startRecruitmentSweep closes expired raid recruitments every ten minutes.
func startRecruitmentSweep(db *gorm.DB) *cron.Cron {
	raidRepo := repository.NewRaidRepository(db)
	logger := logging.GetGlobalLoggerFactory().CreateLogger("raid_sweep")

	c := cron.New()
	c.AddFunc("@every 10m", func() {
		closed, err := raidRepo.CloseExpiredRecruitments(time.Now())
		if err != nil {
			logger.Error("Failed to close expired recruitments", err, nil)
			return
		}
		if closed > 0 {
			logger.Info("Closed expired recruitments", map[string]interface{}{
				"count": closed,
			})
		}
	})
	c.Start()
	return c
}

type systemHealth struct {
	StartTime time.Time `json:"start_time"`
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	Database  bool      `json:"database_connected"`
}

// startHealthCheckServer starts the HTTP server for health checks and metrics
func startHealthCheckServer(addr string, dbPing func() error) *http.Server {
	startTime := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		health := systemHealth{
			StartTime: startTime,
			Status:    "running",
			Uptime:    time.Since(startTime).String(),
			Database:  dbPing() == nil,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	})
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Starting health check server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Health check server error: %v", err)
		}
	}()

	return server
}

func shutdownHealthServer(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Health check server shutdown error: %v", err)
	}
}

func sqlDBPinger(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
}
