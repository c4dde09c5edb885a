package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/stabrank/internal/aggregate"
	"github.com/wonny/stabrank/internal/api"
	"github.com/wonny/stabrank/internal/api/handlers"
	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/internal/data/repos"
	"github.com/wonny/stabrank/internal/dataset"
	"github.com/wonny/stabrank/internal/scheduler"
	"github.com/wonny/stabrank/internal/scheduler/jobs"
	"github.com/wonny/stabrank/pkg/config"
	"github.com/wonny/stabrank/pkg/database"
	"github.com/wonny/stabrank/pkg/httputil"
	"github.com/wonny/stabrank/pkg/logger"
	"github.com/wonny/stabrank/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 랭킹/집계 엔드포인트 제공
- Run 이력 조회 제공 (DB_ENABLED=true)
- WATCH_SOURCE_URL 설정 시 주기적 소스 갱신

Endpoints:
  GET  /health                    - Health check
  POST /api/rank                  - 단일 시리즈 순위
  POST /api/aggregate             - 테이블 집계
  GET  /api/runs                  - Run 이력 목록
  GET  /api/runs/{id}             - Run 단건 조회
  GET  /api/runs/{id}/chart.svg   - Run 차트
  GET  /api/live                  - 실시간 요약 (websocket)

Example:
  go run ./cmd/stabrank api
  go run ./cmd/stabrank api --port 8091`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== stabrank API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to database (optional)
	var repo contracts.RunRepository
	if cfg.Database.Enabled {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(context.Background()); err != nil {
			return err
		}

		repo = repos.NewRunRepository(db.Pool)
		log.Info("Connected to database")
	} else {
		log.Warn("Database disabled, run history unavailable")
	}

	// 4. Connect to Redis (no-op when disabled)
	redisClient, err := redis.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "stabrank")

	// 5. Create aggregator
	aggregator := aggregate.New(log.Zerolog())

	// 6. Create handlers
	rankHandler := handlers.NewRankHandler(aggregator, cache, cfg.Redis.CacheTTL, log)
	runsHandler := handlers.NewRunsHandler(repo, log)
	hub := handlers.NewHub(log)
	liveHandler := handlers.NewLiveHandler(hub, log)

	// 7. Create router and server
	router := api.NewRouter(rankHandler, runsHandler, liveHandler, log)
	server := api.New(cfg, log, router)

	// 8. Register the watch job when a source is configured
	var sched *scheduler.Scheduler
	if cfg.Watch.SourceURL != "" {
		httpClient := httputil.New(cfg, log)
		fetcher := dataset.NewFetcher(httpClient, log)
		refresh := jobs.NewRefreshJob(fetcher, aggregator, repo, hub, cfg.Watch, log)

		sched = scheduler.New(log)
		if err := sched.AddJob(refresh); err != nil {
			return fmt.Errorf("register refresh job: %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /api/rank")
	fmt.Println("  POST /api/aggregate")
	fmt.Println("  GET  /api/runs")
	fmt.Println("  GET  /api/runs/{id}")
	fmt.Println("  GET  /api/runs/{id}/chart.svg")
	fmt.Println("  GET  /api/live")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
