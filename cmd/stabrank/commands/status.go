package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/stabrank/internal/data/repos"
	"github.com/wonny/stabrank/pkg/config"
	"github.com/wonny/stabrank/pkg/database"
	"github.com/wonny/stabrank/pkg/redis"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "구성 및 연결 상태 점검",
	Long: `설정과 외부 연결 상태를 점검합니다.

표시 정보:
- 서버/환경 설정
- PostgreSQL 연결 및 run 이력 수
- Redis 연결
- 감시 소스 설정

Example:
  go run ./cmd/stabrank status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("=== stabrank Status ===")
	fmt.Println()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Println("⚙️  Configuration")
	PrintSeparator()
	PrintKeyValue("Env", cfg.Env, 12)
	PrintKeyValue("Port", cfg.Port, 12)
	PrintKeyValue("Log", fmt.Sprintf("%s (%s)", cfg.LogLevel, cfg.LogFormat), 12)
	fmt.Println()

	// 2. Database check
	fmt.Println("🗄️  PostgreSQL")
	PrintSeparator()
	if !cfg.Database.Enabled {
		PrintInfo("Disabled (DB_ENABLED=false)")
	} else if db, err := database.New(cfg); err != nil {
		PrintError(fmt.Sprintf("Connection failed: %v", err))
	} else {
		defer db.Close()
		PrintSuccess("Connected")

		if runs, err := repos.NewRunRepository(db.Pool).List(ctx, 1); err == nil {
			if len(runs) > 0 {
				PrintKeyValue("Latest run", fmt.Sprintf("#%d (%s, %s)", runs[0].ID, runs[0].Policy, runs[0].CreatedAt.Format("2006-01-02 15:04")), 12)
			} else {
				PrintKeyValue("Latest run", "none", 12)
			}
		}
	}
	fmt.Println()

	// 3. Redis check
	fmt.Println("⚡ Redis")
	PrintSeparator()
	if !cfg.Redis.Enabled {
		PrintInfo("Disabled (REDIS_ENABLED=false)")
	} else if rc, err := redis.New(cfg); err != nil {
		PrintError(fmt.Sprintf("Connection failed: %v", err))
	} else {
		defer rc.Close()
		PrintSuccess("Connected")
		PrintKeyValue("Cache TTL", cfg.Redis.CacheTTL.String(), 12)
	}
	fmt.Println()

	// 4. Watch config
	fmt.Println("👀 Watch")
	PrintSeparator()
	if cfg.Watch.SourceURL == "" {
		PrintInfo("No source configured (WATCH_SOURCE_URL)")
	} else {
		PrintKeyValue("Source", cfg.Watch.SourceURL, 12)
		PrintKeyValue("Schedule", cfg.Watch.Schedule, 12)
		PrintKeyValue("Policy", cfg.Watch.Policy, 12)
	}

	return nil
}
