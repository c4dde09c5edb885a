package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/stabrank/internal/aggregate"
	"github.com/wonny/stabrank/internal/chart"
	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/internal/data/repos"
	"github.com/wonny/stabrank/internal/dataset"
	"github.com/wonny/stabrank/internal/rank"
	"github.com/wonny/stabrank/pkg/config"
	"github.com/wonny/stabrank/pkg/database"
	"github.com/wonny/stabrank/pkg/httputil"
	"github.com/wonny/stabrank/pkg/logger"
)

// aggregateCmd represents the aggregate command
var aggregateCmd = &cobra.Command{
	Use:   "aggregate <file-or-url>",
	Short: "시험 테이블 집계 및 안정 구성점 탐색",
	Long: `시험 결과 테이블을 읽어 열마다 순위화한 뒤,
행별 평균/표준편차로 안정 구성점을 찾습니다.

입력은 로컬 파일(텍스트 테이블) 또는 URL(텍스트/HTML <table>)입니다.
--policy를 생략하면 대화형으로 정책(1-5)을 선택합니다.

Example:
  go run ./cmd/stabrank aggregate results.csv --policy dense
  go run ./cmd/stabrank aggregate https://example.com/trials.html
  go run ./cmd/stabrank aggregate results.csv --policy 5 --out chart.svg --save`,
	Args: cobra.ExactArgs(1),
	RunE: runAggregate,
}

var (
	aggregatePolicy string
	aggregateOut    string
	aggregateSave   bool
)

func init() {
	rootCmd.AddCommand(aggregateCmd)

	// Flags
	aggregateCmd.Flags().StringVar(&aggregatePolicy, "policy", "", "동순위 정책 (name or 1-5, 생략 시 대화형 선택)")
	aggregateCmd.Flags().StringVar(&aggregateOut, "out", "", "SVG 차트 출력 경로")
	aggregateCmd.Flags().BoolVar(&aggregateSave, "save", false, "결과를 run 이력으로 저장 (DB_ENABLED=true 필요)")
}

func runAggregate(cmd *cobra.Command, args []string) error {
	fmt.Println("=== stabrank Aggregate ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Resolve policy (flag or interactive selection)
	var policy rank.Policy
	if aggregatePolicy == "" {
		policy, err = PromptPolicy(bufio.NewReader(os.Stdin))
	} else {
		policy, err = rank.ParsePolicy(aggregatePolicy)
	}
	if err != nil {
		return err
	}

	ctx := context.Background()

	// 4. Load dataset (local file or remote URL)
	source := args[0]
	var ds *contracts.Dataset
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := httputil.New(cfg, log)
		ds, err = dataset.NewFetcher(client, log).Fetch(ctx, source)
	} else {
		ds, err = dataset.Load(source)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d configuration rows x %d trials from %s\n", ds.Rows(), ds.Cols(), ds.Source)

	// 5. Aggregate
	aggregator := aggregate.New(log.Zerolog())
	summary, err := aggregator.Aggregate(ctx, ds, policy)
	if err != nil {
		return err
	}

	// 6. Display results
	fmt.Println()
	fmt.Print(chart.RenderTerminal(chart.FromSummary(summary)))
	PrintSummaryDetails(summary)

	// 7. Optional SVG chart
	if aggregateOut != "" {
		svg := chart.RenderSVG(chart.FromSummary(summary))
		if err := os.WriteFile(aggregateOut, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		PrintSuccess(fmt.Sprintf("Chart written to %s", aggregateOut))
	}

	// 8. Optional run history persistence
	if aggregateSave {
		if !cfg.Database.Enabled {
			PrintWarning("DB_ENABLED=false, run not saved")
			return nil
		}

		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			return err
		}

		run := &contracts.RankRun{
			Source:  ds.Source,
			Policy:  policy.String(),
			Summary: *summary,
		}
		id, err := repos.NewRunRepository(db.Pool).Insert(ctx, run)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		PrintSuccess(fmt.Sprintf("Saved as run #%d", id))
	}

	return nil
}
