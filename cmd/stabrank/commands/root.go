package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stabrank",
	Short: "stabrank - 안정 구성점 랭킹 분석기",
	Long: `stabrank Unified CLI

시험(trial) 결과 테이블을 순위화하여 안정 구성점을 찾습니다.
5가지 동순위 정책(dense/ordinal/competition/modified/fractional) 지원.

Usage:
  go run ./cmd/stabrank [command]

Examples:
  go run ./cmd/stabrank rank --policy fractional 5 0 5 1 inf - 1
  go run ./cmd/stabrank aggregate results.csv --policy dense
  go run ./cmd/stabrank api
  go run ./cmd/stabrank status`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
