package commands

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/stabrank/internal/rank"
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank [values...]",
	Short: "단일 시리즈 순위 계산",
	Long: `값 시리즈 하나를 순위화합니다.

값은 숫자 또는 문자열(범주형)이며, "-" 또는 "nan"은 결측치입니다.
숫자와 문자열을 섞을 수 없습니다.

Policies:
  1. dense                 1 2 2 3
  2. ordinal               1 2 3 4
  3. competition           1 2 2 4
  4. modified-competition  1 3 3 4
  5. fractional            1 2.5 2.5 4

인자를 생략하면 stdin에서 값을 읽습니다.

Example:
  go run ./cmd/stabrank rank --policy fractional 5 0 5 1 inf - 1
  go run ./cmd/stabrank rank --policy dense small large medium small
  echo "5 0 5 1" | go run ./cmd/stabrank rank`,
	Args: cobra.ArbitraryArgs,
	RunE: runRank,
}

var (
	rankPolicy string
)

func init() {
	rootCmd.AddCommand(rankCmd)

	// Flags
	rankCmd.Flags().StringVar(&rankPolicy, "policy", "fractional", "동순위 정책 (name or 1-5)")
}

func runRank(cmd *cobra.Command, args []string) error {
	policy, err := rank.ParsePolicy(rankPolicy)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args, err = readTokens(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("no values given")
	}

	ranks, err := rank.RankValues(parseSeries(args), policy)
	if err != nil {
		return err
	}

	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = FormatRank(r)
	}

	fmt.Printf("policy : %s\n", policy.String())
	fmt.Printf("input  : %s\n", strings.Join(args, " "))
	fmt.Printf("ranks  : %s\n", strings.Join(out, " "))
	return nil
}

// readTokens reads whitespace-separated values from stdin
func readTokens(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return strings.Fields(string(data)), nil
}

// parseSeries converts CLI arguments into a loosely-typed series.
// Numbers parse as float64, "-"/"nan" become missing, anything else
// stays a string (categorical).
func parseSeries(args []string) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		tok := strings.TrimSpace(arg)
		if tok == "-" || strings.EqualFold(tok, "nan") {
			values[i] = nil
			continue
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			if math.IsNaN(f) {
				values[i] = nil
				continue
			}
			values[i] = f
			continue
		}
		values[i] = tok
	}
	return values
}
