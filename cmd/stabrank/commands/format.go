package commands

import (
	"bufio"
	"fmt"
	"math"
	"strings"

	"github.com/wonny/stabrank/internal/contracts"
	"github.com/wonny/stabrank/internal/rank"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

// PrintSeparator prints a visual separator
func PrintSeparator() {
	fmt.Println("───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator() {
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("✅ %s\n", message)
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("❌ %s\n", message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("ℹ️  %s\n", message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
	fmt.Println()
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(key string, value string, keyWidth int) {
	fmt.Printf("   %-*s : %s\n", keyWidth, key, value)
}

// FormatRank renders one rank value; missing entries print as "-"
func FormatRank(r float64) string {
	if math.IsNaN(r) {
		return "-"
	}
	if r == math.Trunc(r) {
		return fmt.Sprintf("%.0f", r)
	}
	return fmt.Sprintf("%.1f", r)
}

// PrintSummaryDetails prints the best/stable rows of a summary
func PrintSummaryDetails(summary *contracts.Summary) {
	PrintSeparator()
	PrintKeyValue("Policy", summary.Policy, 12)
	PrintKeyValue("Rows", fmt.Sprintf("%d", len(summary.Points)), 12)

	if best := summary.Best(); best != nil {
		PrintKeyValue("Best", fmt.Sprintf("param=%g mean=%.3f ± %.3f", best.Param, best.MeanRank, best.StdDev), 12)
		PrintKeyValue("Threshold", fmt.Sprintf("%.3f", summary.Threshold), 12)
	} else {
		PrintKeyValue("Best", "none (no data)", 12)
	}

	if stable := summary.Stable(); stable != nil {
		PrintKeyValue("Stable", fmt.Sprintf("param=%g mean=%.3f ± %.3f", stable.Param, stable.MeanRank, stable.StdDev), 12)
	}
	PrintSeparator()
}

// PromptPolicy asks the user to pick a tie-breaking policy (1-5)
func PromptPolicy(in *bufio.Reader) (rank.Policy, error) {
	fmt.Println("동순위 정책을 선택하세요:")
	for _, p := range rank.Policies() {
		fmt.Printf("  %d. %s\n", int(p), p.String())
	}
	fmt.Print("선택 (1-5): ")

	line, err := in.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("read policy selection: %w", err)
	}

	return rank.ParsePolicy(strings.TrimSpace(line))
}
