// Package reporting formats optimizer and locator results for external
// consumption. It is a sink only: the core packages return values and never
// print.
package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/growth-optimizer/internal/models"
)

// GenerateConsoleReport formats an optimization result for terminal output.
// A nil result reports the no-candidate outcome explicitly.
func GenerateConsoleReport(result *models.OptimizationResult, targetGrowth float64) string {
	var builder strings.Builder
	builder.WriteString("Growth Optimization Report\n")
	builder.WriteString("==========================\n")
	builder.WriteString(fmt.Sprintf("Target Growth: %.2f%%\n", targetGrowth*100))
	if result == nil {
		builder.WriteString("No parameter combination met the target growth.\n")
		return builder.String()
	}
	breakEven := models.BetParameters{Odds: result.Odds}.ImpliedProbability()
	builder.WriteString(fmt.Sprintf("Best Odds: %.2f\n", result.Odds))
	builder.WriteString(fmt.Sprintf("Best Win Probability: %.2f%%\n", result.Probability*100))
	builder.WriteString(fmt.Sprintf("Break-even Probability: %.2f%%\n", breakEven*100))
	builder.WriteString(fmt.Sprintf("Edge Over Break-even: %.2f%%\n", (result.Probability-breakEven)*100))
	builder.WriteString(fmt.Sprintf("Analytic Growth: %.2f%%\n", result.AnalyticGrowth*100))
	builder.WriteString(fmt.Sprintf("Volatility Drag: %.2f%%\n", result.VolatilityDrag*100))
	builder.WriteString(fmt.Sprintf("Adjusted Growth: %.2f%%\n", result.AdjustedGrowth*100))
	return builder.String()
}

// WriteCurveCSV exports a locator curve for spreadsheets and plotting.
func WriteCurveCSV(points []models.CurvePoint, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	var builder strings.Builder
	builder.WriteString("odds,probability,analytic_growth,adjusted_growth\n")
	for _, point := range points {
		builder.WriteString(fmt.Sprintf("%.4f,%.4f,%.6f,%.6f\n",
			point.Odds, point.Probability, point.AnalyticGrowth, point.AdjustedGrowth))
	}
	return os.WriteFile(outputPath, []byte(builder.String()), 0o644)
}

// SummarizeCurve produces a one-paragraph summary of a locator curve.
func SummarizeCurve(points []models.CurvePoint, targetGrowth float64) string {
	if len(points) == 0 {
		return fmt.Sprintf("No odds value on the grid reached %.2f%% adjusted growth.\n", targetGrowth*100)
	}
	probabilities := make([]float64, len(points))
	for i, point := range points {
		probabilities[i] = point.Probability
	}
	mean := stat.Mean(probabilities, nil)
	std := stat.StdDev(probabilities, nil)
	if len(probabilities) == 1 {
		std = 0
	}
	return fmt.Sprintf(
		"Located %d odds/probability pairs matching %.2f%% adjusted growth (probability mean %.2f%%, stddev %.2f%%).\n",
		len(points), targetGrowth*100, mean*100, std*100)
}
