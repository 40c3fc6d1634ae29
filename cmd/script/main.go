package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"stockpulse/api"
	"stockpulse/cmd"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

type analysisRow struct {
	Symbol        string  `csv:"symbol"`
	Price         float64 `csv:"price"`
	ChangePercent float64 `csv:"change_percent"`
	RSI           string  `csv:"rsi"`
	MACD          string  `csv:"macd"`
	Sentiment     string  `csv:"sentiment"`
	Technical     string  `csv:"technical"`
	Rating        string  `csv:"rating"`
	Score         float64 `csv:"score"`
	Risk          string  `csv:"risk"`
	Summary       string  `csv:"summary"`
}

func optionalReading(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func toAnalysisRows(analyses []domain.Analysis) []analysisRow {
	rows := []analysisRow{}
	for _, a := range analyses {
		rows = append(rows, analysisRow{
			Symbol:        a.Symbol,
			Price:         a.StockData.Price,
			ChangePercent: a.StockData.ChangePercent,
			RSI:           optionalReading(a.Indicators.RSI),
			MACD:          optionalReading(a.Indicators.MACD),
			Sentiment:     string(a.Verdict.Sentiment.Label),
			Technical:     string(a.Verdict.Technical.Overall),
			Rating:        string(a.Verdict.Recommendation.Rating),
			Score:         a.Verdict.Recommendation.Score,
			Risk:          string(a.Verdict.Risk),
			Summary:       a.Verdict.Summary,
		})
	}
	return rows
}

func writeAnalyses(w io.Writer, format string, analyses []domain.Analysis) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(analyses)
	case "csv":
		return gocsv.Marshal(toAnalysisRows(analyses), w)
	}
	return fmt.Errorf("unsupported format %q", format)
}

func analyzeCommand(handler func() *api.ApiHandler) *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "analyze SYMBOL...",
		Short: "Analyse one or more symbols and print the verdicts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := context.Background()
			lg := logger.FromContext(ctx)
			apiHandler := handler()

			analyses := []domain.Analysis{}
			for _, symbol := range args {
				analysis, err := apiHandler.AnalysisApp.Analyze(ctx, symbol)
				if err != nil {
					lg.Warnf("skipping %s: %s", symbol, err.Error())
					continue
				}
				analyses = append(analyses, *analysis)
			}
			return writeAnalyses(c.OutOrStdout(), format, analyses)
		},
	}
	c.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	return c
}

func digestCommand(handler func() *api.ApiHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "digest",
		Short: "Run the daily digest once and print the run report",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			report, err := handler().DigestApp.SendDailyDigest(context.Background())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}

func main() {
	var apiHandler *api.ApiHandler
	handler := func() *api.ApiHandler {
		if apiHandler == nil {
			h, err := cmd.InitializeDependencies()
			if err != nil {
				log.Fatal(err)
			}
			apiHandler = h
		}
		return apiHandler
	}

	root := &cobra.Command{
		Use:          "stockpulse",
		Short:        "Ad-hoc stock analysis and digest runs",
		SilenceUsage: true,
	}
	root.AddCommand(analyzeCommand(handler), digestCommand(handler))

	err := root.Execute()
	if apiHandler != nil {
		cmd.CloseDependencies(apiHandler)
	}
	if err != nil {
		os.Exit(1)
	}
}
