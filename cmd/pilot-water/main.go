package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sherzoddehqon/pilot-water/pkg/analysis"
	"github.com/sherzoddehqon/pilot-water/pkg/logging"
	"github.com/sherzoddehqon/pilot-water/pkg/metrics"
	"github.com/sherzoddehqon/pilot-water/pkg/validation"
)

func main() {
	networkFile := flag.String("network", "", "Network definition YAML file (required)")
	configFile := flag.String("config", "", "Validation config YAML file (optional)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	metricsListen := flag.String("metrics-listen", "", "Address to expose /metrics on (e.g. :9100); empty disables")
	flag.Parse()

	if *networkFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	config := validation.DefaultConfig()
	if *configFile != "" {
		var err error
		if config, err = validation.LoadConfig(*configFile); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	level := logging.ParseLevel(config.LogLevel)
	if *logLevel != "" {
		level = logging.ParseLevel(*logLevel)
	}
	logger := logging.NewJSONLogger(os.Stderr, level)

	registry := metrics.NewRegistry()
	if *metricsListen != "" {
		go serveMetrics(*metricsListen, registry, logger)
	}

	def, err := LoadDefinition(*networkFile)
	if err != nil {
		log.Fatalf("Failed to load network: %v", err)
	}
	net, err := def.Build(config.NetworkPolicy())
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}

	pipeline := analysis.NewPipeline(net, config, logger, registry)
	result := pipeline.Run()

	printResult(result)

	if !result.Report.Valid() {
		os.Exit(1)
	}
}

func serveMetrics(addr string, registry *metrics.Registry, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		registry.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))
	logger.Info("metrics listener started", logging.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics listener failed", logging.Error(err))
	}
}

func printResult(result *analysis.Result) {
	for _, step := range result.Steps {
		fmt.Printf("Step %d: %s\n", step.Number, step.Description)
		for _, item := range step.Items {
			fmt.Printf("  - %s\n", item)
		}
		if step.RequiresApproval {
			fmt.Println("  (requires operator approval)")
		}
	}

	fmt.Printf("\nMax hierarchy order: %d\n", result.MaxOrder)
	levels := make([]int, 0, len(result.BlockHierarchy))
	for level := range result.BlockHierarchy {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	for _, level := range levels {
		fmt.Printf("Level %d blocks: %v\n", level, result.BlockHierarchy[level])
	}

	report := result.Report
	fmt.Printf("\nValidation report %s (%s)\n", report.ID, report.CheckedAt.Format("2006-01-02 15:04:05"))
	if report.Valid() {
		fmt.Println("  No blocking errors.")
	}
	for _, f := range report.Errors {
		fmt.Printf("  ERROR [%s] %s\n", f.Check, f.Message)
	}
	for _, f := range report.Warnings {
		fmt.Printf("  WARN  [%s] %s\n", f.Check, f.Message)
	}
}
