package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-textrank/api"
	"github.com/gcbaptista/go-textrank/config"
	"github.com/gcbaptista/go-textrank/internal/analytics"
	"github.com/gcbaptista/go-textrank/internal/engine"
	"github.com/gcbaptista/go-textrank/internal/logging"
	"github.com/gcbaptista/go-textrank/internal/segmenter"
	"github.com/gcbaptista/go-textrank/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to a YAML configuration file")
		port       = flag.String("port", "", "Port to run the server on (overrides the configuration)")
		text       = flag.String("text", "", "Analyze this text, print the result as JSON and exit")
		file       = flag.String("file", "", "Analyze the contents of this file (- for stdin) and exit")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Go TextRank - Keyword, keyphrase and key sentence extraction\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --config textrank.yaml       # Load settings from a file\n", os.Args[0])
		fmt.Printf("  %s --file article.txt           # Analyze a file and print JSON\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Go TextRank v1.0.0\n")
		fmt.Printf("Graph-based keyword and sentence ranking with async jobs\n")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	logger, err := logging.New(cfg.Server.LogLevel, cfg.Server.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	seg, err := segmenter.NewFromFile(cfg.Server.StopwordsFile)
	if err != nil {
		logger.Fatal("failed to load stopwords", zap.String("path", cfg.Server.StopwordsFile), zap.Error(err))
	}

	analyticsService := analytics.NewService(logger.Named("analytics"))

	textRankEngine, err := engine.NewEngine(seg, engine.Options{
		Settings:     cfg.Analyze,
		MaxWorkers:   cfg.Server.MaxWorkers,
		MaxTextBytes: cfg.Server.MaxTextBytes,
		Analytics:    analyticsService,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("failed to create engine", zap.Error(err))
	}

	if *text != "" || *file != "" {
		if err := analyzeOnce(textRankEngine, *text, *file, os.Stdout); err != nil {
			logger.Fatal("analysis failed", zap.Error(err))
		}
		return
	}

	textRankEngine.Start()
	defer textRankEngine.Stop()

	if !cfg.Server.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	api.SetupRoutes(router, textRankEngine, api.RouterOptions{
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Analytics:    analyticsService,
		Logger:       logger.Named("http"),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// analyzeOnce runs a single synchronous analysis and writes it as indented JSON.
func analyzeOnce(analyzer services.Analyzer, text, path string, out io.Writer) error {
	if text == "" {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path) // #nosec G304 -- path comes from the operator's command line
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = string(data)
	}

	analysis, err := analyzer.Analyze(context.Background(), services.AnalyzeRequest{Text: text, Label: path})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}
