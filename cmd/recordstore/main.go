package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tailored-agentic-units/recordstore/config"
	"github.com/tailored-agentic-units/recordstore/observability"
	"github.com/tailored-agentic-units/recordstore/store"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config file (.json, .yaml or .yml)")
		input      = flag.String("input", "", "Path to JSON array of records to import (required)")
		connection = flag.String("connection", "", "Opaque connection descriptor (overrides config)")
		batchSize  = flag.Int("batch-size", 0, "Records per output batch; must be positive (overrides config)")
		findEmail  = flag.String("find-email", "", "Look up a record by email after import")
		findID     = flag.Int("find-id", 0, "Look up a record by id after import")
		deleteID   = flag.Int("delete-id", 0, "Delete a record by id after import")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()
	set := setFlags(flag.CommandLine)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: recordstore -input <file> [-config <file>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}

	if *connection != "" {
		cfg.Store.Connection = *connection
	}
	if set["batch-size"] {
		cfg.Batch.Size = *batchSize
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	observer, err := observability.New(&cfg.Observability, logger)
	if err != nil {
		log.Fatalf("Failed to create observer: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	records, err := loadRecords(*input)
	if err != nil {
		emit(ctx, observer, EventFailed, observability.LevelError, map[string]any{
			"stage": "load",
			"error": err.Error(),
		})
		stop()
		os.Exit(1)
	}

	s := store.New(&cfg.Store, store.WithObserver(observer), store.WithContext(ctx))
	for _, r := range records {
		if ctx.Err() != nil {
			break
		}
		s.Save(r)
	}

	if *findEmail != "" {
		if r, ok := s.FindByEmail(*findEmail); ok {
			fmt.Printf("Found: %s, adult: %t\n", r, r.IsAdult())
		} else {
			emit(ctx, observer, EventLookupMiss, observability.LevelWarning, map[string]any{"email": *findEmail})
			fmt.Printf("No record with email %s\n", *findEmail)
		}
	}
	if set["find-id"] {
		if r, ok := s.FindByID(*findID); ok {
			fmt.Printf("Found: %s, adult: %t\n", r, r.IsAdult())
		} else {
			emit(ctx, observer, EventLookupMiss, observability.LevelWarning, map[string]any{"record_id": *findID})
			fmt.Printf("No record with id %d\n", *findID)
		}
	}
	if set["delete-id"] {
		fmt.Printf("Deleted %d: %t\n", *deleteID, s.Delete(*deleteID))
	}

	if err := writeBatches(os.Stdout, s.Records(), cfg.Batch.Size); err != nil {
		emit(ctx, observer, EventFailed, observability.LevelError, map[string]any{
			"stage": "write",
			"error": err.Error(),
		})
		stop()
		os.Exit(1)
	}

	fmt.Printf("Total records: %d (adults: %d, average age: %.2f)\n", s.Len(), len(s.Adults()), s.AverageAge())
}
