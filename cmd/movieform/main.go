package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"movieform/internal/autocomplete"
	"movieform/internal/catalog"
	"movieform/internal/config"
	"movieform/internal/eventbus"
	"movieform/internal/logger"
	"movieform/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		endpoint   string
		offline    bool
		initConfig bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file (default: user config directory)")
	flag.StringVar(&endpoint, "endpoint", "", "Base URL of the movie search service")
	flag.BoolVar(&offline, "offline", false, "Suggest titles from the built-in catalog instead of the search service")
	flag.BoolVar(&initConfig, "init-config", false, "Write the default config file and exit")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)

	if initConfig {
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(configSvc.Path())
		return
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	applyFlags(cfg, endpoint, offline)

	// Set up logging; the TUI owns the terminal so logs go to a file
	logFile, err := logger.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log.SetDefault(logger.New(io.Discard, "", log.ErrorLevel))
	} else {
		defer logFile.Close()
	}
	log.Info("Starting movieform", "config", configSvc.Path(), "endpoint", cfg.Search.Endpoint, "offline", cfg.Search.Offline)

	subscribeLogging(bus)

	fetcher, err := newFetcher(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up title search: %v\n", err)
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	model := ui.NewModel(bus, cfg, fetcher)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Error("Program exited with error", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	sub, ok := model.Submission()
	if !ok {
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sub); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing submission: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets command line flags override the config file
func applyFlags(cfg *config.Config, endpoint string, offline bool) {
	if endpoint != "" {
		cfg.Search.Endpoint = endpoint
	}
	if offline {
		cfg.Search.Offline = true
	}
}

// newFetcher picks the suggestion source and puts the result cache in front of it
func newFetcher(cfg *config.Config) (autocomplete.Fetcher, error) {
	var source autocomplete.Fetcher

	if cfg.Search.Offline {
		cat := catalog.Default()
		if cfg.Search.CatalogFile != "" {
			loaded, err := catalog.LoadFile(cfg.Search.CatalogFile)
			if err != nil {
				return nil, err
			}
			cat = loaded
		}
		log.Info("Using offline catalog", "titles", cat.Len())
		source = cat
	} else {
		httpFetcher, err := autocomplete.NewHTTPFetcher(cfg.Search.Endpoint, cfg.Search.Path, nil)
		if err != nil {
			return nil, err
		}
		source = httpFetcher
	}

	return autocomplete.NewCachingFetcher(source, cfg.Search.CacheSize, cfg.Search.CacheTTL()), nil
}

// subscribeLogging writes bus traffic to the log
func subscribeLogging(bus eventbus.EventBus) {
	types := []eventbus.EventType{
		eventbus.EventSuggestionsRequested,
		eventbus.EventSuggestionsRendered,
		eventbus.EventSuggestionsDiscarded,
		eventbus.EventSuggestionsFailed,
		eventbus.EventSuggestionCommitted,
		eventbus.EventDropdownClosed,
		eventbus.EventValidationFailed,
		eventbus.EventFormSubmitted,
		eventbus.EventConfigSaved,
	}
	for _, t := range types {
		bus.Subscribe(t, logEvent)
	}
}

func logEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.SuggestionsFailedEvent:
		log.Warn("Suggestions failed", "query", ev.Query, "token", ev.Token, "err", ev.Err)
	case eventbus.ValidationFailedEvent:
		log.Info("Validation failed", "message", ev.Message)
	default:
		log.Debug("Event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
	}
}
