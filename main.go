package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuronest/pkg/agents"
	"neuronest/pkg/config"
	"neuronest/pkg/llm"
	_ "neuronest/pkg/llm/autoload" // Registers LLM providers
	"neuronest/pkg/monitor"
	"neuronest/pkg/notify"
	_ "neuronest/pkg/notify/autoload" // Registers notifiers
	"neuronest/pkg/notify/deeplink"
	"neuronest/pkg/reminder"
	"neuronest/pkg/server"
	"neuronest/pkg/sessions"

	"github.com/joho/godotenv"
)

func main() {
	monitor.PrintBanner()

	// Secrets (.env) are optional; config.json may carry them inline
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// --- 0. Configuration ---
	cfg, sysCfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	monitor.SetupSlog(sysCfg.LogLevel)

	// --- 1. LLM clients ---
	client, err := llm.NewFromConfig(cfg.LLM, sysCfg)
	if err != nil {
		log.Fatalf("❌ Failed to init LLM client: %v", err)
	}

	// --- 2. Agents ---
	registry := agents.NewRegistry()
	if cfg.AgentsFile != "" {
		if err := registry.ReloadFile(cfg.AgentsFile); err != nil {
			slog.Warn("Could not load agents file, using built-in personas", "error", err)
		}
	}
	router := agents.NewRouter(registry, client, time.Duration(sysCfg.LLMTimeoutMs)*time.Millisecond)

	// --- 3. Outbound notifiers ---
	notifiers := notify.LoadFromConfig(cfg.Notifiers, sysCfg)

	reminderNotifier := cfg.ReminderNotifier
	if reminderNotifier == "" {
		reminderNotifier = "ultramsg"
	}
	sender, ok := notifiers[reminderNotifier]
	if !ok {
		log.Fatalf("❌ Reminder notifier %q is not configured", reminderNotifier)
	}

	// --- 4. Monitor + scheduler ---
	mon := monitor.NewCLIMonitor()
	if err := mon.Start(); err != nil {
		log.Fatalf("❌ Failed to start monitor: %v", err)
	}

	scheduler := reminder.NewScheduler(sender, mon, time.Duration(sysCfg.NotifyTimeoutMs)*time.Millisecond)
	scheduler.Start()

	// --- 5. HTTP facade ---
	srv := server.New(server.Params{
		Config:    cfg,
		System:    sysCfg,
		Router:    router,
		Registry:  registry,
		Sessions:  sessions.NewManager(sysCfg.SessionMemoryTurns),
		Notifiers: notifiers,
		Launcher:  deeplink.NewLauncher(),
		Scheduler: scheduler,
		Monitor:   mon,
	})
	if err := srv.Start(); err != nil {
		log.Fatalf("❌ Failed to start HTTP server: %v", err)
	}

	// --- 6. Agents file hot reload ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.AgentsFile != "" {
		changed := config.Watch(ctx, cfg.AgentsFile)
		go func() {
			for range changed {
				if err := registry.ReloadFile(cfg.AgentsFile); err != nil {
					slog.Error("Agents reload failed", "error", err)
					continue
				}
				slog.Info("Agent personas reloaded", "file", cfg.AgentsFile)
			}
		}()
	}

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("\nReceived shutdown signal. Stopping services...")

	if err := srv.Stop(); err != nil {
		slog.Error("HTTP shutdown error", "error", err)
	}
	scheduler.Stop()
	mon.Stop()
	log.Println("Bye!")
}
