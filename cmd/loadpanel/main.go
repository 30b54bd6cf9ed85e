// cmd/loadpanel/main.go
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tamzrod/loadpanel/internal/config"
	"github.com/tamzrod/loadpanel/internal/panel"
	"github.com/tamzrod/loadpanel/internal/service"
	"github.com/tamzrod/loadpanel/internal/trigger"
	"github.com/tamzrod/loadpanel/internal/writer"
	"github.com/tamzrod/loadpanel/internal/writer/console"
	"github.com/tamzrod/loadpanel/internal/writer/telegram"
)

var (
	app = kingpin.New("loadpanel", "Control panel for a remote load-test service.")

	configFile = app.Flag("config", "Path to YAML config.").Short('c').Envar("LOADPANEL_CONFIG").String()
	baseURL    = app.Flag("url", "Load-test service base URL.").Envar("LOADPANEL_URL").String()
	interval   = app.Flag("interval", "Status poll interval (e.g. 2s).").Envar("LOADPANEL_INTERVAL").Duration()
	timeout    = app.Flag("timeout", "Per-request timeout, 0 for none.").Envar("LOADPANEL_TIMEOUT").Duration()
	logLevel   = app.Flag("log-level", "debug, info, warn or error.").Envar("LOADPANEL_LOG_LEVEL").String()

	watchCmd       = app.Command("watch", "Poll status continuously and accept commands on stdin.").Default()
	startCPUCmd    = app.Command("start-cpu", "Start the CPU load test.")
	stopCPUCmd     = app.Command("stop-cpu", "Stop the CPU load test.")
	startMemoryCmd = app.Command("start-memory", "Start the memory load test.")
	stopMemoryCmd  = app.Command("stop-memory", "Stop the memory load test.")
	stopAllCmd     = app.Command("stop-all", "Emergency stop of all load tests.")
	statusCmd      = app.Command("status", "Fetch and show status once.")
	triggerCmd     = app.Command("trigger", "Run the generic load test.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	applyFlags(cfg)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	setupLogging(cfg.Panel.LogLevel)

	svc, err := service.New(service.Config{
		BaseURL: cfg.Panel.Service.BaseURL,
		Timeout: time.Duration(cfg.Panel.Service.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("service client failed: %v", err)
	}

	ctx := context.Background()

	switch command {
	case watchCmd.FullCommand():
		watch(ctx, cfg.Panel, svc)

	case triggerCmd.FullCommand():
		t := trigger.New(svc, console.New(os.Stdout, false))
		if err := t.Run(ctx); err != nil {
			os.Exit(1)
		}

	default:
		if err := oneShot(ctx, cfg.Panel, svc, command); err != nil {
			os.Exit(1)
		}
	}
}

// applyFlags lets explicitly set flags override file values.
func applyFlags(cfg *config.Config) {
	if *baseURL != "" {
		cfg.Panel.Service.BaseURL = *baseURL
	}
	if *interval != 0 {
		cfg.Panel.Poll.IntervalMs = int(*interval / time.Millisecond)
	}
	if *timeout != 0 {
		cfg.Panel.Service.TimeoutMs = int(*timeout / time.Millisecond)
	}
	if *logLevel != "" {
		cfg.Panel.LogLevel = *logLevel
	}
}

func setupLogging(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

// --------------------
// One-shot commands
// --------------------

func oneShot(ctx context.Context, pc config.PanelConfig, svc *service.Client, command string) error {
	p, err := panel.New(panelConfig(pc), svc)
	if err != nil {
		log.Fatalf("panel build failed: %v", err)
	}

	var opErr error
	switch command {
	case startCPUCmd.FullCommand():
		opErr = p.StartCPULoad(ctx)
	case stopCPUCmd.FullCommand():
		opErr = p.StopCPULoad(ctx)
	case startMemoryCmd.FullCommand():
		opErr = p.StartMemoryLoad(ctx)
	case stopMemoryCmd.FullCommand():
		opErr = p.StopMemoryLoad(ctx)
	case stopAllCmd.FullCommand():
		opErr = p.StopAllTests(ctx)
	case statusCmd.FullCommand():
		opErr = p.RefreshStatus(ctx)
	}

	p.Close()

	if err := console.New(os.Stdout, false).Write(p.View()); err != nil {
		log.WithError(err).Error("render failed")
	}
	return opErr
}

// --------------------
// Watch mode
// --------------------

func watch(ctx context.Context, pc config.PanelConfig, svc *service.Client) {
	sinks := []panel.Sink{console.New(os.Stdout, true)}

	if pc.Mirror != nil {
		sw, closeMirror, err := writer.BuildStatusWriter(*pc.Mirror, pc.Name)
		if err != nil {
			log.Fatalf("status mirror failed (endpoint=%s): %v", pc.Mirror.Endpoint, err)
		}
		defer closeMirror()
		sinks = append(sinks, sw)
	}

	if pc.Alert != nil {
		a, err := telegram.New(pc.Alert.TelegramToken, pc.Alert.ChatID, pc.Name)
		if err != nil {
			log.Fatalf("telegram alert failed: %v", err)
		}
		sinks = append(sinks, a)
	}

	p, err := panel.New(panelConfig(pc), svc, sinks...)
	if err != nil {
		log.Fatalf("panel build failed: %v", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := p.Start(ctx); err != nil {
		log.Fatalf("panel start failed: %v", err)
	}
	defer p.Close()

	quit := make(chan struct{})
	go readCommands(ctx, os.Stdin, p, quit)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case <-interrupt:
	case <-quit:
	}
	log.Info("shutting down")
}

// readCommands dispatches one operator command per line. Each command runs
// on its own goroutine so a slow request never blocks input or polling.
// EOF on stdin leaves the panel watching.
func readCommands(ctx context.Context, r io.Reader, p *panel.Panel, quit chan<- struct{}) {
	ops := map[string]func(context.Context) error{
		"start-cpu":    p.StartCPULoad,
		"stop-cpu":     p.StopCPULoad,
		"start-memory": p.StartMemoryLoad,
		"stop-memory":  p.StopMemoryLoad,
		"stop-all":     p.StopAllTests,
		"refresh":      p.RefreshStatus,
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			close(quit)
			return
		}

		op, ok := ops[line]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown command %q (start-cpu, stop-cpu, start-memory, stop-memory, stop-all, refresh, quit)\n", line)
			continue
		}

		go func(name string) {
			if err := op(ctx); err != nil {
				log.WithError(err).Debugf("command %s failed", name)
			}
		}(line)
	}
}

func panelConfig(pc config.PanelConfig) panel.Config {
	return panel.Config{
		PollInterval: time.Duration(pc.Poll.IntervalMs) * time.Millisecond,
	}
}
