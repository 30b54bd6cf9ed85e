// cmd/loadpanel-demo/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tamzrod/loadpanel/internal/config"
	"github.com/tamzrod/loadpanel/internal/demo"
)

var (
	app = kingpin.New("loadpanel-demo", "Stand-in load-test service that tracks run state and reports host usage.")

	configFile = app.Flag("config", "Path to YAML config.").Short('c').Envar("LOADPANEL_CONFIG").String()
	listen     = app.Flag("listen", "Listen address.").Envar("LOADPANEL_DEMO_LISTEN").String()
	logLevel   = app.Flag("log-level", "debug, info, warn or error.").Envar("LOADPANEL_DEMO_LOG_LEVEL").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *listen != "" {
		cfg.Demo.Listen = *listen
	}
	if *logLevel != "" {
		cfg.Demo.LogLevel = *logLevel
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	lvl, err := log.ParseLevel(cfg.Demo.LogLevel)
	if err != nil {
		log.Fatalf("log level: %v", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	sampler, err := demo.NewHostSampler()
	if err != nil {
		log.Fatalf("host sampler failed: %v", err)
	}
	defer sampler.Close()

	srv := demo.NewServer(cfg.Demo.Listen, demo.NewService(sampler).Handler())
	if err := srv.Start(); err != nil {
		log.Fatalf("%v", err)
	}
	defer srv.Stop()

	log.WithField("listen", cfg.Demo.Listen).Info("demo service up")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	log.Info("shutting down")
}
