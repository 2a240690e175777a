// Command synchttp serves a small demo site: an index page, a page that shuts
// the server down, and optionally the server metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"sync-http/application/http/actor/server"
	"sync-http/application/http/router"
	"sync-http/application/util/query"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type cliFlags struct {
	configPath    string
	address       string
	port          uint
	ttl           uint
	logLevel      string
	shutdownAfter time.Duration
	metrics       bool
}

func parseFlags() cliFlags {
	var f cliFlags
	flag.StringVar(&f.configPath, "config", "", "Path to a YAML configuration file")
	flag.StringVar(&f.address, "address", "", "IP address to bind (overrides config)")
	flag.UintVar(&f.port, "port", 0, "Port to bind (overrides config)")
	flag.UintVar(&f.ttl, "ttl", 0, "IP time-to-live of accepted connections")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.DurationVar(&f.shutdownAfter, "shutdown-after", 0, "Stop serving after this long")
	flag.BoolVar(&f.metrics, "metrics", false, "Serve metrics on /metrics")
	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	var level slog.Level
	if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", flags.logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(flags, logger); err != nil && !errors.Is(err, server.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(flags cliFlags) (server.Config, error) {
	cfg := server.DefaultConfig()
	if flags.configPath != "" {
		f, err := os.Open(flags.configPath)
		if err != nil {
			return cfg, errors.Wrap(err, "opening config")
		}
		defer f.Close()

		if cfg, err = server.LoadConfig(f); err != nil {
			return cfg, err
		}
	}

	if flags.address != "" {
		cfg.Address = flags.address
	}
	if flags.port != 0 {
		if flags.port > 65535 {
			return cfg, errors.Errorf("port %d out of range", flags.port)
		}
		cfg.Port = uint16(flags.port)
	}
	if flags.ttl != 0 {
		if flags.ttl > 255 {
			return cfg, errors.Errorf("ttl %d out of range", flags.ttl)
		}
		ttl := uint8(flags.ttl)
		cfg.TTL = &ttl
	}
	return cfg, nil
}

func run(flags cliFlags, logger *slog.Logger) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	clk := clock.New()
	stop := newStopper()

	if flags.shutdownAfter > 0 {
		go stop.after(server.ShutdownAfter(clk, flags.shutdownAfter))
		logger.Info("shutting down later", "after", flags.shutdownAfter)
	}

	b := server.Create().
		Config(cfg).
		Logger(logger).
		Clock(clk).
		Shutdown(stop.signal).
		Options(server.Options{NotFound: page(notFoundPage)})

	routes := []route{
		{"/", page(indexPage)},
		{"/close", router.HandlerFunc(func(query.Query) (string, error) {
			stop.stop()
			return closePage, nil
		})},
	}

	if flags.metrics {
		registry := prometheus.NewRegistry()
		b = b.Metrics(server.NewMetrics("synchttp", registry))
		routes = append(routes, route{"/metrics", server.MetricsHandler(registry)})
	}

	for _, r := range routes {
		if b, err = b.Get(r.pattern, r.handler); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv, err := b.Bind(ctx)
	if err != nil {
		return err
	}

	// Signals can't wait for the next request like the shutdown page does.
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	return srv.Serve()
}

type route struct {
	pattern string
	handler router.Handler
}

// stopper closes signal at most once, from whichever source comes first.
type stopper struct {
	signal chan struct{}
	once   sync.Once
}

func newStopper() *stopper { return &stopper{signal: make(chan struct{})} }

func (s *stopper) stop() { s.once.Do(func() { close(s.signal) }) }

func (s *stopper) after(timer <-chan struct{}) {
	select {
	case <-timer:
		s.stop()
	case <-s.signal:
	}
}

func page(body string) router.Handler {
	return router.HandlerFunc(func(query.Query) (string, error) { return body, nil })
}

const indexPage = `<html>
<head><title>Hello, world!</title></head>
<body>
<h1>Hello, world!</h1>
<form action="./close">
<input type="submit" value="Shut Server Down" />
</form>
</body>
</html>
`

const closePage = `<html>
<head><title>Shutting down</title></head>
<body><h1>Shutting the server down</h1></body>
</html>
`

const notFoundPage = `<html>
<head><title>Not found</title></head>
<body><h1>Nothing here</h1></body>
</html>
`
