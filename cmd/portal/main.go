package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/shivang-jani/bitsjob-search-frontend/internal/config"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/events"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/httpapi"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/remote"
	"github.com/shivang-jani/bitsjob-search-frontend/internal/session"
)

func main() {
	// .env is optional; durable settings live in config.yml.
	_ = godotenv.Load()

	// Portal data dir: use env if provided (the UI shell can pass one),
	// else local folder.
	dataDir := os.Getenv("BITSJOB_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; a second launch exits instead of fighting
	// over the database.
	lock := flock.New(filepath.Join(dataDir, "portal.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another portal engine is already running for %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		config.OverlayEnv(&cfg)
		cfg, res := config.NormalizeAndValidate(cfg)
		for _, w := range res.Warnings {
			log.Printf("level=warn msg=\"config\" detail=%q", w)
		}
		if !res.OK() {
			return cfg, errors.New("config invalid: " + strings.Join(res.Errors, "; "))
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "portal.db")
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", dbPath))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	local, err := session.NewLocalBackend(db)
	if err != nil {
		log.Fatalf("session table migration failed: %v", err)
	}
	store := session.NewStore(session.NewKeyringBackend(), local)
	manager := session.NewManager(context.Background(), store)

	// The client reads the base URL through cfgVal so a config update
	// applies without a restart.
	client := remote.NewClientFrom(func() string {
		return cfgVal.Load().(config.Config).API.BaseURL
	})
	hub := events.NewHub()

	shutdownToken, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}

	stop := make(chan struct{}, 1)
	deps := &httpapi.Deps{
		Hub:      hub,
		Sessions: store,
		Manager:  manager,

		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,

		Shutdown: func() {
			select {
			case stop <- struct{}{}:
			default:
			}
		},
		ShutdownToken: shutdownToken,

		Login:        client.Login,
		Signup:       client.Signup,
		ListJobs:     client.ListJobs,
		ListUserJobs: client.ListUserJobs,
		CreateJob:    client.CreateJob,
		DeleteJob:    client.DeleteJob,
		Overview:     client.Overview,
		BackendCheck: client.Health,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"portal engine listening\" addr=http://%s db=%s api=%s",
		addr, dbPath, client.BuildURL(""))

	// The spawning shell reads this line to learn the shutdown token.
	fmt.Printf("PORTAL_SHUTDOWN_TOKEN=%s\n", shutdownToken)

	srv := &http.Server{
		Handler:           httpapi.NewMux(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal(err)
	case <-sigCh:
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("level=warn msg=\"shutdown\" err=%v", err)
	}
	log.Printf("level=info msg=\"portal engine stopped\"")
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
