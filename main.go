// Package main BookJam storefront API.
//
// @title           BookJam API
// @version         1.0
// @description     Catalog, cart, wishlist, currency/region and checkout for the BookJam bookstore.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description  Returned on the first response; send it back to keep the same cart.
package main

import (
	"bookjam/app/echoServer"
	cartctrl "bookjam/app/echoServer/controller/cart"
	catalogctrl "bookjam/app/echoServer/controller/catalog"
	checkoutctrl "bookjam/app/echoServer/controller/checkout"
	currencyctrl "bookjam/app/echoServer/controller/currency"
	wishlistctrl "bookjam/app/echoServer/controller/wishlist"
	"bookjam/app/echoServer/validation"
	"bookjam/config"
	catalogrepo "bookjam/repository/catalog"
	csrepo "bookjam/repository/contentstack"
	kvrepo "bookjam/repository/kv"
	catalogsvc "bookjam/service/catalog"
	checkoutsvc "bookjam/service/checkout"
	"bookjam/service/currency"
	"bookjam/service/session"
	"bookjam/util/database"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level(cfg.LogLevel)}))
	slog.SetDefault(log)

	// currency + region tables
	tables := currency.DefaultTables()
	if cfg.CurrencyTablePath != "" {
		t, err := currency.LoadTables(cfg.CurrencyTablePath)
		if err != nil {
			log.Error("currency table load failed", "path", cfg.CurrencyTablePath, "err", err)
			os.Exit(1)
		}
		tables = t
	}

	// persistence
	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		log.Error("persistence backend failed", "backend", cfg.PersistBackend, "err", err)
		os.Exit(1)
	}
	defer closeKV()
	log.Info("persistence ready", "backend", cfg.PersistBackend)

	// catalog
	creds := csrepo.Credentials{
		APIKey:        cfg.ContentstackAPIKey,
		DeliveryToken: cfg.ContentstackDeliveryToken,
		Environment:   cfg.ContentstackEnvironment,
		Region:        cfg.ContentstackRegion,
	}
	cms := csrepo.NewHTTP(creds, "", nil)
	if !creds.Configured() {
		log.Warn("contentstack not configured, serving mock catalog")
	}
	cs := catalogsvc.New(cms, creds.Configured(), catalogrepo.NewMock(), log)

	// sessions
	reg := session.NewRegistry(kv, tables, log)
	idle := time.Duration(cfg.SessionIdleMins) * time.Minute
	if idle > 0 {
		go session.RunCleaner(ctx, session.NewCleaner(reg, idle), idle/2, log)
	}

	// services + controllers
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	co := checkoutsvc.New(cfg.ShippingFee, time.Duration(cfg.CheckoutDelayMS)*time.Millisecond, v, log)

	catalogC := &catalogctrl.Controller{Svc: cs, Log: log}
	cartC := &cartctrl.Controller{Catalog: cs, V: v, Log: log}
	wishlistC := &wishlistctrl.Controller{Catalog: cs, V: v, Log: log}
	currencyC := &currencyctrl.Controller{Tables: tables, Log: log}
	checkoutC := &checkoutctrl.Controller{Svc: co, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e, log, cfg.RateLimitRPS)
	e.Validator = validation.New(v)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":   "ok",
			"sessions": reg.Len(),
			"backend":  cfg.PersistBackend,
			"cms":      creds.Configured(),
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Catalog:  catalogC,
		Cart:     cartC,
		Wishlist: wishlistC,
		Currency: currencyC,
		Checkout: checkoutC,

		Sessions:        reg,
		SessionSecret:   cfg.SessionSecret,
		SessionTTLHours: cfg.SessionTTLHours,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()
	if err := e.Start(":" + port); err != nil && ctx.Err() == nil {
		log.Error("server stopped", "err", err)
	}
}

// openKV picks the store backing cart, wishlist and currency persistence.
func openKV(ctx context.Context, cfg config.App) (kvrepo.Repo, func(), error) {
	switch cfg.PersistBackend {
	case "", "memory":
		return kvrepo.NewMemory(), func() {}, nil
	case "redis":
		rc, err := kvrepo.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
		return kvrepo.NewRedis(rc, ttl), func() { _ = rc.Close() }, nil
	case "sqlite", "postgres":
		var (
			db  *database.DB
			err error
		)
		if cfg.PersistBackend == "sqlite" {
			db, err = database.NewSQLite(ctx, cfg.SQLitePath)
		} else {
			db, err = database.NewPostgres(ctx, cfg.DatabaseURL)
		}
		if err != nil {
			return nil, nil, err
		}
		kv, err := kvrepo.NewSQL(ctx, db.SQL)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return kv, db.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown PERSIST_BACKEND %q", cfg.PersistBackend)
}

func level(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
