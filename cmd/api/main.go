package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"kizuna/internal/config"
	"kizuna/internal/database"
	"kizuna/internal/domain/checkout"
	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/editor"
	"kizuna/internal/domain/plan"
	"kizuna/internal/domain/preview"
	"kizuna/internal/domain/shell"
	"kizuna/internal/middleware"
	"kizuna/internal/pkg/clock"
	"kizuna/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	backend, err := openStorage(cfg)
	if err != nil {
		log.Fatal(err)
	}

	clk := clock.Real()
	manager := draft.NewManager(backend)
	links := checkout.Links{
		ServiceDomain: cfg.Links.ServiceDomain,
		DefaultSlug:   cfg.Links.DefaultSlug,
		QREndpoint:    cfg.Links.QREndpoint,
		QRSize:        cfg.Links.QRSize,
		QRColor:       cfg.Links.QRColor,
		QRBgColor:     cfg.Links.QRBgColor,
	}

	planHandler := plan.NewHandler()
	draftHandler := draft.NewHandler(manager)

	editorService := editor.NewService(clk, editor.SimulatedChecker{}, editor.Options{
		MaxUploadBytes:    cfg.Editor.MaxUploadBytes,
		MaxImageDimension: cfg.Editor.MaxImageDimension,
		DomainStepDelay:   cfg.Editor.DomainStepDelay,
	})
	editorHandler := editor.NewHandler(manager, editorService)

	renderer := preview.NewRenderer(clk, links, cfg.SlideInterval)
	previewHandler := preview.NewHandler(manager, renderer, preview.LiveOptions{
		Tick:        time.Second,
		CheckOrigin: middleware.OriginChecker(cfg.CORSAllowedOrigins),
	})

	checkoutService := checkout.NewService(links, &checkout.SimulatedProcessor{Clock: clk, Delay: cfg.CheckoutDelay})
	checkoutHandler := checkout.NewHandler(manager, checkoutService)

	shellHandler := shell.NewHandler(manager)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Session(middleware.SessionOptions{
		Cookie: cfg.Session.Cookie,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
		Touch:  manager.Touch,
	}))
	{
		plan.RegisterRoutes(v1, planHandler)
		draft.RegisterRoutes(v1, draftHandler)
		editor.RegisterRoutes(v1, editorHandler)
		preview.RegisterRoutes(v1, previewHandler)
		checkout.RegisterRoutes(v1, checkoutHandler)
		shell.RegisterRoutes(v1, shellHandler)
	}

	log.Printf("server_start port=%s storage=%s", cfg.Port, cfg.Storage.Driver)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// openStorage builds the configured backend and wraps it with the
// compressing codec.
func openStorage(cfg *config.Config) (storage.Store, error) {
	var backend storage.Store

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		log.Println("Using in-memory storage; drafts are lost on restart")
		backend = storage.NewMemoryStore()

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		backend = storage.NewRedisStore(client, "kizuna:session:", cfg.Session.TTL)

	default:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		backend = storage.NewSQLStore(db)
	}

	compressed, err := storage.NewCompressing(backend, cfg.Storage.CompressThreshold)
	if err != nil {
		return nil, fmt.Errorf("storage codec: %w", err)
	}
	return compressed, nil
}
