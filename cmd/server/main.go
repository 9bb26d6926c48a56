package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/internal/api"
	"catalog-service/internal/media"
	"catalog-service/internal/repository"
	"catalog-service/internal/repository/memory"
	"catalog-service/internal/service"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// repositories is the Catalog Store as seen by the services
type repositories struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	brands        repository.BrandRepository
	variantTypes  repository.VariantTypeRepository
	variants      repository.VariantRepository
	products      repository.ProductRepository
	posters       repository.PosterRepository
	coupons       repository.CouponRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	gin.SetMode(cfg.GinMode)
	decimal.MarshalJSONWithoutQuotes = true

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server exited")
}

// run owns every resource opened after config load so deferred cleanup
// happens before main decides the exit code.
func run(cfg *config.Config) error {
	repos, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s catalog store: %w", cfg.StoreDriver, err)
	}
	defer closeStore()

	uploads, err := media.NewStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	router, err := api.NewRouter(api.Services{
		Categories: service.NewCategoryService(repos.categories, repos.subCategories, repos.brands, uploads),
		Variants:   service.NewVariantService(repos.variantTypes, repos.variants),
		Products:   service.NewProductService(repos.products, repos.categories, repos.subCategories, repos.brands, repos.variantTypes, repos.variants, uploads),
		Posters:    service.NewPosterService(repos.posters, uploads),
		Coupons:    service.NewCouponService(repos.coupons, repos.products, repos.categories, repos.subCategories),
	}, api.Options{
		UploadDir:       uploads.Dir(),
		MaxUploadMemory: cfg.MaxUploadMemory,
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	slog.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
	return serve(srv, quit, cfg.ShutdownTimeout)
}

// serve runs srv until it fails or a signal arrives on quit. A failure to
// listen is returned; a signal triggers a graceful shutdown.
func serve(srv *http.Server, quit <-chan os.Signal, shutdownTimeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-quit:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openStore connects the configured Catalog Store. The returned func releases it.
func openStore(cfg *config.Config) (*repositories, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		db := memory.New()
		return &repositories{
			categories:    db.Categories(),
			subCategories: db.SubCategories(),
			brands:        db.Brands(),
			variantTypes:  db.VariantTypes(),
			variants:      db.Variants(),
			products:      db.Products(),
			posters:       db.Posters(),
			coupons:       db.Coupons(),
		}, func() {}, nil
	}

	mongoDB, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB, cfg.MongoConnectTimeout)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("connected to MongoDB", "database", cfg.MongoDB)

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := mongoDB.Disconnect(ctx); err != nil {
			slog.Error("error disconnecting from MongoDB", "error", err)
		}
	}

	db := mongoDB.Database
	return &repositories{
		categories:    repository.NewCategoryRepository(db),
		subCategories: repository.NewSubCategoryRepository(db),
		brands:        repository.NewBrandRepository(db),
		variantTypes:  repository.NewVariantTypeRepository(db),
		variants:      repository.NewVariantRepository(db),
		products:      repository.NewProductRepository(db),
		posters:       repository.NewPosterRepository(db),
		coupons:       repository.NewCouponRepository(db),
	}, closeFn, nil
}
