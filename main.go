package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/yashrajthakur/portfolio/internal/content"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	c, err := loadContent(cfg)
	if err != nil {
		logger.Fatal("Failed to load content", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)
	r := setupRouter(newApp(cfg, c, logger))

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Portfolio listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}

func newLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	config := zap.NewProductionConfig()
	if cfg.GinMode == gin.DebugMode {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func loadContent(cfg Config) (*content.Content, error) {
	if cfg.ContentPath != "" {
		return content.LoadFile(cfg.ContentPath)
	}
	return content.Default()
}

func setupRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(app.log, newIPHasher()))
	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob(app.cfg.TemplateGlob)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", app.index)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTMX fragments
	r.GET("/nav", app.nav)
	r.POST("/nav/menu", app.toggleMenu)
	r.GET("/projects/close", app.closeProject)
	r.GET("/projects/:id", app.openProject)
	r.GET("/skills/progress", app.skillProgress)

	// Typewriter frames for the hero greeting
	r.GET("/hero/typing", app.typing)

	return r
}
