package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpapi "github.com/yourusername/hardware-storefront/internal/delivery/http"
	"github.com/yourusername/hardware-storefront/internal/delivery/telegram"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API, Telegram bot va fon vazifalarini ishga tushirish",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			zap.S().Warnw("close failed", "error", err)
		}
	}()
	if err := a.bootstrap(ctx); err != nil {
		return err
	}

	server := httpapi.NewServer(httpapi.Services{
		Admins:             a.admins,
		Customers:          a.customers,
		Products:           a.products,
		Hardware:           a.hardware,
		Categories:         a.categories,
		HardwareCategories: a.hardwareCategories,
		Orders:             a.orders,
		Store:              a.store,
		Builder:            a.builder,
		Chat:               a.chat,
		Media:              a.media,
		Suggestions:        a.suggestions,
		MediaDir:           cfg.MediaDir,
	})
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var notifier repository.OrderNotifier = usecase.NewLogNotifier()
	var bot *telegram.BotHandler
	if cfg.TelegramToken != "" {
		bot, err = telegram.NewBotHandler(cfg.TelegramToken, cfg.AdminChatID, a.chat, a.admins, a.products, a.hardware, a.builder)
		if err != nil {
			return err
		}
		notifier = bot.Notifier()
	}

	sched, err := newScheduler(a)
	if err != nil {
		return err
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zap.S().Infow("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return usecase.NewOrderWatcher(a.orders, notifier, cfg.OrderPollInterval).Run(gctx)
	})
	if bot != nil {
		g.Go(func() error { return bot.Start(gctx) })
	}

	err = g.Wait()
	zap.S().Info("storefront stopped")
	return err
}
