package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	httpin "github.com/suchimauz/calendar-booking-service/internal/adapters/in/http"
	"github.com/suchimauz/calendar-booking-service/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/calendar-booking-service/internal/adapters/out/clock"
	"github.com/suchimauz/calendar-booking-service/internal/adapters/out/googlecalendar"
	"github.com/suchimauz/calendar-booking-service/internal/adapters/out/logger"
	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
	"github.com/suchimauz/calendar-booking-service/internal/core/services"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"businessHours":   fmt.Sprintf("%d:00-%d:00", cfg.Booking.BusinessStartHour, cfg.Booking.BusinessEndHour),
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	calendarAdapter, err := googlecalendar.NewGoogleCalendarAdapter(ctx, cfg, mainLogger.WithModule("GoogleCalendarAdapter"))
	if err != nil {
		log.Error("app.calendar.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	systemClock := clock.NewSystemClock(config.TimeZone)

	// Инициализация движка бронирования
	bookingService := services.NewBookingService(
		calendarAdapter,
		systemClock,
		mainLogger,
		cfg,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := httpin.NewBookingController(
		bookingService,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewBookingListener(
			bookingService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
