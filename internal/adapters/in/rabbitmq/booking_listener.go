package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/in"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
)

// BookingListener принимает операции бронирования из очереди.
// Повторные доставки одного сообщения отсекаются по MessageId через
// LRU-кэш: занятость календаря при этом никогда не кэшируется,
// дедупликация работает только на уровне транспорта.
type BookingListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.BookingUseCase
	cfg     *config.Config
	logger  out.LoggerPort
	seen    *lru.Cache[string, struct{}]
}

func NewBookingListener(useCase in.BookingUseCase, cfg *config.Config, logger out.LoggerPort) (*BookingListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	seen, err := lru.New[string, struct{}](cfg.RabbitMq.DedupSize)
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.dedup.init_failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.RabbitMq.DedupSize,
		})
		return nil, err
	}

	return &BookingListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
		seen:    seen,
	}, nil
}

func (l *BookingListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	if err := l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueBind,
		l.cfg.RabbitMq.Exchange,
		false,
		nil,
	); err != nil {
		return err
	}

	deliveries, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					l.logger.Warn("rabbitmq.channel.closed", out.LogFields{})
					return
				}
				l.handleDelivery(ctx, delivery)
			}
		}
	}()

	return nil
}

func (l *BookingListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *BookingListener) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	// Повторная доставка уже обработанного сообщения подтверждается
	// без повторного вызова движка
	if delivery.MessageId != "" {
		if _, duplicate := l.seen.Get(delivery.MessageId); duplicate {
			l.logger.Debug("rabbitmq.message.duplicate", out.LogFields{
				"messageId": delivery.MessageId,
			})
			delivery.Ack(false)
			return
		}
	}

	var message OperationMessage
	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		l.logger.Error("rabbitmq.message.decode_failed", out.LogFields{
			"messageId": delivery.MessageId,
			"error":     err.Error(),
		})
		// Сообщение не восстановимо, в очередь не возвращаем
		delivery.Nack(false, false)
		return
	}

	l.dispatch(ctx, message)

	if delivery.MessageId != "" {
		l.seen.Add(delivery.MessageId, struct{}{})
	}
	delivery.Ack(false)
}

func (l *BookingListener) dispatch(ctx context.Context, message OperationMessage) {
	duration := time.Duration(message.Duration) * time.Minute

	switch message.Operation {
	case OperationBookAppointment:
		result := l.useCase.BookAppointment(ctx, domain.AppointmentRequest{
			Name:        message.Name,
			PhoneNumber: message.PhoneNumber,
			StartTime:   message.Timestamp.Date,
			Duration:    duration,
		})
		l.logResult("book_appointment", result.Success(), result.Message)

	case OperationCancelAppointment:
		result := l.useCase.CancelAppointment(ctx, message.Timestamp.Date, message.PhoneNumber)
		l.logResult("cancel_appointment", result.Success(), result.Message)

	case OperationRescheduleAppointment:
		result := l.useCase.RescheduleAppointment(ctx,
			message.Name, message.PhoneNumber,
			message.OldTimestamp.Date, message.NewTimestamp.Date)
		l.logResult("reschedule_appointment", result.Success(), result.Message)

	case OperationGetAvailability:
		var date *time.Time
		if !message.Date.IsZero() {
			date = &message.Date.Date
		}
		result := l.useCase.GetAvailability(ctx, date, duration)
		l.logResult("get_availability", result.Found, result.Message)

	case OperationGetAppointments:
		result := l.useCase.GetCustomerAppointments(ctx, message.PhoneNumber)
		l.logResult("get_appointments", result.Success, result.Message)

	default:
		l.logger.Warn("rabbitmq.message.unknown_operation", out.LogFields{
			"operation": message.Operation,
		})
	}
}

func (l *BookingListener) logResult(operation string, success bool, message string) {
	fields := out.LogFields{
		"operation": operation,
		"success":   success,
		"message":   message,
	}
	if success {
		l.logger.Info("rabbitmq.operation.completed", fields)
	} else {
		l.logger.Warn("rabbitmq.operation.negative", fields)
	}
}
