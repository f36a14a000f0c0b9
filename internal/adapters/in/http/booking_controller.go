package http

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/json_types"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/in"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
	"github.com/suchimauz/calendar-booking-service/internal/utils"
)

type BookingController struct {
	useCase in.BookingUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewBookingController(useCase in.BookingUseCase, cfg *config.Config, logger out.LoggerPort) *BookingController {
	return &BookingController{
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.POST("/appointments", c.bookAppointment)
		api.POST("/appointments/cancel", c.cancelAppointment)
		api.POST("/appointments/reschedule", c.rescheduleAppointment)
		api.GET("/appointments", c.getAppointments)
		api.GET("/availability", c.getAvailability)
	}
}

type BookAppointmentRequest struct {
	Name        string              `json:"name" binding:"required"`
	PhoneNumber string              `json:"phoneNumber" binding:"required"`
	Timestamp   json_types.DateTime `json:"timestamp" binding:"required"`
	Duration    int                 `json:"duration"`
}

type CancelAppointmentRequest struct {
	PhoneNumber string              `json:"phoneNumber" binding:"required"`
	Timestamp   json_types.DateTime `json:"timestamp" binding:"required"`
}

type RescheduleAppointmentRequest struct {
	Name         string              `json:"name" binding:"required"`
	PhoneNumber  string              `json:"phoneNumber" binding:"required"`
	OldTimestamp json_types.DateTime `json:"oldTimestamp" binding:"required"`
	NewTimestamp json_types.DateTime `json:"newTimestamp" binding:"required"`
}

func (c *BookingController) bookAppointment(ctx *gin.Context) {
	var req BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := c.useCase.BookAppointment(ctx.Request.Context(), domain.AppointmentRequest{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		StartTime:   req.Timestamp.Date,
		Duration:    time.Duration(req.Duration) * time.Minute,
	})

	ctx.JSON(bookingStatusCode(result), bookingResponse(result))
}

func (c *BookingController) cancelAppointment(ctx *gin.Context) {
	var req CancelAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := c.useCase.CancelAppointment(ctx.Request.Context(), req.Timestamp.Date, req.PhoneNumber)
	ctx.JSON(bookingStatusCode(result), bookingResponse(result))
}

func (c *BookingController) rescheduleAppointment(ctx *gin.Context) {
	var req RescheduleAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := c.useCase.RescheduleAppointment(
		ctx.Request.Context(),
		req.Name,
		req.PhoneNumber,
		req.OldTimestamp.Date,
		req.NewTimestamp.Date,
	)
	ctx.JSON(bookingStatusCode(result), bookingResponse(result))
}

func (c *BookingController) getAppointments(ctx *gin.Context) {
	phoneNumber := ctx.Query("phoneNumber")
	if phoneNumber == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required"})
		return
	}

	result := c.useCase.GetCustomerAppointments(ctx.Request.Context(), phoneNumber)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	ctx.JSON(status, result)
}

func (c *BookingController) getAvailability(ctx *gin.Context) {
	duration := time.Duration(0)
	if raw := ctx.Query("duration"); raw != "" {
		parsed, err := time.ParseDuration(raw + "m")
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duration"})
			return
		}
		duration = parsed
	}

	// Явная дата, метка времени или поиск ближайшего свободного дня
	var result domain.AvailabilityResult
	switch {
	case ctx.Query("date") != "":
		date, err := utils.ParseTimestamp(ctx.Query("date"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		result = c.useCase.GetAvailability(ctx.Request.Context(), &date, duration)
	case ctx.Query("timestamp") != "":
		timestamp, err := utils.ParseTimestamp(ctx.Query("timestamp"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp format"})
			return
		}
		result = c.useCase.GetNextAvailability(ctx.Request.Context(), timestamp, duration)
	default:
		result = c.useCase.GetAvailability(ctx.Request.Context(), nil, duration)
	}

	ctx.JSON(http.StatusOK, result)
}

// bookingStatusCode отображает статус результата в HTTP-код,
// тело ответа при этом всегда несет полный результат
func bookingStatusCode(result domain.BookingResult) int {
	switch result.Status {
	case domain.BookingStatusSuccess:
		return http.StatusOK
	case domain.BookingStatusRejected:
		return http.StatusBadRequest
	case domain.BookingStatusConflict:
		return http.StatusConflict
	case domain.BookingStatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func bookingResponse(result domain.BookingResult) gin.H {
	response := gin.H{
		"success": result.Success(),
		"status":  result.Status,
		"message": result.Message,
	}
	if result.Availability != nil {
		response["availability"] = result.Availability
	}
	return response
}

func (c *BookingController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// Каждому запросу назначается корреляционный идентификатор
		ctx.Set("requestId", uuid.New().String())

		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		c.logger.Warn("http.auth.rejected", out.LogFields{
			"username": username,
		})
		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
