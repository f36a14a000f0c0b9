package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suchimauz/calendar-booking-service/internal/config"
	"github.com/suchimauz/calendar-booking-service/internal/core/domain"
	"github.com/suchimauz/calendar-booking-service/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

// fakeUseCase отдает заранее заданные результаты и пишет входные аргументы
type fakeUseCase struct {
	bookingResult      domain.BookingResult
	availabilityResult domain.AvailabilityResult
	appointmentsResult domain.AppointmentsResult

	lastRequest     domain.AppointmentRequest
	lastDate        *time.Time
	lastTimestamp   time.Time
	lastDuration    time.Duration
	lastPhoneNumber string
}

func (f *fakeUseCase) BookAppointment(_ context.Context, request domain.AppointmentRequest) domain.BookingResult {
	f.lastRequest = request
	return f.bookingResult
}

func (f *fakeUseCase) CancelAppointment(_ context.Context, startTime time.Time, phoneNumber string) domain.BookingResult {
	f.lastTimestamp = startTime
	f.lastPhoneNumber = phoneNumber
	return f.bookingResult
}

func (f *fakeUseCase) RescheduleAppointment(_ context.Context, name, phoneNumber string, oldStartTime, newStartTime time.Time) domain.BookingResult {
	f.lastPhoneNumber = phoneNumber
	f.lastTimestamp = newStartTime
	return f.bookingResult
}

func (f *fakeUseCase) GetAvailability(_ context.Context, date *time.Time, duration time.Duration) domain.AvailabilityResult {
	f.lastDate = date
	f.lastDuration = duration
	return f.availabilityResult
}

func (f *fakeUseCase) GetNextAvailability(_ context.Context, timestamp time.Time, duration time.Duration) domain.AvailabilityResult {
	f.lastTimestamp = timestamp
	f.lastDuration = duration
	return f.availabilityResult
}

func (f *fakeUseCase) GetCustomerAppointments(_ context.Context, phoneNumber string) domain.AppointmentsResult {
	f.lastPhoneNumber = phoneNumber
	return f.appointmentsResult
}

func newTestRouter(useCase *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.BasicClients = []config.ConfigBasicClient{
		{Username: "booking_service", Password: "booking_service"},
	}

	router := gin.New()
	NewBookingController(useCase, cfg, nopLogger{}).RegisterRoutes(router)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.SetBasicAuth("booking_service", "booking_service")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestBookAppointment_Unauthorized(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader("{}"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBookAppointment_WrongCredentials(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader("{}"))
	req.SetBasicAuth("intruder", "intruder")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestBookAppointment_OK(t *testing.T) {
	useCase := &fakeUseCase{
		bookingResult: domain.BookingResult{
			Status:  domain.BookingStatusSuccess,
			Message: "Appointment booked successfully",
		},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodPost, "/api/v1/appointments", `{
		"name": "John Smith",
		"phoneNumber": "+15550100",
		"timestamp": "2025-03-11T10:00:00",
		"duration": 60
	}`)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "success", response["status"])
	assert.Equal(t, "Appointment booked successfully", response["message"])
	assert.NotContains(t, response, "availability")

	assert.Equal(t, "John Smith", useCase.lastRequest.Name)
	assert.Equal(t, "+15550100", useCase.lastRequest.PhoneNumber)
	assert.Equal(t, 60*time.Minute, useCase.lastRequest.Duration)
	assert.Equal(t, 10, useCase.lastRequest.StartTime.Hour())
}

func TestBookAppointment_ConflictWithAlternatives(t *testing.T) {
	useCase := &fakeUseCase{
		bookingResult: domain.BookingResult{
			Status:  domain.BookingStatusConflict,
			Message: "Time slot is already booked",
			Availability: &domain.AvailabilityResult{
				Found:   true,
				Message: "Available Tuesday, March 11: 10AM",
			},
		},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodPost, "/api/v1/appointments", `{
		"name": "John Smith",
		"phoneNumber": "+15550100",
		"timestamp": "2025-03-11T10:00:00"
	}`)

	require.Equal(t, http.StatusConflict, recorder.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response, "availability")
}

func TestBookAppointment_InvalidPayload(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	recorder := doRequest(router, http.MethodPost, "/api/v1/appointments", `{
		"phoneNumber": "+15550100"
	}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	useCase := &fakeUseCase{
		bookingResult: domain.BookingResult{
			Status:  domain.BookingStatusNotFound,
			Message: "No matching appointment found",
		},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodPost, "/api/v1/appointments/cancel", `{
		"phoneNumber": "+15550100",
		"timestamp": "2025-03-11T10:00:00"
	}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "+15550100", useCase.lastPhoneNumber)
}

func TestRescheduleAppointment_Failed(t *testing.T) {
	useCase := &fakeUseCase{
		bookingResult: domain.BookingResult{
			Status:  domain.BookingStatusFailed,
			Message: "Failed to cancel old appointment: No matching appointment found",
		},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodPost, "/api/v1/appointments/reschedule", `{
		"name": "John Smith",
		"phoneNumber": "+15550100",
		"oldTimestamp": "2025-03-11T10:00:00",
		"newTimestamp": "2025-03-12T11:00:00"
	}`)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestGetAppointments(t *testing.T) {
	useCase := &fakeUseCase{
		appointmentsResult: domain.AppointmentsResult{
			Success:      true,
			Message:      "Appointments retrieved successfully",
			Appointments: []domain.Appointment{},
		},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodGet, "/api/v1/appointments?phoneNumber=%2B15550100", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "+15550100", useCase.lastPhoneNumber)
}

func TestGetAppointments_MissingPhone(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	recorder := doRequest(router, http.MethodGet, "/api/v1/appointments", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetAvailability_WithDate(t *testing.T) {
	useCase := &fakeUseCase{
		availabilityResult: domain.AvailabilityResult{Found: true},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodGet, "/api/v1/availability?date=2025-03-11&duration=60", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, useCase.lastDate)
	assert.Equal(t, 11, useCase.lastDate.Day())
	assert.Equal(t, time.Hour, useCase.lastDuration)
}

func TestGetAvailability_WithTimestamp(t *testing.T) {
	useCase := &fakeUseCase{
		availabilityResult: domain.AvailabilityResult{Found: true},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodGet, "/api/v1/availability?timestamp=2025-03-11T15:00:00", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 15, useCase.lastTimestamp.Hour())
}

func TestGetAvailability_NoParamsScans(t *testing.T) {
	useCase := &fakeUseCase{
		availabilityResult: domain.AvailabilityResult{Found: true},
	}
	router := newTestRouter(useCase)

	recorder := doRequest(router, http.MethodGet, "/api/v1/availability", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, useCase.lastDate)
}

func TestGetAvailability_InvalidDuration(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	recorder := doRequest(router, http.MethodGet, "/api/v1/availability?duration=soon", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	recorder := doRequest(router, http.MethodGet, "/api/v1/availability?date=next-tuesday", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
