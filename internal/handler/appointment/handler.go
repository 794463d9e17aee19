package appointment

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendadoc/clinic-api/internal/handler"
	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	appointmentService "github.com/agendadoc/clinic-api/internal/service/appointment"
)

type Handler struct {
	service    appointmentService.AppointmentServicer
	outboxRepo repository.OutboxRepository
}

func NewHandler(service appointmentService.AppointmentServicer, outboxRepo repository.OutboxRepository) *Handler {
	return &Handler{service: service, outboxRepo: outboxRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	clinicID, err := uuid.Parse(req.ClinicID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	appointment := &model.Appointment{
		Date:      req.Date,
		ClinicID:  clinicID,
		PatientID: patientID,
		DoctorID:  doctorID,
	}

	if err := h.service.CreateAppointment(c.Request.Context(), appointment); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "APPOINTMENT_CREATE", appointment)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appointment))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	appointment, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appointment, err := h.service.UpdateAppointment(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "APPOINTMENT_UPDATE", appointment)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointment))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "APPOINTMENT_DELETE", gin.H{"id": id})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Query("clinic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("clinic_id is required"))
		return
	}

	filters := &model.AppointmentFilters{}
	if v := c.Query("doctor_id"); v != "" {
		if filters.DoctorID, err = uuid.Parse(v); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
			return
		}
	}
	if v := c.Query("patient_id"); v != "" {
		if filters.PatientID, err = uuid.Parse(v); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
			return
		}
	}
	if v := c.Query("start_date"); v != "" {
		if filters.StartDate, err = time.Parse(time.RFC3339, v); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid start_date"))
			return
		}
	}
	if v := c.Query("end_date"); v != "" {
		if filters.EndDate, err = time.Parse(time.RFC3339, v); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid end_date"))
			return
		}
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), clinicID, filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) emitEvent(c *gin.Context, eventType string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to marshal event payload")
		return
	}
	if err := h.outboxRepo.Create(c.Request.Context(), &model.OutboxEvent{
		EventType: eventType,
		Payload:   body,
	}); err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to create outbox event")
	}
}
