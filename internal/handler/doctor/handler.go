package doctor

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendadoc/clinic-api/internal/handler"
	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	doctorService "github.com/agendadoc/clinic-api/internal/service/doctor"
)

type Handler struct {
	service    doctorService.DoctorServicer
	outboxRepo repository.OutboxRepository
}

func NewHandler(service doctorService.DoctorServicer, outboxRepo repository.OutboxRepository) *Handler {
	return &Handler{service: service, outboxRepo: outboxRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", h.CreateDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.PUT("/:id", h.UpdateDoctor)
		doctors.DELETE("/:id", h.DeleteDoctor)
	}
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	clinicID, err := uuid.Parse(req.ClinicID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	doctor := &model.Doctor{
		ClinicID:                clinicID,
		Name:                    req.Name,
		AvatarImageURL:          req.AvatarImageURL,
		AvailableFromWeekDay:    req.AvailableFromWeekDay,
		AvailableToWeekDay:      req.AvailableToWeekDay,
		AvailableFromTime:       req.AvailableFromTime,
		AvailableToTime:         req.AvailableToTime,
		Specialty:               req.Specialty,
		AppointmentPriceInCents: req.AppointmentPriceInCents,
	}

	if err := h.service.CreateDoctor(c.Request.Context(), doctor); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "DOCTOR_CREATE", doctor)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(doctor))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	var req model.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor, err := h.service.UpdateDoctor(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "DOCTOR_UPDATE", doctor)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	if err := h.service.DeleteDoctor(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "DOCTOR_DELETE", gin.H{"id": id})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListDoctors(c *gin.Context) {
	clinicID, err := uuid.Parse(c.Query("clinic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("clinic_id is required"))
		return
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), clinicID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
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
