package clinic

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendadoc/clinic-api/internal/handler"
	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	clinicService "github.com/agendadoc/clinic-api/internal/service/clinic"
)

type Handler struct {
	service    clinicService.ClinicServicer
	outboxRepo repository.OutboxRepository
}

func NewHandler(service clinicService.ClinicServicer, outboxRepo repository.OutboxRepository) *Handler {
	return &Handler{service: service, outboxRepo: outboxRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	clinics := r.Group("/clinics")
	{
		clinics.POST("", h.CreateClinic)
		clinics.GET("", h.ListClinics)
		clinics.GET("/:id", h.GetClinic)
		clinics.PUT("/:id", h.UpdateClinic)
		clinics.DELETE("/:id", h.DeleteClinic)
		clinics.GET("/:id/users", h.ListUsers)
	}
}

func (h *Handler) CreateClinic(c *gin.Context) {
	var req model.CreateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	clinic := &model.Clinic{Name: req.Name}
	if err := h.service.CreateClinic(c.Request.Context(), clinic); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "CLINIC_CREATE", clinic)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(clinic))
}

func (h *Handler) GetClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	clinic, err := h.service.GetClinic(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinic))
}

func (h *Handler) UpdateClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	var req model.UpdateClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	clinic, err := h.service.UpdateClinic(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "CLINIC_UPDATE", clinic)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinic))
}

func (h *Handler) DeleteClinic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	if err := h.service.DeleteClinic(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "CLINIC_DELETE", gin.H{"id": id})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListClinics(c *gin.Context) {
	clinics, err := h.service.ListClinics(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinics))
}

func (h *Handler) ListUsers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	users, err := h.service.ListUsers(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
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
