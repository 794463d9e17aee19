package user

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agendadoc/clinic-api/internal/handler"
	"github.com/agendadoc/clinic-api/internal/model"
	"github.com/agendadoc/clinic-api/internal/repository"
	userService "github.com/agendadoc/clinic-api/internal/service/user"
)

type Handler struct {
	service    userService.UserServicer
	outboxRepo repository.OutboxRepository
}

func NewHandler(service userService.UserServicer, outboxRepo repository.OutboxRepository) *Handler {
	return &Handler{service: service, outboxRepo: outboxRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", h.DeleteUser)
		users.GET("/:id/clinics", h.ListClinics)
		users.POST("/:id/clinics", h.LinkClinic)
		users.DELETE("/:id/clinics/:clinicId", h.UnlinkClinic)
	}
}

func (h *Handler) CreateUser(c *gin.Context) {
	user, err := h.service.CreateUser(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "USER_CREATE", user)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(user))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(user))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "USER_DELETE", gin.H{"id": id})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(users))
}

func (h *Handler) ListClinics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	clinics, err := h.service.ListClinics(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(clinics))
}

func (h *Handler) LinkClinic(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	var req model.LinkClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	clinicID, err := uuid.Parse(req.ClinicID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	if err := h.service.LinkClinic(c.Request.Context(), userID, clinicID); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "USER_CLINIC_LINK", gin.H{"user_id": userID, "clinic_id": clinicID})
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(nil))
}

func (h *Handler) UnlinkClinic(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid user ID"))
		return
	}

	clinicID, err := uuid.Parse(c.Param("clinicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid clinic ID"))
		return
	}

	if err := h.service.UnlinkClinic(c.Request.Context(), userID, clinicID); err != nil {
		handler.RespondError(c, err)
		return
	}

	h.emitEvent(c, "USER_CLINIC_UNLINK", gin.H{"user_id": userID, "clinic_id": clinicID})
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
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
