package analytics

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shortspace/core/internal/middleware"
	"github.com/shortspace/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/analytics", authMW)
	g.GET("/overall", h.overall)
	g.GET("/topic/:topic", h.topic)
	g.GET("/:alias", h.url)
}

// GET /analytics/:alias
func (h *Handler) url(c *gin.Context) {
	report, err := h.svc.URLAnalytics(c.Request.Context(), c.Param("alias"))
	if err != nil {
		if errors.Is(err, errURLNotFound) {
			response.NotFoundMsg(c, "URL not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, report)
}

// GET /analytics/topic/:topic
func (h *Handler) topic(c *gin.Context) {
	report, err := h.svc.TopicAnalytics(c.Request.Context(), c.Param("topic"))
	if err != nil {
		if errors.Is(err, errInvalidTopic) {
			response.BadRequest(c, "invalid topic")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, report)
}

// GET /analytics/overall
func (h *Handler) overall(c *gin.Context) {
	report, err := h.svc.AccountAnalytics(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, report)
}
