package shortener

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssola/user_agent"
	"github.com/shortspace/core/internal/middleware"
	"github.com/shortspace/core/internal/models"
	"github.com/shortspace/core/internal/pkg/pagination"
	"github.com/shortspace/core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	recorder *Recorder
	baseURL  string
}

func NewHandler(svc *Service, recorder *Recorder, baseURL string) *Handler {
	return &Handler{svc: svc, recorder: recorder, baseURL: baseURL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/url")
	g.GET("/:shortCode", h.redirect)

	a := g.Group("", authMW)
	a.POST("/shorten", h.shorten)
	a.GET("/mine", h.listOwn)
}

// POST /url/shorten
func (h *Handler) shorten(c *gin.Context) {
	var dto ShortenDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Shorten(c.Request.Context(), middleware.CurrentUserID(c), dto)
	if err != nil {
		switch {
		case errors.Is(err, errInvalidURL), errors.Is(err, errInvalidTopic):
			response.BadRequest(c, err.Error())
		case errors.Is(err, errAliasTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Created(c, ShortenResult{
		ShortURL:  h.baseURL + "/api/url/" + u.ShortCode,
		ShortCode: u.ShortCode,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// GET /url/mine
func (h *Handler) listOwn(c *gin.Context) {
	q := pagination.FromContext(c)
	items, pag, err := h.svc.ListOwn(c.Request.Context(), middleware.CurrentUserID(c), q)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

// GET /url/:shortCode
func (h *Handler) redirect(c *gin.Context) {
	u, err := h.svc.Redirect(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		if errors.Is(err, errURLNotFound) {
			response.NotFoundMsg(c, "URL not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.recorder.Record(visitFromRequest(c, u.ID))

	response.OK(c, RedirectResult{LongURL: u.LongURL})
}

// visitFromRequest builds the visit event from request metadata.
func visitFromRequest(c *gin.Context, urlID string) models.VisitModel {
	ua := user_agent.New(c.GetHeader("User-Agent"))
	browser, version := ua.Browser()

	device := "Desktop"
	switch {
	case ua.Bot():
		device = "Bot"
	case ua.Mobile():
		device = "Mobile"
	}

	return models.VisitModel{
		URLID:          urlID,
		Timestamp:      time.Now().UTC(),
		IPAddress:      c.ClientIP(),
		OS:             ua.OSInfo().Name,
		Device:         device,
		Browser:        browser,
		BrowserVersion: version,
		DeviceModel:    ua.Model(),
		Referrer:       c.GetHeader("Referer"),
	}
}
