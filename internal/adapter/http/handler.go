package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"emberwild/internal/app/activity"
	"emberwild/internal/app/catalog"
	"emberwild/internal/app/ports"
	"emberwild/internal/app/progress"
	"emberwild/internal/app/replay"
	"emberwild/internal/app/tick"
	"emberwild/internal/domain/discovery"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ActivityUC activity.UseCase
	TickUC     tick.UseCase
	ProgressUC progress.UseCase
	CatalogUC  catalog.UseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	simGroup := s.Group("/api/sim")
	simGroup.POST("/activity", h.activity)
	simGroup.POST("/tick", h.tick)
	simGroup.POST("/day", h.day)
	simGroup.POST("/reset", h.reset)

	s.POST("/api/catalog/reload", h.reloadCatalog)

	disc := s.Group("/api/discovery")
	disc.GET("/progress", h.listProgress)
	disc.GET("/progress/:id", h.getProgress)
	disc.GET("/completed", h.completed)
	disc.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type activityRequest struct {
	ActivityTag string             `json:"activity_tag"`
	AgentID     string             `json:"agent_id,omitempty"`
	Position    discovery.Position `json:"position"`
}

type tickRequest struct {
	DeltaSeconds float64 `json:"delta_seconds"`
}

type dayRequest struct {
	Day int `json:"day"`
}

func (h Handler) activity(c context.Context, ctx *app.RequestContext) {
	var body activityRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActivityUC.Execute(c, activity.Request{
		ActivityTag: body.ActivityTag,
		AgentID:     body.AgentID,
		Position:    body.Position,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	var body tickRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.TickUC.Execute(c, tick.Request{DeltaSeconds: body.DeltaSeconds})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) day(c context.Context, ctx *app.RequestContext) {
	var body dayRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.TickUC.AdvanceDay(c, tick.DayRequest{Day: body.Day}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]int{"day": body.Day})
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	if err := h.CatalogUC.Reset(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "reset"})
}

func (h Handler) reloadCatalog(c context.Context, ctx *app.RequestContext) {
	added, err := h.CatalogUC.Reload(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]int{"registered": added})
}

func (h Handler) listProgress(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ProgressUC.List(c))
}

func (h Handler) getProgress(c context.Context, ctx *app.RequestContext) {
	id := strings.TrimSpace(ctx.Param("id"))
	resp, err := h.ProgressUC.Get(c, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) completed(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ProgressUC.Summary(c))
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		Limit:      limit,
		Kind:       discovery.NotificationKind(ctx.Query("kind")),
		TemplateID: string(ctx.Query("template_id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, activity.ErrInvalidRequest),
		errors.Is(err, tick.ErrInvalidRequest),
		errors.Is(err, progress.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, catalog.ErrEmptyCatalog):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "empty_catalog", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]string{
		"error":   code,
		"message": message,
	})
}
