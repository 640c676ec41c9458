package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	memrepo "emberwild/internal/adapter/repo/memory"
	"emberwild/internal/app/activity"
	"emberwild/internal/app/catalog"
	"emberwild/internal/app/ports"
	"emberwild/internal/app/progress"
	"emberwild/internal/app/replay"
	"emberwild/internal/app/sim"
	"emberwild/internal/app/tick"
	"emberwild/internal/domain/discovery"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
)

func newTestHandler(t *testing.T) (Handler, *sim.Coordinator) {
	t.Helper()
	ctx := context.Background()
	store := memrepo.NewStore()
	c := sim.New(sim.Config{
		Seed:           1,
		ProgressRepo:   memrepo.NewProgressRepo(store),
		CompletionRepo: memrepo.NewCompletionRepo(store),
		NotifRepo:      memrepo.NewNotificationRepo(store),
		Tx:             memrepo.NewTxManager(store),
	})
	templates := []discovery.Template{{
		ID:                   "controlled_flame",
		Description:          "Controlled Flame",
		Tier:                 discovery.TierBasic,
		ObservationThreshold: 2,
		RequiredActivity:     "tend_fire",
		UnlockCapabilities:   []string{"fire_keeping"},
	}}
	if _, err := c.RegisterTemplates(ctx, templates); err != nil {
		t.Fatalf("RegisterTemplates: %v", err)
	}
	if _, err := c.AdvanceTick(ctx, 1); err != nil {
		t.Fatalf("AdvanceTick: %v", err)
	}
	h := Handler{
		ActivityUC: activity.UseCase{Sim: c},
		TickUC:     tick.UseCase{Sim: c},
		ProgressUC: progress.UseCase{Sim: c},
		ReplayUC:   replay.UseCase{Notifications: memrepo.NewNotificationRepo(store)},
	}
	return h, c
}

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{activity.ErrInvalidRequest, consts.StatusBadRequest},
		{tick.ErrInvalidRequest, consts.StatusBadRequest},
		{progress.ErrInvalidRequest, consts.StatusBadRequest},
		{catalog.ErrEmptyCatalog, consts.StatusUnprocessableEntity},
		{ports.ErrNotFound, consts.StatusNotFound},
		{ports.ErrConflict, consts.StatusConflict},
		{errors.New("boom"), consts.StatusInternalServerError},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if got := ctx.Response.StatusCode(); got != tc.want {
			t.Fatalf("writeError(%v) status = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestActivityEndpoint_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"activity_tag":`))

	h.activity(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestActivityEndpoint_EmptyTagRejected(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"activity_tag":""}`))

	h.activity(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestActivityEndpoint_ReturnsNotifications(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"activity_tag":"tend_fire","position":{"x":1,"y":2}}`))

	h.activity(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, body = %s", got, ctx.Response.Body())
	}
	var resp struct {
		Notifications []struct {
			Kind string `json:"kind"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Notifications) != 1 {
		t.Fatalf("notifications = %s", ctx.Response.Body())
	}
}

func TestTickEndpoint_RejectsZeroDelta(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"delta_seconds":0}`))

	h.tick(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestGetProgressEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "controlled_flame"}}
	h.getProgress(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, body = %s", got, ctx.Response.Body())
	}

	ctx = &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "warp_drive"}}
	h.getProgress(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}

func TestReplayEndpoint_ParsesQuery(t *testing.T) {
	h, c := newTestHandler(t)
	fireCtx := context.Background()
	// Two observation events so the log has something to page.
	c.RecordActivity(fireCtx, discovery.Activity{Tag: "tend_fire"})
	c.RecordActivity(fireCtx, discovery.Activity{Tag: "tend_fire"})

	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/discovery/replay?limit=1&kind=phase_activated")
	h.replay(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("status = %d, body = %s", got, ctx.Response.Body())
	}
	var resp struct {
		Records []struct {
			Kind       string `json:"kind"`
			TemplateID string `json:"template_id"`
		} `json:"records"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Records) != 1 || resp.Records[0].Kind != "phase_activated" {
		t.Fatalf("records = %s", ctx.Response.Body())
	}
}

func TestKPIEndpoint_NotConfigured(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}
	h.kpi(context.Background(), ctx)
	if got := ctx.Response.StatusCode(); got != consts.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}
