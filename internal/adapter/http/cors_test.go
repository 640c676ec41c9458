package httpadapter

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestCORSMiddleware_SetsHeaders(t *testing.T) {
	mw := corsMiddleware()
	ctx := &app.RequestContext{}
	ctx.Request.Header.SetMethod(consts.MethodGet)

	mw(context.Background(), ctx)

	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("allow-origin = %q", got)
	}
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")); got != corsAllowMethods {
		t.Fatalf("allow-methods = %q", got)
	}
}

func TestCORSMiddleware_PreflightShortCircuits(t *testing.T) {
	mw := corsMiddleware()
	ctx := &app.RequestContext{}
	ctx.Request.Header.SetMethod(consts.MethodOptions)

	mw(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusNoContent {
		t.Fatalf("status = %d, want 204", got)
	}
}
