package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecovererAnswers500(t *testing.T) {
	h := middlewareRecoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestInternalFrames(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\n" +
		"main.main()\n" +
		"\t/home/dev/server/internal/app/root.go:20 +0x1d\n" +
		"\t/usr/local/go/src/net/http/server.go:2136 +0x29\n")

	frames := internalFrames(stack)
	if len(frames) != 1 || frames[0] != "internal/app/root.go:20" {
		t.Fatalf("unexpected frames: %#v", frames)
	}
}
