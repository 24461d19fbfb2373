package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeAgent struct {
	answer string
	err    error
}

func (f *fakeAgent) Chat(ctx context.Context, question string) (string, error) {
	return f.answer, f.err
}

func newChatRouter(agent *fakeAgent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", NewChatHandler(agent).Chat)
	return r
}

func TestChat_ReturnsPlainTextAnswer(t *testing.T) {
	r := newChatRouter(&fakeAgent{answer: "Your last post got 20 engagement."})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question": "how did my last post do?"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Your last post got 20 engagement." {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestChat_AgentErrorSurfacesAs500(t *testing.T) {
	r := newChatRouter(&fakeAgent{err: errors.New("model endpoint unreachable")})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "model endpoint unreachable") {
		t.Errorf("expected error text in body, got %q", w.Body.String())
	}
}

func TestChat_MalformedBodyIs400(t *testing.T) {
	r := newChatRouter(&fakeAgent{answer: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"question": }`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestChat_MissingQuestionIs400(t *testing.T) {
	r := newChatRouter(&fakeAgent{answer: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing question, got %d", w.Code)
	}
}
