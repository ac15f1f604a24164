package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"library-loans/internal/item"
	"library-loans/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockUseCase struct {
	createIn item.CreateInput
	updateIn item.UpdateInput
	item     model.Item
	err      error
	calls    int
}

func (m *mockUseCase) Create(ctx context.Context, in item.CreateInput) (item.CreateOutput, error) {
	m.calls++
	m.createIn = in
	return item.CreateOutput{Item: m.item}, m.err
}

func (m *mockUseCase) List(ctx context.Context, in item.ListInput) (item.ListOutput, error) {
	m.calls++
	return item.ListOutput{Items: []model.Item{m.item}}, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, id int64) (item.DetailOutput, error) {
	m.calls++
	return item.DetailOutput{Item: m.item}, m.err
}

func (m *mockUseCase) Update(ctx context.Context, in item.UpdateInput) (item.UpdateOutput, error) {
	m.calls++
	m.updateIn = in
	return item.UpdateOutput{Item: m.item}, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, id int64) error {
	m.calls++
	return m.err
}

func serve(uc item.UseCase, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

var dune = model.Item{ID: 10, Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", AvailableCount: 5}

func TestDetail(t *testing.T) {
	rec := serve(&mockUseCase{item: dune}, http.MethodGet, "/api/v1/items/10", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := `"data":{"item":{"id":10,"title":"Dune","author":"Frank Herbert","isbn":"9780441013593","available_count":5}}`
	if !strings.Contains(rec.Body.String(), want) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}

	rec = serve(&mockUseCase{err: item.ErrItemNotFound}, http.MethodGet, "/api/v1/items/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("count only", func(t *testing.T) {
		uc := &mockUseCase{item: dune}
		rec := serve(uc, http.MethodPut, "/api/v1/items/10", `{"available_count":0}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		in := uc.updateIn
		if in.ID != 10 || in.AvailableCount == nil || *in.AvailableCount != 0 {
			t.Errorf("unexpected input: %+v", in)
		}
		if in.Title != nil || in.Author != nil || in.ISBN != nil {
			t.Errorf("omitted fields must stay nil: %+v", in)
		}
	})

	t.Run("negative count", func(t *testing.T) {
		uc := &mockUseCase{}
		rec := serve(uc, http.MethodPut, "/api/v1/items/10", `{"available_count":-1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if uc.calls != 0 {
			t.Error("use case must not run")
		}
	})

	t.Run("missing item", func(t *testing.T) {
		rec := serve(&mockUseCase{err: item.ErrItemNotFound}, http.MethodPut, "/api/v1/items/10", `{"available_count":3}`)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{item: dune}
		rec := serve(uc, http.MethodPost, "/api/v1/items", `{"title":"Dune","author":"Frank Herbert","isbn":"9780441013593","available_count":5}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if uc.createIn.ISBN != "9780441013593" {
			t.Errorf("unexpected input: %+v", uc.createIn)
		}
	})

	t.Run("invalid isbn", func(t *testing.T) {
		rec := serve(&mockUseCase{}, http.MethodPost, "/api/v1/items", `{"title":"Dune","author":"Frank Herbert","isbn":"12-34"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"isbn"`) {
			t.Errorf("expected isbn field error: %s", rec.Body.String())
		}
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		rec := serve(&mockUseCase{err: item.ErrDuplicateISBN}, http.MethodPost, "/api/v1/items", `{"title":"Dune","author":"Frank Herbert","isbn":"9780441013593"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}
