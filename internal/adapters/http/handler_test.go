package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/luca-patrignani/range-equity/domain/equity"
)

func newServer() *echo.Echo {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	NewHandler(equity.NewEngine(), slog.Default()).Register(e)
	return e
}

func post(t *testing.T, e *echo.Echo, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/equity", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e := newServer()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(headerRequestID) == "" {
		t.Fatal("expected a request id header")
	}
}

func TestEquityHeadsUp(t *testing.T) {
	rec := post(t, newServer(), `{"hero":["Qh","Qd"],"board":["As 8d Qc"],"villain":["AhAd"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp EquityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Mode != equity.HeadsUpMode || resp.Totals.Losing != 1 || resp.Totals.Possible != 1 {
		t.Fatalf("unexpected totals %+v", resp.Totals)
	}
	if len(resp.Matrix) != 169 {
		t.Fatalf("expected 169 cells, got %d", len(resp.Matrix))
	}
	if resp.RequestID == "" {
		t.Fatal("expected request id in body")
	}
}

func TestEquityExcludedCellState(t *testing.T) {
	rec := post(t, newServer(), `{"hero":["As","Ad"],"board":["Ac","8d","3h"],"excluded":["K7o"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"K7o","row":7,"col":1,"state":"excluded"`) {
		t.Fatalf("K7o should be excluded: %s", rec.Body.String())
	}
}

func TestEquityInsufficientInformation(t *testing.T) {
	rec := post(t, newServer(), `{"hero":["As","Ah"],"board":[]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp EquityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != statusInsufficient || resp.Totals.Possible != 0 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestEquityBadInput(t *testing.T) {
	e := newServer()
	for _, body := range []string{
		`{"hero":["Xx","Ad"],"board":[]}`,
		`{"hero":["As","Ad","Kc"],"board":[]}`,
		`{"hero":["As","Ad"],"board":["2c 3c 4c 5c 6c 7c"]}`,
		`{"hero":["As","Ad"],"board":[],"excluded":["AK"]}`,
		`{"hero":`,
	} {
		if rec := post(t, e, body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, rec.Code)
		}
	}
}
