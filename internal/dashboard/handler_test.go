package dashboard

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sipsa-dashboard/internal/analysis"
	"sipsa-dashboard/internal/dataset"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestParseFilter_Full(t *testing.T) {
	c := testContext(t, "/api/dashboard?start=2024-01-01&end=2024-02-01&product=MANGO&markets=BOGOTA,CALI&markets=MEDELLIN")

	f, err := parseFilter(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", f.From)
	}
	if !f.To.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %v", f.To)
	}
	if f.Product != "MANGO" {
		t.Errorf("unexpected product: %q", f.Product)
	}
	if !reflect.DeepEqual(f.Markets, []string{"BOGOTA", "CALI", "MEDELLIN"}) {
		t.Errorf("unexpected markets: %v", f.Markets)
	}
}

func TestParseFilter_OpenBounds(t *testing.T) {
	c := testContext(t, "/api/dashboard")

	f, err := parseFilter(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		t.Error("expected open date bounds when start/end are missing")
	}
}

func TestParseFilter_BadDate(t *testing.T) {
	c := testContext(t, "/api/dashboard?start=2024/01/01")

	if _, err := parseFilter(c); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestParseFilter_EndBeforeStart(t *testing.T) {
	c := testContext(t, "/api/dashboard?start=2024-02-01&end=2024-01-01")

	if _, err := parseFilter(c); err == nil {
		t.Fatal("expected error when end precedes start")
	}
}

func TestService_ViewAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sipsa_master.csv")
	csv := "fecha,grupo,producto,codigo_cpc_ac,mercado,precio_promedio_por_kilogramo\n" +
		"2024-01-01,FRUTAS,MANGO,01319,BOGOTA,2000\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	service := NewService(dataset.NewCache(path), 5)

	view, err := service.View(analysis.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.HasData || len(view.Rows) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}

	count, err := service.Reload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 observation, got %d", count)
	}
}

func TestService_MissingDataset(t *testing.T) {
	service := NewService(dataset.NewCache(filepath.Join(t.TempDir(), "missing.csv")), 5)

	if _, err := service.View(analysis.Filter{}); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}
