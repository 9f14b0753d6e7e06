package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(target string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "/", 1, 10},
		{"explicit values", "/?page=3&size=25", 3, 25},
		{"zero page falls back", "/?page=0", 1, 10},
		{"negative size falls back", "/?size=-5", 1, 10},
		{"oversized page size capped to default", "/?size=500", 1, 10},
		{"non-numeric input falls back", "/?page=abc&size=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size := ParsePaginationParams(testContext(tt.query))
			if page != tt.wantPage || size != tt.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", page, size, tt.wantPage, tt.wantSize)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		info := NewPaginationInfo(21, 1, 10)
		if info.TotalPages != 3 {
			t.Errorf("TotalPages = %d, want 3", info.TotalPages)
		}
		if info.TotalItems != 21 {
			t.Errorf("TotalItems = %d, want 21", info.TotalItems)
		}
	})

	t.Run("empty result keeps one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		if info.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", info.TotalPages)
		}
	})

	t.Run("page beyond the end is clamped", func(t *testing.T) {
		info := NewPaginationInfo(15, 9, 10)
		if info.CurrentPage != 2 {
			t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
		}
	})
}

func TestOptionalQueries(t *testing.T) {
	c := testContext("/?programId=5&active=true&year=2025&search=khan")

	id, err := OptionalInt64Query(c, "programId")
	if err != nil || id == nil || *id != 5 {
		t.Errorf("OptionalInt64Query = %v, %v; want 5", id, err)
	}
	if v, err := OptionalInt64Query(c, "missing"); err != nil || v != nil {
		t.Errorf("missing param should be nil, got %v, %v", v, err)
	}
	if _, err := OptionalInt64Query(testContext("/?programId=abc"), "programId"); err == nil {
		t.Error("non-numeric value must error")
	}

	active, err := OptionalBoolQuery(c, "active")
	if err != nil || active == nil || !*active {
		t.Errorf("OptionalBoolQuery = %v, %v; want true", active, err)
	}

	year, err := OptionalIntQuery(c, "year")
	if err != nil || year == nil || *year != 2025 {
		t.Errorf("OptionalIntQuery = %v, %v; want 2025", year, err)
	}

	if s := OptionalStringQuery(c, "search"); s == nil || *s != "khan" {
		t.Errorf("OptionalStringQuery = %v, want khan", s)
	}
	if s := OptionalStringQuery(c, "missing"); s != nil {
		t.Errorf("missing string param should be nil, got %q", *s)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-10-15")
	if err != nil {
		t.Fatalf("ParseDate() error: %v", err)
	}
	want := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("15/10/2025"); err == nil {
		t.Error("wrong layout must error")
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 10, 15, 23, 45, 12, 999, time.FixedZone("PKT", 5*3600))
	got := Today(now)
	want := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Today = %v, want %v", got, want)
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("90m", time.Hour); d != 90*time.Minute {
		t.Errorf("ParseDuration = %v, want 90m", d)
	}
	if d := ParseDuration("bogus", time.Hour); d != time.Hour {
		t.Errorf("ParseDuration fallback = %v, want 1h", d)
	}
}
