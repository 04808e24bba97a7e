package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarag/pubhouse/internal/auth"
	"github.com/mkarag/pubhouse/internal/db"
	"github.com/mkarag/pubhouse/internal/excel"
	"github.com/mkarag/pubhouse/internal/http/middleware"
	"github.com/mkarag/pubhouse/internal/pdf"
	"github.com/mkarag/pubhouse/internal/repository"
	"github.com/mkarag/pubhouse/internal/service"
)

func newTestRouter(t *testing.T, secret string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "api_test.db")
	database, err := db.Reset(path, "", zerolog.Nop())
	require.NoError(t, err)

	statements := []string{
		`INSERT INTO genres (id, age_range, description) VALUES (1, '14+', 'Books in the history genre')`,
		`INSERT INTO publications (isbn, title, price, stock, genre_id)
		 VALUES (1000000000001, 'The Archivist', 18.00, 60, 1)`,
		`INSERT INTO clients (tax_id, name, location) VALUES (200000001, 'Nikos Oikonomou', 'Volos')`,
		`INSERT INTO client_orders (client_tax_id, publication_isbn, quantity, order_date, delivery_date, payment)
		 VALUES (200000001, 1000000000001, 12, '2021-05-02', '2021-05-20', 216.00)`,
	}
	for _, statement := range statements {
		require.NoError(t, database.Exec(statement).Error)
	}

	stats := repository.NewStatsRepository(database)
	browse := service.NewBrowseService(stats, repository.NewSearchRepository(database))
	reports := service.NewReportService(stats, excel.NewGenerator(), pdf.NewGenerator())
	handler := NewHandler(browse, reports, zerolog.Nop())

	return NewRouter(handler, middleware.Auth(auth.NewParser(secret)), "development")
}

func request(router *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, "")

	recorder := request(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestListTables(t *testing.T) {
	router := newTestRouter(t, "")

	recorder := request(router, http.MethodGet, "/api/tables", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Tables []struct {
			Table string `json:"table"`
			Rows  int    `json:"rows"`
		} `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Tables, len(db.Tables()))
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("defaults to LIKE", func(t *testing.T) {
		recorder := request(router, http.MethodGet,
			"/api/search?table=publications&column=title&value=archivist", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var result struct {
			Rows []map[string]any `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
		require.Len(t, result.Rows, 1)
		assert.Equal(t, "The Archivist", result.Rows[0]["title"])
	})

	t.Run("rejects unknown table", func(t *testing.T) {
		recorder := request(router, http.MethodGet,
			"/api/search?table=users&column=name&value=x", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects unknown operator", func(t *testing.T) {
		recorder := request(router, http.MethodGet,
			"/api/search?table=publications&column=title&op=%3B&value=x", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestStatsEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	recorder := request(router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var stats struct {
		RevenueByYear []struct {
			Year  string  `json:"year"`
			Total float64 `json:"total"`
		} `json:"revenue_by_year"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &stats))
	require.Len(t, stats.RevenueByYear, 1)
	assert.Equal(t, "2021", stats.RevenueByYear[0].Year)
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("excel", func(t *testing.T) {
		recorder := request(router, http.MethodPost, "/api/stats/export", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), ".xlsx")
		assert.Equal(t, "PK", recorder.Body.String()[:2])
	})

	t.Run("pdf", func(t *testing.T) {
		recorder := request(router, http.MethodPost, "/api/stats/export/pdf", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), ".pdf")
		assert.Equal(t, "%PDF", recorder.Body.String()[:4])
	})
}

func TestAuth(t *testing.T) {
	const secret = "test-secret"
	router := newTestRouter(t, secret)

	t.Run("missing token", func(t *testing.T) {
		recorder := request(router, http.MethodGet, "/api/tables", nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		recorder := request(router, http.MethodGet, "/api/tables",
			map[string]string{"Authorization": "Bearer nonsense"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		recorder := request(router, http.MethodGet, "/api/tables",
			map[string]string{"Authorization": "Bearer " + signed})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("health stays open", func(t *testing.T) {
		recorder := request(router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
