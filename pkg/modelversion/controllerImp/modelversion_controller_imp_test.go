package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"raitha/entities"
	"raitha/pkg/modelversion/repositoryImp"
)

func newCtrl(t *testing.T) *ModelVersionCtrl {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.ModelVersion{}))
	return New(repositoryImp.New(db))
}

func TestRegisterAndList(t *testing.T) {
	h := newCtrl(t)
	e := echo.New()

	body := `{"name":"yield-model","version":"2.1.0","metrics":{"rmse":142.5,"r2":0.81},"notes":"retrained on season feedback"}`
	req := httptest.NewRequest(http.MethodPost, "/models", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entities.ModelVersion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0.81, created.Metrics["r2"])

	req = httptest.NewRequest(http.MethodGet, "/models", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []entities.ModelVersion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "yield-model", list[0].Name)
}

func TestRegisterRequiresNameAndVersion(t *testing.T) {
	h := newCtrl(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/models", strings.NewReader(`{"name":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRejectsBadTrainedAt(t *testing.T) {
	h := newCtrl(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/models", strings.NewReader(`{"name":"m","version":"1","trained_at":"yesterday"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
