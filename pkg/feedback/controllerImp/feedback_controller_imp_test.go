package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func doSubmit(t *testing.T, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/predictions/"+id+"/feedback", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	h := NewFeedbackCtrl(nil) // invalid payloads never reach the service
	assert.NoError(t, h.Submit(c))
	return rec
}

func TestSubmitRejectsRatingOutOfRange(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, doSubmit(t, "p1", `{"rating":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, doSubmit(t, "p1", `{"rating":6}`).Code)
	assert.Equal(t, http.StatusBadRequest, doSubmit(t, "p1", `{}`).Code)
}

func TestSubmitRejectsMissingID(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, doSubmit(t, "", `{"rating":4}`).Code)
}
