package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/groupdrive-backend/pkg/errors"
)

type sampleBody struct {
	Email      string `json:"email" validate:"required,email"`
	MaxMembers int    `json:"max_members" validate:"required,min=1"`
}

func TestDecodeJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","max_members":5}`))
	var body sampleBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, 5, body.MaxMembers)
}

func TestDecodeJSONBodyValidationDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope","max_members":0}`))
	var body sampleBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "is required", details["max_members"])
}

func TestDecodeJSONBodyRejectsUnknownFieldsAndEmpty(t *testing.T) {
	var body sampleBody
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co","max_members":1,"extra":true}`))
	assert.True(t, pkgerrors.IsCode(DecodeJSONBody(req, &body), pkgerrors.CodeValidation))

	empty := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	err := DecodeJSONBody(empty, &body)
	require.Error(t, err)
	assert.Equal(t, "request body required", pkgerrors.As(err).Message())
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=10&bad=x&big=500", nil)

	v, err := ParseQueryInt(req, "limit", 20, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = ParseQueryInt(req, "missing", 20, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	_, err = ParseQueryInt(req, "bad", 20, 1, 100)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = ParseQueryInt(req, "big", 20, 1, 100)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestParseQueryInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?price=1000001&zero=0&neg=-5", nil)

	v, err := ParseQueryInt64(req, "price")
	require.NoError(t, err)
	assert.Equal(t, int64(1000001), v)

	for _, key := range []string{"zero", "neg", "missing"} {
		_, err := ParseQueryInt64(req, key)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), key)
	}
}

func TestURLParamUUID(t *testing.T) {
	id := uuid.New()
	withParam := func(value string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rc := chi.NewRouteContext()
		rc.URLParams.Add("groupId", value)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
	}

	got, err := URLParamUUID(withParam(id.String()), "groupId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = URLParamUUID(withParam("not-a-uuid"), "groupId")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = URLParamUUID(withParam(""), "groupId")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Nexon", SanitizeString("  Nexon  ", 0))
	assert.Equal(t, "Hyu", SanitizeString("Hyundai", 3))
	assert.Equal(t, "Mah", SanitizeString("Mahé", 4))
}
