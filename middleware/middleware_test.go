package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fazamuttaqien/statusreply/helper"
	appError "github.com/fazamuttaqien/statusreply/pkg/app-error"
	pkgJwt "github.com/fazamuttaqien/statusreply/pkg/jwt"
	"github.com/fazamuttaqien/statusreply/pkg/response"
	pkgValidator "github.com/fazamuttaqien/statusreply/pkg/validator"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Email string `json:"email" validate:"required,email"`
}

type params struct {
	ID string `json:"id" validate:"required,uuid"`
}

// echoDTO replies with the validated DTO under "result".
func echoDTO[T any](w http.ResponseWriter, r *http.Request) {
	dto, ok := pkgValidator.GetValidatedDTOFromContext[T](r.Context())
	if !ok {
		helper.Send(w, response.ErrorMessage("missing dto", http.StatusInternalServerError))
		return
	}
	helper.Send(w, response.Message(http.StatusOK).Add("result", dto))
}

func TestWithValidationBody(t *testing.T) {
	handler := WithValidation[payload](pkgValidator.SourceBody)(http.HandlerFunc(echoDTO[payload]))

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantBody string
	}{
		{
			name:     "valid",
			body:     `{"email":"a@b.co"}`,
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK","result":{"email":"a@b.co"}}`,
		},
		{
			name:     "malformed json",
			body:     `{"email":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Bad Request","error":"Invalid request body.","errorCode":"VALIDATION_ERROR"}`,
		},
		{
			name:     "failed rule",
			body:     `{"email":"nope"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"message":"Bad Request","error":"Validation failed","errorCode":"VALIDATION_ERROR",
				"errors":[{"field":"email","message":"Invalid email format"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithValidationEmptyBody(t *testing.T) {
	handler := WithValidation[payload](pkgValidator.SourceBody)(http.HandlerFunc(echoDTO[payload]))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithValidationQuery(t *testing.T) {
	handler := WithValidation[payload](pkgValidator.SourceQuery)(http.HandlerFunc(echoDTO[payload]))
	req := httptest.NewRequest(http.MethodGet, "/?email=a@b.co", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK","result":{"email":"a@b.co"}}`, rec.Body.String())
}

type page struct {
	Limit int    `json:"limit" validate:"gte=1,lte=100"`
	Sort  string `json:"sort,omitempty"`
}

func TestWithValidationQueryTypedFields(t *testing.T) {
	handler := WithValidation[page](pkgValidator.SourceQuery)(http.HandlerFunc(echoDTO[page]))

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantBody string
	}{
		{"int field", "/?limit=10", http.StatusOK, `{"message":"OK","result":{"limit":10}}`},
		{"extra keys ignored", "/?limit=5&sort=asc&debug=1", http.StatusOK, `{"message":"OK","result":{"limit":5,"sort":"asc"}}`},
		{"not an int", "/?limit=ten", http.StatusBadRequest,
			`{"message":"Bad Request","error":"Invalid request query.","errorCode":"VALIDATION_ERROR"}`},
		{"out of range", "/?limit=500", http.StatusBadRequest,
			`{"message":"Bad Request","error":"Validation failed","errorCode":"VALIDATION_ERROR",
				"errors":[{"field":"limit","message":"Value must be at most 100"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithValidationBodyLimits(t *testing.T) {
	handler := WithValidation[payload](pkgValidator.SourceBody)(http.HandlerFunc(echoDTO[payload]))

	oversized := `{"email":"a@b.co","pad":"` + strings.Repeat("x", maxBodyBytes) + `"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(oversized)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", decodeBodyMap(t, rec)["errorCode"])

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.co"} {"email":"c@d.co"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body.", decodeBodyMap(t, rec)["error"])
}

type statusParams struct {
	Code int `json:"code"`
}

func TestWithValidationParams(t *testing.T) {
	r := chi.NewRouter()
	r.With(WithValidation[statusParams](pkgValidator.SourceParams)).Get("/codes/{code}", echoDTO[statusParams])

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/codes/-12", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK","result":{"code":-12}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/codes/4.5", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWithValidationStacksParamsAndBody(t *testing.T) {
	r := chi.NewRouter()
	r.With(
		WithValidation[params](pkgValidator.SourceParams),
		WithValidation[payload](pkgValidator.SourceBody),
	).Post("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		p, okParams := pkgValidator.GetValidatedDTOFromContext[params](r.Context())
		b, okBody := pkgValidator.GetValidatedDTOFromContext[payload](r.Context())
		require.True(t, okParams)
		require.True(t, okBody)
		helper.Send(w, response.Message(http.StatusOK).Add("id", p.ID).Add("email", b.Email))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items/6f1c1a52-3a0e-4e4b-8f64-8d9f1b7f6f11", strings.NewReader(`{"email":"a@b.co"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK","id":"6f1c1a52-3a0e-4e4b-8f64-8d9f1b7f6f11","email":"a@b.co"}`, rec.Body.String())
}

func TestWithValidationUUIDParams(t *testing.T) {
	r := chi.NewRouter()
	r.With(WithValidation[params](pkgValidator.SourceParams)).Get("/items/{id}", echoDTO[params])

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/6f1c1a52-3a0e-4e4b-8f64-8d9f1b7f6f11", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"id"`)
}

func TestWithValidationUnknownSource(t *testing.T) {
	handler := WithValidation[payload]("cookie")(http.HandlerFunc(echoDTO[payload]))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func decodeBodyMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestTimeoutRepliesWithEnvelope(t *testing.T) {
	handler := Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.JSONEq(t, `{"message":"Gateway Timeout","error":"Request timed out.","errorCode":"REQUEST_TIMEOUT"}`, rec.Body.String())
}

func TestTimeoutKeepsHandlerReply(t *testing.T) {
	handler := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helper.Send(w, response.Message(http.StatusAccepted))
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"message":"Accepted"}`, rec.Body.String())
}

func protected() http.Handler {
	return AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := GetAdminEmailFromContext(r.Context())
		helper.Send(w, response.Message(http.StatusOK).Add("email", email))
	}))
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	valid, _, err := pkgJwt.SignJwtToken("admin@example.com")
	require.NoError(t, err)

	expiredClaims := &pkgJwt.AdminClaims{
		Email: "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "statusreply",
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantCode  int
		wantError string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header not found"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization header format"},
		{"garbage token", "Bearer abc", http.StatusUnauthorized, "Invalid token"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"valid", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError != "" {
				assert.Contains(t, rec.Body.String(), `"error":"`+tt.wantError+`"`)
				assert.Contains(t, rec.Body.String(), `"message":"Unauthorized"`)
			} else {
				assert.JSONEq(t, `{"message":"OK","email":"admin@example.com"}`, rec.Body.String())
			}
		})
	}
}

func TestErrorMiddlewareRecoversString(t *testing.T) {
	handler := ErrorMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("something broke")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{
		"message": "Internal Server Error",
		"error": "An unexpected internal error occurred.",
		"errorCode": "INTERNAL_SERVER_ERROR"
	}`, rec.Body.String())
}

func TestErrorMiddlewareRecoversAppError(t *testing.T) {
	handler := ErrorMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(appError.NewNotFoundError("message", nil))
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Resource 'message' not found."`)
}
