package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recruitment-portal/config"
	"recruitment-portal/internal/delivery/http/response"
	v1 "recruitment-portal/internal/delivery/http/v1"
	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

const (
	applicantToken = "applicant-token"
	recruiterToken = "recruiter-token"
)

type harness struct {
	router  *gin.Engine
	auth    *MockAuthUC
	apps    *MockApplicationUC
	profile *MockProfileUC
	reset   *MockResetUC
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &harness{
		auth:    new(MockAuthUC),
		apps:    new(MockApplicationUC),
		profile: new(MockProfileUC),
		reset:   new(MockResetUC),
	}
	sessions := &fakeSessions{users: map[string]*domain.UserData{
		applicantToken: {ID: 2, Username: "jdoe", RoleID: domain.RoleIDApplicant, Role: domain.RoleApplicant},
		recruiterToken: {ID: 1, Username: "boss", RoleID: domain.RoleIDRecruiter, Role: domain.RoleRecruiter},
	}}
	h.router = v1.NewRouter(v1.RouterDeps{
		AuthUC:        h.auth,
		SessionUC:     sessions,
		ProfileUC:     h.profile,
		ApplicationUC: h.apps,
		ResetUC:       h.reset,
		HealthUC:      fakeHealth{healthy: true},
		Config: &config.Config{
			GinMode:                "test",
			FrontendURL:            "http://localhost:3000",
			RateLimitWindowSeconds: 60,
		},
	})
	return h
}

func (h *harness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == domain.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	h := newHarness(t)
	creds := domain.Credentials{Username: "jdoe", Password: "Secret123"}
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	h.auth.On("AuthenticateUser", mock.Anything, creds).Return(&domain.AuthResult{
		UserData:    domain.UserData{ID: 2, Username: "jdoe", RoleID: domain.RoleIDApplicant, Role: domain.RoleApplicant},
		SessionData: domain.SessionData{ID: 1, PersonID: 2, Token: "raw-token", ExpiresAt: expires},
	}, nil)

	w := h.do(http.MethodPost, "/v1/auth/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "raw-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.True(t, expires.Equal(cookie.Expires), "cookie expires %v", cookie.Expires)

	res := decode(t, w)
	assert.True(t, res.Success)
	assert.NotContains(t, w.Body.String(), "raw-token")
}

func TestLogin_Failures(t *testing.T) {
	h := newHarness(t)
	h.auth.On("AuthenticateUser", mock.Anything, mock.Anything).Return(nil, apperror.InvalidCredentials())

	w := h.do(http.MethodPost, "/v1/auth/login", "", domain.Credentials{Username: "ghost", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "The provided credentials are invalid.", decode(t, w).Message)
	assert.Nil(t, sessionCookie(w))

	w = h.do(http.MethodPost, "/v1/auth/login", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Malformed JSON in request body.", decode(t, w).Message)
}

func TestSignup_Conflict(t *testing.T) {
	h := newHarness(t)
	h.auth.On("RegisterUser", mock.Anything, mock.Anything).Return(nil, apperror.ConflictingSignupData())

	w := h.do(http.MethodPost, "/v1/auth/signup", "", domain.NewUser{Username: "jdoe"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWhoAmI(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/v1/auth/whoami", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = h.do(http.MethodPost, "/v1/auth/whoami", "expired", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = h.do(http.MethodPost, "/v1/auth/whoami", applicantToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]any)
	assert.Equal(t, "jdoe", data["username"])
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := newHarness(t)
	h.auth.On("Logout", mock.Anything, applicantToken).Return(nil)

	w := h.do(http.MethodGet, "/v1/auth/logout", applicantToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
	h.auth.AssertExpectations(t)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	h := newHarness(t)

	for _, path := range []string{"/v1/application/getUserDetails", "/v1/application/submitApplication"} {
		w := h.do(http.MethodPost, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodPut, "/v1/profile", "bogus", domain.ProfileUpdate{Email: "a@b.se"}).Code)
	h.apps.AssertNotCalled(t, "GetFullUserData", mock.Anything, mock.Anything)
}

func TestUpdateProfile_UsesSessionUser(t *testing.T) {
	h := newHarness(t)
	update := domain.ProfileUpdate{Email: "new@example.com"}
	h.auth.On("UpdateUserProfile", mock.Anything, int64(2), update).Return(nil)

	w := h.do(http.MethodPut, "/v1/profile", applicantToken, update)
	assert.Equal(t, http.StatusOK, w.Code)
	h.auth.AssertExpectations(t)
}

func TestApplicationEndpoints(t *testing.T) {
	h := newHarness(t)

	h.apps.On("RegisterApplication", mock.Anything, int64(2)).Return(int64(0), apperror.ConflictingApplication()).Once()
	w := h.do(http.MethodPost, "/v1/application/submitApplication", applicantToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	req := domain.AddAvailabilityRequest{FromDate: "2025-06-01", ToDate: "2025-08-31"}
	h.profile.On("AddAvailability", mock.Anything, int64(2), req).Return(int64(12), nil)
	w = h.do(http.MethodPost, "/v1/application/addUserAvailability", applicantToken, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(12), decode(t, w).Data.(map[string]any)["availabilityID"])

	h.profile.On("DeleteCompetence", mock.Anything, int64(2), domain.DeleteCompetenceRequest{CompetenceProfileID: 7}).
		Return(apperror.NotFound("Competence not found"))
	w = h.do(http.MethodPost, "/v1/application/deleteUserCompetence", applicantToken, domain.DeleteCompetenceRequest{CompetenceProfileID: 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	h.apps.On("GetSubmittedApplication", mock.Anything, int64(2)).Return(nil, nil)
	w = h.do(http.MethodPost, "/v1/application/getApplication", applicantToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]any)
	assert.Contains(t, data, "application")
	assert.Nil(t, data["application"])
}

func TestAdminRequiresRecruiter(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodGet, "/v1/admin/applications?status=unhandled", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, h.do(http.MethodGet, "/v1/admin/applications?status=unhandled", applicantToken, nil).Code)
	h.apps.AssertNotCalled(t, "GetApplicationsByStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminListApplications(t *testing.T) {
	h := newHarness(t)
	page := &domain.ApplicationPage{Applications: []domain.ApplicationSummary{}, Total: 8, HasMore: true}

	h.apps.On("GetApplicationsByStatus", mock.Anything,
		domain.BoardQuery{Status: domain.StatusUnhandled, Limit: 5, Offset: 0},
		domain.BoardOptions{NoCompetencesText: "none"},
	).Return(page, nil)

	w := h.do(http.MethodGet, "/v1/admin/applications?status=unhandled&offset=abc&noCompetencesText=none", recruiterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]any)
	assert.Equal(t, float64(8), data["total"])
	assert.Equal(t, true, data["hasMore"])

	w = h.do(http.MethodGet, "/v1/admin/applications?status=unhandled&limit=x", recruiterToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminTransitionStatus(t *testing.T) {
	h := newHarness(t)
	req := domain.StatusTransition{Status: domain.StatusAccepted, CurrentStatus: domain.StatusUnhandled}

	h.apps.On("TransitionStatus", mock.Anything, int64(1), int64(3), req).Return(&domain.Application{ID: 3, Status: domain.StatusAccepted}, nil).Once()
	w := h.do(http.MethodPatch, "/v1/admin/applications/3", recruiterToken, req)
	require.Equal(t, http.StatusOK, w.Code)

	h.apps.On("TransitionStatus", mock.Anything, int64(1), int64(3), req).Return(nil, apperror.StatusConflict()).Once()
	w = h.do(http.MethodPatch, "/v1/admin/applications/3", recruiterToken, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Status has changed", decode(t, w).Message)

	w = h.do(http.MethodPatch, "/v1/admin/applications/abc", recruiterToken, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminExport(t *testing.T) {
	h := newHarness(t)
	h.apps.On("ExportBoard", mock.Anything, domain.StatusAccepted, domain.BoardOptions{}).
		Return([]byte("xlsx-bytes"), "applications_accepted_20250101_120000.xlsx", nil)

	w := h.do(http.MethodGet, "/v1/admin/applications/export?status=accepted", recruiterToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=applications_accepted_20250101_120000.xlsx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestResetCredentials(t *testing.T) {
	h := newHarness(t)

	h.reset.On("RequestReset", mock.Anything, domain.ResetRequest{Email: "jane@example.com"}).
		Return(&domain.IssuedResetToken{Token: "reset-token"}, nil)
	w := h.do(http.MethodPost, "/v1/resetcredentials", "", domain.ResetRequest{Email: "jane@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reset-token")

	h.reset.On("ValidateResetToken", mock.Anything, domain.ResetTokenRequest{Token: "old"}).Return(apperror.InvalidSession())
	w = h.do(http.MethodPost, "/v1/resetcredentials/tokenvalidation", "", domain.ResetTokenRequest{Token: "old"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	upd := domain.ResetCredentialsRequest{Token: "reset-token", Password: "NewSecret1"}
	h.reset.On("ResetCredentials", mock.Anything, upd).Return(nil)
	w = h.do(http.MethodPut, "/v1/resetcredentials/updatecredentials", "", upd)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
