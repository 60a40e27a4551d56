package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nativoenglish/lingo/internal/auth/denylist"
	"github.com/nativoenglish/lingo/internal/auth/domain"
	httpapi "github.com/nativoenglish/lingo/internal/auth/http"
	"github.com/nativoenglish/lingo/internal/auth/service"
	"github.com/nativoenglish/lingo/internal/auth/store/drivers/sqlite"
	"github.com/nativoenglish/lingo/pkg/cryptox"
	"github.com/nativoenglish/lingo/pkg/jwtx"
)

type envelope struct {
	Status     string         `json:"status"`
	StatusCode int            `json:"status_code"`
	Message    string         `json:"message"`
	Data       map[string]any `json:"data"`
}

type captureNotifier struct {
	codes chan string
}

func (n *captureNotifier) SendOTPCode(_ context.Context, _, _, code string) error {
	n.codes <- code
	return nil
}

func (n *captureNotifier) SendPasswordReset(_ context.Context, _, _, token string) error {
	n.codes <- token
	return nil
}

func (n *captureNotifier) wait(t *testing.T) string {
	t.Helper()
	select {
	case code := <-n.codes:
		return code
	case <-time.After(2 * time.Second):
		t.Fatal("no notification delivered")
		return ""
	}
}

type testServer struct {
	srv      *httptest.Server
	users    *service.UserService
	twofa    *service.TwoFactorService
	notifier *captureNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.GenerateSignerEdDSA("test-key")
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	keys.AddSigner(signer)

	tokens := &service.TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierEdDSA(keys, "lingo-test"),
		Denylist: denylist.NewMemory(),
		Issuer:   "lingo-test",
	}
	notifier := &captureNotifier{codes: make(chan string, 8)}
	otp := &service.OTPService{Store: st, Issuer: "lingo-test"}

	router := httpapi.NewRouter(keys, "test", st, slog.Default())
	router.TokenService = tokens
	router.AuthService = &service.AuthService{Store: st, Tokens: tokens, OTP: otp, Notifier: notifier}
	router.UserService = &service.UserService{Store: st}
	router.PasswordService = &service.PasswordService{Store: st, Tokens: tokens, Notifier: notifier}
	router.TwoFactorService = &service.TwoFactorService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		srv:      srv,
		users:    router.UserService,
		twofa:    router.TwoFactorService,
		notifier: notifier,
	}
}

func (ts *testServer) do(t *testing.T, method, path, bearer string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp, env
}

func (ts *testServer) registerAndLogin(t *testing.T, username string) (string, string) {
	t.Helper()

	_, env := ts.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, "success", env.Status)

	resp, env := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return env.Data["access"].(string), env.Data["refresh"].(string)
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	_, err := ts.users.Register(context.Background(), service.RegisterInput{
		Username: "root",
		Email:    "root@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleAdmin,
	}, true)
	require.NoError(t, err)

	_, env := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": "root",
		"password": "s3cret-pass",
	})
	return env.Data["access"].(string)
}

func TestLoginEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing fields", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{"username": "x"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "error", env.Status)
	})

	t.Run("bad credentials carry the envelope", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"username": "ghost", "password": "whatever1",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, "error", env.Status)
		require.Equal(t, http.StatusUnauthorized, env.StatusCode)
		require.NotEmpty(t, env.Message)
	})

	t.Run("successful login returns tokens", func(t *testing.T) {
		access, refresh := ts.registerAndLogin(t, "alice")
		require.NotEmpty(t, access)
		require.NotEmpty(t, refresh)
	})
}

func TestProtectedEndpoints(t *testing.T) {
	ts := newTestServer(t)
	access, _ := ts.registerAndLogin(t, "bob")

	t.Run("me requires a token", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/v1/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("me returns the profile", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodGet, "/v1/auth/me", access, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "bob", env.Data["username"])
		require.Equal(t, "student", env.Data["role"])
		require.Equal(t, false, env.Data["is_2fa_enabled"])
	})

	t.Run("2fa toggle", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPatch, "/v1/auth/2fa", access, map[string]bool{"enable_2fa": true})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, true, env.Data["enable_2fa"])
	})

	t.Run("student is denied on admin routes", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodGet, "/v1/admin/users", access, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, "error", env.Status)
	})
}

func TestOTPFlowEndToEnd(t *testing.T) {
	ts := newTestServer(t)
	access, _ := ts.registerAndLogin(t, "carol")

	// Turn 2FA on, then log in again to trigger the challenge.
	resp, _ := ts.do(t, http.MethodPatch, "/v1/auth/2fa", access, map[string]bool{"enable_2fa": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"username": "carol", "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, env.Data["is_2fa_enabled"])
	require.Nil(t, env.Data["access"], "no access token before OTP verification")

	temp := env.Data["temp_token"].(string)
	require.NotEmpty(t, temp)
	code := ts.notifier.wait(t)

	t.Run("temp token is rejected on regular endpoints", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/v1/auth/me", temp, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("access token is rejected on verify-otp", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/v1/auth/verify-otp", access, map[string]string{"otp": code})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("resend with challenge token", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPost, "/v1/auth/resend-otp", temp, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "student", env.Data["role"])
		code = ts.notifier.wait(t)
	})

	t.Run("verify with the emailed code", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPost, "/v1/auth/verify-otp", temp, map[string]string{"otp": code})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, env.Data["access"])
		require.NotEmpty(t, env.Data["refresh"])
		require.NotEmpty(t, env.Data["user_id"])
		require.Equal(t, "student", env.Data["role"])
	})

	t.Run("wrong code is a 400", func(t *testing.T) {
		// The previous verification consumed the code.
		resp, _ := ts.do(t, http.MethodPost, "/v1/auth/verify-otp", temp, map[string]string{"otp": code})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefreshAndLogoutEndpoints(t *testing.T) {
	ts := newTestServer(t)
	_, refresh := ts.registerAndLogin(t, "dave")

	t.Run("refresh rotates", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPost, "/v1/auth/refresh", "", map[string]string{"refresh": refresh})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotEmpty(t, env.Data["refresh"])

		// the old one is gone
		resp, _ = ts.do(t, http.MethodPost, "/v1/auth/refresh", "", map[string]string{"refresh": refresh})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		refresh = env.Data["refresh"].(string)
	})

	t.Run("logout then logout again", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/v1/auth/logout", "", map[string]string{"refresh": refresh})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, env := ts.do(t, http.MethodPost, "/v1/auth/logout", "", map[string]string{"refresh": refresh})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "error", env.Status)
	})
}

func TestPasswordResetEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "erin")

	resp, _ := ts.do(t, http.MethodPost, "/v1/auth/forgot-password", "", map[string]string{
		"email": "erin@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := ts.notifier.wait(t)

	t.Run("unknown email still answers 200", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/v1/auth/forgot-password", "", map[string]string{
			"email": "ghost@example.com",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("update password with the reset token", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/v1/auth/update-password", "", map[string]string{
			"reset_token": token, "password": "brand-new-pass",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"username": "erin", "password": "brand-new-pass",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestAdminEndpoints(t *testing.T) {
	ts := newTestServer(t)
	ts.registerAndLogin(t, "frank")
	admin := ts.adminToken(t)

	t.Run("list users", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodGet, "/v1/admin/users?page=1&page_size=5", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.GreaterOrEqual(t, env.Data["total"].(float64), float64(2))
	})

	var userID string

	t.Run("create a teacher", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodPost, "/v1/admin/users", admin, map[string]string{
			"username": "teach",
			"email":    "teach@example.com",
			"password": "s3cret-pass",
			"role":     "teacher",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Equal(t, "teacher", env.Data["role"])
		userID = env.Data["id"].(string)
	})

	t.Run("get and update", func(t *testing.T) {
		resp, env := ts.do(t, http.MethodGet, "/v1/admin/users/"+userID, admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "teach", env.Data["username"])

		resp, env = ts.do(t, http.MethodPut, "/v1/admin/users/"+userID, admin, map[string]string{
			"first_name": "Terry",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Terry", env.Data["first_name"])
	})

	t.Run("role update rejects unknown roles", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPut, "/v1/admin/users/"+userID+"/role", admin, map[string]string{
			"role": "wizard",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("suspend blocks login, activate restores it", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodPost, "/v1/admin/users/"+userID+"/suspend", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, env := ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"username": "teach", "password": "s3cret-pass",
		})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		// Same answer as a wrong password; suspension is not observable.
		require.Equal(t, httpapi.MsgInvalidCredentials, env.Message)

		resp, _ = ts.do(t, http.MethodPost, "/v1/admin/users/"+userID+"/activate", admin, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, _ = ts.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
			"username": "teach", "password": "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown user is a 404", func(t *testing.T) {
		resp, _ := ts.do(t, http.MethodGet, "/v1/admin/users/01JUNKJUNKJUNKJUNKJUNKJUNK", admin, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.srv.Client().Get(ts.srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := ts.srv.Client().Get(ts.srv.URL + "/readyz")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
}
