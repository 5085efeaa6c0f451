package api_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/forgetmenot/internal/api"
	errorvalues "github.com/limbo/forgetmenot/internal/error_values"
	"github.com/limbo/forgetmenot/internal/service"
	"github.com/limbo/forgetmenot/internal/service/mocks"
	"github.com/limbo/forgetmenot/internal/session"
	"github.com/limbo/forgetmenot/pkg/entity"
	jwtservice "github.com/limbo/forgetmenot/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const sessionCookie = "fmn_session"

var (
	uid      = uuid.New()
	placeID  = uuid.New()
	testUser = entity.User{
		ID:        uid,
		Username:  "@johndoe",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.org",
		Streaks:   2,
	}
	testPlace = entity.Place{ID: placeID, Name: "Home", UserID: uid}
	testItems = []*entity.Item{
		{ID: uuid.New(), Name: "Keys", PlaceID: placeID, ForgetCount: 3},
		{ID: uuid.New(), Name: "Wallet", PlaceID: placeID, ForgetCount: 2},
	}
)

type testEnv struct {
	server   *api.Server
	users    *mocks.MockUserServiceI
	places   *mocks.MockPlacesServiceI
	tracking *mocks.MockTrackingServiceI
	jwt      *jwtservice.JWTService
	revoked  *session.MemoryList
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	env := &testEnv{
		users:    mocks.NewMockUserServiceI(ctrl),
		places:   mocks.NewMockPlacesServiceI(ctrl),
		tracking: mocks.NewMockTrackingServiceI(ctrl),
		jwt:      jwtservice.New("test_secret", time.Hour),
		revoked:  session.NewMemoryList(),
	}
	serv, err := api.New(&api.ServicesList{
		UserService:     env.users,
		PlacesService:   env.places,
		TrackingService: env.tracking,
		JWTService:      env.jwt,
		Revocations:     env.revoked,
	}, api.Config{})
	require.NoError(t, err)
	env.server = serv
	return env
}

// token issues a session for testUser and lets the session lookup find it.
func (env *testEnv) token(t *testing.T) string {
	t.Helper()
	token, _, err := env.jwt.GenerateToken(&testUser)
	require.NoError(t, err)
	env.users.EXPECT().GetByID(gomock.Any(), uid).DoAndReturn(func(context.Context, uuid.UUID) (*entity.User, error) {
		u := testUser
		return &u, nil
	}).AnyTimes()
	return token
}

func (env *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	env.server.ServeHTTP(rr, req)
	return rr
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return req
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRouteGuards(t *testing.T) {
	env := newTestEnv(t)
	t.Run("anonymous is sent to login with next", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/dashboard/", nil))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/log_in/?next=%2Fdashboard%2F", rr.Header().Get("Location"))
	})
	t.Run("anonymous sees home", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Forget Me Not")
	})
	token := env.token(t)
	t.Run("logged in user is sent away from home and login", func(t *testing.T) {
		for _, path := range []string{"/", "/log_in/", "/sign_up/"} {
			rr := env.do(withSession(httptest.NewRequest(http.MethodGet, path, nil), token))
			assert.Equal(t, http.StatusFound, rr.Code, path)
			assert.Equal(t, "/dashboard/", rr.Header().Get("Location"), path)
		}
	})
	t.Run("garbage cookie is dropped", func(t *testing.T) {
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard/", nil), "garbage"))
		assert.Equal(t, http.StatusFound, rr.Code)
		c := findCookie(rr, sessionCookie)
		require.NotNil(t, c)
		assert.Equal(t, -1, c.MaxAge)
	})
	t.Run("increment streak is post only", func(t *testing.T) {
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, "/increment_streak/", nil), token))
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}

func TestLogIn(t *testing.T) {
	env := newTestEnv(t)
	t.Run("form", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/log_in/?next=/profile/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `value="/profile/"`)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), "@johndoe", "bad").Return(nil, errorvalues.ErrWrongCredentials)
		rr := env.do(formRequest(http.MethodPost, "/log_in/", url.Values{"username": {"@johndoe"}, "password": {"bad"}}))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "The credentials provided were invalid!")
		assert.Nil(t, findCookie(rr, sessionCookie))
	})
	t.Run("success follows next", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), "@johndoe", "Password123").Return(&testUser, nil)
		rr := env.do(formRequest(http.MethodPost, "/log_in/", url.Values{
			"username": {"@johndoe"}, "password": {"Password123"}, "next": {"/profile/"},
		}))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/profile/", rr.Header().Get("Location"))
		c := findCookie(rr, sessionCookie)
		require.NotNil(t, c)
		assert.True(t, c.HttpOnly)
		claims, err := env.jwt.ParseToken(c.Value)
		require.NoError(t, err)
		assert.Equal(t, uid.String(), claims.UserID)
	})
	t.Run("foreign next is ignored", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), "@johndoe", "Password123").Return(&testUser, nil)
		rr := env.do(formRequest(http.MethodPost, "/log_in/", url.Values{
			"username": {"@johndoe"}, "password": {"Password123"}, "next": {"//evil.example.com/"},
		}))
		assert.Equal(t, "/dashboard/", rr.Header().Get("Location"))
	})
}

func TestLogOutRevokesSession(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)
	rr := env.do(withSession(httptest.NewRequest(http.MethodGet, "/log_out/", nil), token))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	rr = env.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard/", nil), token))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Location"), "/log_in/"))
}

func TestSignUp(t *testing.T) {
	env := newTestEnv(t)
	form := url.Values{
		"first_name":            {"John"},
		"last_name":             {"Doe"},
		"username":              {"@johndoe"},
		"email":                 {"john.doe@example.org"},
		"new_password":          {"Password123"},
		"password_confirmation": {"Password123"},
	}
	t.Run("validation errors are shown on the form", func(t *testing.T) {
		env.users.EXPECT().SignUp(gomock.Any(), gomock.Any()).
			Return(nil, errorvalues.FieldValidationError("username", "User with this Username already exists."))
		rr := env.do(formRequest(http.MethodPost, "/sign_up/", form))
		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "User with this Username already exists.")
		assert.Contains(t, body, `value="john.doe@example.org"`)
		assert.NotContains(t, body, "Password123")
	})
	t.Run("success logs in", func(t *testing.T) {
		env.users.EXPECT().SignUp(gomock.Any(), &service.SignUpRequest{
			FirstName:            "John",
			LastName:             "Doe",
			Username:             "@johndoe",
			Email:                "john.doe@example.org",
			NewPassword:          "Password123",
			PasswordConfirmation: "Password123",
		}).Return(&testUser, nil)
		rr := env.do(formRequest(http.MethodPost, "/sign_up/", form))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard/", rr.Header().Get("Location"))
		assert.NotNil(t, findCookie(rr, sessionCookie))
	})
}

func TestProfileAndPassword(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)
	t.Run("profile form is prefilled", func(t *testing.T) {
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, "/profile/", nil), token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `value="@johndoe"`)
		assert.Contains(t, rr.Body.String(), "gravatar.com/avatar/")
	})
	t.Run("profile updated", func(t *testing.T) {
		env.users.EXPECT().UpdateProfile(gomock.Any(), uid, gomock.Any()).Return(&testUser, nil)
		rr := env.do(withSession(formRequest(http.MethodPost, "/profile/", url.Values{
			"first_name": {"John"}, "last_name": {"Doe"}, "username": {"@johnd"}, "email": {"j@example.org"},
		}), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		c := findCookie(rr, "fmn_flash")
		require.NotNil(t, c)
		msg, _ := url.QueryUnescape(c.Value)
		assert.Equal(t, "Profile updated!", msg)
	})
	t.Run("wrong current password", func(t *testing.T) {
		env.users.EXPECT().ChangePassword(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
		rr := env.do(withSession(formRequest(http.MethodPost, "/password/", url.Values{
			"password": {"nope"}, "new_password": {"NewPassword1"}, "password_confirmation": {"NewPassword1"},
		}), token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), service.MsgInvalidCurrentPassword)
	})
	t.Run("password changed keeps user logged in", func(t *testing.T) {
		env.users.EXPECT().ChangePassword(gomock.Any(), uid, gomock.Any()).Return(&testUser, nil)
		rr := env.do(withSession(formRequest(http.MethodPost, "/password/", url.Values{
			"password": {"Password123"}, "new_password": {"NewPassword1"}, "password_confirmation": {"NewPassword1"},
		}), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		fresh := findCookie(rr, sessionCookie)
		require.NotNil(t, fresh)
		assert.NotEqual(t, token, fresh.Value)
		// old token no longer works
		rr = env.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard/", nil), token))
		assert.Equal(t, http.StatusFound, rr.Code)
	})
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)
	env.users.EXPECT().DeleteAccount(gomock.Any(), uid, "wrong").Return(errorvalues.ErrWrongCredentials)
	rr := env.do(withSession(formRequest(http.MethodPost, "/profile/delete/", url.Values{"password": {"wrong"}}), token))
	assert.Equal(t, "/profile/", rr.Header().Get("Location"))

	env.users.EXPECT().DeleteAccount(gomock.Any(), uid, "Password123").Return(nil)
	rr = env.do(withSession(formRequest(http.MethodPost, "/profile/delete/", url.Values{"password": {"Password123"}}), token))
	assert.Equal(t, "/", rr.Header().Get("Location"))
	c := findCookie(rr, sessionCookie)
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
}

func TestPlacesPages(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)
	t.Run("dashboard lists places", func(t *testing.T) {
		env.places.EXPECT().ListPlaces(gomock.Any()).Return([]*entity.Place{&testPlace}, nil)
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, "/dashboard/", nil), token))
		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Home")
		assert.Contains(t, body, "/remember_items/"+placeID.String()+"/")
	})
	t.Run("add places and items", func(t *testing.T) {
		env.places.EXPECT().AddPlaceItems(gomock.Any(), uid, &service.PlaceItemsRequest{
			PlaceName: "Home", ItemNames: "Keys, Wallet",
		}).Return(&testPlace, 2, nil)
		rr := env.do(withSession(formRequest(http.MethodPost, "/add_places_items/", url.Values{
			"place_name": {"Home"}, "item_names": {"Keys, Wallet"},
		}), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard/", rr.Header().Get("Location"))
	})
	t.Run("increment streak", func(t *testing.T) {
		env.users.EXPECT().IncrementStreak(gomock.Any(), uid).Return(3, nil)
		rr := env.do(withSession(httptest.NewRequest(http.MethodPost, "/increment_streak/", nil), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard/", rr.Header().Get("Location"))
	})
}

func TestTrackingPages(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)
	remember := "/remember_items/" + placeID.String() + "/"
	forgot := "/forgot_items/" + placeID.String() + "/"
	somethingElse := "/forget_something_else/" + placeID.String() + "/"
	t.Run("remember items", func(t *testing.T) {
		env.tracking.EXPECT().RememberItems(gomock.Any(), uid, placeID).Return(&testPlace, testItems, nil)
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, remember, nil), token))
		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Less(t, strings.Index(body, "Keys"), strings.Index(body, "Wallet"))
	})
	t.Run("remember items of foreign place", func(t *testing.T) {
		env.tracking.EXPECT().RememberItems(gomock.Any(), uid, placeID).Return(nil, nil, errorvalues.ErrWrongOwner)
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, remember, nil), token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("malformed place id", func(t *testing.T) {
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, "/remember_items/42/", nil), token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("good to go", func(t *testing.T) {
		env.tracking.EXPECT().GoodToGo(gomock.Any(), uid, placeID).Return(nil)
		rr := env.do(withSession(httptest.NewRequest(http.MethodPost, remember, nil), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard/", rr.Header().Get("Location"))
	})
	t.Run("forgot items form", func(t *testing.T) {
		env.tracking.EXPECT().ForgottenCandidates(gomock.Any(), placeID).Return(&testPlace, testItems, nil)
		rr := env.do(withSession(httptest.NewRequest(http.MethodGet, forgot, nil), token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), testItems[0].ID.String())
	})
	t.Run("forgot items submitted", func(t *testing.T) {
		ids := []uuid.UUID{testItems[0].ID, testItems[1].ID}
		env.tracking.EXPECT().ForgotItems(gomock.Any(), uid, placeID, ids).Return(nil)
		rr := env.do(withSession(formRequest(http.MethodPost, forgot, url.Values{
			"items[]": {ids[0].String(), ids[1].String()},
		}), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/dashboard/", rr.Header().Get("Location"))
	})
	t.Run("forgot unknown item", func(t *testing.T) {
		rr := env.do(withSession(formRequest(http.MethodPost, forgot, url.Values{"items[]": {"not-a-uuid"}}), token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("forget something else duplicate", func(t *testing.T) {
		env.tracking.EXPECT().ForgottenCandidates(gomock.Any(), placeID).Return(&testPlace, testItems, nil)
		env.tracking.EXPECT().ForgetSomethingElse(gomock.Any(), placeID, &service.ItemRequest{ItemName: "Keys"}).
			Return(nil, errorvalues.FieldValidationError("item_name", "Item with this Name and Place already exists."))
		rr := env.do(withSession(formRequest(http.MethodPost, somethingElse, url.Values{"item_name": {"Keys"}}), token))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Item with this Name and Place already exists.")
	})
	t.Run("forget something else", func(t *testing.T) {
		env.tracking.EXPECT().ForgottenCandidates(gomock.Any(), placeID).Return(&testPlace, testItems, nil)
		env.tracking.EXPECT().ForgetSomethingElse(gomock.Any(), placeID, &service.ItemRequest{ItemName: "Umbrella"}).
			Return(&entity.Item{ID: uuid.New(), Name: "Umbrella", PlaceID: placeID}, nil)
		rr := env.do(withSession(formRequest(http.MethodPost, somethingElse, url.Values{"item_name": {"Umbrella"}}), token))
		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, forgot, rr.Header().Get("Location"))
	})
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := sonic.ConfigDefault.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestJSONAuth(t *testing.T) {
	env := newTestEnv(t)
	t.Run("login", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), "@johndoe", "Password123").Return(&testUser, nil)
		rr := env.do(jsonRequest(t, http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Username: "@johndoe", Password: "Password123"}))
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.AuthResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, uid.String(), resp.UserID)
		assert.NotEmpty(t, resp.Token)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		env.users.EXPECT().Login(gomock.Any(), "@johndoe", "bad").Return(nil, errorvalues.ErrWrongCredentials)
		rr := env.do(jsonRequest(t, http.MethodPost, "/api/v1/auth/login", api.LoginRequest{Username: "@johndoe", Password: "bad"}))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{")))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("register validation", func(t *testing.T) {
		env.users.EXPECT().SignUp(gomock.Any(), gomock.Any()).
			Return(nil, errorvalues.FieldValidationError("new_password", "weak"))
		rr := env.do(jsonRequest(t, http.MethodPost, "/api/v1/auth/register", api.RegisterRequest{Username: "@johndoe"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "new_password")
	})
	t.Run("register", func(t *testing.T) {
		env.users.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(&testUser, nil)
		rr := env.do(jsonRequest(t, http.MethodPost, "/api/v1/auth/register", api.RegisterRequest{Username: "@johndoe"}))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})
	t.Run("protected routes need a token", func(t *testing.T) {
		rr := env.do(httptest.NewRequest(http.MethodGet, "/api/v1/places", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		rr = env.do(bearer(httptest.NewRequest(http.MethodGet, "/api/v1/places", nil), "garbage"))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestJSONPlaces(t *testing.T) {
	env := newTestEnv(t)
	token := env.token(t)
	t.Run("list places", func(t *testing.T) {
		env.places.EXPECT().ListPlaces(gomock.Any()).Return([]*entity.Place{&testPlace}, nil)
		rr := env.do(bearer(httptest.NewRequest(http.MethodGet, "/api/v1/places", nil), token))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Home"`)
	})
	t.Run("add place", func(t *testing.T) {
		env.places.EXPECT().AddPlaceItems(gomock.Any(), uid, &service.PlaceItemsRequest{PlaceName: "Home", ItemNames: "Keys"}).
			Return(&testPlace, 1, nil)
		rr := env.do(bearer(jsonRequest(t, http.MethodPost, "/api/v1/places", api.AddPlaceRequest{PlaceName: "Home", ItemNames: "Keys"}), token))
		require.Equal(t, http.StatusCreated, rr.Code)
		var resp api.AddPlaceResponse
		require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.CreatedItems)
	})
	t.Run("items of foreign place", func(t *testing.T) {
		env.tracking.EXPECT().RememberItems(gomock.Any(), uid, placeID).Return(nil, nil, errorvalues.ErrWrongOwner)
		rr := env.do(bearer(httptest.NewRequest(http.MethodGet, "/api/v1/places/"+placeID.String()+"/items", nil), token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("report forgotten", func(t *testing.T) {
		ids := []uuid.UUID{testItems[0].ID}
		env.tracking.EXPECT().ForgotItems(gomock.Any(), uid, placeID, ids).Return(nil)
		rr := env.do(bearer(jsonRequest(t, http.MethodPost, "/api/v1/places/"+placeID.String()+"/forgotten", api.ForgottenRequest{Items: ids}), token))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("report forgotten unknown place", func(t *testing.T) {
		env.tracking.EXPECT().ForgotItems(gomock.Any(), uid, placeID, gomock.Any()).Return(errorvalues.ErrPlaceNotFound)
		rr := env.do(bearer(jsonRequest(t, http.MethodPost, "/api/v1/places/"+placeID.String()+"/forgotten", api.ForgottenRequest{}), token))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("add duplicate item", func(t *testing.T) {
		env.tracking.EXPECT().ForgetSomethingElse(gomock.Any(), placeID, &service.ItemRequest{ItemName: "Keys"}).
			Return(nil, errorvalues.FieldValidationError("item_name", "exists"))
		rr := env.do(bearer(jsonRequest(t, http.MethodPost, "/api/v1/places/"+placeID.String()+"/items", api.AddItemRequest{ItemName: "Keys"}), token))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("streak", func(t *testing.T) {
		env.users.EXPECT().IncrementStreak(gomock.Any(), uid).Return(3, nil)
		rr := env.do(bearer(httptest.NewRequest(http.MethodPost, "/api/v1/streak", nil), token))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"streaks":3`)
	})
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "forgetmenot_http_request_duration_seconds")
}
