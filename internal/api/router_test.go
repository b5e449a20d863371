package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/nutrilog/internal/api"
	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/auth"
	"github.com/nutrilog/nutrilog/internal/diary"
	"github.com/nutrilog/nutrilog/internal/profile"
	"github.com/nutrilog/nutrilog/internal/reference"
	"github.com/nutrilog/nutrilog/internal/weight"
)

const (
	testSigningKey = "test-secret-key-for-testing-only"
	testIssuer     = "https://api.nutrilog.app"
	testAudience   = "nutrilog-api"
)

func newTestRouter() http.Handler {
	logger := zerolog.New(io.Discard)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     testIssuer,
		Audience:   testAudience,
	})

	foodCatalog := reference.NewFoodCatalog()
	activityCatalog := reference.NewActivityCatalog()

	profileRepo := profile.NewInMemoryRepository()
	weightRepo := weight.NewInMemoryRepository()
	diaryRepo := diary.NewInMemoryRepository()

	return api.NewRouter(api.RouterConfig{
		Version:         "test",
		BuildTime:       "2025-01-01T00:00:00Z",
		Logger:          logger,
		JWTService:      jwtService,
		ProfileService:  profile.NewService(profileRepo),
		DiaryService:    diary.NewService(diaryRepo, foodCatalog, activityCatalog, profileRepo, weightRepo),
		WeightService:   weight.NewService(weightRepo),
		FoodCatalog:     foodCatalog,
		ActivityCatalog: activityCatalog,
	})
}

// addAuthHeader adds a valid Bearer token to the request.
func addAuthHeader(t *testing.T, req *http.Request) {
	t.Helper()

	now := time.Now()
	claims := auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "usr_testuser123",
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: "usr_testuser123",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer "+token)
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/health", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	err := json.Unmarshal(w.Body.Bytes(), &health)
	require.NoError(t, err)

	assert.Equal(t, models.HealthStatusOK, health.Status)
}

func TestRouter_FoodSearchIsPublic(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/reference/foods?q=mela", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.FoodSearchResult
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	require.NotEmpty(t, result.Items)
	assert.Equal(t, "Mele fresche", result.Items[0].Name)
}

func TestRouter_ProfileRequiresAuth(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/me/profile", http.NoBody)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
}

func TestRouter_ProfileLifecycle(t *testing.T) {
	router := newTestRouter()

	// No profile before onboarding
	req := httptest.NewRequest(http.MethodGet, "/v1/me/profile", http.NoBody)
	addAuthHeader(t, req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Onboard
	body, err := json.Marshal(models.ProfileUpsertRequest{
		Name:             "Giulia",
		Age:              30,
		Gender:           "female",
		HeightCm:         165,
		WeightKg:         60,
		Goal:             "maintain",
		ActivityLevel:    "sedentary",
		DietStyle:        "omnivore",
		WeightChangeRate: "moderate",
	})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPut, "/v1/me/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Derived metrics reflect the profile
	req = httptest.NewRequest(http.MethodGet, "/v1/me/profile/metrics", http.NoBody)
	addAuthHeader(t, req)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var metrics models.ProfileMetrics
	err = json.Unmarshal(w.Body.Bytes(), &metrics)
	require.NoError(t, err)

	assert.Equal(t, 22.04, metrics.BMI)
	assert.Equal(t, 1710, metrics.DailyCalorieGoal)
	assert.Equal(t, "normal", metrics.BMICategory.Code)
}

func TestRouter_DiaryFlow(t *testing.T) {
	router := newTestRouter()

	// Onboard first so the calorie goal is available
	body, err := json.Marshal(models.ProfileUpsertRequest{
		Name:             "Giulia",
		Age:              30,
		Gender:           "female",
		HeightCm:         165,
		WeightKg:         60,
		Goal:             "maintain",
		ActivityLevel:    "sedentary",
		DietStyle:        "omnivore",
		WeightChangeRate: "moderate",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/v1/me/profile", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Log a lunch item
	body, err = json.Marshal(models.AddFoodRequest{FoodName: "Pasta di semola", Grams: 100})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/v1/me/diary/2025-03-10/meals/lunch/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.FoodItem
	err = json.Unmarshal(w.Body.Bytes(), &item)
	require.NoError(t, err)
	assert.Equal(t, 353, item.Calories)

	// The daily projection reflects the item and the goal
	req = httptest.NewRequest(http.MethodGet, "/v1/me/diary/2025-03-10", http.NoBody)
	addAuthHeader(t, req)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var day models.DailyDiary
	err = json.Unmarshal(w.Body.Bytes(), &day)
	require.NoError(t, err)

	assert.Equal(t, 353, day.ConsumedCalories)
	assert.Equal(t, 1710, day.CalorieGoal)
	assert.Equal(t, 1357, day.Remaining)
}

func TestRouter_DiaryRejectsUnknownMealType(t *testing.T) {
	router := newTestRouter()

	body, err := json.Marshal(models.AddFoodRequest{FoodName: "Banane", Grams: 100})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/me/diary/2025-03-10/meals/brunch/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_RejectsNonJSONBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/me/weight", bytes.NewReader([]byte("weightKg=72")))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	addAuthHeader(t, req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
