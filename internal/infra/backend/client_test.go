package backend

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
)

type staticTokens string

func (s staticTokens) Token(_ context.Context) (string, error) {
	return string(s), nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(server.URL, 5*time.Second, staticTokens("token-123"), logger)
}

func TestNearbyAttractions_UnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "31.2304", r.URL.Query().Get("latitude"))
		assert.Equal(t, "121.4737", r.URL.Query().Get("longitude"))

		_, _ = w.Write([]byte(`{"code":200,"data":[{"id":"a1","name":"外滩","image":"/a1.jpg","tags":"历史","distance":"850"}]}`))
	})

	attractions, err := client.NearbyAttractions(context.Background(), entity.GeoFix{Latitude: 31.2304, Longitude: 121.4737}, 10)
	require.NoError(t, err)
	require.Len(t, attractions, 1)
	assert.Equal(t, "a1", attractions[0].ID)
	assert.Equal(t, "外滩", attractions[0].Name)
	assert.Equal(t, "850", attractions[0].Distance)
}

func TestNearbyAttractions_FillsItemDefaults(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"_id":42,"category":"美食"},{}]}`))
	})

	attractions, err := client.NearbyAttractions(context.Background(), entity.GeoFix{}, 10)
	require.NoError(t, err)
	require.Len(t, attractions, 2)

	assert.Equal(t, "42", attractions[0].ID)
	assert.Equal(t, "未知景点", attractions[0].Name)
	assert.Equal(t, "/images/default-attraction.jpg", attractions[0].Image)
	assert.Equal(t, "美食", attractions[0].Tags)

	assert.NotEmpty(t, attractions[1].ID)
	assert.Equal(t, "未知景点", attractions[1].Name)
}

func TestHotDestinations_AcceptsBareArray(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"d1","title":"成都","cover":"/d1.jpg"}]`))
	})

	destinations, err := client.HotDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, destinations, 1)
	assert.Equal(t, "成都", destinations[0].Name)
	assert.Equal(t, "/d1.jpg", destinations[0].Image)
}

func TestDo_BusinessError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":5001,"message":"城市不在服务范围"}`))
	})

	_, err := client.HotDestinations(context.Background())
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "BUSINESS_ERROR", appErr.ErrorCode())
	assert.Equal(t, "城市不在服务范围", appErr.Message())

	var bizErr *apperrors.BusinessError
	require.True(t, errors.As(err, &bizErr))
	assert.Equal(t, 5001, bizErr.Code())
}

func TestDo_UnauthorizedMapsToAuthRequired(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.PlanList(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAuthRequired))
}

func TestDo_TransportFailureMapsToNetwork(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient("http://127.0.0.1:1", time.Second, nil, logger)

	_, err := client.HotDestinations(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNetwork))
}

func TestCityByLocation_FallbackNameChain(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":{"formattedAddress":"上海市黄浦区人民大道"}}`))
	})

	fix := entity.GeoFix{Latitude: 31.23, Longitude: 121.47}
	location, err := client.CityByLocation(context.Background(), fix)
	require.NoError(t, err)
	assert.Equal(t, "上海市黄浦区人民大道", location.City)
	assert.InDelta(t, 31.23, location.Latitude, 1e-9)
	assert.InDelta(t, 121.47, location.Longitude, 1e-9)
}

func TestCityByLocation_UnknownCityOnEmptyBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	location, err := client.CityByLocation(context.Background(), entity.GeoFix{})
	require.NoError(t, err)
	assert.Equal(t, "未知城市", location.City)
}

func TestLogin_RequiresToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"data":{"nickname":"旅人"}}`))
	})

	_, err := client.Login(context.Background(), "wx-code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAuthRequired))
}

func TestGeneratePlan_NormalizesSchedule(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		_, _ = w.Write([]byte(`{"code":200,"data":{"_id":"p1","title":"上海三日游","days":[{"day":1,"schedule":{"list":[{"name":"豫园"}]}}]}}`))
	})

	plan, err := client.GeneratePlan(context.Background(), &service.GeneratePlanRequest{City: "上海", Days: 3})
	require.NoError(t, err)
	assert.Equal(t, "p1", plan.ID)
	assert.Equal(t, "上海", plan.City)
	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Schedule, 1)
	assert.Equal(t, "豫园", plan.Days[0].Schedule[0].Name)
	assert.Equal(t, "/images/default-attraction.jpg", plan.Days[0].Schedule[0].Image)
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "cover.png", header.Filename)

		_, _ = w.Write([]byte(`{"code":200,"data":{"url":"/uploads/cover.png"}}`))
	})

	url, err := client.UploadImage(context.Background(), "cover.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/cover.png", url)
}
