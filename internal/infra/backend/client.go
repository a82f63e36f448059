package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/fx"

	"footprint/config"
	"footprint/internal/domain/entity"
	apperrors "footprint/internal/domain/errors"
	"footprint/internal/domain/repository"
	"footprint/internal/domain/service"
	"footprint/internal/errors"
)

// TokenSource yields the bearer token attached to authenticated calls.
// An empty token means the call goes out anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Params defines the dependencies for the travel backend client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Cache  repository.CacheRepository
}

// Client talks to the travel backend over HTTP and normalizes its
// loosely-shaped responses into domain entities.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// New creates the travel service backed by the configured API endpoint.
func New(params Params) service.TravelService {
	return NewClient(params.Config.API.BaseURL, params.Config.API.Timeout, params.Cache, params.Logger)
}

// NewClient creates a backend client against the given base URL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// envelope is the backend's standard response wrapper. Code is a pointer so
// bare payloads without a wrapper can be told apart from code zero.
type envelope struct {
	Code    *int            `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(ctx, req)

	return c.send(req)
}

func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.DebugContext(ctx, "token lookup failed", slog.Any("error", err))

		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrNetwork.WrapMessage(req.URL.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ErrNetwork.WrapMessage(req.URL.Path)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, errors.WithStack(apperrors.ErrAuthRequired)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.WithStack(apperrors.ErrNetwork.WithDetails(fmt.Sprintf("status %d on %s", resp.StatusCode, req.URL.Path)))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Code != nil {
		if *env.Code != http.StatusOK {
			return nil, errors.WithStack(apperrors.NewBusinessError(*env.Code, env.Message))
		}
		if len(env.Data) > 0 && string(env.Data) != "null" {
			return env.Data, nil
		}
	}

	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Login exchanges a platform login code for a session token and profile.
func (c *Client) Login(ctx context.Context, code string) (*entity.UserInfo, error) {
	raw, err := c.post(ctx, "/user/login", map[string]string{"code": code})
	if err != nil {
		return nil, err
	}

	var info entity.UserInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, errors.Wrap(err, "decode login response")
	}
	if info.Token == "" {
		return nil, errors.WithStack(apperrors.ErrAuthRequired.WithDetails("login response carried no token"))
	}

	return &info, nil
}

// CityByLocation reverse-geocodes a fix into a located city entry.
func (c *Client) CityByLocation(ctx context.Context, fix entity.GeoFix) (*entity.Location, error) {
	query := url.Values{}
	query.Set("latitude", formatCoord(fix.Latitude))
	query.Set("longitude", formatCoord(fix.Longitude))

	raw, err := c.get(ctx, "/location/city", query)
	if err != nil {
		return nil, err
	}

	return parseLocation(fix, raw), nil
}

// NearbyAttractions fetches attractions around a fix within radiusKm.
func (c *Client) NearbyAttractions(ctx context.Context, fix entity.GeoFix, radiusKm float64) ([]entity.Attraction, error) {
	query := url.Values{}
	query.Set("latitude", formatCoord(fix.Latitude))
	query.Set("longitude", formatCoord(fix.Longitude))
	query.Set("radius", formatCoord(radiusKm))

	raw, err := c.get(ctx, "/attractions/nearby", query)
	if err != nil {
		return nil, err
	}

	return normalizeAttractions(extractList(raw)), nil
}

// HotDestinations fetches the trending destination list.
func (c *Client) HotDestinations(ctx context.Context) ([]entity.Destination, error) {
	raw, err := c.get(ctx, "/destinations/hot", nil)
	if err != nil {
		return nil, err
	}

	return normalizeDestinations(extractList(raw)), nil
}

// GeneratePlan asks the backend to draft an itinerary.
func (c *Client) GeneratePlan(ctx context.Context, req *service.GeneratePlanRequest) (*entity.Plan, error) {
	raw, err := c.post(ctx, "/plan/generate", req)
	if err != nil {
		return nil, err
	}

	plan := parsePlan(raw)
	if plan.City == "" {
		plan.City = req.City
	}

	return plan, nil
}

// SavePlan stores an itinerary server-side.
func (c *Client) SavePlan(ctx context.Context, plan *entity.Plan) error {
	_, err := c.post(ctx, "/plan/save", plan)

	return err
}

// PlanList fetches the user's saved itineraries.
func (c *Client) PlanList(ctx context.Context) ([]entity.Plan, error) {
	raw, err := c.get(ctx, "/plan/list", nil)
	if err != nil {
		return nil, err
	}

	items := extractList(raw)
	plans := make([]entity.Plan, 0, len(items))
	for _, item := range items {
		plans = append(plans, *parsePlan(item))
	}

	return plans, nil
}

// PlanDetail fetches one itinerary by id.
func (c *Client) PlanDetail(ctx context.Context, id string) (*entity.Plan, error) {
	query := url.Values{}
	query.Set("id", id)

	raw, err := c.get(ctx, "/plan/detail", query)
	if err != nil {
		return nil, err
	}

	return parsePlan(raw), nil
}

// SaveTrack stores a recorded track server-side.
func (c *Client) SaveTrack(ctx context.Context, track *entity.Track) error {
	_, err := c.post(ctx, "/track/save", track)

	return err
}

// TrackList fetches the user's recorded tracks.
func (c *Client) TrackList(ctx context.Context) ([]entity.Track, error) {
	raw, err := c.get(ctx, "/track/list", nil)
	if err != nil {
		return nil, err
	}

	items := extractList(raw)
	tracks := make([]entity.Track, 0, len(items))
	for _, item := range items {
		var track entity.Track
		if err := json.Unmarshal(item, &track); err != nil {
			continue
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// TrackDetail fetches one track by id.
func (c *Client) TrackDetail(ctx context.Context, id string) (*entity.Track, error) {
	query := url.Values{}
	query.Set("id", id)

	raw, err := c.get(ctx, "/track/detail", query)
	if err != nil {
		return nil, err
	}

	var track entity.Track
	if err := json.Unmarshal(raw, &track); err != nil {
		return nil, errors.Wrap(err, "decode track detail")
	}

	return &track, nil
}

// GeneratePostcard asks the backend to render a postcard from a plan or track.
func (c *Client) GeneratePostcard(ctx context.Context, req *service.GeneratePostcardRequest) (*entity.Postcard, error) {
	raw, err := c.post(ctx, "/postcard/generate", req)
	if err != nil {
		return nil, err
	}

	postcard := parsePostcard(raw)
	if postcard.Source == "" {
		postcard.Source = req.Type
	}

	return postcard, nil
}

// PostcardList fetches the user's generated postcards.
func (c *Client) PostcardList(ctx context.Context) ([]entity.Postcard, error) {
	raw, err := c.get(ctx, "/postcard/list", nil)
	if err != nil {
		return nil, err
	}

	items := extractList(raw)
	postcards := make([]entity.Postcard, 0, len(items))
	for _, item := range items {
		postcards = append(postcards, *parsePostcard(item))
	}

	return postcards, nil
}

// PostcardDetail fetches one postcard by id.
func (c *Client) PostcardDetail(ctx context.Context, id string) (*entity.Postcard, error) {
	query := url.Values{}
	query.Set("id", id)

	raw, err := c.get(ctx, "/postcard/detail", query)
	if err != nil {
		return nil, err
	}

	return parsePostcard(raw), nil
}

// UploadImage pushes an image to the backend and returns its served URL.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "create multipart field")
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", errors.Wrap(err, "copy upload content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "finish multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/image", &buf)
	if err != nil {
		return "", errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(ctx, req)

	raw, err := c.send(req)
	if err != nil {
		return "", err
	}

	var uploaded struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &uploaded); err != nil {
		return "", errors.Wrap(err, "decode upload response")
	}

	return uploaded.URL, nil
}
