// Package storage implements the slot store on an embedded SQLite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"footprint/config"
	"footprint/internal/domain/entity"
	"footprint/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// Params defines the parameters required for the store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Store persists slots in a single key/value table. Dated slots keep their
// expired values until the next successful write; reads simply treat them as
// absent (lazy invalidation).
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// New opens the configured store and hooks its closure into the fx lifecycle.
func New(params Params) (repository.CacheRepository, error) {
	store, err := Open(params.Config.Cache.Path, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens (and if needed initializes) the slot database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open slot database")
	}

	// WAL keeps readers unblocked while a refresh cycle writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, errors.Wrap(err, "enable WAL")
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return nil, errors.Wrap(err, "create slots table")
	}

	return &Store{
		db:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return errors.WithStack(s.db.Close())
}

func (s *Store) get(ctx context.Context, slot string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "read slot %s", slot)
	}

	return value, true, nil
}

func (s *Store) set(ctx context.Context, slot string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		slot, value, s.now().UTC())

	return errors.Wrapf(err, "write slot %s", slot)
}

func (s *Store) remove(ctx context.Context, slot string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots WHERE key = ?", slot)

	return errors.Wrapf(err, "remove slot %s", slot)
}

func readSlot[T any](ctx context.Context, s *Store, slot string) (*T, error) {
	raw, ok, err := s.get(ctx, slot)
	if err != nil || !ok {
		return nil, err
	}

	value := new(T)
	if err := json.Unmarshal(raw, value); err != nil {
		return nil, errors.Wrapf(err, "decode slot %s", slot)
	}

	return value, nil
}

func writeSlot(ctx context.Context, s *Store, slot string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode slot %s", slot)
	}

	return s.set(ctx, slot, raw)
}

// sameCalendarDay reports whether the epoch-millis timestamp falls on the
// same local calendar date as now.
func sameCalendarDay(tsMillis int64, now time.Time) bool {
	y1, m1, d1 := time.UnixMilli(tsMillis).Date()
	y2, m2, d2 := now.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

// Location reads the undated geocoded-city slot.
func (s *Store) Location(ctx context.Context) (*entity.Location, error) {
	return readSlot[entity.Location](ctx, s, repository.SlotLocation)
}

// SaveLocation overwrites the geocoded-city slot wholesale.
func (s *Store) SaveLocation(ctx context.Context, loc *entity.Location) error {
	return writeSlot(ctx, s, repository.SlotLocation, loc)
}

// HomeAttractions reads the dated nearby-attraction snapshot, treating an
// entry stamped on a different calendar day as absent.
func (s *Store) HomeAttractions(ctx context.Context) (*entity.AttractionCache, error) {
	cache, err := readSlot[entity.AttractionCache](ctx, s, repository.SlotHomeAttractions)
	if err != nil || cache == nil {
		return nil, err
	}

	if !sameCalendarDay(cache.Timestamp, s.now()) {
		s.logger.Debug("attraction cache expired", slog.Int64("timestamp", cache.Timestamp))

		return nil, nil
	}

	return cache, nil
}

// SaveHomeAttractions stamps the snapshot with the current time and writes
// it wholesale.
func (s *Store) SaveHomeAttractions(ctx context.Context, cache *entity.AttractionCache) error {
	cache.Timestamp = s.now().UnixMilli()

	return writeSlot(ctx, s, repository.SlotHomeAttractions, cache)
}

// HotDestinations reads the dated hot-destination snapshot.
func (s *Store) HotDestinations(ctx context.Context) ([]entity.Destination, error) {
	cache, err := readSlot[entity.DestinationCache](ctx, s, repository.SlotHotDestinations)
	if err != nil || cache == nil {
		return nil, err
	}

	if !sameCalendarDay(cache.Timestamp, s.now()) {
		s.logger.Debug("destination cache expired", slog.Int64("timestamp", cache.Timestamp))

		return nil, nil
	}

	return cache.Destinations, nil
}

// SaveHotDestinations stamps and writes the hot-destination snapshot.
func (s *Store) SaveHotDestinations(ctx context.Context, destinations []entity.Destination) error {
	cache := entity.DestinationCache{
		Destinations: destinations,
		Timestamp:    s.now().UnixMilli(),
	}

	return writeSlot(ctx, s, repository.SlotHotDestinations, cache)
}

// UserInfo reads the cached login state.
func (s *Store) UserInfo(ctx context.Context) (*entity.UserInfo, error) {
	return readSlot[entity.UserInfo](ctx, s, repository.SlotUserInfo)
}

// SaveUserInfo overwrites the login state.
func (s *Store) SaveUserInfo(ctx context.Context, info *entity.UserInfo) error {
	return writeSlot(ctx, s, repository.SlotUserInfo, info)
}

// RemoveUserInfo logs the user out locally.
func (s *Store) RemoveUserInfo(ctx context.Context) error {
	return s.remove(ctx, repository.SlotUserInfo)
}

// Token returns the cached bearer token, or "" when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	info, err := s.UserInfo(ctx)
	if err != nil || info == nil {
		return "", err
	}

	return info.Token, nil
}

// PlanList reads the locally kept plan list.
func (s *Store) PlanList(ctx context.Context) ([]entity.Plan, error) {
	plans, err := readSlot[[]entity.Plan](ctx, s, repository.SlotPlanList)
	if err != nil || plans == nil {
		return nil, err
	}

	return *plans, nil
}

// SavePlanList overwrites the plan list wholesale.
func (s *Store) SavePlanList(ctx context.Context, plans []entity.Plan) error {
	return writeSlot(ctx, s, repository.SlotPlanList, plans)
}

// AddPlan prepends a plan, newest first.
func (s *Store) AddPlan(ctx context.Context, plan entity.Plan) error {
	plans, err := s.PlanList(ctx)
	if err != nil {
		return err
	}

	return s.SavePlanList(ctx, append([]entity.Plan{plan}, plans...))
}

// CurrentPlan reads the in-progress plan slot.
func (s *Store) CurrentPlan(ctx context.Context) (*entity.Plan, error) {
	return readSlot[entity.Plan](ctx, s, repository.SlotCurrentPlan)
}

// SetCurrentPlan overwrites the in-progress plan slot.
func (s *Store) SetCurrentPlan(ctx context.Context, plan *entity.Plan) error {
	return writeSlot(ctx, s, repository.SlotCurrentPlan, plan)
}

// TrackList reads the locally kept track list.
func (s *Store) TrackList(ctx context.Context) ([]entity.Track, error) {
	tracks, err := readSlot[[]entity.Track](ctx, s, repository.SlotTrackList)
	if err != nil || tracks == nil {
		return nil, err
	}

	return *tracks, nil
}

// SaveTrackList overwrites the track list wholesale.
func (s *Store) SaveTrackList(ctx context.Context, tracks []entity.Track) error {
	return writeSlot(ctx, s, repository.SlotTrackList, tracks)
}

// AddTrack prepends a track, newest first.
func (s *Store) AddTrack(ctx context.Context, track entity.Track) error {
	tracks, err := s.TrackList(ctx)
	if err != nil {
		return err
	}

	return s.SaveTrackList(ctx, append([]entity.Track{track}, tracks...))
}

// CurrentTrack reads the in-progress track slot.
func (s *Store) CurrentTrack(ctx context.Context) (*entity.Track, error) {
	return readSlot[entity.Track](ctx, s, repository.SlotCurrentTrack)
}

// SetCurrentTrack overwrites the in-progress track slot.
func (s *Store) SetCurrentTrack(ctx context.Context, track *entity.Track) error {
	return writeSlot(ctx, s, repository.SlotCurrentTrack, track)
}

// RemoveCurrentTrack clears the in-progress track slot.
func (s *Store) RemoveCurrentTrack(ctx context.Context) error {
	return s.remove(ctx, repository.SlotCurrentTrack)
}

// PostcardList reads the locally kept postcard list.
func (s *Store) PostcardList(ctx context.Context) ([]entity.Postcard, error) {
	postcards, err := readSlot[[]entity.Postcard](ctx, s, repository.SlotPostcardList)
	if err != nil || postcards == nil {
		return nil, err
	}

	return *postcards, nil
}

// SavePostcardList overwrites the postcard list wholesale.
func (s *Store) SavePostcardList(ctx context.Context, postcards []entity.Postcard) error {
	return writeSlot(ctx, s, repository.SlotPostcardList, postcards)
}

// AddPostcard prepends a postcard, newest first.
func (s *Store) AddPostcard(ctx context.Context, postcard entity.Postcard) error {
	postcards, err := s.PostcardList(ctx)
	if err != nil {
		return err
	}

	return s.SavePostcardList(ctx, append([]entity.Postcard{postcard}, postcards...))
}

// ClearAll erases every slot, including the login state, in one transaction.
func (s *Store) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM slots")

	return errors.Wrap(err, "clear slots")
}
