package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
)

// Tracker owns the persisted collections and runs every mutation against
// the injected store. It assumes a single writer.
type Tracker struct {
	store store.Store
	now   func() time.Time
	log   *slog.Logger
	newID func() string
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(fn func() string) Option {
	return func(t *Tracker) {
		if fn != nil {
			t.newID = fn
		}
	}
}

func NewTracker(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: s,
		now:   time.Now,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID: func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) Close() error {
	return t.store.Close()
}

func (t *Tracker) loadProfile(ctx context.Context) (*model.UserProfile, error) {
	var p model.UserProfile
	ok, err := store.Load(ctx, t.store, store.KeyUser, &p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *Tracker) loadFood(ctx context.Context) ([]model.FoodEntry, error) {
	var items []model.FoodEntry
	if _, err := store.Load(ctx, t.store, store.KeyFoodEntries, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *Tracker) loadWorkouts(ctx context.Context) ([]model.WorkoutEntry, error) {
	var items []model.WorkoutEntry
	if _, err := store.Load(ctx, t.store, store.KeyWorkoutEntries, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *Tracker) loadWeights(ctx context.Context) ([]model.WeightEntry, error) {
	var items []model.WeightEntry
	if _, err := store.Load(ctx, t.store, store.KeyWeightEntries, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *Tracker) save(ctx context.Context, key string, v any, count int) error {
	if err := store.Save(ctx, t.store, key, v); err != nil {
		t.log.Error("store write failed", "key", key, "err", err)
		return err
	}
	t.log.Debug("store write", "key", key, "count", count)
	return nil
}

func (t *Tracker) Dashboard(ctx context.Context) (*DashboardReport, error) {
	profile, err := t.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	food, err := t.loadFood(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := t.loadWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	report := BuildDashboard(profile, food, workouts, t.now())
	return &report, nil
}

func (t *Tracker) Progress(ctx context.Context, windowDays int) (*ProgressReport, error) {
	if windowDays <= 0 {
		return nil, invalidf("window must be > 0 days")
	}
	food, err := t.loadFood(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := t.loadWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	weights, err := t.loadWeights(ctx)
	if err != nil {
		return nil, err
	}
	report := BuildProgress(food, workouts, weights, windowDays, t.now())
	return &report, nil
}

func (t *Tracker) Health(ctx context.Context) (*HealthReport, error) {
	profile, err := t.Profile(ctx)
	if err != nil {
		return nil, err
	}
	report := BuildHealthReport(*profile)
	return &report, nil
}

// EntryFilter narrows list results. Date is YYYY-MM-DD in the tracker clock's
// location; Limit <= 0 means no limit.
type EntryFilter struct {
	Date  string
	Limit int
}

func filterEntries[T any](items []T, f EntryFilter, loc *time.Location, at func(T) time.Time) ([]T, error) {
	date := strings.TrimSpace(f.Date)
	if date != "" {
		if _, err := time.ParseInLocation(dateLayout, date, loc); err != nil {
			return nil, invalidf("date %q must be YYYY-MM-DD", f.Date)
		}
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if date != "" && dayKey(at(it).In(loc)) != date {
			continue
		}
		out = append(out, it)
	}
	sortNewestFirst(out, at)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func sortNewestFirst[T any](items []T, at func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return at(items[i]).After(at(items[j]))
	})
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}

func (t *Tracker) timestampOrNow(at time.Time) time.Time {
	if at.IsZero() {
		return t.now()
	}
	return at
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
