package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"meeting-host-service/internal/domain"
	"meeting-host-service/internal/platform/obs"
	"meeting-host-service/internal/ports"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SQLRouteCache is a Postgres-backed cache for origin->destination route sets.
// It is used when a database is configured but Redis is not.
type SQLRouteCache struct {
	DB     *sql.DB
	TTL    time.Duration
	logger zerolog.Logger
	now    func() time.Time
}

func NewSQLRouteCache(db *sql.DB, ttl time.Duration, logger zerolog.Logger) *SQLRouteCache {
	return &SQLRouteCache{DB: db, TTL: ttl, logger: logger, now: time.Now}
}

// Fetch the cached route set for key. Rows older than the TTL count as a miss.
func (s *SQLRouteCache) GetRoutes(
	ctx context.Context,
	key ports.RouteKey,
) (_ []domain.Route, _ bool, err error) {
	defer obs.Time(ctx, s.logger, "routes.sqlcache.GetRoutes")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT routes, stored_at
	FROM route_cache
	WHERE cache_key = $1;
	`

	var payload []byte
	var storedAt time.Time
	err = s.DB.QueryRowContext(ctx, q, key.String()).Scan(&payload, &storedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache %s: query route_cache table: %w", key, err)
	}

	if s.TTL > 0 && s.now().Sub(storedAt) > s.TTL {
		return nil, false, nil
	}

	var routes []domain.Route
	if err := json.Unmarshal(payload, &routes); err != nil {
		return nil, false, fmt.Errorf("get route cache %s: decode: %w", key, err)
	}
	if routes == nil {
		routes = []domain.Route{}
	}

	return routes, true, nil
}

// Store the route set for key, replacing any previous value.
func (s *SQLRouteCache) PutRoutes(ctx context.Context, key ports.RouteKey, routes []domain.Route) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key.Origin) == "" || strings.TrimSpace(key.Destination) == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	if routes == nil {
		routes = []domain.Route{}
	}
	payload, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("insert route cache %s: encode: %w", key, err)
	}

	q := `
	INSERT INTO route_cache (cache_key, origin, destination, routes, stored_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (cache_key) DO UPDATE
	SET routes = EXCLUDED.routes,
		stored_at = EXCLUDED.stored_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, key.String(), key.Origin, key.Destination, payload, s.now().UTC()); err != nil {
		return fmt.Errorf("insert route cache %s: %w", key, err)
	}

	return nil
}

// Delete rows older than the TTL and return how many were removed.
func (s *SQLRouteCache) Prune(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("route cache: db is nil")
	}
	if s.TTL <= 0 {
		return 0, nil
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM route_cache WHERE stored_at < $1;`, s.now().Add(-s.TTL).UTC())
	if err != nil {
		return 0, fmt.Errorf("prune route cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune route cache: rows affected: %w", err)
	}
	return n, nil
}
