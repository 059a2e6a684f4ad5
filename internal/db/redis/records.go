package redis

import (
	"context"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/multisearch/internal/db"
)

// FetchByIDs loads the records of location in one MGET round-trip.
// Keys that do not exist are skipped.
func (s *Store) FetchByIDs(ctx context.Context, location string, ids []string) ([][]byte, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(location, id)
	}

	cmd := s.b().Mget().Key(keys...).Build()
	arr, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpMGet, Err: err}
	}

	out := make([][]byte, 0, len(arr))
	for _, msg := range arr {
		if msg.IsNil() {
			continue
		}
		raw, err := msg.AsBytes()
		if err != nil {
			if rueidis.IsRedisNil(err) {
				continue
			}
			return nil, &db.Error{Op: db.OpMGet, Err: err}
		}
		out = append(out, raw)
	}
	return out, nil
}
