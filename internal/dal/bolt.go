package dal

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"
)

var ErrBucketNotFound = errors.New("bucket not found")

type Clock interface {
	Now() time.Time
}

type BoltDB struct {
	db    *bbolt.DB
	clock Clock
}

// NewBoltDB wraps an already migrated database.
func NewBoltDB(db *bbolt.DB, clock Clock) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(subscriptionsBucket)) == nil {
			return fmt.Errorf("%s: %w", subscriptionsBucket, ErrBucketNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check buckets: %w", err)
	}

	return &BoltDB{
		db:    db,
		clock: clock,
	}, nil
}

func i64tob(id int64) []byte {
	return []byte(strconv.FormatInt(id, 10))
}
