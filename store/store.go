// Package store connects to the data store and manages the history of
// completed phases
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/tomate/internal/apperr"
	"github.com/ayoisaiah/tomate/internal/models"
	"github.com/ayoisaiah/tomate/internal/osutil"
	"github.com/ayoisaiah/tomate/internal/timeutil"
)

const sessionBucket = "sessions"

var (
	errTomateRunning = &apperr.Error{
		Message: "is tomate already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open history database",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// UpdateSession stores sess under its start time.
func (c *Client) UpdateSession(sess *models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).
			Put(timeutil.ToKey(sess.StartTime), value)
	})
}

// GetSessions returns the sessions that started within [startTime, endTime]
// in chronological order.
func (c *Client) GetSessions(
	startTime, endTime time.Time,
) ([]*models.Session, error) {
	var sessions []*models.Session

	err := c.View(func(tx *bolt.Tx) error {
		return eachInRange(tx, startTime, endTime, func(_, v []byte) error {
			sess := &models.Session{}

			err := json.Unmarshal(v, sess)
			if err != nil {
				return err
			}

			sessions = append(sessions, sess)

			return nil
		})
	})

	return sessions, err
}

// DeleteSessions removes the sessions that started within
// [startTime, endTime].
func (c *Client) DeleteSessions(startTime, endTime time.Time) error {
	return c.Update(func(tx *bolt.Tx) error {
		var keys [][]byte

		err := eachInRange(tx, startTime, endTime, func(k, _ []byte) error {
			keys = append(keys, bytes.Clone(k))
			return nil
		})
		if err != nil {
			return err
		}

		b := tx.Bucket([]byte(sessionBucket))

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}

		return nil
	})
}

// eachInRange calls fn for every key/value pair whose key falls within the
// time bounds.
func eachInRange(
	tx *bolt.Tx,
	startTime, endTime time.Time,
	fn func(k, v []byte) error,
) error {
	cur := tx.Bucket([]byte(sessionBucket)).Cursor()

	lower := timeutil.ToKey(startTime)
	upper := timeutil.ToKey(endTime)

	for k, v := cur.Seek(lower); k != nil && bytes.Compare(k, upper) <= 0; k, v = cur.Next() {
		if err := fn(k, v); err != nil {
			return err
		}
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.DBPermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errTomateRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. The database stays
// locked until Close is called, which keeps a second timer from starting.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, 1*time.Second)
	if err != nil {
		return nil, err
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// InUse reports whether another process holds the lock on the database at
// dbPath. A missing database is never in use and is not created.
func InUse(dbPath string) (bool, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	db, err := openDB(dbPath, 100*time.Millisecond)
	if err == nil {
		return false, db.Close()
	}

	if errors.Is(err, errTomateRunning) {
		return true, nil
	}

	return false, err
}
