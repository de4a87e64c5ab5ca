package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

const (
	DefaultEndpointURL     = "http://127.0.0.1:26657/status"
	DefaultIntervalMinutes = 10

	keyTelegramToken = "telegramToken"
	keyInterval      = "autoSendInterval"
	keyRegion        = "region"
	keyEndpointURL   = "notificationEndpointURL"
)

var ErrInvalidInterval = errors.New("interval must not be negative")

type record struct {
	TelegramToken string
	Interval      int
	IntervalSet   bool
	Region        string
	EndpointURL   string
	raw           map[string]json.RawMessage
}

// Store keeps the settings file in memory and rewrites it on every change.
type Store struct {
	path string

	mx  sync.RWMutex
	rec record
}

func Load(path string) (*Store, error) {
	rec := record{raw: map[string]json.RawMessage{}}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read settings file: %w", err)
	default:
		if rec, err = decode(data); err != nil {
			return nil, fmt.Errorf("decode settings file %s: %w", path, err)
		}
	}

	return &Store{path: path, rec: rec}, nil
}

func (s *Store) TelegramToken() string {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.rec.TelegramToken
}

// DefaultInterval returns the interval in minutes used by a bare /on. Zero means auto send is not configured.
func (s *Store) DefaultInterval() int {
	s.mx.RLock()
	defer s.mx.RUnlock()
	if !s.rec.IntervalSet {
		return DefaultIntervalMinutes
	}
	return s.rec.Interval
}

// Region returns the canonical zone name or an empty string when unset.
func (s *Store) Region() string {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.rec.Region
}

func (s *Store) NotificationEndpointURL() string {
	s.mx.RLock()
	defer s.mx.RUnlock()
	if s.rec.EndpointURL == "" {
		return DefaultEndpointURL
	}
	return s.rec.EndpointURL
}

func (s *Store) SetRegion(input string) (Region, error) {
	region, ok := LookupRegion(input)
	if !ok {
		return Region{}, fmt.Errorf("%q: %w", input, ErrUnsupportedRegion)
	}

	err := s.update(func(rec *record) {
		rec.Region = region.Zone
	})
	if err != nil {
		return Region{}, err
	}

	return region, nil
}

func (s *Store) SetDefaultInterval(minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("%d: %w", minutes, ErrInvalidInterval)
	}

	return s.update(func(rec *record) {
		rec.Interval = minutes
		rec.IntervalSet = true
	})
}

func (s *Store) update(fn func(rec *record)) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	next := s.rec
	next.raw = maps.Clone(s.rec.raw)
	fn(&next)

	data, err := encode(next)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	s.rec = next
	return nil
}

func decode(data []byte) (record, error) {
	rec := record{raw: map[string]json.RawMessage{}}
	if err := json.Unmarshal(data, &rec.raw); err != nil {
		return rec, err
	}
	if rec.raw == nil {
		rec.raw = map[string]json.RawMessage{}
	}

	fields := []struct {
		key string
		dst any
	}{
		{keyTelegramToken, &rec.TelegramToken},
		{keyRegion, &rec.Region},
		{keyEndpointURL, &rec.EndpointURL},
		{keyInterval, &rec.Interval},
	}
	for _, f := range fields {
		v, ok := rec.raw[f.key]
		if !ok || string(v) == "null" {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return rec, fmt.Errorf("field %s: %w", f.key, err)
		}
		if f.key == keyInterval {
			rec.IntervalSet = true
		}
	}
	if rec.Interval < 0 {
		return rec, fmt.Errorf("field %s: %w", keyInterval, ErrInvalidInterval)
	}

	return rec, nil
}

func encode(rec record) ([]byte, error) {
	out := maps.Clone(rec.raw)
	if out == nil {
		out = map[string]json.RawMessage{}
	}

	set := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		out[key] = data
		return nil
	}

	if rec.TelegramToken != "" {
		if err := set(keyTelegramToken, rec.TelegramToken); err != nil {
			return nil, err
		}
	}
	if rec.IntervalSet {
		if err := set(keyInterval, rec.Interval); err != nil {
			return nil, err
		}
	}
	if rec.Region != "" {
		if err := set(keyRegion, rec.Region); err != nil {
			return nil, err
		}
	}
	if rec.EndpointURL != "" {
		if err := set(keyEndpointURL, rec.EndpointURL); err != nil {
			return nil, err
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

// writeFile replaces path through a synced temporary file so a crash never leaves a partial file behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
