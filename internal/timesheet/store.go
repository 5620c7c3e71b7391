package timesheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
	"github.com/Andersonspita/tempo-pago-dash/internal/storage"
)

// Fixed logical keys in the durable store.
const (
	entriesKey  = "timesheet_entries"
	settingsKey = "timesheet_settings"
)

// Store owns the in-memory entry collection and settings, and every
// durable-persistence side effect. Each mutation persists the full
// collection before the in-memory snapshot is committed, so a failed
// write leaves the previous state intact.
type Store struct {
	kv    storage.KV
	now   func() time.Time
	newID func() string

	entries  []model.TimeEntry
	settings model.Settings
}

// New returns a Store persisting through kv. Load must be called before
// the first read or mutation.
func New(kv storage.KV) *Store {
	return &Store{
		kv:       kv,
		now:      time.Now,
		newID:    uuid.NewString,
		settings: model.DefaultSettings(),
	}
}

// EntryDraft holds the caller-supplied fields of a new entry. A zero
// HourlyRate means "use the configured default rate".
type EntryDraft struct {
	Date        string
	StartTime   string
	EndTime     string
	Description string
	IsPaid      bool
	HourlyRate  float64
}

// EntryPatch is a partial update; nil fields are left unchanged.
type EntryPatch struct {
	Date        *string
	StartTime   *string
	EndTime     *string
	Description *string
	IsPaid      *bool
	HourlyRate  *float64
}

// Load reads entries and settings from the durable store. Missing keys
// yield an empty collection and default settings. Malformed stored data
// leaves the store usable in its fallback state and is reported as a
// non-fatal error.
func (s *Store) Load() error {
	s.entries = nil
	s.settings = model.DefaultSettings()

	var loadErr error

	raw, ok, err := s.kv.Get(entriesKey)
	if err != nil {
		loadErr = fmt.Errorf("reading saved entries: %w", err)
	} else if ok {
		var entries []model.TimeEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			loadErr = fmt.Errorf("saved entries are corrupt, starting empty: %w", err)
		} else {
			s.entries = entries
		}
	}

	raw, ok, err = s.kv.Get(settingsKey)
	if err != nil {
		if loadErr == nil {
			loadErr = fmt.Errorf("reading saved settings: %w", err)
		}
	} else if ok {
		var settings model.Settings
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			if loadErr == nil {
				loadErr = fmt.Errorf("saved settings are corrupt, using defaults: %w", err)
			}
		} else {
			s.settings = settings
		}
	}

	return loadErr
}

// Entries returns a copy of the current snapshot. Order is insertion
// order; consumers sort as needed.
func (s *Store) Entries() []model.TimeEntry {
	return append([]model.TimeEntry(nil), s.entries...)
}

// Settings returns the current settings record.
func (s *Store) Settings() model.Settings {
	return s.settings
}

// Find returns the entry with the given id, if present.
func (s *Store) Find(id string) (model.TimeEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.TimeEntry{}, false
}

// Add creates an entry from the draft, resolving a zero rate to the
// configured default, persists the grown collection and returns the new
// entry.
func (s *Store) Add(draft EntryDraft) (model.TimeEntry, error) {
	rate := draft.HourlyRate
	if rate == 0 {
		rate = s.settings.DefaultHourlyRate
	}

	now := s.now().Format(time.RFC3339)
	entry := model.TimeEntry{
		ID:          s.newID(),
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Description: draft.Description,
		IsPaid:      draft.IsPaid,
		HourlyRate:  rate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := append(s.Entries(), entry)
	if err := s.persistEntries(next); err != nil {
		return model.TimeEntry{}, err
	}
	s.entries = next
	return entry, nil
}

// Update merges the patch into the entry with the given id and refreshes
// its UpdatedAt timestamp. An unknown id is a no-op reported as false.
func (s *Store) Update(id string, patch EntryPatch) (bool, error) {
	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	next := s.Entries()
	e := &next[idx]
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.StartTime != nil {
		e.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		e.EndTime = *patch.EndTime
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.IsPaid != nil {
		e.IsPaid = *patch.IsPaid
	}
	if patch.HourlyRate != nil {
		e.HourlyRate = *patch.HourlyRate
	}
	e.UpdatedAt = s.now().Format(time.RFC3339)

	if err := s.persistEntries(next); err != nil {
		return false, err
	}
	s.entries = next
	return true, nil
}

// Delete removes the entry with the given id. An unknown id is a no-op
// reported as false.
func (s *Store) Delete(id string) (bool, error) {
	next := make([]model.TimeEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(s.entries) {
		return false, nil
	}

	if err := s.persistEntries(next); err != nil {
		return false, err
	}
	s.entries = next
	return true, nil
}

// TogglePaid flips the payment flag of one entry. An unknown id is a
// no-op reported as false.
func (s *Store) TogglePaid(id string) (bool, error) {
	entry, ok := s.Find(id)
	if !ok {
		return false, nil
	}
	paid := !entry.IsPaid
	return s.Update(id, EntryPatch{IsPaid: &paid})
}

// SaveSettings replaces and persists the settings record. Value checks
// (such as a positive rate) are the caller's concern.
func (s *Store) SaveSettings(settings model.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.kv.Set(settingsKey, string(data)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	s.settings = settings
	return nil
}

// AdoptSnapshot replaces the whole state with an externally supplied
// collection, as produced by a backup import. A nil collection is
// rejected without touching the existing state. When settings is nil the
// current settings are kept.
func (s *Store) AdoptSnapshot(entries []model.TimeEntry, settings *model.Settings) error {
	if entries == nil {
		return errors.New("cannot adopt a nil entry collection")
	}

	next := append([]model.TimeEntry(nil), entries...)

	var settingsData []byte
	if settings != nil {
		data, err := json.Marshal(*settings)
		if err != nil {
			return fmt.Errorf("encoding settings: %w", err)
		}
		settingsData = data
	}

	// Both keys must change together. Remember the durable entries so the
	// first write can be undone when the second fails.
	prevEntries, hadEntries, err := s.kv.Get(entriesKey)
	if err != nil {
		return fmt.Errorf("reading saved entries: %w", err)
	}

	if err := s.persistEntries(next); err != nil {
		return err
	}
	if settingsData != nil {
		if err := s.kv.Set(settingsKey, string(settingsData)); err != nil {
			if hadEntries {
				_ = s.kv.Set(entriesKey, prevEntries)
			} else {
				_ = s.kv.Remove(entriesKey)
			}
			return fmt.Errorf("saving settings: %w", err)
		}
		s.settings = *settings
	}
	s.entries = next
	return nil
}

// Clear deletes every entry, persisting the empty collection.
func (s *Store) Clear() error {
	if err := s.persistEntries([]model.TimeEntry{}); err != nil {
		return err
	}
	s.entries = []model.TimeEntry{}
	return nil
}

func (s *Store) persistEntries(entries []model.TimeEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	if err := s.kv.Set(entriesKey, string(data)); err != nil {
		return fmt.Errorf("saving entries: %w", err)
	}
	return nil
}
