package interchange

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Andersonspita/tempo-pago-dash/internal/model"
)

// Version tags every exported backup. There is no version-gated behavior
// yet; artifacts without the tag are accepted as compatible.
const Version = "1.0"

// Backup is the full-fidelity interchange document: the verbatim entry
// collection plus settings, round-trip exact.
type Backup struct {
	Entries    []model.TimeEntry `json:"entries"`
	Settings   model.Settings    `json:"settings"`
	ExportDate string            `json:"exportDate"`
	Version    string            `json:"version"`
}

// ImportError reports a rejected backup artifact. The import is
// all-or-nothing: a rejected artifact leaves existing state untouched.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid backup: %s: %v", e.Reason, e.Err)
	}
	return "invalid backup: " + e.Reason
}

func (e *ImportError) Unwrap() error { return e.Err }

// ExportBackup serializes entries and settings into an indented backup
// document stamped with the export time.
func ExportBackup(entries []model.TimeEntry, settings model.Settings, now time.Time) ([]byte, error) {
	if entries == nil {
		entries = []model.TimeEntry{}
	}
	b := Backup{
		Entries:    entries,
		Settings:   settings,
		ExportDate: now.Format(time.RFC3339),
		Version:    Version,
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return data, nil
}

// ImportBackup parses a backup artifact. The schema check is shallow: the
// document must carry an entries array; unknown fields are ignored and a
// missing settings record falls back to the default rate. Any structural
// failure yields an *ImportError.
func ImportBackup(data []byte) ([]model.TimeEntry, model.Settings, error) {
	var raw struct {
		Entries  json.RawMessage `json:"entries"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, model.Settings{}, &ImportError{Reason: "not a valid backup document", Err: err}
	}
	if len(raw.Entries) == 0 {
		return nil, model.Settings{}, &ImportError{Reason: "missing entries field"}
	}

	var entries []model.TimeEntry
	if err := json.Unmarshal(raw.Entries, &entries); err != nil {
		return nil, model.Settings{}, &ImportError{Reason: "entries is not a list", Err: err}
	}
	if entries == nil {
		// "entries": null is not a list either.
		return nil, model.Settings{}, &ImportError{Reason: "entries is not a list"}
	}

	settings := model.DefaultSettings()
	if len(raw.Settings) > 0 && string(raw.Settings) != "null" {
		if err := json.Unmarshal(raw.Settings, &settings); err != nil {
			return nil, model.Settings{}, &ImportError{Reason: "malformed settings", Err: err}
		}
		if settings.DefaultHourlyRate == 0 {
			settings.DefaultHourlyRate = model.DefaultHourlyRate
		}
	}

	return entries, settings, nil
}

// BackupFilename embeds the export date, e.g.
// "backup-controle-horas-2024-01-31.json".
func BackupFilename(now time.Time) string {
	return "backup-controle-horas-" + now.Format("2006-01-02") + ".json"
}
