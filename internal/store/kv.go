package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Keys owned by the tracker core. The kv table is shared with the widget
// keys below; every value is a whole-document JSON replacement.
const (
	KeyTasks         = "todo-tracker-tasks"
	KeyDailyData     = "todo-tracker-daily-data"
	KeyLastSavedDate = "last-saved-date"
	KeyEvents        = "todo-tracker-events"
	KeyLinks         = "todo-tracker-links"
)

func (s *Store) getKV(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get kv %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) setKV(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}

// loadJSON reads key into dst. A missing key or a value that fails to parse
// both leave dst untouched: malformed persisted data is treated as absent,
// never propagated as an error.
func (s *Store) loadJSON(key string, dst any) error {
	raw, ok, err := s.getKV(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return nil
	}
	return nil
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return s.setKV(key, string(data))
}

func (s *Store) LoadTasks() ([]Task, error) {
	var tasks []Task
	if err := s.loadJSON(KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) SaveTasks(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	return s.saveJSON(KeyTasks, tasks)
}

func (s *Store) LoadDays() ([]DayRecord, error) {
	var days []DayRecord
	if err := s.loadJSON(KeyDailyData, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (s *Store) SaveDays(days []DayRecord) error {
	if days == nil {
		days = []DayRecord{}
	}
	return s.saveJSON(KeyDailyData, days)
}

// LastSavedDate returns the last effective date a rollover was applied for,
// or "" when none has been recorded yet.
func (s *Store) LastSavedDate() (string, error) {
	var date string
	if err := s.loadJSON(KeyLastSavedDate, &date); err != nil {
		return "", err
	}
	return date, nil
}

func (s *Store) SetLastSavedDate(date string) error {
	return s.saveJSON(KeyLastSavedDate, date)
}

func (s *Store) LoadEvents() ([]Event, error) {
	var events []Event
	if err := s.loadJSON(KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) SaveEvents(events []Event) error {
	if events == nil {
		events = []Event{}
	}
	return s.saveJSON(KeyEvents, events)
}

func (s *Store) LoadLinks() ([]Link, error) {
	var links []Link
	if err := s.loadJSON(KeyLinks, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (s *Store) SaveLinks(links []Link) error {
	if links == nil {
		links = []Link{}
	}
	return s.saveJSON(KeyLinks, links)
}
