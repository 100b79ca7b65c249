package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"workwise/internal/storage"
)

// DayKey is the tracker bucket key format.
const DayKey = "2006-01-02"

func (s *Service) todayKey() string {
	return s.now().Format(DayKey)
}

// Today returns the current calendar day's bucket. Historical days stay in
// storage but are never surfaced.
func (s *Service) Today(ctx context.Context) (string, storage.TrackerDay, error) {
	key := s.todayKey()
	day, err := s.tracker.Day(ctx, key)
	return key, day, err
}

// AddTask creates today's bucket lazily and prepends a fresh task.
func (s *Service) AddTask(ctx context.Context, title string) (storage.TrackerTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return storage.TrackerTask{}, MissingFieldError{Field: "task title"}
	}

	days, err := s.tracker.Load(ctx)
	if err != nil {
		return storage.TrackerTask{}, err
	}
	key := s.todayKey()
	day := days[key]
	task := storage.TrackerTask{ID: uuid.NewString(), Title: title}
	day.Tasks = append([]storage.TrackerTask{task}, day.Tasks...)
	days[key] = day
	if err := s.tracker.Save(ctx, days); err != nil {
		return storage.TrackerTask{}, err
	}
	return task, nil
}

// ToggleTask flips done on the exact task in the given day's bucket.
// An unknown date or id toggles nothing and writes nothing.
func (s *Service) ToggleTask(ctx context.Context, date, taskID string) (bool, error) {
	days, err := s.tracker.Load(ctx)
	if err != nil {
		return false, err
	}
	day, ok := days[date]
	if !ok {
		return false, nil
	}
	for i := range day.Tasks {
		if day.Tasks[i].ID == taskID {
			day.Tasks[i].Done = !day.Tasks[i].Done
			days[date] = day
			if err := s.tracker.Save(ctx, days); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// SetNotes replaces today's free-form notes.
func (s *Service) SetNotes(ctx context.Context, notes string) error {
	days, err := s.tracker.Load(ctx)
	if err != nil {
		return err
	}
	key := s.todayKey()
	day := days[key]
	day.Notes = notes
	days[key] = day
	return s.tracker.Save(ctx, days)
}
