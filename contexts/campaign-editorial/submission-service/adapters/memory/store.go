package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brandbridge/contexts/campaign-editorial/submission-service/domain/entities"
	domainerrors "brandbridge/contexts/campaign-editorial/submission-service/domain/errors"
	"brandbridge/contexts/campaign-editorial/submission-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	tasks map[string]entities.Task
}

func NewStore(seed []entities.Task) *Store {
	tasks := make(map[string]entities.Task, len(seed))
	for _, item := range seed {
		task := cloneTask(item)
		task.CompletionRate = entities.CompletionPercent(task.Submissions)
		tasks[item.TaskID] = task
	}
	return &Store{tasks: tasks}
}

func (s *Store) CreateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; exists {
		return domainerrors.ErrTaskAlreadyExists
	}
	if hasDuplicateSubmissions(task.Submissions) {
		return domainerrors.ErrDuplicateSubmissionID
	}
	s.tasks[task.TaskID] = cloneTask(task)
	return nil
}

func (s *Store) UpdateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; !exists {
		return domainerrors.ErrTaskNotFound
	}
	if hasDuplicateSubmissions(task.Submissions) {
		return domainerrors.ErrDuplicateSubmissionID
	}
	s.tasks[task.TaskID] = cloneTask(task)
	return nil
}

func (s *Store) GetTask(_ context.Context, taskID string) (entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.tasks[strings.TrimSpace(taskID)]
	if !exists {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return cloneTask(item), nil
}

func (s *Store) ListTasks(_ context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if strings.TrimSpace(filter.BrandID) != "" && task.BrandID != strings.TrimSpace(filter.BrandID) {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		items = append(items, cloneTask(task))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].TaskID < items[j].TaskID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func hasDuplicateSubmissions(items []entities.Submission) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, exists := seen[item.SubmissionID]; exists {
			return true
		}
		seen[item.SubmissionID] = struct{}{}
	}
	return false
}

func cloneTask(t entities.Task) entities.Task {
	t.Submissions = append([]entities.Submission(nil), t.Submissions...)
	return t
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
