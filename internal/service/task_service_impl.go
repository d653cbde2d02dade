package service

import (
	"context"
	"fmt"

	"github.com/jvkuechen/secguard/internal/catalog"
	"github.com/jvkuechen/secguard/internal/domain"
	"github.com/jvkuechen/secguard/internal/recommend"
	"github.com/jvkuechen/secguard/internal/repository"
)

type taskService struct {
	state repository.StateRepo
}

// NewTaskService creates a TaskService over the state repo.
func NewTaskService(state repository.StateRepo) TaskService {
	return &taskService{state: state}
}

func (s *taskService) Recommended(ctx context.Context) ([]domain.Task, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	return recommend.Tasks(st.Answers, st.CompletedTasks, st.DismissedTasks), nil
}

func (s *taskService) AllWithStatus(ctx context.Context) ([]domain.TaskStatus, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	return recommend.AllWithStatus(st.Answers, st.CompletedTasks, st.DismissedTasks), nil
}

func (s *taskService) TopPriority(ctx context.Context) (*domain.Task, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	task, ok := recommend.TopPriority(st.Answers, st.CompletedTasks, st.DismissedTasks)
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (s *taskService) Progress(ctx context.Context) (recommend.Progress, error) {
	st, err := s.state.Load(ctx)
	if err != nil {
		return recommend.Progress{}, err
	}
	return recommend.Stats(st.Answers, st.CompletedTasks, st.DismissedTasks), nil
}

func (s *taskService) Complete(ctx context.Context, taskID string) error {
	if err := s.requireTask(taskID); err != nil {
		return err
	}
	return s.state.MarkCompleted(ctx, taskID)
}

func (s *taskService) Reopen(ctx context.Context, taskID string) error {
	if err := s.requireTask(taskID); err != nil {
		return err
	}
	return s.state.ClearMark(ctx, taskID)
}

func (s *taskService) Dismiss(ctx context.Context, taskID string) error {
	if err := s.requireTask(taskID); err != nil {
		return err
	}
	return s.state.MarkDismissed(ctx, taskID)
}

func (s *taskService) requireTask(taskID string) error {
	if _, ok := catalog.TaskByID(taskID); !ok {
		return fmt.Errorf("task %s: %w", taskID, repository.ErrNotFound)
	}
	return nil
}
