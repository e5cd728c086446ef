package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func newQuestionService(repo *fakeQuestions, events EventPublisher) *QuestionService {
	categories := NewCategoryService(defaultCategoryRepo(), zap.NewNop())
	return NewQuestionService(repo, categories, events, zap.NewNop())
}

func TestListQuestions(t *testing.T) {
	repo := newFakeQuestions()
	for i := 1; i <= 15; i++ {
		repo.Create(context.Background(), question(fmt.Sprintf("Q%d", i), 1))
	}
	svc := newQuestionService(repo, nil)

	page, err := svc.ListQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 5)
	assert.Equal(t, 11, page.Questions[0].ID)
	assert.Equal(t, 15, page.TotalQuestions)
	assert.Len(t, page.Categories, 3)

	_, err = svc.ListQuestions(context.Background(), 3)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestListQuestionsStoreError(t *testing.T) {
	storeErr := errors.New("timeout")
	repo := newFakeQuestions(question("Q", 1))
	repo.err = storeErr
	svc := newQuestionService(repo, nil)

	_, err := svc.ListQuestions(context.Background(), 1)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrPageNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	events := &recordingPublisher{}
	repo := newFakeQuestions(question("Q1", 1), question("Q2", 1))
	svc := newQuestionService(repo, events)

	require.NoError(t, svc.DeleteQuestion(context.Background(), 1))
	assert.Len(t, repo.questions, 1)
	assert.Equal(t, []event{{Type: EventQuestionDeleted, Payload: map[string]int{"id": 1}}}, events.events)

	err := svc.DeleteQuestion(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	assert.Len(t, events.events, 1)
}

func TestCreateQuestion(t *testing.T) {
	events := &recordingPublisher{}
	repo := newFakeQuestions(question("existing", 1))
	svc := newQuestionService(repo, events)

	created, total, err := svc.CreateQuestion(context.Background(), NewQuestion{
		Question:   "What is the largest planet?",
		Answer:     "Jupiter",
		Category:   categoryRef(1),
		Difficulty: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.Equal(t, domain.IntPtr(1), created.Category)
	assert.Equal(t, 2, total)
	require.Len(t, events.events, 1)
	assert.Equal(t, EventQuestionCreated, events.events[0].Type)
	assert.Same(t, created, events.events[0].Payload)
}

func TestCreateQuestionInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input NewQuestion
	}{
		{"empty question", NewQuestion{Answer: "A", Difficulty: 1}},
		{"empty answer", NewQuestion{Question: "Q", Difficulty: 1}},
		{"no difficulty", NewQuestion{Question: "Q", Answer: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeQuestions()
			svc := newQuestionService(repo, nil)

			_, _, err := svc.CreateQuestion(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidQuestion)
			assert.Empty(t, repo.questions)
		})
	}
}

func TestCreateQuestionStoreError(t *testing.T) {
	storeErr := errors.New("disk full")
	repo := newFakeQuestions()
	repo.err = storeErr
	events := &recordingPublisher{}
	svc := newQuestionService(repo, events)

	_, _, err := svc.CreateQuestion(context.Background(), NewQuestion{Question: "Q", Answer: "A", Difficulty: 1})
	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, events.events)
}

func TestBulkCreateQuestions(t *testing.T) {
	events := &recordingPublisher{}
	repo := newFakeQuestions()
	svc := newQuestionService(repo, events)

	created, total, err := svc.BulkCreateQuestions(context.Background(), []NewQuestion{
		{Question: "Q1", Answer: "A1", Difficulty: 1},
		{Question: "Q2", Answer: "A2", Category: categoryRef(3), Difficulty: 4},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, 2, total)
	assert.Len(t, events.events, 2)

	_, _, err = svc.BulkCreateQuestions(context.Background(), []NewQuestion{
		{Question: "Q3", Answer: "A3", Difficulty: 1},
		{Question: "Q4", Difficulty: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidQuestion)
	assert.Len(t, repo.questions, 2)

	_, _, err = svc.BulkCreateQuestions(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidQuestion)
}

func TestSearchQuestions(t *testing.T) {
	repo := newFakeQuestions(
		question("What is the Heaviest organ?", 1),
		question("Which organ filters blood?", 1),
		question("Who discovered penicillin?", 1),
	)
	svc := newQuestionService(repo, nil)

	found, err := svc.SearchQuestions(context.Background(), "ORGAN")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchQuestions(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, found, 3)
}

func TestQuestionsByCategory(t *testing.T) {
	repo := newFakeQuestions(
		question("Q1", 1),
		question("Q2", 2),
		question("Q3", 1),
	)
	svc := newQuestionService(repo, nil)

	result, err := svc.QuestionsByCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, result.Questions, 2)
	assert.Equal(t, 1, result.CurrentCategory)
	// Counts every question, not only category 1's
	assert.Equal(t, 3, result.TotalQuestions)

	_, err = svc.QuestionsByCategory(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
