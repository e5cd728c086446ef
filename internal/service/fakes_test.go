package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

type fakeQuestions struct {
	questions []*domain.Question
	nextID    int
	err       error
}

func newFakeQuestions(questions ...*domain.Question) *fakeQuestions {
	f := &fakeQuestions{nextID: 1}
	for _, q := range questions {
		f.Create(context.Background(), q)
	}
	return f
}

func (f *fakeQuestions) List(ctx context.Context) ([]*domain.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.questions), nil
}

func (f *fakeQuestions) Count(ctx context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.questions), nil
}

func (f *fakeQuestions) GetByID(ctx context.Context, id int) (*domain.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, q := range f.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, domain.ErrQuestionNotFound
}

func (f *fakeQuestions) Create(ctx context.Context, question *domain.Question) error {
	if f.err != nil {
		return f.err
	}
	question.ID = f.nextID
	f.nextID++
	f.questions = append(f.questions, question)
	return nil
}

func (f *fakeQuestions) BulkCreate(ctx context.Context, questions []*domain.Question) error {
	if f.err != nil {
		return f.err
	}
	for _, q := range questions {
		f.Create(ctx, q)
	}
	return nil
}

func (f *fakeQuestions) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	for i, q := range f.questions {
		if q.ID == id {
			f.questions = slices.Delete(f.questions, i, i+1)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

func (f *fakeQuestions) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	return f.filter(func(q *domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), strings.ToLower(term))
	})
}

func (f *fakeQuestions) ListByCategory(ctx context.Context, categoryID int) ([]*domain.Question, error) {
	return f.ListByCategoryExcluding(ctx, categoryID, nil)
}

func (f *fakeQuestions) ListByCategoryExcluding(ctx context.Context, categoryID int, exclude []int) ([]*domain.Question, error) {
	return f.filter(func(q *domain.Question) bool {
		return q.Category != nil && *q.Category == categoryID && !slices.Contains(exclude, q.ID)
	})
}

func (f *fakeQuestions) filter(keep func(*domain.Question) bool) ([]*domain.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Question
	for _, q := range f.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeCategories struct {
	categories []*domain.Category
	err        error
	listCalls  int
}

func (f *fakeCategories) List(ctx context.Context) ([]*domain.Category, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeCategories) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

type memoryCache struct {
	categories map[int]string
	getErr     error
	setErr     error
	sets       int
}

func (m *memoryCache) Get(ctx context.Context) (map[int]string, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.categories == nil {
		return nil, cache.ErrMiss
	}
	return m.categories, nil
}

func (m *memoryCache) Set(ctx context.Context, categories map[int]string) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.categories = categories
	return nil
}

type event struct {
	Type    string
	Payload any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []event
}

func (r *recordingPublisher) Publish(eventType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{Type: eventType, Payload: payload})
}

func defaultCategoryRepo() *fakeCategories {
	return &fakeCategories{categories: []*domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}}
}

func question(text string, category int) *domain.Question {
	return &domain.Question{
		Question:   text,
		Answer:     "answer",
		Category:   domain.IntPtr(category),
		Difficulty: 1,
	}
}

func categoryRef(id int) *FlexInt {
	v := FlexInt(id)
	return &v
}
