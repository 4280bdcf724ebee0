package chapter

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"sync"
)

var _ chapterRepo = &chapterRepoMock{}

type chapterRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Chapter, error)
	ListVisibleFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Chapter, error)
	CreateFunc      func(ctx context.Context, c *domain.Chapter) (*domain.Chapter, error)
	UpdateFunc      func(ctx context.Context, id uuid.UUID, params domain.ChapterUpdateParams) (*domain.Chapter, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListVisible []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Chapter
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.ChapterUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockListVisible sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *chapterRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chapter, error) {
	if mock.GetByIDFunc == nil {
		panic("chapterRepoMock.GetByIDFunc: method is nil but chapterRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *chapterRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *chapterRepoMock) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Chapter, error) {
	if mock.ListVisibleFunc == nil {
		panic("chapterRepoMock.ListVisibleFunc: method is nil but chapterRepo.ListVisible was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListVisible.Lock()
	mock.calls.ListVisible = append(mock.calls.ListVisible, callInfo)
	mock.lockListVisible.Unlock()
	return mock.ListVisibleFunc(ctx, userID)
}

func (mock *chapterRepoMock) ListVisibleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListVisible.RLock()
	calls := mock.calls.ListVisible
	mock.lockListVisible.RUnlock()
	return calls
}

func (mock *chapterRepoMock) Create(ctx context.Context, c *domain.Chapter) (*domain.Chapter, error) {
	if mock.CreateFunc == nil {
		panic("chapterRepoMock.CreateFunc: method is nil but chapterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Chapter
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *chapterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Chapter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *chapterRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.ChapterUpdateParams) (*domain.Chapter, error) {
	if mock.UpdateFunc == nil {
		panic("chapterRepoMock.UpdateFunc: method is nil but chapterRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.ChapterUpdateParams
	}{
		Ctx:    ctx,
		ID:     id,
		Params: params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *chapterRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.ChapterUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *chapterRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("chapterRepoMock.DeleteFunc: method is nil but chapterRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *chapterRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
