package learning

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"sync"
)

var _ learningRepo = &learningRepoMock{}

type learningRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.LearningData, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.LearningData, error)
	CreateFunc     func(ctx context.Context, d *domain.LearningData) (*domain.LearningData, error)
	SetLearnedFunc func(ctx context.Context, id uuid.UUID, learned bool) (*domain.LearningData, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			D   *domain.LearningData
		}
		SetLearned []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Learned bool
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockListByUser sync.RWMutex
	lockCreate     sync.RWMutex
	lockSetLearned sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *learningRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.LearningData, error) {
	if mock.GetByIDFunc == nil {
		panic("learningRepoMock.GetByIDFunc: method is nil but learningRepo.GetByID was just called")
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

func (mock *learningRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *learningRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LearningData, error) {
	if mock.ListByUserFunc == nil {
		panic("learningRepoMock.ListByUserFunc: method is nil but learningRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *learningRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *learningRepoMock) Create(ctx context.Context, d *domain.LearningData) (*domain.LearningData, error) {
	if mock.CreateFunc == nil {
		panic("learningRepoMock.CreateFunc: method is nil but learningRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.LearningData
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *learningRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   *domain.LearningData
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *learningRepoMock) SetLearned(ctx context.Context, id uuid.UUID, learned bool) (*domain.LearningData, error) {
	if mock.SetLearnedFunc == nil {
		panic("learningRepoMock.SetLearnedFunc: method is nil but learningRepo.SetLearned was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Learned bool
	}{
		Ctx:     ctx,
		ID:      id,
		Learned: learned,
	}
	mock.lockSetLearned.Lock()
	mock.calls.SetLearned = append(mock.calls.SetLearned, callInfo)
	mock.lockSetLearned.Unlock()
	return mock.SetLearnedFunc(ctx, id, learned)
}

func (mock *learningRepoMock) SetLearnedCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Learned bool
} {
	mock.lockSetLearned.RLock()
	calls := mock.calls.SetLearned
	mock.lockSetLearned.RUnlock()
	return calls
}

func (mock *learningRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("learningRepoMock.DeleteFunc: method is nil but learningRepo.Delete was just called")
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

func (mock *learningRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
