package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/wordprops"
	"sync"
)

var _ wordPropsService = &wordPropsServiceMock{}

type wordPropsServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.WordProperties, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error)
	CreateFunc func(ctx context.Context, input wordprops.CreateInput) (*domain.WordProperties, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input wordprops.UpdateInput) (*domain.WordProperties, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input wordprops.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input wordprops.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *wordPropsServiceMock) List(ctx context.Context) ([]domain.WordProperties, error) {
	if mock.ListFunc == nil {
		panic("wordPropsServiceMock.ListFunc: method is nil but wordPropsService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *wordPropsServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordPropsServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.WordProperties, error) {
	if mock.GetFunc == nil {
		panic("wordPropsServiceMock.GetFunc: method is nil but wordPropsService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *wordPropsServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *wordPropsServiceMock) Create(ctx context.Context, input wordprops.CreateInput) (*domain.WordProperties, error) {
	if mock.CreateFunc == nil {
		panic("wordPropsServiceMock.CreateFunc: method is nil but wordPropsService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input wordprops.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *wordPropsServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input wordprops.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordPropsServiceMock) Update(ctx context.Context, id uuid.UUID, input wordprops.UpdateInput) (*domain.WordProperties, error) {
	if mock.UpdateFunc == nil {
		panic("wordPropsServiceMock.UpdateFunc: method is nil but wordPropsService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input wordprops.UpdateInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *wordPropsServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input wordprops.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordPropsServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordPropsServiceMock.DeleteFunc: method is nil but wordPropsService.Delete was just called")
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

func (mock *wordPropsServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
