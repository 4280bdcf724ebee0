package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/word"
	"io"
	"sync"
)

var _ wordService = &wordServiceMock{}

type wordServiceMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListFunc   func(ctx context.Context, input word.ListInput) (*domain.Page[domain.Word], error)
	CreateFunc func(ctx context.Context, input word.WordInput) (*domain.Word, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input word.WordInput) (*domain.Word, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	ImportFunc func(ctx context.Context, r io.Reader) (*domain.WordImportResult, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input word.ListInput
		}
		Create []struct {
			Ctx   context.Context
			Input word.WordInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input word.WordInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Import []struct {
			Ctx context.Context
			R   io.Reader
		}
	}
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockImport sync.RWMutex
}

func (mock *wordServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetFunc == nil {
		panic("wordServiceMock.GetFunc: method is nil but wordService.Get was just called")
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

func (mock *wordServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *wordServiceMock) List(ctx context.Context, input word.ListInput) (*domain.Page[domain.Word], error) {
	if mock.ListFunc == nil {
		panic("wordServiceMock.ListFunc: method is nil but wordService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input word.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *wordServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input word.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wordServiceMock) Create(ctx context.Context, input word.WordInput) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordServiceMock.CreateFunc: method is nil but wordService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input word.WordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *wordServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input word.WordInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordServiceMock) Update(ctx context.Context, id uuid.UUID, input word.WordInput) (*domain.Word, error) {
	if mock.UpdateFunc == nil {
		panic("wordServiceMock.UpdateFunc: method is nil but wordService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input word.WordInput
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

func (mock *wordServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input word.WordInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *wordServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordServiceMock.DeleteFunc: method is nil but wordService.Delete was just called")
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

func (mock *wordServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wordServiceMock) Import(ctx context.Context, r io.Reader) (*domain.WordImportResult, error) {
	if mock.ImportFunc == nil {
		panic("wordServiceMock.ImportFunc: method is nil but wordService.Import was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   io.Reader
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, r)
}

func (mock *wordServiceMock) ImportCalls() []struct {
	Ctx context.Context
	R   io.Reader
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}
