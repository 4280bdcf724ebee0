package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"github.com/heartmarshall/vocabulary-backend/internal/service/chapter"
	"sync"
)

var _ chapterService = &chapterServiceMock{}

type chapterServiceMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Chapter, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.ChapterDetail, error)
	SaveFunc   func(ctx context.Context, input chapter.SaveInput) (*chapter.SaveResult, error)
	ImportFunc func(ctx context.Context, input chapter.ImportInput) (*chapter.SaveResult, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input chapter.UpdateInput) (*domain.Chapter, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Save []struct {
			Ctx   context.Context
			Input chapter.SaveInput
		}
		Import []struct {
			Ctx   context.Context
			Input chapter.ImportInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input chapter.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockSave   sync.RWMutex
	lockImport sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *chapterServiceMock) List(ctx context.Context) ([]domain.Chapter, error) {
	if mock.ListFunc == nil {
		panic("chapterServiceMock.ListFunc: method is nil but chapterService.List was just called")
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

func (mock *chapterServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.ChapterDetail, error) {
	if mock.GetFunc == nil {
		panic("chapterServiceMock.GetFunc: method is nil but chapterService.Get was just called")
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

func (mock *chapterServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Save(ctx context.Context, input chapter.SaveInput) (*chapter.SaveResult, error) {
	if mock.SaveFunc == nil {
		panic("chapterServiceMock.SaveFunc: method is nil but chapterService.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.SaveInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, input)
}

func (mock *chapterServiceMock) SaveCalls() []struct {
	Ctx   context.Context
	Input chapter.SaveInput
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Import(ctx context.Context, input chapter.ImportInput) (*chapter.SaveResult, error) {
	if mock.ImportFunc == nil {
		panic("chapterServiceMock.ImportFunc: method is nil but chapterService.Import was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input chapter.ImportInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockImport.Lock()
	mock.calls.Import = append(mock.calls.Import, callInfo)
	mock.lockImport.Unlock()
	return mock.ImportFunc(ctx, input)
}

func (mock *chapterServiceMock) ImportCalls() []struct {
	Ctx   context.Context
	Input chapter.ImportInput
} {
	mock.lockImport.RLock()
	calls := mock.calls.Import
	mock.lockImport.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Update(ctx context.Context, id uuid.UUID, input chapter.UpdateInput) (*domain.Chapter, error) {
	if mock.UpdateFunc == nil {
		panic("chapterServiceMock.UpdateFunc: method is nil but chapterService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input chapter.UpdateInput
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

func (mock *chapterServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input chapter.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *chapterServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("chapterServiceMock.DeleteFunc: method is nil but chapterService.Delete was just called")
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

func (mock *chapterServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
