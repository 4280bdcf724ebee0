package user

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"sync"
)

var _ learningRepo = &learningRepoMock{}

type learningRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.LearningData, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
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
