package auth

import (
	"github.com/heartmarshall/vocabulary-backend/internal/auth"
	"sync"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	AccessTokenFunc      func(id auth.Identity) (string, error)
	NewRefreshTokenFunc  func() (auth.RefreshToken, error)
	ParseAccessTokenFunc func(token string) (auth.Identity, error)

	calls struct {
		AccessToken []struct {
			ID auth.Identity
		}
		NewRefreshToken []struct{}
		ParseAccessToken []struct {
			Token string
		}
	}
	lockAccessToken      sync.RWMutex
	lockNewRefreshToken  sync.RWMutex
	lockParseAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) AccessToken(id auth.Identity) (string, error) {
	if mock.AccessTokenFunc == nil {
		panic("tokenIssuerMock.AccessTokenFunc: method is nil but tokenIssuer.AccessToken was just called")
	}
	callInfo := struct {
		ID auth.Identity
	}{
		ID: id,
	}
	mock.lockAccessToken.Lock()
	mock.calls.AccessToken = append(mock.calls.AccessToken, callInfo)
	mock.lockAccessToken.Unlock()
	return mock.AccessTokenFunc(id)
}

func (mock *tokenIssuerMock) AccessTokenCalls() []struct {
	ID auth.Identity
} {
	mock.lockAccessToken.RLock()
	calls := mock.calls.AccessToken
	mock.lockAccessToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) NewRefreshToken() (auth.RefreshToken, error) {
	if mock.NewRefreshTokenFunc == nil {
		panic("tokenIssuerMock.NewRefreshTokenFunc: method is nil but tokenIssuer.NewRefreshToken was just called")
	}
	mock.lockNewRefreshToken.Lock()
	mock.calls.NewRefreshToken = append(mock.calls.NewRefreshToken, struct{}{})
	mock.lockNewRefreshToken.Unlock()
	return mock.NewRefreshTokenFunc()
}

func (mock *tokenIssuerMock) NewRefreshTokenCalls() []struct{} {
	mock.lockNewRefreshToken.RLock()
	calls := mock.calls.NewRefreshToken
	mock.lockNewRefreshToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) ParseAccessToken(token string) (auth.Identity, error) {
	if mock.ParseAccessTokenFunc == nil {
		panic("tokenIssuerMock.ParseAccessTokenFunc: method is nil but tokenIssuer.ParseAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockParseAccessToken.Lock()
	mock.calls.ParseAccessToken = append(mock.calls.ParseAccessToken, callInfo)
	mock.lockParseAccessToken.Unlock()
	return mock.ParseAccessTokenFunc(token)
}

func (mock *tokenIssuerMock) ParseAccessTokenCalls() []struct {
	Token string
} {
	mock.lockParseAccessToken.RLock()
	calls := mock.calls.ParseAccessToken
	mock.lockParseAccessToken.RUnlock()
	return calls
}
