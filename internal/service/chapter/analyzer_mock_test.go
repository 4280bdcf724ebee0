package chapter

import (
	"context"
	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	"sync"
)

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeFunc func(ctx context.Context, text string, source domain.Language, target domain.Language) (*analysis.Result, error)

	calls struct {
		Analyze []struct {
			Ctx    context.Context
			Text   string
			Source domain.Language
			Target domain.Language
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *analyzerMock) Analyze(ctx context.Context, text string, source domain.Language, target domain.Language) (*analysis.Result, error) {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Text   string
		Source domain.Language
		Target domain.Language
	}{
		Ctx:    ctx,
		Text:   text,
		Source: source,
		Target: target,
	}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, text, source, target)
}

func (mock *analyzerMock) AnalyzeCalls() []struct {
	Ctx    context.Context
	Text   string
	Source domain.Language
	Target domain.Language
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
