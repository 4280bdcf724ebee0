package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabulary-backend/internal/adapter/nlp/kagome"
	"github.com/heartmarshall/vocabulary-backend/internal/adapter/nlp/spacy"
	"github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres"
	chapterrepo "github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres/chapter"
	learningrepo "github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres/learning"
	tokenrepo "github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres/user"
	wordrepo "github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres/word"
	propsrepo "github.com/heartmarshall/vocabulary-backend/internal/adapter/postgres/wordprops"
	"github.com/heartmarshall/vocabulary-backend/internal/adapter/readability"
	"github.com/heartmarshall/vocabulary-backend/internal/analysis"
	"github.com/heartmarshall/vocabulary-backend/internal/auth"
	"github.com/heartmarshall/vocabulary-backend/internal/config"
	"github.com/heartmarshall/vocabulary-backend/internal/domain"
	authsvc "github.com/heartmarshall/vocabulary-backend/internal/service/auth"
	"github.com/heartmarshall/vocabulary-backend/internal/service/chapter"
	"github.com/heartmarshall/vocabulary-backend/internal/service/learning"
	"github.com/heartmarshall/vocabulary-backend/internal/service/user"
	"github.com/heartmarshall/vocabulary-backend/internal/service/word"
	"github.com/heartmarshall/vocabulary-backend/internal/service/wordprops"
)

// Container holds the process-wide dependencies shared by the HTTP server
// and the CLI commands.
type Container struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool

	Repos struct {
		Users    *userrepo.Repo
		Tokens   *tokenrepo.Repo
		Words    *wordrepo.Repo
		Chapters *chapterrepo.Repo
		Props    *propsrepo.Repo
		Learning *learningrepo.Repo
	}

	Tokenizers *analysis.Registry
	Pipeline   *analysis.Pipeline
	// Spacy is nil when no spaCy model is configured.
	Spacy *spacy.Client

	Auth      *authsvc.Service
	Users     *user.Service
	Words     *word.Service
	Chapters  *chapter.Service
	WordProps *wordprops.Service
	Learning  *learning.Service
}

// NewContainer connects to the database and builds every service.
// Call Close when done.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c, err := newContainer(cfg, logger, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

func newContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*Container, error) {
	c := &Container{Config: cfg, Log: logger, Pool: pool}

	c.Repos.Users = userrepo.New(pool)
	c.Repos.Tokens = tokenrepo.New(pool)
	c.Repos.Words = wordrepo.New(pool)
	c.Repos.Chapters = chapterrepo.New(pool)
	c.Repos.Props = propsrepo.New(pool)
	c.Repos.Learning = learningrepo.New(pool)

	if err := c.buildAnalysis(); err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(pool)
	jwtm := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	fetcher := readability.NewFetcher(cfg.Import.HTTPTimeout, cfg.Import.MaxBodyBytes, cfg.Import.UserAgent, logger)

	c.Auth = authsvc.NewService(logger, c.Repos.Users, c.Repos.Tokens, txm, jwtm, cfg.Auth)
	c.Users = user.NewService(logger, c.Repos.Users, c.Repos.Learning)
	c.Words = word.NewService(logger, c.Repos.Words, cfg.Pagination, cfg.Import)
	c.Chapters = chapter.NewService(logger, c.Repos.Chapters, c.Repos.Props, c.Pipeline, fetcher)
	c.WordProps = wordprops.NewService(logger, c.Repos.Props, c.Repos.Chapters)
	c.Learning = learning.NewService(logger, c.Repos.Learning)

	return c, nil
}

func (c *Container) buildAnalysis() error {
	registry, client, err := NewTokenizers(c.Config.NLP, c.Log)
	if err != nil {
		return err
	}
	c.Tokenizers, c.Spacy = registry, client
	c.Pipeline = analysis.NewPipeline(registry, analysis.NewResolver(c.Repos.Words, c.Log))

	c.Log.Info("tokenizers ready", slog.String("languages", strings.Join(c.Languages(), ",")))
	return nil
}

// NewTokenizers registers a spaCy tokenizer per configured model and, when
// enabled, the in-process Japanese tokenizer. The returned client is nil when
// no spaCy model is configured.
func NewTokenizers(cfg config.NLPConfig, logger *slog.Logger) (*analysis.Registry, *spacy.Client, error) {
	registry := analysis.NewRegistry()

	var client *spacy.Client
	if len(cfg.Spacy.Models) > 0 {
		client = spacy.NewClient(cfg.Spacy.BaseURL, cfg.Spacy.Timeout, logger)
		for lang, model := range cfg.Spacy.Models {
			registry.Register(lang, client.Tokenizer(model))
		}
	}

	if cfg.Kagome.Enabled {
		ja, err := kagome.New()
		if err != nil {
			return nil, nil, fmt.Errorf("build tokenizers: %w", err)
		}
		registry.Register(domain.LangJapanese, ja)
	}

	return registry, client, nil
}

// Languages lists the codes with a registered tokenizer.
func (c *Container) Languages() []string {
	langs := c.Tokenizers.Languages()
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = l.String()
	}
	return out
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
