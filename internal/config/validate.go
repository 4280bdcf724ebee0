package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// MaxCSVBatchSize keeps one bulk insert under the Postgres limit of 65535
// bind parameters; every words row binds 10.
const MaxCSVBatchSize = 65535 / 10

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be positive")
	}
	if c.Auth.CleanupInterval < 0 {
		return fmt.Errorf("auth.cleanup_interval must not be negative (got %s)", c.Auth.CleanupInterval)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Pagination.DefaultPageSize <= 0 || c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		return fmt.Errorf("pagination: need 0 < default_page_size <= max_page_size (got %d, %d)",
			c.Pagination.DefaultPageSize, c.Pagination.MaxPageSize)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}

	if c.Import.MaxBodyBytes <= 0 || c.Import.CSVMaxBytes <= 0 || c.Import.CSVBatchSize <= 0 {
		return fmt.Errorf("import: size limits must be positive")
	}
	if c.Import.CSVBatchSize > MaxCSVBatchSize {
		return fmt.Errorf("import.csv_batch_size must be <= %d (got %d)", MaxCSVBatchSize, c.Import.CSVBatchSize)
	}

	models, err := ParseSpacyModels(c.NLP.Spacy.ModelsRaw)
	if err != nil {
		return fmt.Errorf("nlp.spacy.models: %w", err)
	}
	if c.NLP.Kagome.Enabled {
		if _, clash := models[domain.LangJapanese]; clash {
			return fmt.Errorf("nlp: ja is served by kagome; remove it from nlp.spacy.models")
		}
	}
	c.NLP.Spacy.Models = models

	return nil
}

// ParseSpacyModels parses "lang:model" pairs separated by commas
// (e.g. "fr:fr_core_news_sm,it:it_core_news_sm"). An empty string yields an empty map.
func ParseSpacyModels(raw string) (map[domain.Language]string, error) {
	models := make(map[domain.Language]string)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		lang, model, ok := strings.Cut(pair, ":")
		lang, model = strings.TrimSpace(lang), strings.TrimSpace(model)
		if !ok || model == "" {
			return nil, fmt.Errorf("invalid pair %q, want lang:model", pair)
		}
		if !domain.Language(lang).IsValid() {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
		if _, dup := models[domain.Language(lang)]; dup {
			return nil, fmt.Errorf("language %q listed twice", lang)
		}
		models[domain.Language(lang)] = model
	}

	return models, nil
}
