package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocabulary-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with role "user" and a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := domain.User{
		ID:           uuid.New(),
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplacehol",
		Role:         domain.UserRoleUser,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, username, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		user.ID, user.Username, user.PasswordHash, string(user.Role),
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedWord creates a French-to-Finnish dictionary entry. The lemma gets a
// unique suffix so parallel tests never collide on (lemma, pos, gender).
func SeedWord(t *testing.T, pool *pgxpool.Pool, lemma string, pos domain.PartOfSpeech) domain.Word {
	t.Helper()

	lemma = lemma + "-" + uniqueSuffix()

	w := domain.Word{
		ID:          uuid.New(),
		Lemma:       lemma,
		Translation: "käännös " + lemma,
		POS:         pos,
		SourceLang:  domain.LangFrench,
		TargetLang:  domain.LangFinnish,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (id, lemma, translation, pos, source_lang, target_lang)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, modified_at`,
		w.ID, w.Lemma, w.Translation, string(w.POS), string(w.SourceLang), string(w.TargetLang),
	).Scan(&w.CreatedAt, &w.ModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}

	return w
}

// SeedChapter creates a French-to-Finnish chapter owned by owner.
func SeedChapter(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, title string, public bool) domain.Chapter {
	t.Helper()

	c := domain.Chapter{
		ID:         uuid.New(),
		Title:      title,
		Body:       "Il fait beau.",
		Public:     public,
		SourceLang: domain.LangFrench,
		TargetLang: domain.LangFinnish,
		CreatedBy:  &owner,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO chapters (id, title, body, public, source_lang, target_lang, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, modified_at`,
		c.ID, c.Title, c.Body, c.Public, string(c.SourceLang), string(c.TargetLang), owner,
	).Scan(&c.CreatedAt, &c.ModifiedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedChapter: %v", err)
	}

	return c
}
