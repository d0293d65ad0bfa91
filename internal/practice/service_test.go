package practice_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
	"github.com/saulo-duarte/ieltslab/internal/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakePassageRepo struct {
	passages map[string]*passage.Passage
}

func (r *fakePassageRepo) CreateWithQuestions(p *passage.Passage, qs []*passage.Question) error {
	return nil
}

func (r *fakePassageRepo) GetByID(id string) (*passage.Passage, error) {
	return r.passages[id], nil
}

func (r *fakePassageRepo) List(passage.ListFilter) ([]*passage.Passage, error) { return nil, nil }
func (r *fakePassageRepo) Delete(string) error                                { return nil }
func (r *fakePassageRepo) CountQuestions(string) (int64, error)               { return 0, nil }

type fakePracticeRepo struct {
	highlights []*practice.Highlight
}

func (r *fakePracticeRepo) ListAttempts(string, string, int) ([]*practice.Attempt, error) {
	return nil, nil
}

func (r *fakePracticeRepo) CreateHighlight(h *practice.Highlight) error {
	r.highlights = append(r.highlights, h)
	return nil
}

func (r *fakePracticeRepo) ListHighlights(string, string) ([]*practice.Highlight, error) {
	return r.highlights, nil
}

func (r *fakePracticeRepo) ListHighlightsByUser(string) ([]*practice.Highlight, error) {
	return r.highlights, nil
}

func (r *fakePracticeRepo) SetWordMastered(string, string, bool) error { return nil }

func newHighlightFixture() (practice.PracticeService, *fakePracticeRepo, string, string) {
	p := &passage.Passage{
		ID:    uuid.New(),
		Title: "Fixture",
		Body:  "A short passage about tides. The moon drives the tides.\n\nSecond paragraph here.",
	}
	passageRepo := &fakePassageRepo{passages: map[string]*passage.Passage{p.ID.String(): p}}
	repo := &fakePracticeRepo{}
	service := practice.NewService(nil, repo, passageRepo)
	return service, repo, uuid.New().String(), p.ID.String()
}

func TestAddHighlight(t *testing.T) {
	t.Run("EmptyTextRejected", func(t *testing.T) {
		service, repo, userID, passageID := newHighlightFixture()

		_, err := service.AddHighlight(context.Background(), userID, passageID, practice.SessionActionDTO{
			Intent: practice.IntentAddHighlight,
			Color:  "yellow",
		})

		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(repo.highlights) != 0 {
			t.Error("no row may be written on validation failure")
		}
	})

	t.Run("MissingPassage", func(t *testing.T) {
		service, _, userID, _ := newHighlightFixture()

		_, err := service.AddHighlight(context.Background(), userID, uuid.New().String(), practice.SessionActionDTO{
			Text:  "tides",
			Color: "yellow",
		})

		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("GreenColorMeansMastered", func(t *testing.T) {
		service, repo, userID, passageID := newHighlightFixture()

		h, err := service.AddHighlight(context.Background(), userID, passageID, practice.SessionActionDTO{
			Text:           "tides",
			Color:          "light-green",
			ParagraphIndex: 0,
			TextOffset:     23,
		})
		if err != nil {
			t.Fatalf("AddHighlight failed: %v", err)
		}

		if !h.Mastered {
			t.Error("a green color must persist mastered = true")
		}
		if len(repo.highlights) != 1 {
			t.Fatalf("expected 1 stored highlight, got %d", len(repo.highlights))
		}
	})

	t.Run("ContextDerivedWhenAbsent", func(t *testing.T) {
		service, repo, userID, passageID := newHighlightFixture()

		_, err := service.AddHighlight(context.Background(), userID, passageID, practice.SessionActionDTO{
			Text:           "moon",
			Color:          "yellow",
			ParagraphIndex: 0,
			TextOffset:     33,
		})
		if err != nil {
			t.Fatalf("AddHighlight failed: %v", err)
		}

		got := repo.highlights[0].Context
		if got != "The moon drives the tides." {
			t.Errorf("expected derived sentence context, got %q", got)
		}
	})

	t.Run("RepeatedWordAppendsRows", func(t *testing.T) {
		service, repo, userID, passageID := newHighlightFixture()

		for i := 0; i < 2; i++ {
			if _, err := service.AddHighlight(context.Background(), userID, passageID, practice.SessionActionDTO{
				Text:  "tides",
				Color: "yellow",
			}); err != nil {
				t.Fatalf("AddHighlight failed: %v", err)
			}
		}

		if len(repo.highlights) != 2 {
			t.Errorf("repeated highlights must not merge; expected 2 rows, got %d", len(repo.highlights))
		}
		if repo.highlights[0].ID == repo.highlights[1].ID {
			t.Error("rows must be independent records")
		}
	})

	t.Run("OutOfRangeCoordinateCollapses", func(t *testing.T) {
		service, repo, userID, passageID := newHighlightFixture()

		_, err := service.AddHighlight(context.Background(), userID, passageID, practice.SessionActionDTO{
			Text:           "tides",
			Color:          "yellow",
			ParagraphIndex: 99,
			TextOffset:     5,
		})
		if err != nil {
			t.Fatalf("malformed position must not block capture: %v", err)
		}

		coord := practice.ParseNote(repo.highlights[0].Note)
		if coord != (practice.Coordinate{}) {
			t.Errorf("expected zero coordinate for out-of-range paragraph, got %+v", coord)
		}
	})
}

// openTestDB migrates the full schema onto an in-memory sqlite database,
// the same dialect config.Connect falls back to for local development.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql db: %v", err)
	}
	// one connection keeps the in-memory database alive across queries
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&user.User{},
		&passage.Passage{},
		&passage.Question{},
		&practice.Attempt{},
		&practice.Response{},
		&practice.Highlight{},
	); err != nil {
		t.Fatalf("auto migration failed on sqlite: %v", err)
	}
	return db
}

func seedScoredPassage(t *testing.T, db *gorm.DB) *passage.Passage {
	t.Helper()

	p := &passage.Passage{
		ID:         uuid.New(),
		Title:      "Capitals",
		Body:       "France and its capital.\n\nNumbers and claims.",
		Topic:      "geography",
		Difficulty: passage.DifficultyMedium,
	}
	questions := []*passage.Question{
		{ID: uuid.New(), OrderIndex: 0, Type: passage.QuestionFillBlank, Prompt: "Capital of France?", CorrectAnswer: "Paris"},
		{ID: uuid.New(), OrderIndex: 1, Type: passage.QuestionFillBlank, Prompt: "The number mentioned?", CorrectAnswer: "42"},
		{ID: uuid.New(), OrderIndex: 2, Type: passage.QuestionTrueFalse, Prompt: "Paris is in France.", CorrectAnswer: "True"},
	}
	if err := passage.NewRepository(db).CreateWithQuestions(p, questions); err != nil {
		t.Fatalf("failed to seed passage: %v", err)
	}
	return p
}

func newSubmitFixture(t *testing.T) (practice.PracticeService, *gorm.DB, string, string) {
	t.Helper()
	db := openTestDB(t)
	p := seedScoredPassage(t, db)
	service := practice.NewService(db, practice.NewRepository(db), passage.NewRepository(db))
	return service, db, uuid.New().String(), p.ID.String()
}

func TestMigrateOnSQLite(t *testing.T) {
	openTestDB(t)
}

func TestSubmitAnswers(t *testing.T) {
	t.Run("MalformedPayloadWritesNothing", func(t *testing.T) {
		service, db, userID, passageID := newSubmitFixture(t)

		_, err := service.SubmitAnswers(context.Background(), userID, passageID, json.RawMessage(`["not","a","map"]`))
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}

		var attempts int64
		if err := db.Model(&practice.Attempt{}).Count(&attempts).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if attempts != 0 {
			t.Errorf("validation failure must leave no rows, found %d attempts", attempts)
		}
	})

	t.Run("EmptyPayloadRejected", func(t *testing.T) {
		service, db, userID, passageID := newSubmitFixture(t)

		_, err := service.SubmitAnswers(context.Background(), userID, passageID, nil)
		if !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}

		var attempts int64
		db.Model(&practice.Attempt{}).Count(&attempts)
		if attempts != 0 {
			t.Errorf("validation failure must leave no rows, found %d attempts", attempts)
		}
	})

	t.Run("MissingPassage", func(t *testing.T) {
		service, _, userID, _ := newSubmitFixture(t)

		_, err := service.SubmitAnswers(context.Background(), userID, uuid.New().String(), json.RawMessage(`{"0":"Paris"}`))
		if !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("EmptySubmissionScoresZero", func(t *testing.T) {
		service, db, userID, passageID := newSubmitFixture(t)

		result, err := service.SubmitAnswers(context.Background(), userID, passageID, json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("SubmitAnswers failed: %v", err)
		}

		if result.Score == nil || *result.Score != 0 {
			t.Errorf("expected score 0, got %v", result.Score)
		}
		if result.Total != 3 || result.Correct != 0 {
			t.Errorf("expected 0/3, got %d/%d", result.Correct, result.Total)
		}

		var attempt practice.Attempt
		if err := db.First(&attempt).Error; err != nil {
			t.Fatalf("attempt row must exist: %v", err)
		}
		if attempt.Score == nil || *attempt.Score != 0 {
			t.Errorf("persisted attempt must carry a non-null score of 0, got %v", attempt.Score)
		}
		if attempt.CompletedAt == nil {
			t.Error("persisted attempt must be marked completed")
		}

		var responses int64
		db.Model(&practice.Response{}).Count(&responses)
		if responses != 0 {
			t.Errorf("empty submission must write zero responses, found %d", responses)
		}
	})

	t.Run("TwoOfThreeScores67", func(t *testing.T) {
		service, db, userID, passageID := newSubmitFixture(t)

		raw := json.RawMessage(`{"0":"paris","1":"41","2":"TRUE"}`)
		result, err := service.SubmitAnswers(context.Background(), userID, passageID, raw)
		if err != nil {
			t.Fatalf("SubmitAnswers failed: %v", err)
		}

		if result.Score == nil || *result.Score != 67 {
			t.Errorf("expected score 67, got %v", result.Score)
		}
		if result.Correct != 2 || result.Total != 3 {
			t.Errorf("expected 2/3, got %d/%d", result.Correct, result.Total)
		}

		var responses int64
		db.Model(&practice.Response{}).Count(&responses)
		if responses != 3 {
			t.Errorf("expected 3 response rows, found %d", responses)
		}

		var correct int64
		db.Model(&practice.Response{}).Where("correct = ?", true).Count(&correct)
		if correct != 2 {
			t.Errorf("expected 2 correct responses, found %d", correct)
		}
	})
}
