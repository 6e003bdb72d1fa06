package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ledger-classifier-backend/internal/models"
)

func newTestRuleRepo(t *testing.T) (*RuleRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.ClassificationRule{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewRuleRepository(db), db
}

func insertRule(t *testing.T, db *gorm.DB, slug string, checkName *string, category string, createdAt time.Time) {
	t.Helper()
	rule := models.ClassificationRule{
		ID:              uuid.New(),
		DescriptionSlug: slug,
		CheckName:       checkName,
		Category:        category,
		CreatedAt:       createdAt,
	}
	if err := db.Create(&rule).Error; err != nil {
		t.Fatalf("failed to insert rule: %v", err)
	}
}

func TestFindBySlugWithoutPayer(t *testing.T) {
	repo, db := newTestRuleRepo(t)
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	payer := "Joana"

	insertRule(t, db, "ubertrip", nil, "transport", base)
	insertRule(t, db, "ubertrip", &payer, "personal", base.Add(time.Hour))
	insertRule(t, db, "netflix", nil, "streaming", base)

	rules, err := repo.FindBySlug("ubertrip", nil)
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}

	// Without a payer only unfiltered rules qualify.
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if rules[0].Category != "transport" {
		t.Errorf("expected the unfiltered rule, got %+v", rules[0])
	}
}

func TestFindBySlugWithPayer(t *testing.T) {
	repo, db := newTestRuleRepo(t)
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	joana := "Joana"
	pedro := "Pedro"

	insertRule(t, db, "mercado", &pedro, "household", base)
	insertRule(t, db, "mercado", &joana, "groceries", base.Add(time.Hour))
	insertRule(t, db, "mercado", nil, "misc", base.Add(2*time.Hour))

	rules, err := repo.FindBySlug("mercado", &joana)
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}

	// Joana's rule and the unfiltered rule qualify, in creation order.
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Category != "groceries" || rules[1].Category != "misc" {
		t.Errorf("unexpected candidates or order: %+v", rules)
	}
}

func TestFindBySlugNoMatches(t *testing.T) {
	repo, db := newTestRuleRepo(t)
	insertRule(t, db, "netflix", nil, "streaming", time.Now())

	rules, err := repo.FindBySlug("spotify", nil)
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if len(rules) != 0 {
		t.Errorf("expected no rules, got %d", len(rules))
	}
}

func TestFindBySlugNaturalOrder(t *testing.T) {
	repo, db := newTestRuleRepo(t)
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	insertRule(t, db, "loja", nil, "second", base.Add(time.Hour))
	insertRule(t, db, "loja", nil, "first", base)

	rules, err := repo.FindBySlug("loja", nil)
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].Category != "first" || rules[1].Category != "second" {
		t.Errorf("rules not in creation order: %+v", rules)
	}
}
