package repository

import (
	"errors"
	"testing"

	"tablero/internal/domain"
	"tablero/internal/models"
)

func TestToggleReactionExclusivity(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepository(db)
	user := createUser(t, db, "reactor", false)
	report := createReport(t, db, "Ventas", "pbi-1")

	action, err := repo.Toggle(user.ID, report.ID, domain.ReactionMeInteresa)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if action != "added" {
		t.Fatalf("action = %s, want added", action)
	}

	// Selecting a different type replaces the previous one.
	action, err = repo.Toggle(user.ID, report.ID, domain.ReactionAporta)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if action != "added" {
		t.Fatalf("action = %s, want added", action)
	}

	var rows []models.Reaction
	if err := db.Where("user_id = ? AND report_id = ?", user.ID, report.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load reactions: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly one reaction row, got %d", len(rows))
	}
	if rows[0].ReactionType != domain.ReactionAporta {
		t.Fatalf("surviving reaction type = %s, want %s", rows[0].ReactionType, domain.ReactionAporta)
	}
}

func TestToggleReactionSameTypeTwice(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepository(db)
	user := createUser(t, db, "reactor", false)
	report := createReport(t, db, "Ventas", "pbi-1")

	if action, _ := repo.Toggle(user.ID, report.ID, domain.ReactionIncreible); action != "added" {
		t.Fatalf("first toggle action = %s, want added", action)
	}
	action, err := repo.Toggle(user.ID, report.ID, domain.ReactionIncreible)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if action != "removed" {
		t.Fatalf("second toggle action = %s, want removed", action)
	}

	reactions, err := repo.ListByUser(user.ID, report.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(reactions) != 0 {
		t.Fatalf("expected no reactions after toggle pair, got %d", len(reactions))
	}
}

func TestToggleReactionInvalidType(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepository(db)

	_, err := repo.Toggle(1, 1, "no_existe")
	if !errors.Is(err, ErrInvalidReactionType) {
		t.Fatalf("error = %v, want ErrInvalidReactionType", err)
	}
}

func TestToggleReactionRebindsMissingReport(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepository(db)
	user := createUser(t, db, "reactor", false)

	if _, err := repo.Toggle(user.ID, 999, domain.ReactionAporta); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	var def models.Report
	err := db.Where("powerbi_report_id = ?", domain.DefaultPowerBIReportID).First(&def).Error
	if err != nil {
		t.Fatalf("default report not created: %v", err)
	}
	reactions, err := repo.ListByUser(user.ID, def.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(reactions) != 1 {
		t.Fatalf("expected reaction on default report, got %d rows", len(reactions))
	}
}

func TestStatsZeroFill(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepository(db)
	report := createReport(t, db, "Ventas", "pbi-1")

	stats, err := repo.Stats(report.ID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(stats) != len(domain.ReactionTypes) {
		t.Fatalf("stats length = %d, want %d", len(stats), len(domain.ReactionTypes))
	}
	seen := map[string]int64{}
	for _, s := range stats {
		seen[s.Tipo] = s.Count
	}
	for _, rt := range domain.ReactionTypes {
		count, ok := seen[rt]
		if !ok {
			t.Fatalf("stats missing type %s", rt)
		}
		if count != 0 {
			t.Fatalf("type %s count = %d, want 0", rt, count)
		}
	}
}

func TestStatsCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewReactionRepository(db)
	report := createReport(t, db, "Ventas", "pbi-1")
	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	for _, toggle := range []struct {
		userID uint
		tipo   string
	}{
		{alice.ID, domain.ReactionAporta},
		{bob.ID, domain.ReactionAporta},
	} {
		if _, err := repo.Toggle(toggle.userID, report.ID, toggle.tipo); err != nil {
			t.Fatalf("Toggle() error = %v", err)
		}
	}

	stats, err := repo.Stats(report.ID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	found := false
	for _, s := range stats {
		if s.Tipo == domain.ReactionAporta {
			found = true
			if s.Count != 2 {
				t.Fatalf("aporta count = %d, want 2", s.Count)
			}
		}
	}
	if !found {
		t.Fatal("stats missing aporta entry")
	}
}
