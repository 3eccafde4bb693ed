package repository

import (
	"errors"
	"testing"

	"tablero/internal/domain"
	"tablero/internal/models"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := createUser(t, db, "author", false)
	liker := createUser(t, db, "liker", false)
	report := createReport(t, db, "Ventas", "pbi-1")

	view, err := repo.Create(author.ID, report.ID, "buen dashboard")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if view.Likes != 0 || view.UserLiked {
		t.Fatalf("new comment should start unliked with 0 likes, got %+v", view)
	}

	action, likes, err := repo.ToggleLike(liker.ID, view.ID)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if action != "added" || likes != 1 {
		t.Fatalf("first toggle = (%s, %d), want (added, 1)", action, likes)
	}

	action, likes, err = repo.ToggleLike(liker.ID, view.ID)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if action != "removed" || likes != 0 {
		t.Fatalf("second toggle = (%s, %d), want (removed, 0)", action, likes)
	}

	var count int64
	db.Model(&models.CommentLike{}).Where("comment_id = ?", view.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected no like rows after toggle pair, got %d", count)
	}
}

func TestToggleLikeCounterNeverNegative(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := createUser(t, db, "author", false)
	liker := createUser(t, db, "liker", false)
	report := createReport(t, db, "Ventas", "pbi-1")

	// A like row without a matching counter simulates a lost update.
	comment := models.Comment{UserID: author.ID, ReportID: report.ID, Content: "hola", Likes: 0, IsActive: true}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if err := db.Create(&models.CommentLike{UserID: liker.ID, CommentID: comment.ID}).Error; err != nil {
		t.Fatalf("create like: %v", err)
	}

	action, likes, err := repo.ToggleLike(liker.ID, comment.ID)
	if err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}
	if action != "removed" {
		t.Fatalf("action = %s, want removed", action)
	}
	if likes != 0 {
		t.Fatalf("likes = %d, counter must clamp at zero", likes)
	}
}

func TestToggleLikeMissingComment(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	liker := createUser(t, db, "liker", false)

	_, _, err := repo.ToggleLike(liker.ID, 999)
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("error = %v, want ErrCommentNotFound", err)
	}
}

func TestListExcludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := createUser(t, db, "author", false)
	report := createReport(t, db, "Ventas", "pbi-1")

	kept, err := repo.Create(author.ID, report.ID, "se queda")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	dropped, err := repo.Create(author.ID, report.ID, "se borra")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.SoftDelete(dropped.ID); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	// Deleting an already-inactive comment is a no-op, not an error.
	if err := repo.SoftDelete(dropped.ID); err != nil {
		t.Fatalf("repeated SoftDelete() error = %v", err)
	}

	views, err := repo.ListByReport(report.ID, 0)
	if err != nil {
		t.Fatalf("ListByReport() error = %v", err)
	}
	if len(views) != 1 || views[0].ID != kept.ID {
		t.Fatalf("list should contain only the kept comment, got %+v", views)
	}

	// The row itself survives the soft delete.
	var row models.Comment
	if err := db.First(&row, dropped.ID).Error; err != nil {
		t.Fatalf("soft-deleted row must persist: %v", err)
	}
	if row.IsActive {
		t.Fatal("soft-deleted row still marked active")
	}
	if row.Content != "se borra" {
		t.Fatalf("content must be retained, got %q", row.Content)
	}
}

func TestListResolvesUserLiked(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := createUser(t, db, "author", false)
	liker := createUser(t, db, "liker", false)
	report := createReport(t, db, "Ventas", "pbi-1")

	view, err := repo.Create(author.ID, report.ID, "hola")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, _, err := repo.ToggleLike(liker.ID, view.ID); err != nil {
		t.Fatalf("ToggleLike() error = %v", err)
	}

	for _, tc := range []struct {
		name      string
		userID    uint
		wantLiked bool
	}{
		{"liker sees liked", liker.ID, true},
		{"author sees unliked", author.ID, false},
		{"anonymous sees unliked", 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			views, err := repo.ListByReport(report.ID, tc.userID)
			if err != nil {
				t.Fatalf("ListByReport() error = %v", err)
			}
			if len(views) != 1 || views[0].UserLiked != tc.wantLiked {
				t.Fatalf("userLiked = %v, want %v", views[0].UserLiked, tc.wantLiked)
			}
		})
	}
}

func TestCreateRebindsMissingReport(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	author := createUser(t, db, "author", false)

	view, err := repo.Create(author.ID, 999, "sin reporte")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var def models.Report
	err = db.Where("powerbi_report_id = ?", domain.DefaultPowerBIReportID).First(&def).Error
	if err != nil {
		t.Fatalf("default report not created: %v", err)
	}
	if def.Name != domain.DefaultReportName {
		t.Fatalf("default report name = %q, want %q", def.Name, domain.DefaultReportName)
	}

	var comment models.Comment
	if err := db.First(&comment, view.ID).Error; err != nil {
		t.Fatalf("load comment: %v", err)
	}
	if comment.ReportID != def.ID {
		t.Fatalf("comment bound to report %d, want default %d", comment.ReportID, def.ID)
	}

	// Repeated misses reuse the same default report.
	if _, err := repo.Create(author.ID, 888, "otro"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	var count int64
	db.Model(&models.Report{}).Where("powerbi_report_id = ?", domain.DefaultPowerBIReportID).Count(&count)
	if count != 1 {
		t.Fatalf("default report duplicated: %d rows", count)
	}
}
