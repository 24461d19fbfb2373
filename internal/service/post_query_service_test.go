package service

import (
	"Instalens/internal/model"
	"context"
	"fmt"
	"testing"
	"time"
)

func seedPosts(t *testing.T, repo interface {
	CreatePost(ctx context.Context, post *model.Post) error
}, n int) {
	t.Helper()
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		post := &model.Post{
			InstagramID: fmt.Sprintf("ig-%d", i),
			Caption:     fmt.Sprintf("caption %d", i),
			Likes:       i,
			Comments:    i,
			MediaType:   "IMAGE",
			TakenAt:     base.Add(time.Duration(i) * time.Hour),
			Engagement:  3 * i,
		}
		if err := repo.CreatePost(context.Background(), post); err != nil {
			t.Fatalf("seed post %d: %v", i, err)
		}
	}
}

func TestFetchRecent_OrderedByTimestampDesc(t *testing.T) {
	repo, _ := openTestRepo(t)
	seedPosts(t, repo, 3)
	svc := NewPostQueryService(repo, 0)

	rows, err := svc.FetchRecent(context.Background())
	if err != nil {
		t.Fatalf("FetchRecent: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].Timestamp.After(rows[i-1].Timestamp) {
			t.Errorf("rows not in descending timestamp order at position %d", i)
		}
	}
	if rows[0].InstagramID != "ig-2" {
		t.Errorf("expected newest post first, got %s", rows[0].InstagramID)
	}
}

func TestFetchRecent_LimitEnforced(t *testing.T) {
	repo, _ := openTestRepo(t)
	seedPosts(t, repo, 10)
	svc := NewPostQueryService(repo, 7)

	rows, err := svc.FetchRecent(context.Background())
	if err != nil {
		t.Fatalf("FetchRecent: %v", err)
	}
	if len(rows) != 7 {
		t.Errorf("expected at most 7 rows, got %d", len(rows))
	}
}

func TestFetchRecent_EmptyStoreReturnsEmptySlice(t *testing.T) {
	repo, _ := openTestRepo(t)
	svc := NewPostQueryService(repo, 7)

	rows, err := svc.FetchRecent(context.Background())
	if err != nil {
		t.Fatalf("FetchRecent: %v", err)
	}
	if rows == nil {
		t.Error("expected non-nil empty slice, got nil")
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestFetchRecent_ProjectsAllFields(t *testing.T) {
	repo, _ := openTestRepo(t)
	taken := time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)
	post := &model.Post{
		InstagramID:    "ig-proj",
		Caption:        "sunset",
		Likes:          10,
		Comments:       5,
		MediaType:      "VIDEO",
		TakenAt:        taken,
		Engagement:     20,
		TotalFollowers: 1500,
	}
	if err := repo.CreatePost(context.Background(), post); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	svc := NewPostQueryService(repo, 0)
	rows, err := svc.FetchRecent(context.Background())
	if err != nil {
		t.Fatalf("FetchRecent: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.InstagramID != "ig-proj" || row.Caption != "sunset" ||
		row.Likes != 10 || row.Comments != 5 || row.MediaType != "VIDEO" ||
		row.Engagement != 20 || row.TotalFollowers != 1500 {
		t.Errorf("projection mismatch: %+v", row)
	}
	if !row.Timestamp.Equal(taken) {
		t.Errorf("expected timestamp %v, got %v", taken, row.Timestamp)
	}
}
