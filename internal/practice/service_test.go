package practice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nanambeah/MedPrep-Ghana/internal/access"
	"github.com/nanambeah/MedPrep-Ghana/internal/practice"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
)

type failingStore struct {
	practice.BookmarkStore
}

func (failingStore) Save(context.Context, string, []int) error {
	return errors.New("disk full")
}

func newService(t *testing.T) (practice.PracticeService, *results.History) {
	t.Helper()
	history := results.NewHistory(results.NewMemoryRepository())
	return practice.NewService(catalog(t), practice.NewMemoryStore(), history), history
}

func TestServiceGate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	restricted := &user.User{ID: "u-2", Role: user.RoleUser, SubscriptionStatus: user.SubscriptionExpired}

	snap, err := svc.Start(ctx, restricted, question.Filter{Discipline: "Surgery"})
	if err != nil {
		t.Fatalf("restricted users can still open a session: %v", err)
	}
	if snap.Access != access.LevelRestricted || !snap.Blocked {
		t.Errorf("snapshot access = %s blocked = %v", snap.Access, snap.Blocked)
	}

	if _, err := svc.Select(ctx, restricted, snap.ID, 1); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if _, err := svc.Submit(ctx, restricted, snap.ID); !errors.Is(err, practice.ErrSubscriptionRequired) {
		t.Fatalf("want ErrSubscriptionRequired, got %v", err)
	}

	after, err := svc.Get(ctx, restricted, snap.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if after.State != practice.StateUnanswered || after.Reveal != nil {
		t.Errorf("blocked submit mutated the session: %+v", after)
	}

	admin := &user.User{ID: "u-3", Role: user.RoleAdmin, SubscriptionStatus: user.SubscriptionNone}
	snap, err = svc.Start(ctx, admin, question.Filter{Discipline: "Surgery"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.Blocked {
		t.Error("admins are never blocked")
	}
	_, _ = svc.Select(ctx, admin, snap.ID, 1)
	if _, err := svc.Submit(ctx, admin, snap.ID); err != nil {
		t.Errorf("admin submit failed: %v", err)
	}

	if _, err := svc.Start(ctx, nil, question.Filter{}); !errors.Is(err, practice.ErrUnauthenticated) {
		t.Errorf("nil user: got %v", err)
	}
}

func TestServiceFlowRecordsHistory(t *testing.T) {
	ctx := context.Background()
	svc, history := newService(t)
	u := subscriber()

	snap, err := svc.Start(ctx, u, question.Filter{Discipline: "Surgery"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if snap.Question.ID != 4 || snap.Total != 1 || snap.Selected != nil {
		t.Errorf("snapshot = %+v", snap)
	}

	if _, err := svc.Summary(ctx, u, snap.ID); !errors.Is(err, practice.ErrSessionNotComplete) {
		t.Errorf("early summary: got %v", err)
	}

	_, _ = svc.Select(ctx, u, snap.ID, 1)
	submitted, err := svc.Submit(ctx, u, snap.ID)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if submitted.Reveal == nil || !submitted.Reveal.Correct {
		t.Errorf("reveal = %+v", submitted.Reveal)
	}

	done, err := svc.Advance(ctx, u, snap.ID)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if done.State != practice.StateComplete {
		t.Errorf("state = %s", done.State)
	}

	summary, err := svc.Summary(ctx, u, snap.ID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.AccuracyPercent != 100 {
		t.Errorf("summary = %+v", summary)
	}

	records, _ := history.List(ctx, u.ID)
	if len(records) != 1 || records[0].SessionID != snap.ID {
		t.Errorf("history = %+v", records)
	}
}

func TestServiceOneSessionPerUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	u := subscriber()

	first, err := svc.Start(ctx, u, question.Filter{})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	second, err := svc.Start(ctx, u, question.Filter{Discipline: "Surgery"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := svc.Get(ctx, u, first.ID); !errors.Is(err, practice.ErrSessionNotFound) {
		t.Errorf("replaced session still reachable: %v", err)
	}
	if _, err := svc.Get(ctx, u, second.ID); err != nil {
		t.Errorf("live session: %v", err)
	}

	other := &user.User{ID: "u-9", SubscriptionStatus: user.SubscriptionActive}
	if _, err := svc.Get(ctx, other, second.ID); !errors.Is(err, practice.ErrSessionNotFound) {
		t.Errorf("another user's session must be hidden, got %v", err)
	}

	if err := svc.Abandon(ctx, u, second.ID); err != nil {
		t.Fatalf("Abandon failed: %v", err)
	}
	if _, err := svc.Get(ctx, u, second.ID); !errors.Is(err, practice.ErrSessionNotFound) {
		t.Errorf("abandoned session still reachable: %v", err)
	}
}

func TestServiceNoQuestions(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Start(context.Background(), subscriber(), question.Filter{Discipline: "Ethics", Difficulty: "Hard"})
	if !errors.Is(err, practice.ErrNoQuestions) {
		t.Errorf("want ErrNoQuestions, got %v", err)
	}
}

func TestServiceBookmarks(t *testing.T) {
	ctx := context.Background()
	store := practice.NewMemoryStore()
	svc := practice.NewService(catalog(t), store, nil)
	u := subscriber()

	snap, err := svc.Start(ctx, u, question.Filter{Discipline: "Surgery"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	on, err := svc.ToggleBookmark(ctx, u, 4)
	if err != nil || !on {
		t.Fatalf("ToggleBookmark = %v, %v", on, err)
	}
	if _, err := svc.ToggleBookmark(ctx, u, 9); err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}

	live, _ := svc.Get(ctx, u, snap.ID)
	if !live.Bookmarked {
		t.Error("bookmark not visible in the live session")
	}

	saved, err := svc.Bookmarks(ctx, u)
	if err != nil {
		t.Fatalf("Bookmarks failed: %v", err)
	}
	if len(saved) != 2 || saved[0].ID != 4 || saved[1].ID != 9 {
		t.Errorf("bookmarks = %+v", saved)
	}

	persisted, _ := store.Load(ctx, u.ID)
	if len(persisted) != 2 {
		t.Errorf("store holds %v", persisted)
	}

	if _, err := svc.ToggleBookmark(ctx, u, 404); !errors.Is(err, practice.ErrUnknownQuestion) {
		t.Errorf("unknown question: got %v", err)
	}
}

func TestServiceBookmarkWriteFailure(t *testing.T) {
	ctx := context.Background()
	svc := practice.NewService(catalog(t), failingStore{practice.NewMemoryStore()}, nil)
	u := subscriber()

	if _, err := svc.ToggleBookmark(ctx, u, 4); err == nil {
		t.Fatal("expected the store error")
	}
	saved, err := svc.Bookmarks(ctx, u)
	if err != nil {
		t.Fatalf("Bookmarks failed: %v", err)
	}
	if len(saved) != 0 {
		t.Errorf("failed write left a bookmark behind: %+v", saved)
	}
}
