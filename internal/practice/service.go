package practice

import (
	"context"
	"sync"
	"time"

	"github.com/nanambeah/MedPrep-Ghana/internal/access"
	"github.com/nanambeah/MedPrep-Ghana/internal/config"
	"github.com/nanambeah/MedPrep-Ghana/internal/question"
	"github.com/nanambeah/MedPrep-Ghana/internal/results"
	"github.com/nanambeah/MedPrep-Ghana/internal/user"
	"github.com/sirupsen/logrus"
)

type PracticeService interface {
	Start(ctx context.Context, u *user.User, f question.Filter) (*Snapshot, error)
	Get(ctx context.Context, u *user.User, sessionID string) (*Snapshot, error)
	Select(ctx context.Context, u *user.User, sessionID string, option int) (*Snapshot, error)
	Submit(ctx context.Context, u *user.User, sessionID string) (*Snapshot, error)
	Advance(ctx context.Context, u *user.User, sessionID string) (*Snapshot, error)
	Abandon(ctx context.Context, u *user.User, sessionID string) error
	Summary(ctx context.Context, u *user.User, sessionID string) (*results.Summary, error)
	ToggleBookmark(ctx context.Context, u *user.User, questionID int) (bool, error)
	Bookmarks(ctx context.Context, u *user.User) ([]question.Question, error)
}

type practiceService struct {
	catalog *question.Catalog
	store   BookmarkStore
	history *results.History

	mu        sync.Mutex
	sessions  map[string]*Session
	byUser    map[string]string
	bookmarks map[string]*Bookmarks
}

// NewService keeps at most one live session per user. history may be nil.
func NewService(c *question.Catalog, store BookmarkStore, history *results.History) PracticeService {
	return &practiceService{
		catalog:   c,
		store:     store,
		history:   history,
		sessions:  make(map[string]*Session),
		byUser:    make(map[string]string),
		bookmarks: make(map[string]*Bookmarks),
	}
}

func (s *practiceService) Start(ctx context.Context, u *user.User, f question.Filter) (*Snapshot, error) {
	log := config.WithContext(ctx)
	if u == nil {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.bookmarksFor(ctx, u.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load bookmarks")
		return nil, err
	}

	sess, err := Start(u, s.catalog, f, bookmarks)
	if err != nil {
		log.WithError(err).Warnf("Session not started for filter %+v", f)
		return nil, err
	}

	if old, ok := s.byUser[u.ID]; ok {
		delete(s.sessions, old)
		log.WithField("session_id", old).Info("Replaced live session")
	}
	s.sessions[sess.ID] = sess
	s.byUser[u.ID] = sess.ID

	log.WithFields(logrus.Fields{
		"user_id":    u.ID,
		"session_id": sess.ID,
		"questions":  sess.Len(),
	}).Info("Practice session started")
	return sess.Snapshot(access.LevelFor(u)), nil
}

func (s *practiceService) Get(ctx context.Context, u *user.User, sessionID string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(u, sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(access.LevelFor(u)), nil
}

func (s *practiceService) Select(ctx context.Context, u *user.User, sessionID string, option int) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(u, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectOption(option); err != nil {
		config.WithContext(ctx).WithError(err).Debug("Selection rejected")
		return nil, err
	}
	return sess.Snapshot(access.LevelFor(u)), nil
}

// Submit is where the subscription gate applies. A blocked submission leaves
// the session untouched.
func (s *practiceService) Submit(ctx context.Context, u *user.User, sessionID string) (*Snapshot, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(u, sessionID)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessFull(u) {
		log.WithField("user_id", u.ID).Warn("Submission blocked without subscription")
		return nil, ErrSubscriptionRequired
	}

	reveal, err := sess.Submit()
	if err != nil {
		log.WithError(err).Debug("Submission rejected")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"session_id":  sess.ID,
		"question_id": reveal.QuestionID,
		"correct":     reveal.Correct,
	}).Info("Answer submitted")
	return sess.Snapshot(access.LevelFor(u)), nil
}

func (s *practiceService) Advance(ctx context.Context, u *user.User, sessionID string) (*Snapshot, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(u, sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.Advance(); err != nil {
		log.WithError(err).Debug("Advance rejected")
		return nil, err
	}

	if sess.State() == StateComplete {
		s.record(ctx, sess)
	}
	return sess.Snapshot(access.LevelFor(u)), nil
}

func (s *practiceService) Abandon(ctx context.Context, u *user.User, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sessionFor(u, sessionID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	delete(s.byUser, u.ID)

	config.WithContext(ctx).WithField("session_id", sessionID).Info("Practice session abandoned")
	return nil
}

func (s *practiceService) Summary(ctx context.Context, u *user.User, sessionID string) (*results.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(u, sessionID)
	if err != nil {
		return nil, err
	}
	summary, err := sess.Summary()
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// ToggleBookmark flips questionID in the user's set and writes the whole set
// through to the store. The toggle is undone if the write fails.
func (s *practiceService) ToggleBookmark(ctx context.Context, u *user.User, questionID int) (bool, error) {
	log := config.WithContext(ctx)
	if u == nil {
		return false, ErrUnauthenticated
	}
	if _, ok := s.catalog.Get(questionID); !ok {
		return false, ErrUnknownQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.bookmarksFor(ctx, u.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load bookmarks")
		return false, err
	}

	on := bookmarks.Toggle(questionID)
	if err := s.store.Save(ctx, u.ID, bookmarks.IDs()); err != nil {
		bookmarks.Toggle(questionID)
		log.WithError(err).Error("Failed to save bookmarks")
		return false, err
	}
	return on, nil
}

// Bookmarks returns the saved questions in catalog id order. Ids that are no
// longer in the catalog are skipped.
func (s *practiceService) Bookmarks(ctx context.Context, u *user.User) ([]question.Question, error) {
	if u == nil {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.bookmarksFor(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	out := make([]question.Question, 0, bookmarks.Len())
	for _, id := range bookmarks.IDs() {
		if q, ok := s.catalog.Get(id); ok {
			out = append(out, q)
		}
	}
	return out, nil
}

// Callers hold s.mu.
func (s *practiceService) sessionFor(u *user.User, sessionID string) (*Session, error) {
	if u == nil {
		return nil, ErrUnauthenticated
	}
	sess, ok := s.sessions[sessionID]
	if !ok || sess.UserID != u.ID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Callers hold s.mu.
func (s *practiceService) bookmarksFor(ctx context.Context, userID string) (*Bookmarks, error) {
	if b, ok := s.bookmarks[userID]; ok {
		return b, nil
	}
	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	b := NewBookmarks(ids...)
	s.bookmarks[userID] = b
	return b, nil
}

func (s *practiceService) record(ctx context.Context, sess *Session) {
	log := config.WithContext(ctx)

	summary, err := sess.Summary()
	if err != nil {
		log.WithError(err).Error("Failed to score completed session")
		return
	}
	log.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"correct":    summary.TotalCorrect,
		"total":      summary.TotalQuestions,
	}).Info("Practice session complete")

	if s.history == nil {
		return
	}
	err = s.history.Add(ctx, sess.UserID, results.Record{
		SessionID:   sess.ID,
		CompletedAt: time.Now(),
		Summary:     summary,
	})
	if err != nil {
		log.WithError(err).Error("Failed to record completed session")
	}
}
