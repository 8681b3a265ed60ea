package service

import (
	"context"
	"testing"

	"chirp/internal/models"

	"github.com/stretchr/testify/assert"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint) (*models.Post, error)
	getHydratedFn     func(context.Context, uint) (*models.Post, error)
	existsRetweetByFn func(context.Context, uint, uint) (bool, error)
	deleteOwnedFn     func(context.Context, uint, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetHydrated(ctx context.Context, id uint) (*models.Post, error) {
	return s.getHydratedFn(ctx, id)
}
func (s *postRepoStub) ExistsRetweetBy(ctx context.Context, userID, originalID uint) (bool, error) {
	return s.existsRetweetByFn(ctx, userID, originalID)
}
func (s *postRepoStub) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	return s.deleteOwnedFn(ctx, id, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1000}, nil
		},
		getHydratedFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		existsRetweetByFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		deleteOwnedFn:     func(_ context.Context, _, _ uint) (int64, error) { return 1, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
	}
}

// hashtagRepoStub is a stub for repository.HashtagRepository.
type hashtagRepoStub struct {
	findOrCreateFn func(context.Context, string) (*models.Hashtag, error)
	linkFn         func(context.Context, *models.Post, []*models.Hashtag) error
}

func (s *hashtagRepoStub) FindOrCreate(ctx context.Context, name string) (*models.Hashtag, error) {
	return s.findOrCreateFn(ctx, name)
}
func (s *hashtagRepoStub) Link(ctx context.Context, post *models.Post, tags []*models.Hashtag) error {
	return s.linkFn(ctx, post, tags)
}

func noopHashtagRepo() *hashtagRepoStub {
	nextID := uint(0)
	return &hashtagRepoStub{
		findOrCreateFn: func(_ context.Context, name string) (*models.Hashtag, error) {
			nextID++
			return &models.Hashtag{ID: nextID, Name: name}, nil
		},
		linkFn: func(_ context.Context, _ *models.Post, _ []*models.Hashtag) error { return nil },
	}
}

// socialRepoStub is a stub for repository.SocialRepository.
type socialRepoStub struct {
	addLikeFn        func(context.Context, uint, uint) error
	removeLikeFn     func(context.Context, uint, uint) error
	addFollowFn      func(context.Context, uint, uint) error
	removeFollowFn   func(context.Context, uint, uint) error
	listFollowersFn  func(context.Context, uint) ([]models.User, error)
	listFollowingsFn func(context.Context, uint) ([]models.User, error)
}

func (s *socialRepoStub) AddLike(ctx context.Context, userID, postID uint) error {
	return s.addLikeFn(ctx, userID, postID)
}
func (s *socialRepoStub) RemoveLike(ctx context.Context, userID, postID uint) error {
	return s.removeLikeFn(ctx, userID, postID)
}
func (s *socialRepoStub) AddFollow(ctx context.Context, followerID, followeeID uint) error {
	return s.addFollowFn(ctx, followerID, followeeID)
}
func (s *socialRepoStub) RemoveFollow(ctx context.Context, followerID, followeeID uint) error {
	return s.removeFollowFn(ctx, followerID, followeeID)
}
func (s *socialRepoStub) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listFollowersFn(ctx, userID)
}
func (s *socialRepoStub) ListFollowings(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listFollowingsFn(ctx, userID)
}

func noopSocialRepo() *socialRepoStub {
	return &socialRepoStub{
		addLikeFn:        func(_ context.Context, _, _ uint) error { return nil },
		removeLikeFn:     func(_ context.Context, _, _ uint) error { return nil },
		addFollowFn:      func(_ context.Context, _, _ uint) error { return nil },
		removeFollowFn:   func(_ context.Context, _, _ uint) error { return nil },
		listFollowersFn:  func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		listFollowingsFn: func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Nickname: "user"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

// feedRepoStub is a stub for repository.FeedRepository.
type feedRepoStub struct {
	listFn func(context.Context, *uint, int) ([]*models.Post, error)
}

func (s *feedRepoStub) List(ctx context.Context, lastID *uint, limit int) ([]*models.Post, error) {
	return s.listFn(ctx, lastID, limit)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, code, appErr.Code)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeForbidden)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeConflict)
}
