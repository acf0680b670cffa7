package server

import (
	"context"

	"ripple/internal/config"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockProfileRepository is a mock of the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProfileRepository) CountFollowers(ctx context.Context, profileID uint) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) IsFollower(ctx context.Context, profileID, userID uint) (bool, error) {
	args := m.Called(ctx, profileID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) AddFollower(ctx context.Context, profileID, userID uint) error {
	args := m.Called(ctx, profileID, userID)
	return args.Error(0)
}

func (m *MockProfileRepository) RemoveFollower(ctx context.Context, profileID, userID uint) error {
	args := m.Called(ctx, profileID, userID)
	return args.Error(0)
}

func (m *MockProfileRepository) FollowingUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, limit, offset, currentUserID)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, authorIDs, limit, offset, currentUserID)
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Unlike(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotificationRepository is a mock of the NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByReceiver(ctx context.Context, receiverID uint, limit, offset int) ([]*models.Notification, error) {
	args := m.Called(ctx, receiverID, limit, offset)
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testMocks bundles the repository mocks behind a test server.
type testMocks struct {
	users         *MockUserRepository
	profiles      *MockProfileRepository
	posts         *MockPostRepository
	comments      *MockCommentRepository
	notifications *MockNotificationRepository
}

// newTestServer builds a Server over mock repositories, without DB or Redis.
func newTestServer() (*Server, *testMocks) {
	m := &testMocks{
		users:         new(MockUserRepository),
		profiles:      new(MockProfileRepository),
		posts:         new(MockPostRepository),
		comments:      new(MockCommentRepository),
		notifications: new(MockNotificationRepository),
	}

	s := &Server{
		config:           &config.Config{JWTSecret: "test-secret", Port: "0", Env: "test"},
		userRepo:         m.users,
		profileRepo:      m.profiles,
		postRepo:         m.posts,
		commentRepo:      m.comments,
		notificationRepo: m.notifications,
	}
	s.notificationService = service.NewNotificationService(m.notifications)
	s.profileService = service.NewProfileService(m.profiles)
	s.postService = service.NewPostService(m.posts, m.users, s.notificationService)
	s.commentService = service.NewCommentService(m.comments, m.posts, m.users, s.notificationService)
	s.feedService = service.NewFeedService(m.posts, m.profiles)
	return s, m
}
