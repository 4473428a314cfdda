package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "phorum/internal/errors"
	"phorum/internal/model"
)

func TestExtractCheckTarget(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		target    string
		triggered bool
	}{
		{
			name:      "no marker",
			body:      "just a normal reply",
			triggered: false,
		},
		{
			name:      "marker with url target",
			body:      "is this safe? @antiphish run check http://example.com",
			target:    "http://example.com",
			triggered: true,
		},
		{
			name:      "marker at end yields empty target",
			body:      "please @antiphish run check",
			target:    "",
			triggered: true,
		},
		{
			name:      "surrounding whitespace is trimmed",
			body:      "@antiphish run check   http://example.com  ",
			target:    "http://example.com",
			triggered: true,
		},
		{
			name:      "text after target is part of the target",
			body:      "@antiphish run check http://a.com please",
			target:    "http://a.com please",
			triggered: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, triggered := extractCheckTarget(tt.body)
			assert.Equal(t, tt.triggered, triggered)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestPostService_CreatePost(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockReplies := new(MockReplyRepository)
	mockUsers := new(MockUserRepository)

	mockPosts.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
		return p.AuthorID == 7 && p.Title == "hello" && p.Body == "first post"
	})).Return(nil)

	svc := NewPostService(mockPosts, mockReplies, mockUsers)
	post, err := svc.CreatePost(context.Background(), 7, "hello", "first post")

	assert.NoError(t, err)
	assert.NotNil(t, post)
	assert.Equal(t, uint(7), post.AuthorID)
	mockPosts.AssertExpectations(t)
}

func TestPostService_GetPost(t *testing.T) {
	t.Run("post with replies in stored order", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockReplies := new(MockReplyRepository)
		mockUsers := new(MockUserRepository)

		mockPosts.On("FindByID", mock.Anything, uint(3)).Return(&model.Post{ID: 3, Title: "t"}, nil)
		mockReplies.On("ListByPost", mock.Anything, uint(3)).Return([]model.Reply{
			{ID: 1, PostID: 3}, {ID: 2, PostID: 3},
		}, nil)

		svc := NewPostService(mockPosts, mockReplies, mockUsers)
		post, replies, err := svc.GetPost(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, uint(3), post.ID)
		assert.Len(t, replies, 2)
		assert.Equal(t, uint(1), replies[0].ID)
	})

	t.Run("unknown post", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockReplies := new(MockReplyRepository)
		mockUsers := new(MockUserRepository)

		mockPosts.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPostService(mockPosts, mockReplies, mockUsers)
		_, _, err := svc.GetPost(context.Background(), 99)

		assert.Equal(t, apperrors.ErrPostNotFound, err)
	})
}

func TestPostService_CreateReply(t *testing.T) {
	t.Run("plain reply does not invoke the bot", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockReplies := new(MockReplyRepository)
		mockUsers := new(MockUserRepository)

		mockPosts.On("FindByID", mock.Anything, uint(3)).Return(&model.Post{ID: 3}, nil)
		mockReplies.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Reply) bool {
			return r.AuthorID == 7 && r.PostID == 3 && r.Body == "nice post"
		})).Return(nil).Once()

		svc := NewPostService(mockPosts, mockReplies, mockUsers)
		reply, err := svc.CreateReply(context.Background(), 3, 7, "nice post")

		assert.NoError(t, err)
		assert.Equal(t, uint(7), reply.AuthorID)
		mockReplies.AssertExpectations(t)
		mockUsers.AssertNotCalled(t, "FindByUsername")
	})

	t.Run("marker synthesizes exactly one bot reply", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockReplies := new(MockReplyRepository)
		mockUsers := new(MockUserRepository)

		body := "is this safe? @antiphish run check http://example.com"
		var created []*model.Reply

		mockPosts.On("FindByID", mock.Anything, uint(3)).Return(&model.Post{ID: 3}, nil)
		mockReplies.On("Create", mock.Anything, mock.AnythingOfType("*model.Reply")).
			Run(func(args mock.Arguments) {
				created = append(created, args.Get(1).(*model.Reply))
			}).Return(nil).Twice()
		mockUsers.On("FindByUsername", mock.Anything, "antiphish").Return(&model.User{
			ID:       2,
			Username: "antiphish",
			Role:     model.RoleBot,
		}, nil)

		svc := NewPostService(mockPosts, mockReplies, mockUsers)
		reply, err := svc.CreateReply(context.Background(), 3, 7, body)

		assert.NoError(t, err)
		assert.Equal(t, body, reply.Body)
		assert.Len(t, created, 2)

		// Human reply first, bot reply second, in creation order.
		assert.Equal(t, uint(7), created[0].AuthorID)
		assert.Equal(t, uint(2), created[1].AuthorID)
		assert.Equal(t, uint(3), created[1].PostID)
		assert.Equal(t,
			"[AntiPhish Bot] Safety report for http://example.com:\nThis is a placeholder response.",
			created[1].Body)

		mockReplies.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("missing bot account keeps the human reply", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockReplies := new(MockReplyRepository)
		mockUsers := new(MockUserRepository)

		mockPosts.On("FindByID", mock.Anything, uint(3)).Return(&model.Post{ID: 3}, nil)
		mockReplies.On("Create", mock.Anything, mock.AnythingOfType("*model.Reply")).Return(nil).Once()
		mockUsers.On("FindByUsername", mock.Anything, "antiphish").Return(nil, gorm.ErrRecordNotFound)

		svc := NewPostService(mockPosts, mockReplies, mockUsers)
		reply, err := svc.CreateReply(context.Background(), 3, 7, "check @antiphish run check http://x.test")

		assert.NoError(t, err)
		assert.NotNil(t, reply)
		mockReplies.AssertExpectations(t)
	})

	t.Run("reply to unknown post", func(t *testing.T) {
		mockPosts := new(MockPostRepository)
		mockReplies := new(MockReplyRepository)
		mockUsers := new(MockUserRepository)

		mockPosts.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPostService(mockPosts, mockReplies, mockUsers)
		_, err := svc.CreateReply(context.Background(), 99, 7, "hello")

		assert.Equal(t, apperrors.ErrPostNotFound, err)
		mockReplies.AssertNotCalled(t, "Create")
	})
}
