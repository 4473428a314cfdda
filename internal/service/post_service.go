package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "phorum/internal/errors"
	"phorum/internal/metrics"
	"phorum/internal/model"
	"phorum/internal/repository"
)

// PostService exposes post and reply operations. The author of every
// created record is the authenticated identity, never client-supplied.
type PostService interface {
	CreatePost(ctx context.Context, authorID uint, title, body string) (*model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, []model.Reply, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	CreateReply(ctx context.Context, postID, authorID uint, body string) (*model.Reply, error)
}

type postService struct {
	posts   repository.PostRepository
	replies repository.ReplyRepository
	users   repository.UserRepository
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, replies repository.ReplyRepository, users repository.UserRepository) PostService {
	return &postService{
		posts:   posts,
		replies: replies,
		users:   users,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID uint, title, body string) (*model.Post, error) {
	post := &model.Post{
		Title:    title,
		Body:     body,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	metrics.PostsCreatedTotal.Inc()
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, []model.Reply, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, apperrors.ErrPostNotFound
		}
		return nil, nil, fmt.Errorf("find post: %w", err)
	}

	replies, err := s.replies.ListByPost(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list replies: %w", err)
	}
	return post, replies, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx)
}

// CreateReply persists a reply to an existing post and then runs the bot
// trigger against its body. A bot failure never rolls back the human reply.
func (s *postService) CreateReply(ctx context.Context, postID, authorID uint, body string) (*model.Reply, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	reply := &model.Reply{
		Body:     body,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("create reply: %w", err)
	}
	metrics.RepliesCreatedTotal.WithLabelValues("user").Inc()

	s.runBotCheck(ctx, postID, body)

	return reply, nil
}
