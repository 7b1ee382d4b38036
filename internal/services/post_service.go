package services

import (
	"fmt"
	"slices"

	"userblog/internal/events"
	"userblog/internal/models"
	"userblog/internal/repositories"
)

const resourcePost = "post"

// PostService handles business logic related to blog posts.
type PostService struct {
	repo repositories.PostRepository
	opts options
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository, opts ...Option) *PostService {
	return &PostService{
		repo: repo,
		opts: buildOptions(opts),
	}
}

// ListPosts returns every blog post in insertion order.
func (s *PostService) ListPosts() ([]models.BlogPost, error) {
	return s.repo.GetAll()
}

// GetPostByID returns a single blog post.
func (s *PostService) GetPostByID(id string) (*models.BlogPost, error) {
	return s.repo.GetByID(id)
}

// AddPost validates input and appends it as a new blog post. AuthorID is
// taken as given; it is not looked up in the user store.
func (s *PostService) AddPost(input models.NewBlogPost) (*models.BlogPost, error) {
	fieldErrs, err := firstFailure(s.opts.validate, input)
	if err != nil {
		return nil, err
	}
	if fieldErrs != nil {
		rule := postRuleError(fieldErrs)
		s.opts.metrics.ValidationFailed(resourcePost, rule.Code)
		return nil, rule
	}

	post := &models.BlogPost{
		Title:         input.Title,
		Content:       input.Content,
		AuthorID:      input.AuthorID,
		Tags:          slices.Clone(input.Tags),
		CoverImageURL: input.CoverImageURL,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to add blog post: %w", err)
	}

	s.opts.metrics.RecordCreated(resourcePost)
	s.opts.logger.Info().Str("post_id", post.ID).Str("author_id", post.AuthorID).Msg("blog post added")
	s.opts.publish(events.TopicPostCreated, events.PostCreated{
		ID:        post.ID,
		Title:     post.Title,
		AuthorID:  post.AuthorID,
		Tags:      post.Tags,
		CreatedAt: post.CreatedAt,
	})
	return post, nil
}
