// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"
	"regexp"
	"strings"

	"chirp/internal/models"
	"chirp/internal/repository"
)

// hashtagPattern matches a '#' followed by a run of characters that are
// neither whitespace nor another '#'. "#Go#Redis" therefore yields two tags
// and a bare "#" yields none.
var hashtagPattern = regexp.MustCompile(`#[^\s#]+`)

// ExtractTags returns the canonical tag names found in content: matched
// without the '#' prefix, lowercased, and deduplicated keeping first
// occurrence order.
func ExtractTags(content string) []string {
	matches := hashtagPattern.FindAllString(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.ToLower(strings.TrimPrefix(m, "#"))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		tags = append(tags, name)
	}
	return tags
}

// HashtagIndexer resolves hashtags in post bodies to persistent tag rows and
// links them to posts.
type HashtagIndexer struct {
	hashtagRepo repository.HashtagRepository
}

func NewHashtagIndexer(hashtagRepo repository.HashtagRepository) *HashtagIndexer {
	return &HashtagIndexer{hashtagRepo: hashtagRepo}
}

// Resolve maps the hashtags in content to their tag rows, creating missing
// ones. The returned slice preserves first-occurrence order.
func (s *HashtagIndexer) Resolve(ctx context.Context, content string) ([]*models.Hashtag, error) {
	names := ExtractTags(content)
	if len(names) == 0 {
		return nil, nil
	}

	tags := make([]*models.Hashtag, 0, len(names))
	for _, name := range names {
		tag, err := s.hashtagRepo.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ExtractAndLink indexes the hashtags in content against post. For an unsaved
// post (ID zero) the tags are attached in memory so the caller's insert
// persists post and links atomically; for a saved post the links are appended
// directly.
func (s *HashtagIndexer) ExtractAndLink(ctx context.Context, post *models.Post, content string) error {
	tags, err := s.Resolve(ctx, content)
	if err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}

	if post.ID == 0 {
		for _, tag := range tags {
			post.Hashtags = append(post.Hashtags, *tag)
		}
		return nil
	}
	return s.hashtagRepo.Link(ctx, post, tags)
}
