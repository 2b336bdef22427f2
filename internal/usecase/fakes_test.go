package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mikiasgoitom/Commune/internal/domain/contract"
	"github.com/mikiasgoitom/Commune/internal/domain/entity"
)

// fakeLogger keeps warnings and errors so tests can assert on them.
type fakeLogger struct {
	mu       sync.Mutex
	warnings []string
	errors   []string
}

func (l *fakeLogger) Debugf(string, ...interface{}) {}
func (l *fakeLogger) Infof(string, ...interface{})  {}
func (l *fakeLogger) Warnf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *fakeLogger) Warningf(format string, args ...interface{}) { l.Warnf(format, args...) }
func (l *fakeLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
func (l *fakeLogger) Fatalf(format string, args ...interface{}) { panic(fmt.Sprintf(format, args...)) }

type seqUUID struct{ n int }

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// memPostRepo is an in-memory ICommunityPostRepository.
type memPostRepo struct {
	posts    map[string]*entity.CommunityPost
	listErr  error
	lastOpts *contract.PostFilterOptions
}

func newMemPostRepo(posts ...*entity.CommunityPost) *memPostRepo {
	r := &memPostRepo{posts: map[string]*entity.CommunityPost{}}
	for _, p := range posts {
		r.posts[p.ID] = p
	}
	return r
}

func (r *memPostRepo) CreatePost(ctx context.Context, post *entity.CommunityPost) error {
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *memPostRepo) GetPostByID(ctx context.Context, postID string) (*entity.CommunityPost, error) {
	p, ok := r.posts[postID]
	if !ok || p.IsDeleted {
		return nil, contract.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memPostRepo) GetPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]*entity.CommunityPost, int64, error) {
	r.lastOpts = opts
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var out []*entity.CommunityPost
	for _, p := range r.posts {
		if p.IsDeleted {
			continue
		}
		if opts.AuthorID != nil && p.AuthorID != *opts.AuthorID {
			continue
		}
		if opts.Category != nil && p.Category != *opts.Category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		less := out[i].CreatedAt.Before(out[j].CreatedAt)
		if opts.SortBy == "like_count" {
			less = out[i].LikeCount < out[j].LikeCount
		}
		if opts.SortOrder == "desc" {
			return !less
		}
		return less
	})
	total := int64(len(out))
	start := (opts.Page - 1) * opts.PageSize
	if start > len(out) {
		start = len(out)
	}
	end := start + opts.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *memPostRepo) SoftDeletePost(ctx context.Context, postID string) error {
	p, ok := r.posts[postID]
	if !ok || p.IsDeleted {
		return contract.ErrPostNotFound
	}
	p.IsDeleted = true
	return nil
}

func (r *memPostRepo) SetLikeCount(ctx context.Context, postID string, count int64) error {
	p, ok := r.posts[postID]
	if !ok {
		return contract.ErrPostNotFound
	}
	p.LikeCount = int(count)
	return nil
}

// memLikeRepo is an in-memory ILikeRepository keyed by (user, post).
type memLikeRepo struct {
	likes     map[[2]string]*entity.Like
	lookupErr error
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{likes: map[[2]string]*entity.Like{}}
}

func (r *memLikeRepo) CreateLike(ctx context.Context, like *entity.Like) error {
	key := [2]string{like.UserID, like.PostID}
	if _, ok := r.likes[key]; !ok {
		r.likes[key] = like
	}
	return nil
}

func (r *memLikeRepo) DeleteLike(ctx context.Context, userID, postID string) error {
	key := [2]string{userID, postID}
	if _, ok := r.likes[key]; !ok {
		return contract.ErrLikeNotFound
	}
	delete(r.likes, key)
	return nil
}

func (r *memLikeRepo) GetLikeByUserAndPost(ctx context.Context, userID, postID string) (*entity.Like, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	like, ok := r.likes[[2]string{userID, postID}]
	if !ok {
		return nil, contract.ErrLikeNotFound
	}
	return like, nil
}

func (r *memLikeRepo) CountLikesByPostID(ctx context.Context, postID string) (int64, error) {
	var n int64
	for key := range r.likes {
		if key[1] == postID {
			n++
		}
	}
	return n, nil
}

// stubIdentity returns a fixed principal or error.
type stubIdentity struct {
	principal *entity.Principal
	err       error
}

func (s stubIdentity) ResolvePrincipal(ctx context.Context) (*entity.Principal, error) {
	return s.principal, s.err
}

// memPostCache is an in-memory IPostCache.
type memPostCache struct {
	posts  map[string]*entity.CommunityPost
	counts map[string]int64
	getErr error
}

func newMemPostCache() *memPostCache {
	return &memPostCache{posts: map[string]*entity.CommunityPost{}, counts: map[string]int64{}}
}

func (c *memPostCache) GetPost(ctx context.Context, postID string) (*entity.CommunityPost, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.posts[postID]
	return p, ok, nil
}

func (c *memPostCache) SetPost(ctx context.Context, post *entity.CommunityPost) error {
	c.posts[post.ID] = post
	return nil
}

func (c *memPostCache) InvalidatePost(ctx context.Context, postID string) error {
	delete(c.posts, postID)
	return nil
}

func (c *memPostCache) GetLikeCount(ctx context.Context, postID string) (int64, bool, error) {
	n, ok := c.counts[postID]
	return n, ok, nil
}

func (c *memPostCache) SetLikeCount(ctx context.Context, postID string, count int64) error {
	c.counts[postID] = count
	return nil
}

type recordingPublisher struct {
	events []entity.LikeEvent
	err    error
}

func (p *recordingPublisher) PublishLikeEvent(ctx context.Context, event entity.LikeEvent) error {
	p.events = append(p.events, event)
	return p.err
}

var errBoom = errors.New("boom")
