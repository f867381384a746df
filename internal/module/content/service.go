package content

import (
	"context"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tyredepot/admin/internal/domain"
)

var validBlogFormats = map[string]bool{
	domain.BlogFormatHTML:     true,
	domain.BlogFormatMarkdown: true,
	domain.BlogFormatPlain:    true,
}

// blogService implements domain.BlogService.
type blogService struct {
	repo   domain.BlogRepository
	policy *bluemonday.Policy
}

// NewBlogService creates a new BlogService. HTML-format posts are sanitized
// with a UGC allowlist policy before persisting; markdown and plain content
// is stored as submitted.
func NewBlogService(repo domain.BlogRepository) domain.BlogService {
	return &blogService{repo: repo, policy: bluemonday.UGCPolicy()}
}

func (s *blogService) ListBlogs(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Blog], error) {
	return s.repo.List(ctx, req)
}

func (s *blogService) GetBlog(ctx context.Context, id uint) (*domain.Blog, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) CreateBlog(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	if err := s.prepare(blog); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) UpdateBlog(ctx context.Context, id uint, in *domain.Blog) (*domain.Blog, error) {
	if err := s.prepare(in); err != nil {
		return nil, err
	}
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.Title = in.Title
	blog.Slug = in.Slug
	blog.Format = in.Format
	blog.Content = in.Content
	blog.CoverPath = in.CoverPath
	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) TogglePublished(ctx context.Context, id uint) (*domain.Blog, error) {
	blog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.IsPublished = !blog.IsPublished
	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// prepare normalizes and validates a blog payload in place.
func (s *blogService) prepare(blog *domain.Blog) error {
	blog.Title = strings.TrimSpace(blog.Title)
	if blog.Title == "" {
		return domain.NewAppError(domain.CodeValidation, "blog title is required", nil)
	}

	if blog.Slug == "" {
		blog.Slug = Slugify(blog.Title)
	} else {
		blog.Slug = Slugify(blog.Slug)
	}
	if blog.Slug == "" {
		return domain.NewAppError(domain.CodeValidation, "blog slug is required", nil)
	}

	if blog.Format == "" {
		blog.Format = domain.BlogFormatHTML
	}
	blog.Format = strings.ToLower(strings.TrimSpace(blog.Format))
	if !validBlogFormats[blog.Format] {
		return domain.NewAppError(domain.CodeValidation, "unknown blog format", nil)
	}

	if blog.Format == domain.BlogFormatHTML {
		blog.Content = s.policy.Sanitize(blog.Content)
	}
	return nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// bannerService implements domain.BannerService.
type bannerService struct {
	repo domain.BannerRepository
}

// NewBannerService creates a new BannerService with the given repository.
func NewBannerService(repo domain.BannerRepository) domain.BannerService {
	return &bannerService{repo: repo}
}

func (s *bannerService) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	return s.repo.ListAll(ctx)
}

func (s *bannerService) GetBanner(ctx context.Context, id uint) (*domain.Banner, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateBanner appends a new active banner at the end of the display order.
func (s *bannerService) CreateBanner(ctx context.Context, banner *domain.Banner) (*domain.Banner, error) {
	if err := validateBanner(banner); err != nil {
		return nil, err
	}
	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	banner.Sequence = len(existing)
	banner.IsActive = true
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, id uint, in *domain.Banner) (*domain.Banner, error) {
	if err := validateBanner(in); err != nil {
		return nil, err
	}
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	banner.Title = in.Title
	banner.ImagePath = in.ImagePath
	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// ToggleBanner flips the active flag. Deactivating the last active banner is
// refused so the storefront always has something to show.
func (s *bannerService) ToggleBanner(ctx context.Context, id uint) (*domain.Banner, error) {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner.IsActive {
		if err := s.ensureNotLastActive(ctx); err != nil {
			return nil, err
		}
	}
	banner.IsActive = !banner.IsActive
	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// DeleteBanner removes a banner, refusing to remove the last active one.
func (s *bannerService) DeleteBanner(ctx context.Context, id uint) error {
	banner, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if banner.IsActive {
		if err := s.ensureNotLastActive(ctx); err != nil {
			return err
		}
	}
	return s.repo.Delete(ctx, id)
}

// Reorder persists a complete new display order and returns the banners in
// that order.
func (s *bannerService) Reorder(ctx context.Context, orderedIDs []uint) ([]domain.Banner, error) {
	if len(orderedIDs) == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "ordered ids must not be empty", nil)
	}
	seen := make(map[uint]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if id == 0 || seen[id] {
			return nil, domain.NewAppError(domain.CodeValidation, "ordered ids must be unique and positive", nil)
		}
		seen[id] = true
	}
	if err := s.repo.UpdateSequence(ctx, orderedIDs); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}

func (s *bannerService) ensureNotLastActive(ctx context.Context) error {
	active, err := s.repo.CountActive(ctx)
	if err != nil {
		return err
	}
	if active <= 1 {
		return domain.NewAppError(domain.CodeBusinessRule, "at least one banner must remain active", nil)
	}
	return nil
}

func validateBanner(banner *domain.Banner) error {
	banner.Title = strings.TrimSpace(banner.Title)
	if banner.Title == "" {
		return domain.NewAppError(domain.CodeValidation, "banner title is required", nil)
	}
	if strings.TrimSpace(banner.ImagePath) == "" {
		return domain.NewAppError(domain.CodeValidation, "banner image is required", nil)
	}
	return nil
}
