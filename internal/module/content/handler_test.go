package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tyredepot/admin/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testAssetBase = "http://localhost:8080/uploads"

// fakeBlogService implements domain.BlogService for handler tests.
type fakeBlogService struct {
	blog *domain.Blog
	page *domain.PageResult[domain.Blog]
	err  error
}

func (f *fakeBlogService) ListBlogs(context.Context, domain.PageRequest) (*domain.PageResult[domain.Blog], error) {
	return f.page, f.err
}
func (f *fakeBlogService) GetBlog(context.Context, uint) (*domain.Blog, error) {
	return f.blog, f.err
}
func (f *fakeBlogService) CreateBlog(context.Context, *domain.Blog) (*domain.Blog, error) {
	return f.blog, f.err
}
func (f *fakeBlogService) UpdateBlog(context.Context, uint, *domain.Blog) (*domain.Blog, error) {
	return f.blog, f.err
}
func (f *fakeBlogService) TogglePublished(context.Context, uint) (*domain.Blog, error) {
	return f.blog, f.err
}
func (f *fakeBlogService) DeleteBlog(context.Context, uint) error { return f.err }

// fakeBannerService implements domain.BannerService for handler tests.
type fakeBannerService struct {
	banner  *domain.Banner
	banners []domain.Banner
	err     error

	reorderIDs []uint
}

func (f *fakeBannerService) ListBanners(context.Context) ([]domain.Banner, error) {
	return f.banners, f.err
}
func (f *fakeBannerService) GetBanner(context.Context, uint) (*domain.Banner, error) {
	return f.banner, f.err
}
func (f *fakeBannerService) CreateBanner(context.Context, *domain.Banner) (*domain.Banner, error) {
	return f.banner, f.err
}
func (f *fakeBannerService) UpdateBanner(context.Context, uint, *domain.Banner) (*domain.Banner, error) {
	return f.banner, f.err
}
func (f *fakeBannerService) ToggleBanner(context.Context, uint) (*domain.Banner, error) {
	return f.banner, f.err
}
func (f *fakeBannerService) DeleteBanner(context.Context, uint) error { return f.err }
func (f *fakeBannerService) Reorder(_ context.Context, ids []uint) ([]domain.Banner, error) {
	f.reorderIDs = ids
	return f.banners, f.err
}

func setupRouter(blogs domain.BlogService, banners domain.BannerService) *gin.Engine {
	r := gin.New()
	m := NewModule(
		NewBlogHandler(blogs, testAssetBase),
		NewBannerHandler(banners, testAssetBase),
	)
	m.RegisterRoutes(&r.RouterGroup, &r.RouterGroup)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBlog_BadFormatRejected(t *testing.T) {
	w := doJSON(t, setupRouter(&fakeBlogService{}, &fakeBannerService{}),
		http.MethodPost, "/blogs", `{"title":"T","format":"docx"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestGetBlog_ResolvesCoverURL(t *testing.T) {
	blog := &domain.Blog{Title: "T", Slug: "t", Format: "html", CoverPath: "blogs/t.png"}
	blog.ID = 1

	w := doJSON(t, setupRouter(&fakeBlogService{blog: blog}, &fakeBannerService{}),
		http.MethodGet, "/blogs/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var resp struct {
		Data struct {
			CoverURL string `json:"cover_url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if want := testAssetBase + "/blogs/t.png"; resp.Data.CoverURL != want {
		t.Errorf("cover_url = %q; want %q", resp.Data.CoverURL, want)
	}
}

func TestReorderBanners_ForwardsIDs(t *testing.T) {
	svc := &fakeBannerService{}
	w := doJSON(t, setupRouter(&fakeBlogService{}, svc),
		http.MethodPut, "/banners/sequence", `{"ordered_ids":[3,1,2]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200, body: %s", w.Code, w.Body.String())
	}
	if len(svc.reorderIDs) != 3 || svc.reorderIDs[0] != 3 {
		t.Errorf("forwarded ids = %v; want [3 1 2]", svc.reorderIDs)
	}
}

func TestReorderBanners_EmptyRejected(t *testing.T) {
	w := doJSON(t, setupRouter(&fakeBlogService{}, &fakeBannerService{}),
		http.MethodPut, "/banners/sequence", `{"ordered_ids":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestToggleBanner_GuardConflict(t *testing.T) {
	svc := &fakeBannerService{err: domain.NewAppError(domain.CodeBusinessRule, "at least one banner must remain active", nil)}
	w := doJSON(t, setupRouter(&fakeBlogService{}, svc),
		http.MethodPatch, "/banners/1/toggle", "")
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409", w.Code)
	}
}

func TestCreateBanner_MissingImageRejected(t *testing.T) {
	w := doJSON(t, setupRouter(&fakeBlogService{}, &fakeBannerService{}),
		http.MethodPost, "/banners", `{"title":"Sale"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}
