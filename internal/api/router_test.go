package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"catalog-service/internal/media"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/repository/memory"
	"catalog-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

type testServer struct {
	db     *memory.DB
	router *gin.Engine
}

func newServices(db *memory.DB, store *media.Store, coupons repository.CouponRepository) Services {
	return Services{
		Categories: service.NewCategoryService(db.Categories(), db.SubCategories(), db.Brands(), store),
		Variants:   service.NewVariantService(db.VariantTypes(), db.Variants()),
		Products:   service.NewProductService(db.Products(), db.Categories(), db.SubCategories(), db.Brands(), db.VariantTypes(), db.Variants(), store),
		Posters:    service.NewPosterService(db.Posters(), store),
		Coupons:    service.NewCouponService(coupons, db.Products(), db.Categories(), db.SubCategories()),
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	store, err := media.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	db := memory.New()
	router, err := NewRouter(newServices(db, store, db.Coupons()), Options{UploadDir: dir})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return &testServer{db: db, router: router}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) json(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req)
}

// form sends a multipart request; files maps a field name to file names
func (s *testServer) form(t *testing.T, method, path string, fields map[string]string, files map[string][]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		w.WriteField(k, v)
	}
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			if err != nil {
				t.Fatal(err)
			}
			part.Write([]byte("image-bytes"))
		}
	}
	w.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.do(t, req)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) envelope {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d: %s", w.Code, status, w.Body.String())
	}
	var env envelope
	decode(t, w, &env)
	return env
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCategoryRoutes(t *testing.T) {
	s := newTestServer(t)

	env := expectStatus(t, s.form(t, http.MethodPost, "/categories", map[string]string{"name": "Shoes"}, map[string][]string{"img": {"shoes.png"}}), http.StatusCreated)
	if !env.Success || env.Message != "Category created successfully." {
		t.Errorf("envelope = %+v", env)
	}
	var category model.Category
	json.Unmarshal(env.Data, &category)
	if category.Name != "Shoes" || !strings.HasPrefix(category.Img, "/uploads/") {
		t.Fatalf("category = %+v", category)
	}

	// the upload is served back
	w := s.do(t, httptest.NewRequest(http.MethodGet, category.Img, nil))
	if w.Code != http.StatusOK || w.Body.String() != "image-bytes" {
		t.Errorf("GET %s = %d %q", category.Img, w.Code, w.Body.String())
	}

	env = expectStatus(t, s.json(t, http.MethodGet, "/categories", nil), http.StatusOK)
	var list []model.Category
	json.Unmarshal(env.Data, &list)
	if len(list) != 1 {
		t.Errorf("list = %+v", list)
	}

	env = expectStatus(t, s.json(t, http.MethodGet, "/categories/not-an-id", nil), http.StatusBadRequest)
	if env.Success || env.Error == "" {
		t.Errorf("envelope = %+v", env)
	}
	expectStatus(t, s.json(t, http.MethodGet, "/categories/"+"65f000000000000000000000", nil), http.StatusNotFound)
	expectStatus(t, s.json(t, http.MethodDelete, "/categories/"+category.ID.Hex(), nil), http.StatusOK)
	expectStatus(t, s.json(t, http.MethodDelete, "/categories/"+category.ID.Hex(), nil), http.StatusNotFound)
}

func TestCategoryRejectsNonImage(t *testing.T) {
	s := newTestServer(t)
	env := expectStatus(t, s.form(t, http.MethodPost, "/categories", map[string]string{"name": "Docs"}, map[string][]string{"img": {"notes.txt"}}), http.StatusBadRequest)
	if !strings.Contains(env.Error, "notes.txt") {
		t.Errorf("error = %q", env.Error)
	}
}

func TestSubCategoryBindingErrors(t *testing.T) {
	s := newTestServer(t)

	env := expectStatus(t, s.json(t, http.MethodPost, "/subcategories", gin.H{"name": "Boots", "categoryId": "zzz"}), http.StatusBadRequest)
	if env.Error != "categoryId must be a valid id" {
		t.Errorf("error = %q", env.Error)
	}

	req := httptest.NewRequest(http.MethodPost, "/subcategories", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	expectStatus(t, s.do(t, req), http.StatusBadRequest)
}

func TestPosterUpdateRequiresField(t *testing.T) {
	s := newTestServer(t)

	env := expectStatus(t, s.form(t, http.MethodPost, "/posters", map[string]string{"title": "Sale"}, nil), http.StatusCreated)
	var poster model.Poster
	json.Unmarshal(env.Data, &poster)

	env = expectStatus(t, s.form(t, http.MethodPut, "/posters/"+poster.ID.Hex(), nil, nil), http.StatusBadRequest)
	if env.Error != "At least one field (title, img) is required to update." {
		t.Errorf("error = %q", env.Error)
	}
}

func TestProductRoutes(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	category := &model.Category{Name: "electronics"}
	s.db.Categories().Create(ctx, category)
	sub := &model.SubCategory{Name: "phones", CategoryID: category.ID}
	s.db.SubCategories().Create(ctx, sub)

	fields := map[string]string{
		"name":             "Phone X",
		"quantity":         "4",
		"price":            "199.90",
		"proCategoryId":    category.ID.Hex(),
		"proSubCategoryId": sub.ID.Hex(),
	}

	env := expectStatus(t, s.form(t, http.MethodPost, "/products", fields, nil), http.StatusBadRequest)
	if env.Error != "No image files provided" {
		t.Errorf("error = %q", env.Error)
	}

	env = expectStatus(t, s.form(t, http.MethodPost, "/products", fields, map[string][]string{"images": {"a.png", "b.jpg"}}), http.StatusCreated)
	var product model.Product
	json.Unmarshal(env.Data, &product)
	if len(product.Images) != 2 || product.Quantity != 4 {
		t.Fatalf("product = %+v", product)
	}

	env = expectStatus(t, s.json(t, http.MethodGet, "/products/"+product.ID.Hex(), nil), http.StatusOK)
	var detail struct {
		Category struct {
			Name string `json:"name"`
		} `json:"proCategoryId"`
		Brand *model.Ref `json:"proBrandId"`
	}
	json.Unmarshal(env.Data, &detail)
	if detail.Category.Name != "electronics" || detail.Brand != nil {
		t.Errorf("detail = %+v", detail)
	}
}

func seedCoupon(t *testing.T, s *testServer, body gin.H) model.Coupon {
	t.Helper()
	env := expectStatus(t, s.json(t, http.MethodPost, "/coupons", body), http.StatusCreated)
	var coupon model.Coupon
	json.Unmarshal(env.Data, &coupon)
	return coupon
}

func checkCoupon(t *testing.T, s *testServer, body gin.H) model.CheckCouponResponse {
	t.Helper()
	w := s.json(t, http.MethodPost, "/coupons/check-coupon", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp model.CheckCouponResponse
	decode(t, w, &resp)
	return resp
}

func TestCouponRoutes(t *testing.T) {
	s := newTestServer(t)
	tomorrow := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	coupon := seedCoupon(t, s, gin.H{
		"couponCode":            "SAVE10",
		"discountType":          "percentage",
		"discountAmount":        10,
		"minimumPurchaseAmount": 50,
		"endDate":               tomorrow,
	})
	if coupon.Status != model.CouponActive {
		t.Errorf("status = %q", coupon.Status)
	}

	env := expectStatus(t, s.json(t, http.MethodPost, "/coupons", gin.H{
		"couponCode":     "SAVE10",
		"discountType":   "fixed",
		"discountAmount": 1,
		"endDate":        tomorrow,
	}), http.StatusConflict)
	if env.Success {
		t.Errorf("envelope = %+v", env)
	}

	env = expectStatus(t, s.json(t, http.MethodPost, "/coupons", gin.H{
		"couponCode":     "BAD",
		"discountType":   "bogo",
		"discountAmount": 1,
		"endDate":        tomorrow,
	}), http.StatusBadRequest)
	if env.Error != "discountType must be one of: fixed percentage" {
		t.Errorf("error = %q", env.Error)
	}

	resp := checkCoupon(t, s, gin.H{"couponCode": "SAVE10", "productIds": []string{}, "purchaseAmount": 60})
	if !resp.Applicable || resp.Message != service.MsgApplicableForAll || resp.Coupon == nil {
		t.Errorf("check 60 = %+v", resp)
	}

	resp = checkCoupon(t, s, gin.H{"couponCode": "SAVE10", "productIds": []string{}, "purchaseAmount": 40})
	if resp.Applicable || resp.Message != service.MsgMinimumNotMet {
		t.Errorf("check 40 = %+v", resp)
	}

	resp = checkCoupon(t, s, gin.H{"couponCode": "MISSING", "purchaseAmount": 40})
	if resp.Applicable || resp.Message != service.MsgCouponNotFound {
		t.Errorf("check missing = %+v", resp)
	}

	env = expectStatus(t, s.json(t, http.MethodPost, "/coupons/check-coupon", gin.H{"productIds": []string{}}), http.StatusBadRequest)
	if env.Error != "couponCode is required" {
		t.Errorf("error = %q", env.Error)
	}

	// an unscoped coupon ignores the product list, malformed ids included
	resp = checkCoupon(t, s, gin.H{"couponCode": "SAVE10", "productIds": []string{"nope"}, "purchaseAmount": 60})
	if !resp.Applicable || resp.Message != service.MsgApplicableForAll {
		t.Errorf("check with malformed id = %+v", resp)
	}
}

func TestCheckCouponScopedMalformedID(t *testing.T) {
	s := newTestServer(t)
	category := &model.Category{Name: "electronics"}
	s.db.Categories().Create(context.Background(), category)

	seedCoupon(t, s, gin.H{
		"couponCode":         "ELEC",
		"discountType":       "fixed",
		"discountAmount":     5,
		"endDate":            time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		"applicableCategory": category.ID.Hex(),
	})

	env := expectStatus(t, s.json(t, http.MethodPost, "/coupons/check-coupon", gin.H{"couponCode": "ELEC", "productIds": []string{"nope"}}), http.StatusBadRequest)
	if env.Error != "productIds must be a valid id" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestCouponEndDateFormats(t *testing.T) {
	s := newTestServer(t)

	coupon := seedCoupon(t, s, gin.H{
		"couponCode":     "NYE",
		"discountType":   "fixed",
		"discountAmount": 5,
		"endDate":        "2030-12-31",
	})
	want := time.Date(2030, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !coupon.EndDate.Equal(want) {
		t.Errorf("endDate = %v, want %v", coupon.EndDate, want)
	}

	env := expectStatus(t, s.json(t, http.MethodPost, "/coupons", gin.H{
		"couponCode":     "BADDATE",
		"discountType":   "fixed",
		"discountAmount": 5,
		"endDate":        "31/12/2030",
	}), http.StatusBadRequest)
	if env.Error != "endDate must be an RFC3339 timestamp or a YYYY-MM-DD date" {
		t.Errorf("error = %q", env.Error)
	}

	env = expectStatus(t, s.json(t, http.MethodPost, "/coupons", gin.H{
		"couponCode":     "NODATE",
		"discountType":   "fixed",
		"discountAmount": 5,
	}), http.StatusBadRequest)
	if env.Error != "endDate is required" {
		t.Errorf("error = %q", env.Error)
	}
}

type unavailableCoupons struct {
	repository.CouponRepository
}

func (unavailableCoupons) FindByCode(context.Context, string) (*model.Coupon, error) {
	return nil, errors.New("connection reset")
}

func TestCheckCouponStoreFailure(t *testing.T) {
	store, err := media.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	db := memory.New()
	router, err := NewRouter(newServices(db, store, unavailableCoupons{db.Coupons()}), Options{})
	if err != nil {
		t.Fatal(err)
	}
	s := &testServer{db: db, router: router}

	env := expectStatus(t, s.json(t, http.MethodPost, "/coupons/check-coupon", gin.H{"couponCode": "SAVE10"}), http.StatusInternalServerError)
	if env.Success || env.Error != "Internal server error." {
		t.Errorf("envelope = %+v", env)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	s := newTestServer(t)
	s.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	env := expectStatus(t, s.json(t, http.MethodGet, "/boom", nil), http.StatusInternalServerError)
	if env.Success {
		t.Errorf("envelope = %+v", env)
	}
}
