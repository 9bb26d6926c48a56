package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-service/internal/media"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// setupMongoServer connects to MONGO_URI, resets the catalog collections and
// serves the router over a real listener. Skips when MONGO_URI is unset.
func setupMongoServer(t *testing.T) (*httptest.Server, *mongoFixtures) {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	dbName := os.Getenv("MONGO_TEST_DB")
	if dbName == "" {
		dbName = "catalog_test"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoDB, err := database.Connect(ctx, uri, dbName, 10*time.Second)
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongoDB.Database.Drop(ctx)
		mongoDB.Disconnect(ctx)
	})

	if err := mongoDB.Database.Drop(ctx); err != nil {
		t.Fatalf("Failed to reset database: %v", err)
	}
	if err := mongoDB.CreateIndexes(ctx); err != nil {
		t.Fatalf("Failed to create indexes: %v", err)
	}

	db := mongoDB.Database
	f := &mongoFixtures{
		categories:    repository.NewCategoryRepository(db),
		subCategories: repository.NewSubCategoryRepository(db),
		products:      repository.NewProductRepository(db),
		coupons:       repository.NewCouponRepository(db),
	}

	store, err := media.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	brands := repository.NewBrandRepository(db)
	variantTypes := repository.NewVariantTypeRepository(db)
	variants := repository.NewVariantRepository(db)
	router, err := NewRouter(Services{
		Categories: service.NewCategoryService(f.categories, f.subCategories, brands, store),
		Variants:   service.NewVariantService(variantTypes, variants),
		Products:   service.NewProductService(f.products, f.categories, f.subCategories, brands, variantTypes, variants, store),
		Posters:    service.NewPosterService(repository.NewPosterRepository(db), store),
		Coupons:    service.NewCouponService(f.coupons, f.products, f.categories, f.subCategories),
	}, Options{UploadDir: store.Dir()})
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, f
}

type mongoFixtures struct {
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	products      repository.ProductRepository
	coupons       repository.CouponRepository
}

func postCheck(baseURL string, req gin.H) (int, model.CheckCouponResponse, error) {
	var resp model.CheckCouponResponse
	body, err := json.Marshal(req)
	if err != nil {
		return 0, resp, err
	}
	r, err := http.Post(baseURL+"/coupons/check-coupon", "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, resp, err
	}
	defer r.Body.Close()
	if r.StatusCode == http.StatusOK {
		err = json.NewDecoder(r.Body).Decode(&resp)
	}
	return r.StatusCode, resp, err
}

// TestConcurrentCouponChecks fires many checks at the same scoped coupon.
// The evaluator only reads, so every request must see the same answer.
func TestConcurrentCouponChecks(t *testing.T) {
	srv, f := setupMongoServer(t)
	ctx := context.Background()

	electronics := &model.Category{Name: "electronics"}
	books := &model.Category{Name: "books"}
	for _, c := range []*model.Category{electronics, books} {
		if err := f.categories.Create(ctx, c); err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	phones := &model.SubCategory{Name: "phones", CategoryID: electronics.ID}
	novels := &model.SubCategory{Name: "novels", CategoryID: books.ID}
	for _, s := range []*model.SubCategory{phones, novels} {
		if err := f.subCategories.Create(ctx, s); err != nil {
			t.Fatalf("seed subcategory: %v", err)
		}
	}
	phone := &model.Product{Name: "phone", Price: decimal.NewFromInt(300), CategoryID: electronics.ID, SubCategoryID: phones.ID}
	novel := &model.Product{Name: "novel", Price: decimal.NewFromInt(12), CategoryID: books.ID, SubCategoryID: novels.ID}
	for _, p := range []*model.Product{phone, novel} {
		if err := f.products.Create(ctx, p); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	coupon := &model.Coupon{
		CouponCode:            "ELEC20",
		DiscountType:          model.DiscountPercentage,
		DiscountAmount:        decimal.NewFromInt(20),
		MinimumPurchaseAmount: decimal.RequireFromString("99.99"),
		EndDate:               time.Now().Add(24 * time.Hour).UTC(),
		Status:                model.CouponActive,
		ApplicableCategory:    &electronics.ID,
	}
	if err := f.coupons.Create(ctx, coupon); err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	stored, err := f.coupons.FindByCode(ctx, "ELEC20")
	if err != nil {
		t.Fatalf("FindByCode: %v", err)
	}
	if !stored.MinimumPurchaseAmount.Equal(coupon.MinimumPurchaseAmount) {
		t.Errorf("minimum round-tripped as %s", stored.MinimumPurchaseAmount)
	}

	const concurrentRequests = 50
	var (
		applicable    int64
		notApplicable int64
		otherErrors   int64
		wg            sync.WaitGroup
	)

	for i := 0; i < concurrentRequests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			// odd requests smuggle a book into the order
			ids := []string{phone.ID.Hex()}
			if i%2 == 1 {
				ids = append(ids, novel.ID.Hex())
			}
			status, resp, err := postCheck(srv.URL, gin.H{"couponCode": "ELEC20", "productIds": ids, "purchaseAmount": 150})
			switch {
			case err != nil || status != http.StatusOK:
				atomic.AddInt64(&otherErrors, 1)
			case resp.Applicable && i%2 == 0:
				atomic.AddInt64(&applicable, 1)
			case !resp.Applicable && i%2 == 1 && resp.Message == service.MsgNotApplicable:
				atomic.AddInt64(&notApplicable, 1)
			default:
				atomic.AddInt64(&otherErrors, 1)
			}
		}(i)
	}
	wg.Wait()

	if applicable != concurrentRequests/2 {
		t.Errorf("Expected %d applicable results, got %d", concurrentRequests/2, applicable)
	}
	if notApplicable != concurrentRequests/2 {
		t.Errorf("Expected %d not-applicable results, got %d", concurrentRequests/2, notApplicable)
	}
	if otherErrors != 0 {
		t.Errorf("Expected 0 unexpected results, got %d", otherErrors)
	}
}

func TestMongoPopulatedCoupon(t *testing.T) {
	srv, f := setupMongoServer(t)
	ctx := context.Background()

	category := &model.Category{Name: "electronics"}
	if err := f.categories.Create(ctx, category); err != nil {
		t.Fatal(err)
	}
	coupon := &model.Coupon{
		CouponCode:         "POP",
		DiscountType:       model.DiscountFixed,
		DiscountAmount:     decimal.NewFromInt(5),
		EndDate:            time.Now().Add(time.Hour).UTC(),
		Status:             model.CouponActive,
		ApplicableCategory: &category.ID,
	}
	if err := f.coupons.Create(ctx, coupon); err != nil {
		t.Fatal(err)
	}
	if err := f.coupons.Create(ctx, &model.Coupon{CouponCode: "POP"}); err == nil {
		t.Error("duplicate coupon code accepted")
	}

	r, err := http.Get(fmt.Sprintf("%s/coupons/%s", srv.URL, coupon.ID.Hex()))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", r.StatusCode)
	}

	var env struct {
		Data model.CouponDetail `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if env.Data.ApplicableCategory == nil || env.Data.ApplicableCategory.Name != "electronics" {
		t.Errorf("applicable category = %+v", env.Data.ApplicableCategory)
	}
	if env.Data.ApplicableProduct != nil {
		t.Errorf("applicable product = %+v", env.Data.ApplicableProduct)
	}
}
