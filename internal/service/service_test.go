package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store unavailable")

// fakeMedia records saved and removed uploads without touching disk
type fakeMedia struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	failOn  string
}

func (m *fakeMedia) Save(file *multipart.FileHeader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if file.Filename == m.failOn {
		return "", errors.New("disk full")
	}
	url := fmt.Sprintf("/uploads/%d-%s", len(m.saved), file.Filename)
	m.saved = append(m.saved, url)
	return url, nil
}

func (m *fakeMedia) Remove(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, url)
	return nil
}

func (m *fakeMedia) wasRemoved(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.removed {
		if r == url {
			return true
		}
	}
	return false
}

func upload(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

// brokenCoupons fails every coupon lookup at the storage layer
type brokenCoupons struct {
	repository.CouponRepository
}

func (brokenCoupons) FindByCode(context.Context, string) (*model.Coupon, error) {
	return nil, errStoreDown
}

// brokenProducts fails every product batch lookup at the storage layer
type brokenProducts struct {
	repository.ProductRepository
}

func (brokenProducts) FindByIDs(context.Context, []primitive.ObjectID) ([]*model.Product, error) {
	return nil, errStoreDown
}

// catalog seeds a small category tree shared by the service tests
type catalog struct {
	db          *memory.DB
	electronics *model.Category
	books       *model.Category
	phones      *model.SubCategory
	laptops     *model.SubCategory
	novels      *model.SubCategory
}

func seedCatalog(t *testing.T) *catalog {
	t.Helper()
	ctx := context.Background()
	c := &catalog{db: memory.New()}

	c.electronics = &model.Category{Name: "electronics"}
	c.books = &model.Category{Name: "books"}
	for _, cat := range []*model.Category{c.electronics, c.books} {
		if err := c.db.Categories().Create(ctx, cat); err != nil {
			t.Fatal(err)
		}
	}

	c.phones = &model.SubCategory{Name: "phones", CategoryID: c.electronics.ID}
	c.laptops = &model.SubCategory{Name: "laptops", CategoryID: c.electronics.ID}
	c.novels = &model.SubCategory{Name: "novels", CategoryID: c.books.ID}
	for _, sub := range []*model.SubCategory{c.phones, c.laptops, c.novels} {
		if err := c.db.SubCategories().Create(ctx, sub); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func (c *catalog) product(t *testing.T, name string, sub *model.SubCategory) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, CategoryID: sub.CategoryID, SubCategoryID: sub.ID}
	if err := c.db.Products().Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	return p
}
