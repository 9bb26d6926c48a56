package api

import (
	"net/http"

	"catalog-service/internal/media"
	"catalog-service/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer calls into
type Services struct {
	Categories *service.CategoryService
	Variants   *service.VariantService
	Products   *service.ProductService
	Posters    *service.PosterService
	Coupons    *service.CouponService
}

// Options tunes the router
type Options struct {
	UploadDir       string
	MaxUploadMemory int64
}

// NewRouter wires every catalog route onto a fresh gin engine
func NewRouter(svc Services, opts Options) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(requestLogger(), recovery())
	if opts.MaxUploadMemory > 0 {
		router.MaxMultipartMemory = opts.MaxUploadMemory
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.UploadDir != "" {
		router.Static(media.URLPrefix, opts.UploadDir)
	}

	categories := router.Group("/categories")
	{
		categories.POST("", createHandler(svc.Categories.CreateCategory, "Category created successfully."))
		categories.GET("", listHandler(svc.Categories.ListCategories, "Categories retrieved successfully."))
		categories.GET("/:id", getHandler(svc.Categories.GetCategory, "Category retrieved successfully."))
		categories.PUT("/:id", updateHandler(svc.Categories.UpdateCategory, "Category updated successfully."))
		categories.DELETE("/:id", deleteHandler(svc.Categories.DeleteCategory, "Category deleted successfully."))
	}

	subCategories := router.Group("/subcategories")
	{
		subCategories.POST("", createHandler(svc.Categories.CreateSubCategory, "Sub-category created successfully."))
		subCategories.GET("", listHandler(svc.Categories.ListSubCategories, "Sub-categories retrieved successfully."))
		subCategories.GET("/:id", getHandler(svc.Categories.GetSubCategory, "Sub-category retrieved successfully."))
		subCategories.PUT("/:id", updateHandler(svc.Categories.UpdateSubCategory, "Sub-category updated successfully."))
		subCategories.DELETE("/:id", deleteHandler(svc.Categories.DeleteSubCategory, "Sub-category deleted successfully."))
	}

	brands := router.Group("/brands")
	{
		brands.POST("", createHandler(svc.Categories.CreateBrand, "Brand created successfully."))
		brands.GET("", listHandler(svc.Categories.ListBrands, "Brands retrieved successfully."))
		brands.GET("/:id", getHandler(svc.Categories.GetBrand, "Brand retrieved successfully."))
		brands.PUT("/:id", updateHandler(svc.Categories.UpdateBrand, "Brand updated successfully."))
		brands.DELETE("/:id", deleteHandler(svc.Categories.DeleteBrand, "Brand deleted successfully."))
	}

	variantTypes := router.Group("/variantTypes")
	{
		variantTypes.POST("", createHandler(svc.Variants.CreateVariantType, "Variant type created successfully."))
		variantTypes.GET("", listHandler(svc.Variants.ListVariantTypes, "Variant types retrieved successfully."))
		variantTypes.GET("/:id", getHandler(svc.Variants.GetVariantType, "Variant type retrieved successfully."))
		variantTypes.PUT("/:id", updateHandler(svc.Variants.UpdateVariantType, "Variant type updated successfully."))
		variantTypes.DELETE("/:id", deleteHandler(svc.Variants.DeleteVariantType, "Variant type deleted successfully."))
	}

	variants := router.Group("/variants")
	{
		variants.POST("", createHandler(svc.Variants.CreateVariant, "Variant created successfully."))
		variants.GET("", listHandler(svc.Variants.ListVariants, "Variants retrieved successfully."))
		variants.GET("/:id", getHandler(svc.Variants.GetVariant, "Variant retrieved successfully."))
		variants.PUT("/:id", updateHandler(svc.Variants.UpdateVariant, "Variant updated successfully."))
		variants.DELETE("/:id", deleteHandler(svc.Variants.DeleteVariant, "Variant deleted successfully."))
	}

	products := router.Group("/products")
	{
		products.POST("", createHandler(svc.Products.CreateProduct, "Product created successfully."))
		products.GET("", listHandler(svc.Products.ListProducts, "Products retrieved successfully."))
		products.GET("/:id", getHandler(svc.Products.GetProduct, "Product retrieved successfully."))
		products.PUT("/:id", updateHandler(svc.Products.UpdateProduct, "Product updated successfully."))
		products.DELETE("/:id", deleteHandler(svc.Products.DeleteProduct, "Product deleted successfully."))
	}

	posters := router.Group("/posters")
	{
		posters.POST("", createHandler(svc.Posters.CreatePoster, "Poster created successfully."))
		posters.GET("", listHandler(svc.Posters.ListPosters, "Posters retrieved successfully."))
		posters.GET("/:id", getHandler(svc.Posters.GetPoster, "Poster retrieved successfully."))
		posters.PUT("/:id", updateHandler(svc.Posters.UpdatePoster, "Poster updated successfully."))
		posters.DELETE("/:id", deleteHandler(svc.Posters.DeletePoster, "Poster deleted successfully."))
	}

	coupons := router.Group("/coupons")
	{
		coupons.POST("", createHandler(svc.Coupons.CreateCoupon, "Coupon created successfully."))
		coupons.GET("", listHandler(svc.Coupons.ListCoupons, "Coupons retrieved successfully."))
		coupons.POST("/check-coupon", checkCouponHandler(svc.Coupons))
		coupons.GET("/:id", getHandler(svc.Coupons.GetCoupon, "Coupon retrieved successfully."))
		coupons.PUT("/:id", updateHandler(svc.Coupons.UpdateCoupon, "Coupon updated successfully."))
		coupons.DELETE("/:id", deleteHandler(svc.Coupons.DeleteCoupon, "Coupon deleted successfully."))
	}

	return router, nil
}
