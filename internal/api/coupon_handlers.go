package api

import (
	"errors"
	"log/slog"
	"net/http"

	"catalog-service/internal/model"
	"catalog-service/internal/service"
	apperrors "catalog-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// checkCouponHandler handles POST /coupons/check-coupon.
// Every business outcome is a 200; only a store failure is a 500.
func checkCouponHandler(svc *service.CouponService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.CheckCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		result, err := svc.CheckCoupon(c.Request.Context(), &req)
		if errors.Is(err, apperrors.ErrInvalidInput) {
			respondError(c, err)
			return
		}
		if err != nil {
			slog.Error("coupon check failed", "coupon_code", req.CouponCode, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": internalErrorMessage})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
