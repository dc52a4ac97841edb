package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/service"
	apperrors "github.com/citra/storefront/internal/errors"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminController struct {
	admin               service.AdminService
	requireConfirmation bool
}

// NewAdminController wires admin routes. With requireConfirmation set, DELETE
// endpoints park a PendingAction and answer 202 instead of deleting.
func NewAdminController(admin service.AdminService, requireConfirmation bool) *AdminController {
	return &AdminController{
		admin:               admin,
		requireConfirmation: requireConfirmation,
	}
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Image string `json:"image"`
}

type CreateSubCategoryRequest struct {
	Name string `json:"name"`
}

// ProductRequest mirrors model.Product; Price is a pointer so a missing price is reported
type ProductRequest struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Price          *int64   `json:"price"`
	OriginalPrice  *int64   `json:"originalPrice"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	ImageURL       string   `json:"imageUrl"`
	IsNew          bool     `json:"isNew"`
	IsBestseller   bool     `json:"isBestseller"`
	Category       string   `json:"category"`
	SubCategory    string   `json:"subCategory"`
	SubSubCategory string   `json:"subSubCategory"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
}

func (r ProductRequest) toProduct() (model.Product, error) {
	if r.Price == nil {
		return model.Product{}, model.NewValidationError("price", "is required")
	}
	return model.Product{
		ID:             r.ID,
		Name:           r.Name,
		Brand:          r.Brand,
		Price:          *r.Price,
		OriginalPrice:  r.OriginalPrice,
		Rating:         r.Rating,
		ReviewCount:    r.ReviewCount,
		ImageURL:       r.ImageURL,
		IsNew:          r.IsNew,
		IsBestseller:   r.IsBestseller,
		Category:       r.Category,
		SubCategory:    r.SubCategory,
		SubSubCategory: r.SubSubCategory,
		Tags:           r.Tags,
		Description:    r.Description,
	}, nil
}

type AddBannerRequest struct {
	ImageURL string `json:"imageUrl"`
}

type ReplaceBannersRequest struct {
	ImageURLs []string `json:"imageUrls" binding:"required"`
}

// respondOK attaches the notifications queued by the call
func (ctrl *AdminController) respondOK(c *gin.Context, status int, body gin.H) {
	notifications, err := ctrl.admin.Notifications(sessionID(c))
	if err == nil {
		body["notifications"] = notifications
	}
	c.JSON(status, body)
}

// respondFailed drains the failure notification so it is not reported twice
func (ctrl *AdminController) respondFailed(c *gin.Context, msg string, err error, fields map[string]interface{}) {
	_, _ = ctrl.admin.Notifications(sessionID(c))
	respondError(c, msg, err, fields)
}

// ---- taxonomy ----

// CreateCategory
// POST /api/v1/sessions/:sid/admin/categories
func (ctrl *AdminController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := ctrl.admin.AddCategory(sessionID(c), req.Name, req.Icon, req.Image)
	if err != nil {
		ctrl.respondFailed(c, "Failed to add category", err, map[string]interface{}{
			"name": req.Name,
		})
		return
	}
	ctrl.respondOK(c, http.StatusCreated, gin.H{"category": category})
}

// CreateSubCategory
// POST /api/v1/sessions/:sid/admin/categories/:categoryId/subcategories
func (ctrl *AdminController) CreateSubCategory(c *gin.Context) {
	var req CreateSubCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	path := pathFromParams(c)
	sub, err := ctrl.admin.AddSubCategory(sessionID(c), path.CategoryID, req.Name)
	if err != nil {
		ctrl.respondFailed(c, "Failed to add sub-category", err, map[string]interface{}{
			"category_id": path.CategoryID,
			"name":        req.Name,
		})
		return
	}
	ctrl.respondOK(c, http.StatusCreated, gin.H{"subCategory": sub})
}

// CreateSubSubCategory
// POST /api/v1/sessions/:sid/admin/categories/:categoryId/subcategories/:subCategoryId/subsubcategories
func (ctrl *AdminController) CreateSubSubCategory(c *gin.Context) {
	var req CreateSubCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	path := pathFromParams(c)
	ssc, err := ctrl.admin.AddSubSubCategory(sessionID(c), path.CategoryID, path.SubCategoryID, req.Name)
	if err != nil {
		ctrl.respondFailed(c, "Failed to add sub-sub-category", err, map[string]interface{}{
			"path": path.String(),
			"name": req.Name,
		})
		return
	}
	ctrl.respondOK(c, http.StatusCreated, gin.H{"subSubCategory": ssc})
}

// DeleteCategory
// DELETE /api/v1/sessions/:sid/admin/categories/:categoryId
func (ctrl *AdminController) DeleteCategory(c *gin.Context) {
	path := pathFromParams(c)
	ctrl.remove(c, model.PendingAction{Kind: model.ActionRemoveCategory, Path: path}, func() (bool, error) {
		return ctrl.admin.RemoveCategory(sessionID(c), path.CategoryID)
	})
}

// DeleteSubCategory
// DELETE /api/v1/sessions/:sid/admin/categories/:categoryId/subcategories/:subCategoryId
func (ctrl *AdminController) DeleteSubCategory(c *gin.Context) {
	path := pathFromParams(c)
	ctrl.remove(c, model.PendingAction{Kind: model.ActionRemoveSubCategory, Path: path}, func() (bool, error) {
		return ctrl.admin.RemoveSubCategory(sessionID(c), path.CategoryID, path.SubCategoryID)
	})
}

// DeleteSubSubCategory
// DELETE /api/v1/sessions/:sid/admin/categories/:categoryId/subcategories/:subCategoryId/subsubcategories/:subSubCategoryId
func (ctrl *AdminController) DeleteSubSubCategory(c *gin.Context) {
	path := pathFromParams(c)
	ctrl.remove(c, model.PendingAction{Kind: model.ActionRemoveSubSubCategory, Path: path}, func() (bool, error) {
		return ctrl.admin.RemoveSubSubCategory(sessionID(c), path.CategoryID, path.SubCategoryID, path.SubSubCategoryID)
	})
}

// ---- products ----

// CreateProduct inserts a product; an empty id is generated
// POST /api/v1/sessions/:sid/admin/products
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	ctrl.upsert(c, req)
}

// UpdateProduct replaces the product with the path id wholesale
// PUT /api/v1/sessions/:sid/admin/products/:id
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	req.ID = c.Param("id")
	ctrl.upsert(c, req)
}

func (ctrl *AdminController) upsert(c *gin.Context, req ProductRequest) {
	product, err := req.toProduct()
	if err != nil {
		respondError(c, "Invalid product", err, map[string]interface{}{
			"product_id": req.ID,
		})
		return
	}

	saved, created, err := ctrl.admin.UpsertProduct(sessionID(c), product)
	if err != nil {
		ctrl.respondFailed(c, "Failed to save product", err, map[string]interface{}{
			"product_id": req.ID,
		})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctrl.respondOK(c, status, gin.H{
		"product": saved,
		"created": created,
	})
}

// DeleteProduct
// DELETE /api/v1/sessions/:sid/admin/products/:id
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	ctrl.remove(c, model.PendingAction{Kind: model.ActionRemoveProduct, ProductID: productID}, func() (bool, error) {
		return ctrl.admin.RemoveProduct(sessionID(c), productID)
	})
}

// ExportProducts streams every product as an xlsx workbook
// GET /api/v1/sessions/:sid/admin/products/export
func (ctrl *AdminController) ExportProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var buf bytes.Buffer
	if err := ctrl.admin.ExportProducts(sessionID(c), &buf); err != nil {
		info := apperrors.ParseError(err)
		if info.Code == apperrors.InternalServerError {
			log.Error("Failed to export products", err)
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.CatalogExportFailed, "failed to export products")
			return
		}
		respondError(c, "Failed to export products", err, nil)
		return
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102"))
	log.Info("Products exported", map[string]interface{}{
		"bytes": buf.Len(),
	})
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ---- banners ----

// AddBanner
// POST /api/v1/sessions/:sid/admin/banners
func (ctrl *AdminController) AddBanner(c *gin.Context) {
	var req AddBannerRequest
	if !bindJSON(c, &req) {
		return
	}
	banners, err := ctrl.admin.AddBanner(sessionID(c), req.ImageURL)
	if err != nil {
		ctrl.respondFailed(c, "Failed to add banner", err, nil)
		return
	}
	ctrl.respondOK(c, http.StatusCreated, gin.H{"banners": banners})
}

// ReplaceBanners
// PUT /api/v1/sessions/:sid/admin/banners
func (ctrl *AdminController) ReplaceBanners(c *gin.Context) {
	var req ReplaceBannersRequest
	if !bindJSON(c, &req) {
		return
	}
	banners, err := ctrl.admin.ReplaceBanners(sessionID(c), req.ImageURLs)
	if err != nil {
		ctrl.respondFailed(c, "Failed to replace banners", err, map[string]interface{}{
			"count": len(req.ImageURLs),
		})
		return
	}
	ctrl.respondOK(c, http.StatusOK, gin.H{"banners": banners})
}

// DeleteBanner
// DELETE /api/v1/sessions/:sid/admin/banners/:index
func (ctrl *AdminController) DeleteBanner(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "banner index must be an integer")
		return
	}
	removed, err := ctrl.admin.RemoveBanner(sessionID(c), index)
	if err != nil {
		ctrl.respondFailed(c, "Failed to remove banner", err, nil)
		return
	}
	ctrl.respondOK(c, http.StatusOK, gin.H{"removed": removed})
}

// ---- confirmations ----

// remove either executes right away or parks the action for confirmation
func (ctrl *AdminController) remove(c *gin.Context, action model.PendingAction, direct func() (bool, error)) {
	log := middleware.GetLoggerFromContext(c)

	if ctrl.requireConfirmation {
		pending, err := ctrl.admin.RequestConfirmation(sessionID(c), action)
		if err != nil {
			respondError(c, "Failed to request confirmation", err, map[string]interface{}{
				"kind": action.Kind,
			})
			return
		}
		log.Info("Deletion awaiting confirmation", map[string]interface{}{
			"action_id": pending.ID,
			"kind":      pending.Kind,
		})
		c.JSON(http.StatusAccepted, gin.H{"pendingAction": pending})
		return
	}

	removed, err := direct()
	if err != nil {
		ctrl.respondFailed(c, "Failed to delete", err, map[string]interface{}{
			"kind": action.Kind,
		})
		return
	}
	ctrl.respondOK(c, http.StatusOK, gin.H{"removed": removed})
}

// GetPendingActions
// GET /api/v1/sessions/:sid/admin/confirmations
func (ctrl *AdminController) GetPendingActions(c *gin.Context) {
	actions, err := ctrl.admin.PendingActions(sessionID(c))
	if err != nil {
		respondError(c, "Failed to list pending actions", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pendingActions": actions,
		"count":          len(actions),
	})
}

// Confirm executes a pending action
// POST /api/v1/sessions/:sid/admin/confirmations/:actionId
func (ctrl *AdminController) Confirm(c *gin.Context) {
	actionID := c.Param("actionId")
	if err := ctrl.admin.Confirm(sessionID(c), actionID); err != nil {
		respondError(c, "Failed to confirm action", err, map[string]interface{}{
			"action_id": actionID,
		})
		return
	}
	ctrl.respondOK(c, http.StatusOK, gin.H{"confirmed": true})
}

// Cancel discards a pending action
// DELETE /api/v1/sessions/:sid/admin/confirmations/:actionId
func (ctrl *AdminController) Cancel(c *gin.Context) {
	cancelled, err := ctrl.admin.Cancel(sessionID(c), c.Param("actionId"))
	if err != nil {
		respondError(c, "Failed to cancel action", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

// ---- reporting ----

// GetIntegrity lists products whose taxonomy references no longer resolve
// GET /api/v1/sessions/:sid/admin/integrity
func (ctrl *AdminController) GetIntegrity(c *gin.Context) {
	warnings, err := ctrl.admin.Integrity(sessionID(c))
	if err != nil {
		respondError(c, "Failed to check integrity", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"warnings": warnings,
		"count":    len(warnings),
	})
}

// GetNotifications drains queued notifications
// GET /api/v1/sessions/:sid/admin/notifications
func (ctrl *AdminController) GetNotifications(c *gin.Context) {
	notifications, err := ctrl.admin.Notifications(sessionID(c))
	if err != nil {
		respondError(c, "Failed to fetch notifications", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// SaveSnapshot writes the catalog to the database
// POST /api/v1/sessions/:sid/admin/catalog/snapshot
func (ctrl *AdminController) SaveSnapshot(c *gin.Context) {
	if err := ctrl.admin.SaveSnapshot(sessionID(c)); err != nil {
		ctrl.respondFailed(c, "Failed to save catalog snapshot", err, nil)
		return
	}
	ctrl.respondOK(c, http.StatusOK, gin.H{"saved": true})
}
