package controller

import (
	"net/http"
	"testing"

	"github.com/citra/storefront/internal/app/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSelectionControllerTest(t *testing.T) (*service.Storefront, *gin.Engine, string) {
	storefront, router := setupControllerTest(t, service.StorefrontOptions{})
	ctrl := NewSelectionController(storefront)
	sid := storefront.NewSession().ID

	group := router.Group("/selection", withSession(sid))
	group.GET("", ctrl.GetSelection)
	group.PUT("", ctrl.Navigate)
	group.DELETE("", ctrl.ResetSelection)
	group.PUT("/category", ctrl.SelectCategory)
	group.PUT("/subcategory", ctrl.SelectSubCategory)
	group.PUT("/subsubcategory", ctrl.SelectSubSubCategory)
	group.PUT("/search", ctrl.SetSearch)
	router.GET("/products", withSession(sid), ctrl.ListProducts)

	return storefront, router, sid
}

func selectionOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	sel, ok := body["selection"].(map[string]interface{})
	require.True(t, ok)
	return sel
}

func listedIDs(t *testing.T, router *gin.Engine) []string {
	t.Helper()
	w := doRequest(router, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ids []string
	for _, p := range decode(t, w)["products"].([]interface{}) {
		ids = append(ids, p.(map[string]interface{})["id"].(string))
	}
	return ids
}

func TestSelectionController_SelectAndFilter(t *testing.T) {
	_, router, _ := setupSelectionControllerTest(t)

	assert.Equal(t, []string{"1", "2", "4"}, listedIDs(t, router))

	w := doRequest(router, http.MethodPut, "/selection/category", map[string]interface{}{"id": "makeup"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "makeup", selectionOf(t, decode(t, w))["categoryId"])

	w = doRequest(router, http.MethodPut, "/selection/subcategory", map[string]interface{}{"id": "lips"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1"}, listedIDs(t, router))

	w = doRequest(router, http.MethodPut, "/selection/subcategory", map[string]interface{}{"id": "lips"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, selectionOf(t, decode(t, w))["subCategoryId"], "re-selecting toggles off")
	assert.Equal(t, []string{"1", "2"}, listedIDs(t, router))

	w = doRequest(router, http.MethodPut, "/selection/search", map[string]interface{}{"query": "FOUNDATION"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"2"}, listedIDs(t, router))

	w = doRequest(router, http.MethodDelete, "/selection", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"1", "2", "4"}, listedIDs(t, router))
}

func TestSelectionController_Rejections(t *testing.T) {
	storefront, router, sid := setupSelectionControllerTest(t)

	w := doRequest(router, http.MethodPut, "/selection/subcategory", map[string]interface{}{"id": "lips"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/selection/category", map[string]interface{}{"id": "haircare"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPut, "/selection/category", `{"id": "makeup", "extra": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	sel, err := storefront.Selection(sid)
	require.NoError(t, err)
	assert.Empty(t, sel.CategoryID)
}

func TestSelectionController_Navigate(t *testing.T) {
	_, router, _ := setupSelectionControllerTest(t)

	w := doRequest(router, http.MethodPut, "/selection", map[string]interface{}{
		"categoryId":       "makeup",
		"subCategoryId":    "face",
		"subSubCategoryId": "foundation",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "foundation", selectionOf(t, decode(t, w))["subSubCategoryId"])
	assert.Equal(t, []string{"2"}, listedIDs(t, router))

	w = doRequest(router, http.MethodPut, "/selection", map[string]interface{}{"subCategoryId": "face"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/selection", map[string]interface{}{"categoryId": "makeup", "subCategoryId": "eyeliner"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/selection", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "face", selectionOf(t, decode(t, w))["subCategoryId"])
}
