package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/store"
	"github.com/nakhazaman/restaurant-foh/utils"
)

type MenuController struct {
	Gateway *gateway.Client
}

func NewMenuController(gw *gateway.Client) *MenuController {
	return &MenuController{Gateway: gw}
}

// GetMenuItems -> daftar item menu, opsional ?category=<id>. Endpoint publik,
// dipakai halaman home dan halaman order.
func (mc *MenuController) GetMenuItems(c *gin.Context) {
	items, err := mc.Gateway.ListMenuItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondGateway(c, store.MsgMenuFetchFailed, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

func (mc *MenuController) GetCategories(c *gin.Context) {
	categories, err := mc.Gateway.ListCategories(c.Request.Context())
	if err != nil {
		respondGateway(c, "فشل جلب الفئات", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

// ===== Admin: kelola menu (proxy ke API pusat dengan token sesi) =====

func (mc *MenuController) CreateCategory(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	var req gateway.CategoryUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category, message, err := mc.Gateway.CreateCategory(c.Request.Context(), sess.Token, req)
	if err != nil {
		if message == "" {
			message = "خطأ في إضافة الفئة"
		}
		respondGateway(c, message, err)
		return
	}
	if message == "" {
		message = "Category created"
	}
	utils.RespondJSON(c, http.StatusCreated, message, category)
}

func (mc *MenuController) UpdateCategory(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	var req gateway.CategoryUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category, message, err := mc.Gateway.UpdateCategory(c.Request.Context(), sess.Token, c.Param("category_id"), req)
	if err != nil {
		if message == "" {
			message = "خطأ في تحديث الفئة"
		}
		respondGateway(c, message, err)
		return
	}
	if message == "" {
		message = "Category updated"
	}
	utils.RespondJSON(c, http.StatusOK, message, category)
}

func (mc *MenuController) DeleteCategory(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	message, err := mc.Gateway.DeleteCategory(c.Request.Context(), sess.Token, c.Param("category_id"))
	if err != nil {
		if message == "" {
			message = "خطأ في حذف الفئة"
		}
		respondGateway(c, message, err)
		return
	}
	if message == "" {
		message = "Category deleted"
	}
	utils.RespondJSON(c, http.StatusOK, message, nil)
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	var req gateway.MenuItemUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, message, err := mc.Gateway.CreateMenuItem(c.Request.Context(), sess.Token, req)
	if err != nil {
		if message == "" {
			message = "خطأ في إضافة العنصر"
		}
		respondGateway(c, message, err)
		return
	}
	if message == "" {
		message = "Menu item created"
	}
	utils.RespondJSON(c, http.StatusCreated, message, item)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	var req gateway.MenuItemUpsert
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, message, err := mc.Gateway.UpdateMenuItem(c.Request.Context(), sess.Token, c.Param("item_id"), req)
	if err != nil {
		if message == "" {
			message = "خطأ في تحديث العنصر"
		}
		respondGateway(c, message, err)
		return
	}
	if message == "" {
		message = "Menu item updated"
	}
	utils.RespondJSON(c, http.StatusOK, message, item)
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	message, err := mc.Gateway.DeleteMenuItem(c.Request.Context(), sess.Token, c.Param("item_id"))
	if err != nil {
		if message == "" {
			message = "خطأ في حذف العنصر"
		}
		respondGateway(c, message, err)
		return
	}
	if message == "" {
		message = "Menu item deleted"
	}
	utils.RespondJSON(c, http.StatusOK, message, nil)
}
