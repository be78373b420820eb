package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/session"
	"github.com/nakhazaman/restaurant-foh/utils"
)

// CartController mengikat cart sesi ke HTTP. Semua mutasi di sini murni
// in-memory; tidak ada yang menyentuh API pusat.
type CartController struct{}

func NewCartController() *CartController {
	return &CartController{}
}

func (cc *CartController) GetCart(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart contents", cartPayload(sess))
}

// AddItem menambahkan satu item menu ke cart. Snapshot item diambil dari
// cache menu papan; kalau cache belum terisi, coba refetch sekali dulu.
func (cc *CartController) AddItem(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	var req struct {
		MenuItemID string `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, found := sess.Board.MenuItem(req.MenuItemID)
	if !found {
		if err := sess.Board.Refresh(c.Request.Context(), sess.Token); err == nil {
			item, found = sess.Board.MenuItem(req.MenuItemID)
		}
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("menu item %s not found", req.MenuItemID))
		return
	}

	sess.Cart.Add(item)
	utils.RespondJSON(c, http.StatusOK, "Item added", cartPayload(sess))
}

func (cc *CartController) IncrementItem(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	// No-op kalau item tidak ada di cart.
	sess.Cart.Increment(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", cartPayload(sess))
}

func (cc *CartController) DecrementItem(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	// Turun di bawah 1 menghapus entry sekalian.
	sess.Cart.Decrement(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", cartPayload(sess))
}

func cartPayload(sess *session.Session) gin.H {
	total := sess.Cart.Total()
	return gin.H{
		"items":      sess.Cart.Entries(),
		"count":      sess.Cart.Len(),
		"total":      total,
		"totalLabel": utils.FormatCurrency(total),
		"tableId":    sess.Draft.TableID(),
		"notes":      sess.Draft.Notes(),
	}
}
