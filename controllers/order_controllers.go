package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/store"
	"github.com/nakhazaman/restaurant-foh/utils"
)

// OrderController mengikat flow submit dan papan order ke HTTP.
type OrderController struct{}

func NewOrderController() *OrderController {
	return &OrderController{}
}

// UpdateDraft mengubah draft order (meja terpilih dan/atau catatan). Field
// yang tidak dikirim dibiarkan.
func (oc *OrderController) UpdateDraft(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	var req struct {
		TableID *string `json:"tableId"`
		Notes   *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.TableID != nil {
		sess.Draft.SelectTable(*req.TableID)
	}
	if req.Notes != nil {
		sess.Draft.SetNotes(*req.Notes)
	}

	utils.RespondJSON(c, http.StatusOK, "Draft updated", gin.H{
		"tableId": sess.Draft.TableID(),
		"notes":   sess.Draft.Notes(),
		"state":   sess.Draft.State().String(),
	})
}

// SubmitOrder menjalankan flow submit: precondition dicek dulu (meja, isi
// cart) tanpa menyentuh API pusat, baru request dikirim. Sukses mengosongkan
// cart + draft dan memicu refetch penuh.
func (oc *OrderController) SubmitOrder(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	message, err := sess.Draft.Submit(c.Request.Context(), sess.Token)
	switch {
	case err == nil:
		utils.RespondJSON(c, http.StatusCreated, message, gin.H{
			"state": sess.Draft.State().String(),
		})
	case errors.Is(err, store.ErrNoTableSelected), errors.Is(err, store.ErrEmptyCart):
		// Validation failure: belum ada call keluar, bukan fault sistem.
		utils.RespondMessage(c, http.StatusBadRequest, message)
	case errors.Is(err, store.ErrSubmitInFlight):
		utils.RespondMessage(c, http.StatusConflict, store.MsgSubmitFailed)
	default:
		respondGateway(c, message, err)
	}
}

// GetOrders me-refresh papan lalu mengembalikan view sesuai role: waiter
// melihat semua order dengan aksi deliver, customer hanya 8 terbaru.
func (oc *OrderController) GetOrders(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	if err := sess.Board.Refresh(c.Request.Context(), sess.Token); err != nil {
		message := store.MsgLoadFailed
		cause := err
		var loadErr *store.LoadError
		if errors.As(err, &loadErr) {
			message = loadErr.UserMessage
			cause = loadErr.Err
		}
		respondGateway(c, message, cause)
		return
	}

	isWaiter := sess.User.IsWaiter()
	var views []store.OrderView
	if isWaiter {
		views = sess.Board.StaffView()
	} else {
		views = sess.Board.CustomerView()
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders":   views,
		"isWaiter": isWaiter,
	})
}

// DeliverOrder menandai satu order sebagai served (khusus waiter). Satu
// update per order yang boleh jalan; order lain tetap bisa dieksekusi.
func (oc *OrderController) DeliverOrder(c *gin.Context) {
	sess, ok := SessionOf(c)
	if !ok {
		utils.RespondMessage(c, http.StatusUnauthorized, "يرجى تسجيل الدخول")
		return
	}

	orderID := c.Param("order_id")
	message, err := sess.Board.MarkDelivered(c.Request.Context(), sess.Token, orderID)
	switch {
	case err == nil:
		utils.RespondJSON(c, http.StatusOK, message, nil)
	case errors.Is(err, store.ErrUpdateInFlight), errors.Is(err, store.ErrNotDeliverable):
		utils.RespondMessage(c, http.StatusConflict, store.MsgUpdateRejected)
	default:
		respondGateway(c, message, err)
	}
}
