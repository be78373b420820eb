package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/store"
	"github.com/nakhazaman/restaurant-foh/utils"
)

type TableController struct{}

func NewTableController() *TableController {
	return &TableController{}
}

// GetAvailableTables me-refresh papan lalu mengembalikan meja yang bisa
// dipilih untuk order baru. Status meja otoritatif di server, jadi selalu
// refetch dulu.
func (tc *TableController) GetAvailableTables(c *gin.Context) {
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

	utils.RespondJSON(c, http.StatusOK, "Available tables", sess.Board.AvailableTables())
}
