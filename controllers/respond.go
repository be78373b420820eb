package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/utils"
)

// respondGateway menerjemahkan error dari API pusat ke response BFF.
// Non-2xx dari server diteruskan statusnya; success:false di 2xx dan gagal
// transport jadi 502. Pesan user sudah dipetakan pemanggil.
func respondGateway(c *gin.Context, message string, err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		code := http.StatusBadGateway
		if !apiErr.Logical() {
			code = apiErr.StatusCode
		}
		utils.RespondMessage(c, code, message)
		return
	}

	// Transport error: ini fault sistem, validation error tidak lewat sini.
	utils.ErrorLogger.Printf("upstream call failed: %v", err)
	utils.RespondMessage(c, http.StatusBadGateway, message)
}
