package utils

import "github.com/gin-gonic/gin"

// JSONResponse mengikuti envelope API pusat: {success, message, data} supaya
// browser bundle bisa memakai satu bentuk response untuk keduanya.
type JSONResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Success: false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondMessage -> varian RespondError untuk pesan user-facing yang sudah
// dilokalkan (bukan error sistem).
func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    nil,
	})
}
