package response

import "github.com/gin-gonic/gin"

// Error codes shared by every handler.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidation      = "VALIDATION_ERROR"
	CodeFeatureLocked   = "FEATURE_LOCKED"
	CodeLimitReached    = "LIMIT_REACHED"
	CodeNotFound        = "NOT_FOUND"
	CodePaymentDeclined = "PAYMENT_DECLINED"
	CodeInternal        = "INTERNAL_ERROR"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithNotice is used when a write went through but was trimmed,
// e.g. an upload that exceeded the plan's photo limit.
func SuccessWithNotice(c *gin.Context, statusCode int, data interface{}, notice string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"notice":  notice,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
