package middlewares

import (
	"crypto/subtle"
	"erbs/src/common"
	"net/http"

	"github.com/gin-gonic/gin"
)

const AdminSecretHeader = "x-admin-secret"

// AdminGate guards privileged routes with the shared admin secret. The
// secret is captured at construction so the gate never reads ambient
// process state per request. The comparison is constant-time and the
// response never says more than "unauthorized".
func AdminGate(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		supplied := ctx.GetHeader(AdminSecretHeader)
		if secret == "" || supplied == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": common.ErrUnauthorized.Error()})
			return
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": common.ErrUnauthorized.Error()})
			return
		}
	}
}
