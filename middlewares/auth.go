package middlewares

import (
	"context"
	"strings"

	"foodie/entity"
	"foodie/pkg/resp"
	"foodie/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminResolver interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Admin, error)
}

type CustomerResolver interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Customer, error)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// AdminAuth gates back-office routes. The token must carry the admin role
// and resolve to a stored admin; the admin is attached to the context
// without its password hash.
type AdminAuth struct {
	Secret string
	Admins AdminResolver
}

func (a *AdminAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			resp.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, a.Secret)
		if err != nil {
			resp.Unauthorized(c, "Not authorized, token failed")
			c.Abort()
			return
		}
		if claims.Role != utils.RoleAdmin {
			resp.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			resp.Unauthorized(c, "Not authorized, token failed")
			c.Abort()
			return
		}
		admin, err := a.Admins.FindByID(c.Request.Context(), id)
		if err != nil {
			resp.Unauthorized(c, "Not authorized (admin not found)")
			c.Abort()
			return
		}

		c.Set(utils.CtxAdminKey, admin)
		c.Next()
	}
}

// CustomerAuth gates customer routes; same shape as AdminAuth but kept
// separate, the two principal kinds live in different collections.
type CustomerAuth struct {
	Secret    string
	Customers CustomerResolver
}

func (a *CustomerAuth) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := a.resolve(c)
		if customer == nil {
			resp.Unauthorized(c, "Not authorized, token failed")
			c.Abort()
			return
		}
		c.Set(utils.CtxCustomerKey, customer)
		c.Next()
	}
}

// TryResolve is the soft variant: it returns the caller's customer
// identity if a valid token is present and nil otherwise, never writing
// a response. Checkout uses it so guest orders go through untouched.
func (a *CustomerAuth) TryResolve(c *gin.Context) *entity.Customer {
	return a.resolve(c)
}

func (a *CustomerAuth) resolve(c *gin.Context) *entity.Customer {
	tokenStr := bearerToken(c)
	if tokenStr == "" {
		return nil
	}
	claims, err := utils.ParseToken(tokenStr, a.Secret)
	if err != nil || claims.Role != utils.RoleCustomer {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil
	}
	customer, err := a.Customers.FindByID(c.Request.Context(), id)
	if err != nil {
		return nil
	}
	return customer
}
