package utils

import (
	"foodie/entity"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminKey    = "admin"
	CtxCustomerKey = "customer"
)

func CurrentAdmin(c *gin.Context) *entity.Admin {
	if v, ok := c.Get(CtxAdminKey); ok {
		if a, ok := v.(*entity.Admin); ok {
			return a
		}
	}
	return nil
}

func CurrentCustomer(c *gin.Context) *entity.Customer {
	if v, ok := c.Get(CtxCustomerKey); ok {
		if u, ok := v.(*entity.Customer); ok {
			return u
		}
	}
	return nil
}
