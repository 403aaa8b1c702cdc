// Package handlers holds the Gin handlers. Shared services are injected once
// from main through Init.
package handlers

import (
	"aurelia_back_end/internal/cart"
	"aurelia_back_end/internal/orders"
	"aurelia_back_end/internal/payments"
)

var (
	Carts        cart.Persister
	Gateways     *payments.Registry
	OrderService *orders.Service
)

func Init(persister cart.Persister, registry *payments.Registry, orderSvc *orders.Service) {
	Carts = persister
	Gateways = registry
	OrderService = orderSvc
}
