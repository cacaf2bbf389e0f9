package robinhood

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"robincrypto/pkg/core"
)

const ordersPath = "/api/v1/crypto/trading/orders/"

// GetOrders lists the account's orders. A nil filter returns all orders.
func (c *Client) GetOrders(ctx context.Context, filter *OrderFilter) (*core.Page[core.Order], error) {
	req := core.NewRequest(http.MethodGet, ordersPath)
	req.SetQueryParams(filter.query())

	var result core.Page[core.Order]
	if err := c.execute(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateOrder submits a new order. The params carry the caller-supplied
// client_order_id; submitting the same token again returns the same order
// instead of creating a duplicate (enforced server-side). The body is
// marshaled once and those exact bytes are both signed and transmitted.
func (c *Client) CreateOrder(ctx context.Context, params *CreateOrderParams) (*core.Order, error) {
	if params == nil {
		return nil, invalidOrder("order params are required")
	}

	body, err := sonic.Marshal(params)
	if err != nil {
		return nil, invalidOrder("encode order params: %v", err)
	}

	req := core.NewRequest(http.MethodPost, ordersPath).SetBody(body)

	var order core.Order
	if err := c.execute(ctx, req, &order); err != nil {
		return nil, err
	}
	if err := order.ValidateConfig(); err != nil {
		return nil, core.NewAPIError(core.ErrorTypeDecode, 0, err.Error()).
			WithCode(core.ErrCodeDecodeFailed)
	}
	return &order, nil
}

// CancelOrder submits a cancel request for the given order ID and returns the
// venue's confirmation message. Cancellation is asynchronous; the order state
// changes only once the venue processes the request.
func (c *Client) CancelOrder(ctx context.Context, orderID string) (string, error) {
	if orderID == "" {
		return "", core.NewAPIError(core.ErrorTypeBadRequest, 0, "order id is required").
			WithCode(core.ErrCodeBadRequest)
	}

	req := core.NewRequest(http.MethodPost, fmt.Sprintf("%s%s/cancel/", ordersPath, orderID))

	resp, err := c.do(ctx, req)
	if err != nil {
		return "", err
	}

	// The venue replies with a bare JSON string.
	var message string
	if err := sonic.Unmarshal(resp.Body, &message); err != nil {
		message = strings.Trim(strings.TrimSpace(string(resp.Body)), `"`)
	}
	return message, nil
}
