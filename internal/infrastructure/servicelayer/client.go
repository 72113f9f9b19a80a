package servicelayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/orderdesk/backend/internal/domain/erp"
	"github.com/orderdesk/backend/internal/domain/ordering"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "B1SESSION"
	maxResponseSize   = 1 << 20 // 1MB
)

// Client talks to the ERP Service Layer. It implements erp.OrderGateway and
// owns the session lifecycle through an embedded SessionCache.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
	sessions   *SessionCache
}

// NewClient creates a Service Layer client from a validated configuration
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
	c.sessions = NewSessionCache(c.login)
	return c, nil
}

// login authenticates against the Service Layer and returns the session token
func (c *Client) login(ctx context.Context) (string, error) {
	payload, err := json.Marshal(loginRequest{
		CompanyDB: c.config.CompanyDB,
		UserName:  c.config.Username,
		Password:  c.config.Password,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal login request: %v", erp.ErrAuthenticationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/Login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: build login request: %v", erp.ErrAuthenticationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", erp.ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: read login response: %v", erp.ErrAuthenticationFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: HTTP %d: %s", erp.ErrAuthenticationFailed, resp.StatusCode, errorDetail(body))
	}

	var login loginResponse
	if err := json.Unmarshal(body, &login); err != nil {
		return "", fmt.Errorf("%w: decode login response: %v", erp.ErrAuthenticationFailed, err)
	}
	if login.SessionID == "" {
		return "", fmt.Errorf("%w: login response carried no session id", erp.ErrAuthenticationFailed)
	}

	c.logger.Debug("service layer session established",
		zap.String("company_db", c.config.CompanyDB))
	return login.SessionID, nil
}

// CreateSalesOrder submits the order to the Service Layer. A session rejected
// with HTTP 401 is invalidated and the submission retried exactly once with a
// fresh login.
func (c *Client) CreateSalesOrder(ctx context.Context, order *ordering.Order) (erp.DocumentID, error) {
	token, err := c.sessions.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	payload, err := json.Marshal(newOrderDocument(order))
	if err != nil {
		return 0, fmt.Errorf("%w: marshal order document: %v", erp.ErrOrderSubmissionFailed, err)
	}

	id, status, err := c.postOrder(ctx, token, payload)
	if status == http.StatusUnauthorized {
		c.logger.Warn("service layer session rejected, retrying with fresh login")
		c.sessions.Invalidate(token)

		token, err = c.sessions.Acquire(ctx)
		if err != nil {
			return 0, err
		}
		id, _, err = c.postOrder(ctx, token, payload)
	}
	if err != nil {
		return 0, err
	}

	c.logger.Info("sales order created in service layer",
		zap.Int("doc_entry", int(id)),
		zap.String("card_code", order.CustomerName))
	return id, nil
}

// postOrder performs one order-creation call. The HTTP status is returned
// alongside the error so the caller can distinguish an auth rejection.
func (c *Client) postOrder(ctx context.Context, token string, payload []byte) (erp.DocumentID, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/Orders", bytes.NewReader(payload))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: build order request: %v", erp.ErrOrderSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", sessionCookieName+"="+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", erp.ErrOrderSubmissionFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, resp.StatusCode, fmt.Errorf("%w: read order response: %v", erp.ErrOrderSubmissionFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, resp.StatusCode, fmt.Errorf("%w: HTTP %d: %s", erp.ErrOrderSubmissionFailed, resp.StatusCode, errorDetail(body))
	}

	var created orderResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return 0, resp.StatusCode, fmt.Errorf("%w: decode order response: %v", erp.ErrOrderSubmissionFailed, err)
	}
	return erp.DocumentID(created.DocEntry), resp.StatusCode, nil
}

// newOrderDocument maps a domain order onto the Service Layer document shape
func newOrderDocument(order *ordering.Order) orderDocument {
	docDate := order.CreatedAt.Format("2006-01-02")
	lines := make([]documentLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, documentLine{
			ItemCode:  line.ItemCode,
			Quantity:  float64(line.Quantity),
			UnitPrice: line.UnitPrice.InexactFloat64(),
		})
	}
	return orderDocument{
		CardCode:      order.CustomerName,
		DocDate:       docDate,
		DocDueDate:    docDate,
		DocumentLines: lines,
	}
}

var _ erp.OrderGateway = (*Client)(nil)
