package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akhmetshin/warranty-keeper/internal/config"
	"github.com/akhmetshin/warranty-keeper/internal/logger"
	"github.com/akhmetshin/warranty-keeper/internal/utils"
	"github.com/akhmetshin/warranty-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.token)
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register; on success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/login; on success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// CreateWarranty implements [ServerAdapter] via POST /api/warranties.
func (h *httpServerAdapter) CreateWarranty(ctx context.Context, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	var saved models.ServerWarranty

	resp, err := h.authedRequest(ctx).
		SetBody(payload).
		SetResult(&saved).
		Post("/api/warranties")
	if err != nil {
		return models.ServerWarranty{}, fmt.Errorf("create warranty request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerWarranty{}, err
	}

	return saved, nil
}

// UpdateWarranty implements [ServerAdapter] via PUT /api/warranties/{id}.
func (h *httpServerAdapter) UpdateWarranty(ctx context.Context, serverID string, payload models.WarrantyPayload) (models.ServerWarranty, error) {
	var saved models.ServerWarranty

	resp, err := h.authedRequest(ctx).
		SetBody(payload).
		SetResult(&saved).
		Put("/api/warranties/" + url.PathEscape(serverID))
	if err != nil {
		return models.ServerWarranty{}, fmt.Errorf("update warranty request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ServerWarranty{}, err
	}

	return saved, nil
}

// DeleteWarranty implements [ServerAdapter] via DELETE /api/warranties/{id}.
// A 404 response is treated as success: the record is gone either way.
func (h *httpServerAdapter) DeleteWarranty(ctx context.Context, serverID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/warranties/" + url.PathEscape(serverID))
	if err != nil {
		return fmt.Errorf("delete warranty request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

// ListChanges implements [ServerAdapter] via GET /api/warranties. The server
// timestamp comes from the response Date header; when the header is missing
// or malformed the local clock is used so the cursor still advances.
func (h *httpServerAdapter) ListChanges(ctx context.Context, lastPulledAt int64) ([]models.ServerWarranty, time.Time, error) {
	var changes []models.ServerWarranty

	resp, err := h.authedRequest(ctx).
		SetQueryParam("lastPulledAt", strconv.FormatInt(lastPulledAt, 10)).
		SetResult(&changes).
		Get("/api/warranties")
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("list changes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, time.Time{}, err
	}

	serverTime := time.Now().UTC()
	if raw := resp.Header().Get("Date"); raw != "" {
		if parsed, err := http.ParseTime(raw); err == nil {
			serverTime = parsed.UTC()
		} else {
			h.logger.Warn().Str("func", "ListChanges").Str("date", raw).Msg("unparseable Date header, using local clock")
		}
	}

	return changes, serverTime, nil
}

// Chat implements [ServerAdapter] via POST /api/chat.
func (h *httpServerAdapter) Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	var answer models.ChatResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&answer).
		Post("/api/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	return answer, nil
}

// ProcessReceipt implements [ServerAdapter] via POST /api/process-receipt.
func (h *httpServerAdapter) ProcessReceipt(ctx context.Context, imageBase64 string) (models.ReceiptScan, error) {
	var scan models.ReceiptScan

	resp, err := h.authedRequest(ctx).
		SetBody(map[string]string{"image": imageBase64}).
		SetResult(&scan).
		Post("/api/process-receipt")
	if err != nil {
		return models.ReceiptScan{}, fmt.Errorf("process receipt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReceiptScan{}, err
	}

	return scan, nil
}

// FindProductImage implements [ServerAdapter] via POST /api/find-product-image.
func (h *httpServerAdapter) FindProductImage(ctx context.Context, req models.ImageLookupRequest) (models.ImageLookupResponse, error) {
	var found models.ImageLookupResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&found).
		Post("/api/find-product-image")
	if err != nil {
		return models.ImageLookupResponse{}, fmt.Errorf("find product image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImageLookupResponse{}, err
	}

	return found, nil
}
