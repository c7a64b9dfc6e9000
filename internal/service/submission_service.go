package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// urlPlaceholder marks a template URL that was never filled in. Treated the
// same as no configuration at all.
const urlPlaceholder = "YOUR_GOOGLE_APPS_SCRIPT"

// SheetPoster is the outbound webhook transport (see infra.SheetClient).
type SheetPoster interface {
	Post(ctx context.Context, url string, payload []byte, apiKey string) (int, error)
	FireAndForget(ctx context.Context, url string, payload []byte)
}

// SubmissionService routes an order payload to the spreadsheet webhook:
// proxy endpoint first, legacy direct endpoint second, nothing at all when
// neither is configured. One call, at most one verified attempt plus one
// unverified fallback. No retries, no queue.
type SubmissionService interface {
	Submit(ctx context.Context, form dto.OrderFormData, items []dto.OrderLineItem) dto.SubmissionResult
}

type submissionService struct {
	settings   repository.SettingsStore
	client     SheetPoster
	defaultURL string // compile-time default direct endpoint, may be ""
	now        func() time.Time
}

func NewSubmissionService(settings repository.SettingsStore, client SheetPoster, defaultDirectURL string) SubmissionService {
	return &submissionService{
		settings:   settings,
		client:     client,
		defaultURL: defaultDirectURL,
		now:        time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, form dto.OrderFormData, items []dto.OrderLineItem) dto.SubmissionResult {
	// Settings are read fresh per call; changing them never requires a restart.
	proxyURL := s.settings.Get(ctx, repository.SettingProxyURL)
	directURL := s.settings.Get(ctx, repository.SettingSheetURL)
	if directURL == "" {
		directURL = s.defaultURL
	}

	target := proxyURL
	usingProxy := proxyURL != ""
	if target == "" {
		target = directURL
	}

	if strings.TrimSpace(target) == "" || strings.Contains(target, urlPlaceholder) {
		log.Warn().Msg("sheet webhook is not configured; order will not be sent to the sheet")
		return dto.SubmissionResult{Delivered: false, Message: "Sheet endpoint is not configured. Set a proxy URL or sheet URL in settings."}
	}

	mode := "direct"
	if usingProxy {
		mode = "proxy"
	}
	log.Info().Str("mode", mode).Str("branch", form.Branch).Str("customer", form.CustomerName).
		Int("items", len(items)).Msg("submitting order to sheet")

	payload, err := json.Marshal(buildSheetPayload(form, items, s.now()))
	if err != nil {
		return dto.SubmissionResult{Delivered: false, Message: "Could not encode order payload: " + err.Error()}
	}

	apiKey := ""
	if usingProxy {
		apiKey = s.settings.Get(ctx, repository.SettingProxyAPIKey)
	}

	status, err := s.client.Post(ctx, target, payload, apiKey)
	if err != nil {
		log.Error().Err(err).Str("mode", mode).Msg("sheet submission failed")

		// A proxy transport failure gets one unverified shot at the direct
		// endpoint. The response of that shot is never inspected, so this
		// path must not report success no matter what happened on the wire.
		if usingProxy && directURL != "" && directURL != target {
			log.Warn().Msg("proxy unreachable, attempting fallback to direct sheet URL")
			s.client.FireAndForget(ctx, directURL, payload)
			return dto.SubmissionResult{Delivered: false, Message: "Proxy unreachable. A fallback request was sent to the direct endpoint, but delivery cannot be verified."}
		}
		return dto.SubmissionResult{Delivered: false, Message: "Submission failed: " + err.Error()}
	}

	return classifyStatus(status, usingProxy)
}

func classifyStatus(status int, usingProxy bool) dto.SubmissionResult {
	switch {
	case status >= 200 && status < 300:
		log.Info().Int("status", status).Msg("order sent to sheet")
		return dto.SubmissionResult{Delivered: true, Message: "Order sent to sheet."}
	case status == 401:
		if usingProxy {
			return dto.SubmissionResult{Delivered: false, Message: "Proxy authentication failed (401): invalid or missing API key. Check the proxy API key in settings."}
		}
		return dto.SubmissionResult{Delivered: false, Message: "Sheet endpoint rejected the request (401): the deployment is not publicly accessible. Use a proxy URL, or redeploy with public access."}
	case status == 403:
		return dto.SubmissionResult{Delivered: false, Message: "Access denied by the sheet endpoint (403). Check the deployment settings."}
	case status == 404:
		return dto.SubmissionResult{Delivered: false, Message: "Sheet endpoint not found (404). Check the configured URL."}
	default:
		return dto.SubmissionResult{Delivered: false, Message: fmt.Sprintf("Sheet endpoint returned status %d.", status)}
	}
}

// sheetPayload is the flattened wire format of one submission.
type sheetPayload struct {
	SubmissionID      string             `json:"submissionId"`
	SubmissionDate    string             `json:"submissionDate"`
	Branch            string             `json:"branch"`
	SalesPerson       string             `json:"salesPerson"`
	SalesContactNo    string             `json:"salesContactNo"`
	CustomerName      string             `json:"customerName"`
	CustomerEmail     string             `json:"customerEmail"`
	CustomerContactNo string             `json:"customerContactNo"`
	BillingAddress    string             `json:"billingAddress"`
	DeliveryAddress   string             `json:"deliveryAddress"`
	OrderDate         string             `json:"orderDate"`
	Items             []sheetPayloadItem `json:"items"`
}

type sheetPayloadItem struct {
	Category     string          `json:"category"`
	ItemName     string          `json:"itemName"`
	Color        string          `json:"color"`
	Width        string          `json:"width"`
	Quantity     string          `json:"quantity"`
	UOM          string          `json:"uom"`
	Rate         decimal.Decimal `json:"rate"`
	Discount     string          `json:"discount"`
	DeliveryDate string          `json:"deliveryDate"`
	Remark       string          `json:"remark"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// buildSheetPayload flattens the form and derives per-line totals. The
// submission id is time-based — calling twice sends two distinct ids; there
// is deliberately no idempotency key.
func buildSheetPayload(form dto.OrderFormData, items []dto.OrderLineItem, now time.Time) sheetPayload {
	p := sheetPayload{
		SubmissionID:      strconv.FormatInt(now.UnixMilli(), 10),
		SubmissionDate:    now.UTC().Format(time.RFC3339),
		Branch:            form.Branch,
		SalesPerson:       form.SalesPerson,
		SalesContactNo:    form.SalesContactNo,
		CustomerName:      form.CustomerName,
		CustomerEmail:     form.CustomerEmail,
		CustomerContactNo: form.CustomerContactNo,
		BillingAddress:    form.BillingAddress,
		DeliveryAddress:   form.DeliveryAddress,
		OrderDate:         form.OrderDate,
		Items:             make([]sheetPayloadItem, 0, len(items)),
	}
	for _, i := range items {
		p.Items = append(p.Items, sheetPayloadItem{
			Category:     i.Category,
			ItemName:     i.DisplayName(),
			Color:        i.Color,
			Width:        i.Width,
			Quantity:     i.Quantity,
			UOM:          i.UOM,
			Rate:         i.Rate,
			Discount:     i.Discount,
			DeliveryDate: i.DeliveryDate,
			Remark:       i.Remark,
			TotalAmount:  i.TotalAmount(),
		})
	}
	return p
}
