package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tradewind/storefront/internal/domain/errors"
	"github.com/tradewind/storefront/internal/domain/model"
	"github.com/tradewind/storefront/internal/server/http/dto"
)

// MarketingHandler covers newsletter, contact form, and sell-request intake.
type MarketingHandler struct {
	facade MarketingFacade
}

// NewMarketingHandler constructs MarketingHandler.
func NewMarketingHandler(facade MarketingFacade) *MarketingHandler {
	return &MarketingHandler{facade: facade}
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *MarketingHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	_, err := h.facade.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusCreated)
}

// Unsubscribe handles POST /api/newsletter/unsubscribe.
func (h *MarketingHandler) Unsubscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateCampaign handles POST /api/admin/newsletter/campaigns.
func (h *MarketingHandler) CreateCampaign(c *gin.Context) {
	var req dto.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Subject == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	campaign, err := h.facade.CreateCampaign(c.Request.Context(), req.Subject, req.Body)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, dto.CampaignResponse{
		ID:        campaign.ID,
		Subject:   campaign.Subject,
		Status:    string(campaign.Status),
		CreatedAt: campaign.CreatedAt,
	})
}

// SubmitContact handles POST /api/contact.
func (h *MarketingHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Message == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.facade.SubmitContact(c.Request.Context(), &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toContactResponse(msg))
}

// ListContacts handles GET /api/admin/contact.
func (h *MarketingHandler) ListContacts(c *gin.Context) {
	page, limit := pageParams(c)

	messages, total, err := h.facade.Contacts(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.ContactResponse, 0, len(messages))
	for i := range messages {
		items = append(items, toContactResponse(&messages[i]))
	}

	c.JSON(http.StatusOK, dto.ContactListResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// SubmitSellRequest handles POST /api/sell-requests.
func (h *MarketingHandler) SubmitSellRequest(c *gin.Context) {
	var req dto.SellRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.ProductName == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	stored, err := h.facade.SubmitSellRequest(c.Request.Context(), &model.SellRequest{
		UserID:      CurrentUserID(c),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProductName: req.ProductName,
		Price:       req.Price,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidAmount) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toSellRequestResponse(stored))
}

// ListSellRequests handles GET /api/admin/sell-requests.
func (h *MarketingHandler) ListSellRequests(c *gin.Context) {
	page, limit := pageParams(c)

	requests, total, err := h.facade.SellRequests(c.Request.Context(), page, limit)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	items := make([]dto.SellRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, toSellRequestResponse(&requests[i]))
	}

	c.JSON(http.StatusOK, dto.SellRequestListResponse{Items: items, Total: total, Page: page, Limit: limit})
}

func toContactResponse(msg *model.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.CreatedAt,
	}
}

func toSellRequestResponse(req *model.SellRequest) dto.SellRequestResponse {
	images := req.Images
	if images == nil {
		images = []string{}
	}
	return dto.SellRequestResponse{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProductName: req.ProductName,
		Price:       req.Price,
		Description: req.Description,
		Images:      images,
		Status:      req.Status,
		CreatedAt:   req.CreatedAt,
	}
}
