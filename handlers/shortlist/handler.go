// Package shortlist implements the signed-in shortlist endpoints.
package shortlist

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	shortlistsvc "github.com/sahilchouksey/study-abroad-api/services/shortlist"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// ShortlistHandler handles shortlist requests
type ShortlistHandler struct {
	service *shortlistsvc.Service
}

// NewShortlistHandler creates a new shortlist handler
func NewShortlistHandler(service *shortlistsvc.Service) *ShortlistHandler {
	return &ShortlistHandler{service: service}
}

// AddRequest represents an add-to-shortlist request
type AddRequest struct {
	ItemType string `json:"item_type"`
	ItemID   uint   `json:"item_id"`
}

// UpdateRequest represents a status or notes update. Only the provided
// fields change.
type UpdateRequest struct {
	ItemType string  `json:"item_type"`
	ItemID   uint    `json:"item_id"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

// List returns the user's shortlist with catalog rows joined.
func (h *ShortlistHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	entries, err := h.service.List(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to load shortlist")
	}
	return response.Success(c, entries)
}

// Add saves an item to the shortlist. Re-adding an existing item succeeds
// without change.
func (h *ShortlistHandler) Add(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.service.Add(c.Context(), userID, req.ItemType, req.ItemID)
	switch {
	case err == nil:
		return response.SuccessWithMessage(c, "Added to shortlist", nil)
	case errors.Is(err, shortlistsvc.ErrBadItemType):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, shortlistsvc.ErrItemNotFound):
		return response.NotFound(c, err.Error())
	default:
		return response.InternalServerError(c, "Failed to update shortlist")
	}
}

// Update changes the status label or notes on a shortlist entry.
func (h *ShortlistHandler) Update(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status == nil && req.Notes == nil {
		return response.BadRequest(c, "Nothing to update")
	}

	if req.Status != nil {
		err := h.service.SetStatus(c.Context(), userID, req.ItemType, req.ItemID, *req.Status)
		if err != nil {
			return shortlistError(c, err)
		}
	}
	if req.Notes != nil {
		err := h.service.SetNotes(c.Context(), userID, req.ItemType, req.ItemID, *req.Notes)
		if err != nil {
			return shortlistError(c, err)
		}
	}

	return response.SuccessWithMessage(c, "Shortlist entry updated", nil)
}

// Remove deletes a shortlist entry. Removing an absent entry succeeds.
func (h *ShortlistHandler) Remove(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid item id")
	}
	itemType := c.Params("type")

	if err := h.service.Remove(c.Context(), userID, itemType, uint(id)); err != nil {
		return shortlistError(c, err)
	}
	return response.SuccessWithMessage(c, "Removed from shortlist", nil)
}

func shortlistError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, shortlistsvc.ErrBadItemType),
		errors.Is(err, shortlistsvc.ErrBadStatus):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, shortlistsvc.ErrNotShortlisted):
		return response.NotFound(c, err.Error())
	default:
		return response.InternalServerError(c, "Failed to update shortlist")
	}
}
