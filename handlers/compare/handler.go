// Package compare implements the comparison-set endpoints. Auth is optional:
// signed-in users get database-backed sets, anonymous visitors are keyed by
// the X-Client-ID header.
package compare

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	comparesvc "github.com/sahilchouksey/study-abroad-api/services/compare"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// CompareHandler handles comparison-set requests
type CompareHandler struct {
	service *comparesvc.Service
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(service *comparesvc.Service) *CompareHandler {
	return &CompareHandler{service: service}
}

// ownerFrom resolves the request to a set owner: the authenticated user when
// present, else the anonymous client id.
func ownerFrom(c *fiber.Ctx) comparesvc.Owner {
	owner := comparesvc.Owner{ClientID: middleware.GetClientID(c)}
	if userID, ok := middleware.GetUserID(c); ok {
		owner.UserID = userID
	}
	return owner
}

// AddRequest represents an add-to-comparison request
type AddRequest struct {
	ItemType string `json:"item_type"`
	ItemID   uint   `json:"item_id"`
}

// Get returns the owner's comparison set with full item rows.
func (h *CompareHandler) Get(c *fiber.Ctx) error {
	set, err := h.service.Get(c.Context(), ownerFrom(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to load comparison set")
	}
	return response.Success(c, set)
}

// Add puts an item into the comparison set. A duplicate add succeeds without
// change; a 4th distinct item is rejected.
func (h *CompareHandler) Add(c *fiber.Ctx) error {
	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	err := h.service.Add(c.Context(), ownerFrom(c), req.ItemType, req.ItemID)
	switch {
	case err == nil:
		return response.SuccessWithMessage(c, "Added to comparison", nil)
	case errors.Is(err, comparesvc.ErrCompareFull):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, comparesvc.ErrBadItemType),
		errors.Is(err, comparesvc.ErrNoOwner):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, comparesvc.ErrItemNotFound):
		return response.NotFound(c, err.Error())
	default:
		return response.InternalServerError(c, "Failed to update comparison set")
	}
}

// Remove deletes an item from the comparison set. Removing an absent item
// succeeds.
func (h *CompareHandler) Remove(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid item id")
	}
	itemType := c.Params("type")

	err = h.service.Remove(c.Context(), ownerFrom(c), itemType, uint(id))
	switch {
	case err == nil:
		return response.SuccessWithMessage(c, "Removed from comparison", nil)
	case errors.Is(err, comparesvc.ErrBadItemType),
		errors.Is(err, comparesvc.ErrNoOwner):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c, "Failed to update comparison set")
	}
}
