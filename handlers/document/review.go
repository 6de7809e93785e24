package document

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// ReviewRequest represents an agency verdict on a document.
type ReviewRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// ReviewQueue returns documents for agency review, filtered by status
// (default pending), newest first.
func (h *DocumentHandler) ReviewQueue(c *fiber.Ctx) error {
	status := c.Query("status", model.DocumentStatusPending)
	if status != model.DocumentStatusPending &&
		status != model.DocumentStatusVerified &&
		status != model.DocumentStatusRejected {
		return response.BadRequest(c, "Unknown document status")
	}

	var docs []model.ApplicationDocument
	err := h.db.Where("status = ?", status).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load documents")
	}
	return response.Success(c, docs)
}

// Review records an agency verdict: verified or rejected, with an optional
// note shown to the student.
func (h *DocumentHandler) Review(c *fiber.Ctx) error {
	reviewer, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid document id")
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status != model.DocumentStatusVerified && req.Status != model.DocumentStatusRejected {
		return response.BadRequest(c, "Status must be verified or rejected")
	}

	var doc model.ApplicationDocument
	if err := h.db.First(&doc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Document not found")
		}
		return response.InternalServerError(c, "Failed to load document")
	}

	doc.Status = req.Status
	doc.ReviewNote = req.Note
	doc.ReviewedBy = &reviewer

	if err := h.db.Save(&doc).Error; err != nil {
		return response.InternalServerError(c, "Failed to save review")
	}

	return response.SuccessWithMessage(c, "Review recorded", doc)
}

// ReviewDownload returns a presigned URL for any document, for agency staff
// reviewing it.
func (h *DocumentHandler) ReviewDownload(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid document id")
	}

	var doc model.ApplicationDocument
	if err := h.db.First(&doc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Document not found")
		}
		return response.InternalServerError(c, "Failed to load document")
	}

	url, err := h.spaces.GetPresignedURL(doc.ObjectKey, downloadURLTTL)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate download link")
	}

	return response.Success(c, fiber.Map{
		"url":        url,
		"expires_in": int(downloadURLTTL.Seconds()),
	})
}
