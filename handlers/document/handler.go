// Package document implements application-document upload, listing, presigned
// download, and the agency review queue.
package document

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sahilchouksey/study-abroad-api/model"
	"github.com/sahilchouksey/study-abroad-api/services/storage"
	"github.com/sahilchouksey/study-abroad-api/utils/middleware"
	"github.com/sahilchouksey/study-abroad-api/utils/pdfcheck"
	"github.com/sahilchouksey/study-abroad-api/utils/response"
)

// downloadURLTTL is how long a presigned download link stays valid.
const downloadURLTTL = 15 * time.Minute

// DocumentHandler handles application-document requests
type DocumentHandler struct {
	db     *gorm.DB
	spaces *storage.SpacesClient
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(db *gorm.DB, spaces *storage.SpacesClient) *DocumentHandler {
	return &DocumentHandler{db: db, spaces: spaces}
}

func validKind(kind string) bool {
	switch kind {
	case model.DocumentKindPassport, model.DocumentKindTranscript,
		model.DocumentKindTestScore, model.DocumentKindSOP,
		model.DocumentKindLOR, model.DocumentKindOther:
		return true
	}
	return false
}

// Upload accepts a multipart PDF under the "file" field with a "kind" form
// value, validates it, and stores it privately in object storage.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	kind := c.FormValue("kind")
	if !validKind(kind) {
		return response.BadRequest(c, "Unknown document kind")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing file upload")
	}

	result, err := pdfcheck.ValidateFile(file, pdfcheck.DocumentLimits)
	if err != nil {
		return response.InternalServerError(c, "Failed to read upload")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read upload")
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return response.InternalServerError(c, "Failed to read upload")
	}

	key := storage.GenerateKey(userID, kind, file.Filename)
	if err := h.spaces.UploadBytes(c.Context(), key, content, "application/pdf"); err != nil {
		return response.InternalServerError(c, "Failed to store document")
	}

	doc := model.ApplicationDocument{
		UserID:    userID,
		Kind:      kind,
		FileName:  file.Filename,
		ObjectKey: key,
		SizeBytes: file.Size,
		Status:    model.DocumentStatusPending,
	}
	if err := h.db.Create(&doc).Error; err != nil {
		// keep storage consistent with the database
		_ = h.spaces.DeleteFile(c.Context(), key)
		return response.InternalServerError(c, "Failed to record document")
	}

	return response.Created(c, doc)
}

// List returns the user's uploaded documents, newest first.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	var docs []model.ApplicationDocument
	err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load documents")
	}
	return response.Success(c, docs)
}

// Download returns a short-lived presigned URL for one of the user's own
// documents.
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid document id")
	}

	var doc model.ApplicationDocument
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&doc).Error; err != nil {
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

// Delete removes one of the user's own documents from storage and the
// database.
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid document id")
	}

	var doc model.ApplicationDocument
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Document not found")
		}
		return response.InternalServerError(c, "Failed to load document")
	}

	if err := h.spaces.DeleteFile(c.Context(), doc.ObjectKey); err != nil {
		return response.InternalServerError(c, "Failed to delete document")
	}
	if err := h.db.Delete(&doc).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete document")
	}

	return response.SuccessWithMessage(c, "Document deleted", nil)
}
