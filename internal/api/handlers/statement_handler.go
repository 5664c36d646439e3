package handlers

import (
	"finsight/internal/models"
	"finsight/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatementHandler struct {
	stService *service.StatementService
	logger    *zap.Logger
}

func NewStatementHandler(stService *service.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		stService: stService,
		logger:    logger,
	}
}

// Upload accepts a multipart form with the statement file and a source
// field, "csv" or "text".
func (h *StatementHandler) Upload(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	var source models.StatementSource
	switch c.FormValue("source") {
	case "csv":
		source = models.StatementSourceCSV
	case "text":
		source = models.StatementSourceText
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Source must be csv or text",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	st, err := h.stService.Upload(c.Context(), userID, src, file.Filename, source)
	if err != nil {
		h.logger.Error("Failed to upload statement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload statement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(st)
}

func (h *StatementHandler) Process(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	statementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid statement ID",
		})
	}

	result, err := h.stService.Process(c.Context(), userID, statementID)
	if err != nil {
		switch err {
		case service.ErrStatementNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Statement not found",
			})
		case service.ErrNotOwner:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Statement belongs to another user",
			})
		}
		h.logger.Error("Failed to process statement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process statement",
		})
	}

	return c.JSON(result)
}

func (h *StatementHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)

	statements, err := h.stService.List(c.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list statements", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list statements",
		})
	}

	return c.JSON(statements)
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
