package handlers

import (
	"finsight/internal/dto"
	"finsight/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdviceHandler struct {
	adviceService *service.AdviceService
	logger        *zap.Logger
}

func NewAdviceHandler(adviceService *service.AdviceService, logger *zap.Logger) *AdviceHandler {
	return &AdviceHandler{
		adviceService: adviceService,
		logger:        logger,
	}
}

func (h *AdviceHandler) Suggestions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.adviceService.Suggestions(c.Context(), userID)
	if err != nil {
		return h.adviceError(c, err, "Failed to generate suggestions")
	}
	return c.JSON(resp)
}

func (h *AdviceHandler) Budget(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.adviceService.Budget(c.Context(), userID)
	if err != nil {
		return h.adviceError(c, err, "Failed to build budget")
	}
	return c.JSON(resp)
}

func (h *AdviceHandler) Tips(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.adviceService.Tips(c.Context(), userID)
	if err != nil {
		return h.adviceError(c, err, "Failed to generate tips")
	}
	return c.JSON(resp)
}

func (h *AdviceHandler) Chat(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	resp, err := h.adviceService.Chat(c.Context(), userID, req.Message)
	if err != nil {
		h.logger.Error("Chat failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Chat failed",
		})
	}
	return c.JSON(resp)
}

func (h *AdviceHandler) SuggestedQuestions(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	questions, err := h.adviceService.SuggestedQuestions(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list suggested questions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list suggested questions",
		})
	}
	return c.JSON(fiber.Map{"questions": questions})
}

func (h *AdviceHandler) adviceError(c *fiber.Ctx, err error, fallback string) error {
	switch err {
	case service.ErrProfileNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	case service.ErrAnalysisMissing:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No analysis available, run analysis first",
		})
	}
	h.logger.Error(fallback, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": fallback,
	})
}
