package controller

import (
	"papertrail-ai/internal/dto"
	"papertrail-ai/internal/mapper"
	"papertrail-ai/internal/pkg/serverutils"
	"papertrail-ai/internal/shell"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	RenameSession(ctx *fiber.Ctx) error
	SelectSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	UploadDocuments(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
}

type chatController struct {
	dispatcher *shell.Dispatcher
	mapper     *mapper.ChatMapper
}

func NewChatController(dispatcher *shell.Dispatcher, mapper *mapper.ChatMapper) IChatController {
	return &chatController{
		dispatcher: dispatcher,
		mapper:     mapper,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("", c.State)
	h.Post("/sessions", c.CreateSession)
	h.Put("/sessions/current", c.RenameSession)
	h.Post("/sessions/select", c.SelectSession)
	h.Delete("/sessions/current", c.DeleteSession)
	h.Post("/documents", c.UploadDocuments)
	h.Post("/messages", c.Ask)
}

func (c *chatController) State(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get chat state", c.mapper.ViewToResponse(c.dispatcher.Render())))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	view := c.dispatcher.Dispatch(ctx.UserContext(), shell.NewCommand{})
	return ctx.JSON(serverutils.SuccessResponse("Success create chat", c.mapper.ViewToResponse(view)))
}

func (c *chatController) RenameSession(ctx *fiber.Ctx) error {
	var req dto.RenameSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	view := c.dispatcher.Dispatch(ctx.UserContext(), shell.RenameCommand{Name: req.Name})
	return ctx.JSON(serverutils.SuccessResponse("Success rename chat", c.mapper.ViewToResponse(view)))
}

func (c *chatController) SelectSession(ctx *fiber.Ctx) error {
	var req dto.SelectSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	view := c.dispatcher.Dispatch(ctx.UserContext(), shell.SwitchCommand{Name: req.Name})
	return ctx.JSON(serverutils.SuccessResponse("Success switch chat", c.mapper.ViewToResponse(view)))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	view := c.dispatcher.Dispatch(ctx.UserContext(), shell.DeleteCommand{})
	return ctx.JSON(serverutils.SuccessResponse("Success delete chat", c.mapper.ViewToResponse(view)))
}

func (c *chatController) UploadDocuments(ctx *fiber.Ctx) error {
	files, err := readUploads(ctx)
	if err != nil {
		return err
	}

	view := c.dispatcher.Dispatch(ctx.UserContext(), shell.SubmitCommand{Files: files})
	return ctx.JSON(serverutils.SuccessResponse("Success extract documents", c.mapper.ViewToResponse(view)))
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("Invalid request body", err)
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	view := c.dispatcher.Dispatch(ctx.UserContext(), shell.AskCommand{Question: req.Question})
	return ctx.JSON(serverutils.SuccessResponse("Success send chat", c.mapper.ViewToResponse(view)))
}
