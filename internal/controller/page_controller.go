package controller

import (
	"strings"

	"papertrail-ai/internal/shell"
	"papertrail-ai/pkg/extractor"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

// pageController serves the browser UI. Every form post applies one command and
// redirects back to the page, which then shows the flashed notices.
type pageController struct {
	dispatcher *shell.Dispatcher
}

func NewPageController(dispatcher *shell.Dispatcher) IPageController {
	return &pageController{dispatcher: dispatcher}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)

	h := r.Group("/chat")
	h.Post("/rename", c.post(func(ctx *fiber.Ctx) (shell.Command, error) {
		return shell.RenameCommand{Name: ctx.FormValue("name")}, nil
	}))
	h.Post("/select", c.post(func(ctx *fiber.Ctx) (shell.Command, error) {
		return shell.SwitchCommand{Name: ctx.FormValue("name")}, nil
	}))
	h.Post("/delete", c.post(func(ctx *fiber.Ctx) (shell.Command, error) {
		return shell.DeleteCommand{}, nil
	}))
	h.Post("/new", c.post(func(ctx *fiber.Ctx) (shell.Command, error) {
		return shell.NewCommand{}, nil
	}))
	h.Post("/submit", c.post(func(ctx *fiber.Ctx) (shell.Command, error) {
		files, err := readUploads(ctx)
		if err != nil {
			return nil, err
		}
		return shell.SubmitCommand{Files: files}, nil
	}))
	h.Post("/ask", c.post(func(ctx *fiber.Ctx) (shell.Command, error) {
		return shell.AskCommand{Question: ctx.FormValue("question")}, nil
	}))
}

func (c *pageController) Index(ctx *fiber.Ctx) error {
	return ctx.Render("index", fiber.Map{
		"View":   c.dispatcher.Render(),
		"Accept": strings.Join(extractor.AcceptedExtensions, ","),
	})
}

func (c *pageController) post(build func(ctx *fiber.Ctx) (shell.Command, error)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		cmd, err := build(ctx)
		if err != nil {
			return err
		}
		c.dispatcher.Dispatch(ctx.UserContext(), cmd)
		return ctx.Redirect("/", fiber.StatusSeeOther)
	}
}
