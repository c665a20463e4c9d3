package handlers

import (
	"context"
	"errors"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/model"
	"github.com/jjenkins/resume/internal/service"
	"github.com/jjenkins/resume/internal/templates"
)

// Resumer produces résumé reports
type Resumer interface {
	Report(ctx context.Context, characterID, resumeType string) (*model.Report, error)
	Tracked(resumeType string) int
}

// ResumeTextHandler returns the résumé as the plain text the chat front end posts
func ResumeTextHandler(svc Resumer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		report, err := svc.Report(c.UserContext(), c.Params("characterID"), resumeType(c))
		if err != nil {
			return c.Status(statusFor(err)).SendString("Err: " + err.Error())
		}
		return c.SendString(report.Text())
	}
}

// ResumeJSONHandler returns the résumé with its computed entries and a summary
func ResumeJSONHandler(svc Resumer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		characterID := c.Params("characterID")
		typ := resumeType(c)

		report, err := svc.Report(c.UserContext(), characterID, typ)
		if err != nil {
			return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{
			"character_id": characterID,
			"resume_type":  typ,
			"report":       report,
			"summary":      service.Summarize(report, svc.Tracked(typ)),
		})
	}
}

// ResumePageHandler renders the résumé as HTML
func ResumePageHandler(svc Resumer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		characterID := c.Params("characterID")
		typ := resumeType(c)

		report, err := svc.Report(c.UserContext(), characterID, typ)
		if err != nil {
			c.Status(statusFor(err))
			return render(c, templates.Error(err.Error()))
		}

		return render(c, templates.Resume(templates.ResumePage{
			CharacterID: characterID,
			ResumeType:  typ,
			Report:      report,
			Tracked:     svc.Tracked(typ),
		}))
	}
}

func render(c *fiber.Ctx, page templ.Component) error {
	handler := adaptor.HTTPHandler(templ.Handler(page, templ.WithStatus(c.Response().StatusCode())))
	return handler(c)
}

func resumeType(c *fiber.Ctx) string {
	return c.Query("type", catalog.SelectorAll)
}

func statusFor(err error) int {
	var fe *service.FetchError
	switch {
	case errors.Is(err, service.ErrInvalidCharacterID):
		return fiber.StatusBadRequest
	case errors.As(err, &fe) && fe.StatusCode == fiber.StatusNotFound:
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrFetchFailed), errors.Is(err, service.ErrMalformedDocument):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
