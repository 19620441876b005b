package rest

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	domainChat "github.com/zapagenda/zapagenda/domains/chat"
	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
	"github.com/zapagenda/zapagenda/pkg/utils"
)

type Schedule struct {
	Service domainSchedule.IScheduleUsecase
	Session domainChat.ISession
}

func InitRestSchedule(app fiber.Router, service domainSchedule.IScheduleUsecase, session domainChat.ISession) Schedule {
	rest := Schedule{Service: service, Session: session}
	app.Post("/schedules/link", rest.CreateLinkPost)
	app.Post("/schedules/status", rest.CreateStatusChange)
	app.Get("/schedules", rest.ListAll)
	app.Delete("/schedules/:kind/:id", rest.Delete)
	app.Get("/groups", rest.Groups)

	return rest
}

func (handler *Schedule) CreateLinkPost(c *fiber.Ctx) error {
	var request domainSchedule.CreateLinkPostRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	response, err := handler.Service.CreateLinkPost(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Link post scheduled",
		Results: response,
	})
}

func (handler *Schedule) CreateStatusChange(c *fiber.Ctx) error {
	var request domainSchedule.CreateStatusChangeRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	response, err := handler.Service.CreateStatusChange(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Status change scheduled",
		Results: response,
	})
}

func (handler *Schedule) ListAll(c *fiber.Ctx) error {
	entries, err := handler.Service.ListAll(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Schedules fetched",
		Results: entries,
	})
}

func (handler *Schedule) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("id: must be an integer"))
	}

	err = handler.Service.Delete(c.UserContext(), domainSchedule.Kind(c.Params("kind")), id)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Schedule removed",
	})
}

// Groups lists the session's joined groups so the panel can offer a chat
// picker. Returns 503 while the session is not ready.
func (handler *Schedule) Groups(c *fiber.Ctx) error {
	if !handler.Session.IsReady() {
		utils.PanicIfNeeded(pkgError.ErrNotReady)
	}

	groups, err := handler.Session.Groups(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Groups fetched",
		Results: groups,
	})
}
