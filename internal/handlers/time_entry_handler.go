package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"timetrack-service/internal/middleware"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
	"timetrack-service/internal/services"
)

type TimeEntryHandler struct {
	entryService *services.TimeEntryService
}

func NewTimeEntryHandler(entryService *services.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{entryService: entryService}
}

// ListTimeEntries returns time entries scoped to the caller
// @Summary List time entries
// @Description Optional filters: projectId, startDate, endDate and (admins only) userId. Non-admins always see their own entries only.
// @Tags time-entries
// @Produce json
// @Security BearerAuth
// @Param projectId query string false "Project ID" Format(uuid)
// @Param startDate query string false "Inclusive lower bound on startTime"
// @Param endDate query string false "Inclusive upper bound on startTime"
// @Param userId query string false "User ID (admins only)" Format(uuid)
// @Success 200 {object} map[string]interface{} "List of time entries, newest first"
// @Failure 400 {object} map[string]interface{} "Invalid filter"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /time-entries [get]
func (h *TimeEntryHandler) ListTimeEntries(c *fiber.Ctx) error {
	filter, err := entryFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filter format"})
	}

	entries, err := h.entryService.ListEntries(middleware.Principal(c), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"timeEntries": entries})
}

// CreateTimeEntry creates a time entry
// @Summary Create a time entry
// @Description Start a live timer (isTimerEntry, no endTime) or record a manual entry with both times. Non-admins must be members of the project.
// @Tags time-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body models.CreateTimeEntryRequest true "Entry data"
// @Success 200 {object} map[string]interface{} "Created entry with project and user attached"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 403 {object} map[string]interface{} "Access denied to this project"
// @Failure 409 {object} map[string]interface{} "A timer is already running"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /time-entries [post]
func (h *TimeEntryHandler) CreateTimeEntry(c *fiber.Ctx) error {
	var req models.CreateTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if req.ProjectID == nil || req.Description == "" || req.StartTime == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project, description, and start time are required"})
	}

	entry, err := h.entryService.CreateEntry(middleware.Principal(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"timeEntry": entry})
}

// StopTimeEntry closes a running entry
// @Summary Stop a time entry
// @Description Close an open entry: sets endTime, computes the duration in whole minutes and clears isActive
// @Tags time-entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time entry ID" Format(uuid)
// @Param entry body models.StopTimeEntryRequest true "End time"
// @Success 200 {object} map[string]interface{} "Closed entry"
// @Failure 400 {object} map[string]interface{} "Invalid UUID or entry already stopped"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /time-entries/{id} [put]
func (h *TimeEntryHandler) StopTimeEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid UUID"})
	}

	var req models.StopTimeEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if req.EndTime == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "End time is required"})
	}

	entry, err := h.entryService.StopEntry(middleware.Principal(c), id, *req.EndTime)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"timeEntry": entry})
}

// DeleteTimeEntry deletes an entry
// @Summary Delete a time entry
// @Description Unconditional removal. Only the owner or an admin may delete an entry.
// @Tags time-entries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Time entry ID" Format(uuid)
// @Success 200 {object} map[string]interface{} "Entry deleted"
// @Failure 400 {object} map[string]interface{} "Invalid UUID"
// @Failure 403 {object} map[string]interface{} "Access denied"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /time-entries/{id} [delete]
func (h *TimeEntryHandler) DeleteTimeEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid UUID"})
	}

	if err := h.entryService.DeleteEntry(middleware.Principal(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Time entry deleted successfully"})
}

func entryFilterFromQuery(c *fiber.Ctx) (repository.EntryFilter, error) {
	var filter repository.EntryFilter

	if v := c.Query("projectId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.ProjectID = &id
	}
	if v := c.Query("userId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.UserID = &id
	}

	var err error
	if filter.StartDate, err = parseDate(c.Query("startDate")); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseDate(c.Query("endDate")); err != nil {
		return filter, err
	}
	return filter, nil
}
