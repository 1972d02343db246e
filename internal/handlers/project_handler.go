package handlers

import (
	"github.com/gofiber/fiber/v2"

	"timetrack-service/internal/middleware"
	"timetrack-service/internal/models"
	"timetrack-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns the projects visible to the caller
// @Summary List projects
// @Description Admins see all projects with member lists; users see only projects they belong to. Entry counts are scoped the same way.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of projects"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.ListProjects(middleware.Principal(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// CreateProject creates a new project
// @Summary Create a project
// @Description Create a project and assign members in one atomic operation
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body models.CreateProjectRequest true "Project data"
// @Success 200 {object} map[string]interface{} "Created project with resolved member list"
// @Failure 400 {object} map[string]interface{} "Project name is required"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req models.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project name is required"})
	}

	project, err := h.projectService.CreateProject(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"project": project})
}
