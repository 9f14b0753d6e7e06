package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/app/services"
	"github.com/kaanb/campuscore/internal/middleware"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// CourseController handles course endpoints, including the bulk import and
// bulk update routes.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController.
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles POST /courses.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	course := &models.Course{
		Code:        req.Code,
		Title:       req.Title,
		CreditHours: req.CreditHours,
		Semester:    req.Semester,
		ProgramID:   req.ProgramID,
	}
	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// GetCourseByID handles GET /courses/:id.
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// ListCourses handles GET /courses.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	programID, err := helpers.OptionalInt64Query(ctx, "programId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	semester, err := helpers.OptionalIntQuery(ctx, "semester")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.CourseFilter{
		ProgramID: programID,
		Semester:  semester,
		Code:      helpers.OptionalStringQuery(ctx, "code"),
		Search:    ctx.Query("search"),
		Sort:      ctx.Query("sort"),
	}

	courses, total, err := c.courseService.ListCourses(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(courses, total, page, size)))
}

// UpdateCourse handles PUT /courses/:id.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	course := &models.Course{
		ID:          id,
		Code:        req.Code,
		Title:       req.Title,
		CreditHours: req.CreditHours,
		Semester:    req.Semester,
		ProgramID:   req.ProgramID,
	}
	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// DeleteCourse handles DELETE /courses/:id.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}))
}

func coursesFromBulkItems(items []dto.BulkCourseItem) []*models.Course {
	courses := make([]*models.Course, 0, len(items))
	for _, item := range items {
		courses = append(courses, &models.Course{
			ID:          item.ID,
			Code:        item.Code,
			Title:       item.Title,
			CreditHours: item.CreditHours,
			Semester:    item.Semester,
			ProgramID:   item.ProgramID,
		})
	}
	return courses
}

// BulkCreateCourses handles POST /courses/bulk. The whole batch succeeds or
// fails together.
func (c *CourseController) BulkCreateCourses(ctx *gin.Context) {
	var items []dto.BulkCourseItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	courses := coursesFromBulkItems(items)
	if err := c.courseService.BulkCreateCourses(ctx, courses); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(courses))
}

// BulkUpdateCourses handles PUT /courses/bulk. Unknown IDs are skipped; the
// response carries the rows that were updated.
func (c *CourseController) BulkUpdateCourses(ctx *gin.Context) {
	var items []dto.BulkCourseItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	updated, err := c.courseService.BulkUpdateCourses(ctx, coursesFromBulkItems(items))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}
