package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
	"github.com/yukikurage/todo-api/internal/utils"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// Search returns a page of the current user's todos
func (h *TodoHandler) Search(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query struct {
		Page  int `form:"page" binding:"omitempty,min=1,max=1000000"`
		Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(queryError(err))
		return
	}

	params := utils.NewPaginationParams(query.Page, query.Limit)
	todos, total, err := h.todoService.Search(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoListResponse(todos, params, total))
}

// GetByID returns a single todo owned by the current user
func (h *TodoHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	todo, err := h.todoService.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		_ = c.Error(todoAPIError(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// Create adds a todo for the current user
func (h *TodoHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title" binding:"required,min=1,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierrors.Validation(err))
		return
	}

	todo, err := h.todoService.Create(c.Request.Context(), req.Title, userID)
	if err != nil {
		_ = c.Error(todoAPIError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// Update sets the completed flag of a todo
func (h *TodoHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req struct {
		Completed *dto.FlexBool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apierrors.Validation(err))
		return
	}

	todo, err := h.todoService.Update(c.Request.Context(), id, userID, bool(*req.Completed))
	if err != nil {
		_ = c.Error(todoAPIError(err))
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// Delete removes a todo
func (h *TodoHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		return
	}

	deleted, err := h.todoService.Delete(c.Request.Context(), id, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !deleted {
		_ = c.Error(apierrors.NotFound("Todo not found"))
		return
	}

	c.Status(http.StatusNoContent)
}

func todoAPIError(err error) error {
	switch {
	case errors.Is(err, services.ErrTodoNotFound):
		return apierrors.NotFound("Todo not found")
	case errors.Is(err, services.ErrTitleRequired):
		return apierrors.NewAPIErrorWithDetails(http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Validation error",
			[]apierrors.FieldError{{Field: "title", Tag: "required", Message: "is required"}})
	default:
		return err
	}
}

// currentUserID reads the authenticated user set by RequireAuth.
func currentUserID(c *gin.Context) (uint64, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		_ = c.Error(apierrors.Unauthorized("Token not provided"))
		return 0, false
	}
	return userID, true
}

// bindID parses the :id path parameter as a positive integer.
func bindID(c *gin.Context) (uint64, bool) {
	var uri struct {
		ID uint64 `uri:"id" binding:"required,min=1"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		_ = c.Error(apierrors.NewAPIErrorWithDetails(http.StatusBadRequest, apierrors.ErrCodeInvalidInput, "Validation error",
			[]apierrors.FieldError{{Field: "id", Tag: "type", Message: "must be a positive integer"}}).WithCause(err))
		return 0, false
	}
	return uri.ID, true
}

func queryError(err error) error {
	apiErr := apierrors.Validation(err)
	if apiErr.Details == nil {
		return apierrors.BadRequest("Invalid query parameters").WithCause(err)
	}
	return apiErr
}
