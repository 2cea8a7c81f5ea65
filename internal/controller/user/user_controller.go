package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// CreateUser godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.UserCreateRequest true "User data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.UserCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateUser: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.userService.CreateUser(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create user")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.userService.GetUser(id)
	if err != nil {
		respondServiceError(ctx, err, "Failed to get user")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAllUsers godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	resp, err := c.userService.GetAllUsers()
	if err != nil {
		respondServiceError(ctx, err, "Failed to list users")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
