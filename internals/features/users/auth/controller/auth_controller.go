package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"listrikku_backend/internals/constants"
	customerModel "listrikku_backend/internals/features/customers/model"
	adminModel "listrikku_backend/internals/features/users/auth/model"
	"listrikku_backend/internals/features/users/auth/service"
	helper "listrikku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helper.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	switch role {
	case constants.RoleAdmin:
		var row adminModel.AdminModel
		if err := ac.DB.First(&row, "admin_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"id":    row.AdminID,
			"name":  row.AdminName,
			"email": row.AdminEmail,
			"role":  role,
		})
	case constants.RoleCustomer:
		var row customerModel.CustomerModel
		if err := ac.DB.First(&row, "customer_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Customer not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"id":    row.CustomerID,
			"name":  row.CustomerName,
			"email": row.CustomerEmail,
			"role":  role,
		})
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}
}
