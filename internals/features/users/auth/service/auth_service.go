package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"listrikku_backend/internals/configs"
	"listrikku_backend/internals/constants"
	customerModel "listrikku_backend/internals/features/customers/model"
	adminModel "listrikku_backend/internals/features/users/auth/model"
	"listrikku_backend/internals/features/users/auth/dto"
	helper "listrikku_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	switch req.Role {
	case constants.RoleAdmin:
		row := adminModel.AdminModel{
			AdminName:     req.Name,
			AdminEmail:    req.Email,
			AdminPassword: string(hashed),
			AdminPhone:    req.Phone,
			AdminAddress:  req.Address,
		}
		if err := db.Create(&row).Error; err != nil {
			if isDuplicateErr(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email or phone already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register admin")
		}
		return issueToken(c, fiber.StatusCreated, "Admin registered", row.AdminID.String(), row.AdminName, row.AdminEmail, constants.RoleAdmin)

	case constants.RoleCustomer:
		row := customerModel.CustomerModel{
			CustomerName:     req.Name,
			CustomerEmail:    req.Email,
			CustomerPassword: string(hashed),
			CustomerPhone:    req.Phone,
			CustomerAddress:  req.Address,
		}
		if err := db.Create(&row).Error; err != nil {
			if isDuplicateErr(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register customer")
		}
		return issueToken(c, fiber.StatusCreated, "Customer registered", row.CustomerID.String(), row.CustomerName, row.CustomerEmail, constants.RoleCustomer)

	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	switch req.Role {
	case constants.RoleAdmin:
		var row adminModel.AdminModel
		if err := db.First(&row, "admin_email = ?", req.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if bcrypt.CompareHashAndPassword([]byte(row.AdminPassword), []byte(req.Password)) != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Wrong password")
		}
		return issueToken(c, fiber.StatusOK, "Login success", row.AdminID.String(), row.AdminName, row.AdminEmail, constants.RoleAdmin)

	case constants.RoleCustomer:
		var row customerModel.CustomerModel
		if err := db.First(&row, "customer_email = ?", req.Email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Customer not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		if bcrypt.CompareHashAndPassword([]byte(row.CustomerPassword), []byte(req.Password)) != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Wrong password")
		}
		return issueToken(c, fiber.StatusOK, "Login success", row.CustomerID.String(), row.CustomerName, row.CustomerEmail, constants.RoleCustomer)

	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}
}

func issueToken(c *fiber.Ctx, status int, message, id, name, email, role string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Invalid identity")
	}
	token, err := CreateToken(configs.JWTSecret, uid, role, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	resp := dto.AuthResponse{
		Token: token,
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
	}
	if status == fiber.StatusCreated {
		return helper.JsonCreated(c, message, resp)
	}
	return helper.JsonOK(c, message, resp)
}

func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
