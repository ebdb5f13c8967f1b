package handler

import (
	"fmt"
	"net/http"

	"growthpro/internal/domain"
	"growthpro/internal/models"
	"growthpro/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	users *repository.UserRepository
}

func NewUserHandler(users *repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Handle   string `json:"handle" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}

// Create registers a new user record. Credential verification belongs to
// the external identity collaborator; this only stores the hash alongside
// the profile per the data model.
// POST /users/
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	taken, err := h.users.HandleTaken(req.Handle)
	if err != nil {
		respondError(c, err)
		return
	}
	if taken {
		respondError(c, fmt.Errorf("%w: handle already registered", domain.ErrInvalidRequest))
		return
	}
	if req.Email != "" {
		if taken, err := h.users.EmailTaken(req.Email, 0); err != nil {
			respondError(c, err)
			return
		} else if taken {
			respondError(c, fmt.Errorf("%w: email already registered", domain.ErrInvalidRequest))
			return
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}
	u := &models.User{
		Name:         req.Name,
		Handle:       req.Handle,
		PasswordHash: string(hash),
	}
	if req.Email != "" {
		u.Email = &req.Email
	}
	if req.Phone != "" {
		u.Phone = &req.Phone
	}
	if err := h.users.Create(u); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Get returns a user profile.
// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	u, err := h.users.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Update changes mutable profile fields. The numeric id and handle are
// immutable; email and phone uniqueness is re-checked against other users.
// PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req UpdateUserRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, err)
		return
	}
	u, err := h.users.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		if taken, err := h.users.EmailTaken(*req.Email, u.ID); err != nil {
			respondError(c, err)
			return
		} else if taken {
			respondError(c, fmt.Errorf("%w: email already registered", domain.ErrInvalidRequest))
			return
		}
		u.Email = req.Email
	}
	if req.Phone != nil {
		if taken, err := h.users.PhoneTaken(*req.Phone, u.ID); err != nil {
			respondError(c, err)
			return
		} else if taken {
			respondError(c, fmt.Errorf("%w: phone already registered", domain.ErrInvalidRequest))
			return
		}
		u.Phone = req.Phone
	}
	if err := h.users.Update(u); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
