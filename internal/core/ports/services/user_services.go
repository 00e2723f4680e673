package services

import (
	"context"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
	"github.com/PlanSmiths/merch_planning_app/internal/dto"
)

// UserSvcFacade manages planner accounts and credential checks. Token
// issuance lives in the handler layer.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser verifies email+password and returns the user on
	// success, apperrors.ErrForbidden otherwise.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}
