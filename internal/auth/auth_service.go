package auth

import (
	"context"
	"time"

	autherrors "go-empdir/internal/auth/errors"
	"go-empdir/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Authenticate issues a signed token for the employee registered
	// under email. Identity is established by email alone; there is no
	// credential check in this system.
	Authenticate(ctx context.Context, email string) (string, error)
}

type service struct {
	employeeRepo employee.Repository
	jwtSecret    []byte
	logger       *zap.Logger
}

func NewService(employeeRepo employee.Repository, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employeeRepo: employeeRepo,
		jwtSecret:    []byte(jwtSecret),
		logger:       l,
	}
}

func (s *service) Authenticate(ctx context.Context, email string) (string, error) {
	s.logger.Debug("authenticate requested", zap.String("email", email))

	empl, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("authenticate user lookup failed", zap.String("email", email), zap.Error(err))
		return "", autherrors.ErrUserNotFound
	}

	token, err := s.generateToken(empl.ID.String(), empl.Email)
	if err != nil {
		s.logger.Error("authenticate token generation failed", zap.Error(err))
		return "", autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("authenticate success", zap.String("employee_id", empl.ID.String()))
	return token, nil
}

func (s *service) generateToken(employeeID, email string) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"email":       email,
		"exp":         time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
