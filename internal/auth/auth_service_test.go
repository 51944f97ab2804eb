package auth_test

import (
	"context"
	"testing"

	"go-empdir/internal/auth"
	autherrors "go-empdir/internal/auth/errors"
	"go-empdir/internal/employee"
	employeeMock "go-empdir/internal/employee/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token bound to the matched identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		empl := &employee.Employee{ID: uuid.New(), Email: "john@example.com"}
		repo.EXPECT().FindByEmail(ctx, "john@example.com").Return(empl, nil)

		tokenString, err := svc.Authenticate(ctx, "john@example.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		if assert.True(t, ok) {
			assert.Equal(t, empl.ID.String(), claims["employee_id"])
			assert.Equal(t, "john@example.com", claims["email"])
			assert.NotNil(t, claims["exp"])
		}
	})

	t.Run("unknown email issues no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := auth.NewService(repo, testSecret)

		repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		tokenString, err := svc.Authenticate(ctx, "ghost@example.com")

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
		assert.Empty(t, tokenString)
	})
}
