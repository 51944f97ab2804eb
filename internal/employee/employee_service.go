package employee

import (
	"context"
	"time"

	employeeerrors "go-empdir/internal/employee/errors"
	"go-empdir/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context, nameFilter string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

// parseBirthDate validates the YYYY-MM-DD wire format and rejects
// future dates.
func parseBirthDate(value string) (time.Time, error) {
	birthDate, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidBirthDate
	}
	today, _ := time.Parse(dateLayout, time.Now().UTC().Format(dateLayout))
	if birthDate.After(today) {
		return time.Time{}, employeeerrors.ErrBirthDateInFuture
	}
	return birthDate, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		s.logger.Warn("create employee invalid birth_date",
			zap.String("birth_date", req.BirthDate),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: birthDate,
		Position:  req.Position,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) List(ctx context.Context, nameFilter string) ([]EmployeeResponse, error) {
	s.logger.Debug("list employees requested", zap.String("name_filter", nameFilter))

	empls, err := s.repo.FindAll(ctx, nameFilter)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

// resolveID rejects ids that cannot be a stored key, so a garbage path
// parameter is a 404 instead of a store-level type error.
func resolveID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrEmployeeNotFound
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	if err := resolveID(id); err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if err := resolveID(id); err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	changed := false
	if req.Name != nil && *req.Name != empl.Name {
		empl.Name = *req.Name
		changed = true
	}
	if req.Email != nil && *req.Email != empl.Email {
		empl.Email = *req.Email
		changed = true
	}
	if req.Position != nil && *req.Position != empl.Position {
		empl.Position = *req.Position
		changed = true
	}
	if req.BirthDate != nil && *req.BirthDate != empl.BirthDate.Format(dateLayout) {
		birthDate, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			s.logger.Warn("update employee invalid birth_date",
				zap.String("birth_date", *req.BirthDate),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
		empl.BirthDate = birthDate
		changed = true
	}

	// A no-op body leaves the row (and updated_at) untouched.
	if !changed {
		return mapToResponse(*empl), nil
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	if err := resolveID(id); err != nil {
		return err
	}

	// Resolve first so deleting a missing id is a 404, not a silent no-op.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		s.logger.Warn("delete employee fetch existing failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        empl.ID.String(),
		Name:      empl.Name,
		Email:     empl.Email,
		BirthDate: empl.BirthDate.Format(dateLayout),
		Position:  empl.Position,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
