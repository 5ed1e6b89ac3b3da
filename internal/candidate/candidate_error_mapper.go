package candidate

import (
	"errors"
	"strings"

	candidateerrors "go-hrm/internal/candidate/errors"
	employeeerrors "go-hrm/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return candidateerrors.ErrCandidateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_candidates_owner_email":
				return candidateerrors.ErrCandidateAlreadyExists
			case "uq_employees_owner_email":
				return candidateerrors.ErrEmployeeAlreadyExists
			case "uq_employees_owner_number":
				return employeeerrors.ErrEmployeeNumberAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_candidates_owner_email") {
		return candidateerrors.ErrCandidateAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_owner_email") {
		return candidateerrors.ErrEmployeeAlreadyExists
	}

	return err
}
