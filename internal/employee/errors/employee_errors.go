package employeeerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or unauthorized",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this email already exists",
		http.StatusBadRequest,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this employee number already exists",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status value",
		http.StatusBadRequest,
	)
	ErrInvalidEmploymentType = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employment type",
		http.StatusBadRequest,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining date format",
		http.StatusBadRequest,
	)
	ErrInvalidTask = apperror.New(
		apperror.CodeInvalidInput,
		"Each task must have a description and a valid due date",
		http.StatusBadRequest,
	)
	ErrNoResume = apperror.New(
		apperror.CodeNotFound,
		"No resume uploaded for this employee",
		http.StatusNotFound,
	)
	ErrResumeFileMissing = apperror.New(
		apperror.CodeNotFound,
		"Resume file not found on server",
		http.StatusNotFound,
	)
)
