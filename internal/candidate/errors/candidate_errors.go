package candidateerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Candidate not found or unauthorized",
		http.StatusNotFound,
	)
	ErrCandidateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Candidate with this email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidCandidateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid candidate id",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status value",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Candidate status cannot be changed to the requested value",
		http.StatusBadRequest,
	)
	ErrEmployeeDataRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee data is required when selecting a candidate",
		http.StatusBadRequest,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this candidate's email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidAppliedDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid applied date format",
		http.StatusBadRequest,
	)
	ErrNoResume = apperror.New(
		apperror.CodeNotFound,
		"No resume uploaded for this candidate",
		http.StatusNotFound,
	)
	ErrResumeFileMissing = apperror.New(
		apperror.CodeNotFound,
		"Resume file not found on server",
		http.StatusNotFound,
	)
)
