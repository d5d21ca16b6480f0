package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrEntryNotFound = ErrorResponse{
		Status:  "error",
		Error:   "entry_not_found",
		Details: "Entry does not exist or is hidden by the current filter",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
