package config

import "github.com/ayoisaiah/tomate/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v, got %v",
	}

	errInvalidBlocks = &apperr.Error{
		Message: "blocks must be between %d and %d, got %d",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %s",
	}

	errEmptyMsg = &apperr.Error{
		Message: "notification message cannot be empty",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time (%s) must be earlier than the end time (%s)",
	}

	errInvalidDate = &apperr.Error{
		Message: "invalid --%s date",
	}
)
