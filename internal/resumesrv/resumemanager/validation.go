package resumemanager

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// validateRequest checks a decoded request struct against its validate tags
// and reports the first violation as a tagged invalid-input failure.
func validateRequest(req any) apperrors.Error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return dberror.ErrInvalidInput.Msg("invalid request: " + verrs[0].Error())
		}
		return dberror.ErrInvalidInput.MsgErr("invalid request", err)
	}
	return nil
}

// parseID parses a UUID path or body parameter. Identifiers must be non-empty
// UUID-formatted strings.
func parseID(field, value string) (uuid.UUID, apperrors.Error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, dberror.ErrInvalidInput.
			Msg("invalid " + field).
			SetCtx(map[string]any{field: value})
	}
	return id, nil
}

const dateLayout = "2006-01-02"

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(field, value string) (time.Time, apperrors.Error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, dberror.ErrInvalidInput.
		Msg("invalid " + field).
		SetCtx(map[string]any{field: value})
}

// parseDateRange parses start/end and rejects an end date that precedes the
// start date.
func parseDateRange(startValue string, endValue *string) (time.Time, *time.Time, apperrors.Error) {
	start, err := parseDate("start_date", startValue)
	if err != nil {
		return time.Time{}, nil, err
	}
	if endValue == nil {
		return start, nil, nil
	}
	end, err := parseDate("end_date", *endValue)
	if err != nil {
		return time.Time{}, nil, err
	}
	if end.Before(start) {
		return time.Time{}, nil, invalidDateRange(startValue, *endValue)
	}
	return start, &end, nil
}

func invalidDateRange(startValue, endValue string) apperrors.Error {
	return dberror.ErrInvalidInput.
		Msg("end_date must not precede start_date").
		SetCtx(map[string]any{"start_date": startValue, "end_date": endValue})
}
