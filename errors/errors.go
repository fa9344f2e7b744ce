package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrAuthenticationFailed = fmt.Errorf("authentication failed")
	ErrNotAParticipant      = fmt.Errorf("user is not a participant of the conversation")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrForbidden            = fmt.Errorf("operation restricted to the message sender")
	ErrInvalidMessage       = fmt.Errorf("message text is empty or invalid")
	ErrInvalidStatus        = fmt.Errorf("status must be delivered or seen")
	ErrStorage              = fmt.Errorf("storage failure")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)

// MapToGRPCError translates the domain error taxonomy into transport codes.
// Unknown errors are reported as Internal without leaking details to the client.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAuthenticationFailed):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrNotAParticipant), errors.Is(err, ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrConversationNotFound), errors.Is(err, ErrMessageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrInvalidMessage), errors.Is(err, ErrInvalidStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrStorage):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
