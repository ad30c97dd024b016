package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetHoleResultMessage returns a line describing how the banker did on a hole
	GetHoleResultMessage(ctx context.Context, input *GetHoleResultMessageInput) (*GetHoleResultMessageOutput, error)

	// GetGameCompleteMessage returns the closing message for a finished round
	GetGameCompleteMessage(ctx context.Context, input *GetGameCompleteMessageInput) (*GetGameCompleteMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
