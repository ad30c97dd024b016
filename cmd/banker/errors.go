package main

import (
	"errors"

	"github.com/KirkDiggler/banker/internal/banker"
	gameService "github.com/KirkDiggler/banker/internal/services/game"
	"github.com/KirkDiggler/banker/internal/services/messaging"
)

var errorTypes = []struct {
	target    error
	errorType messaging.ErrorType
}{
	{banker.ErrMissingScore, messaging.ErrorTypeMissingScore},
	{banker.ErrInvalidScore, messaging.ErrorTypeInvalidScore},
	{banker.ErrInvalidWager, messaging.ErrorTypeInvalidWager},
	{banker.ErrHoleOutOfRange, messaging.ErrorTypeWrongHole},
	{banker.ErrHoleNotCurrent, messaging.ErrorTypeWrongHole},
	{banker.ErrGameCompleted, messaging.ErrorTypeGameCompleted},
	{banker.ErrNoPreviousHole, messaging.ErrorTypeFirstHole},
	{banker.ErrInvalidHandicap, messaging.ErrorTypeBadHandicap},
	{banker.ErrDuplicatePlayer, messaging.ErrorTypeRosterSize},
	{gameService.ErrGameNotFound, messaging.ErrorTypeGameNotFound},
	{gameService.ErrPlayerNotFound, messaging.ErrorTypePlayerNotFound},
	{gameService.ErrCourseNotFound, messaging.ErrorTypeCourseNotFound},
	{gameService.ErrInvalidRosterSize, messaging.ErrorTypeRosterSize},
}

// errorType maps a command error onto the message category shown to the user
func errorType(err error) messaging.ErrorType {
	for _, et := range errorTypes {
		if errors.Is(err, et.target) {
			return et.errorType
		}
	}
	return messaging.ErrorTypeUnknown
}
