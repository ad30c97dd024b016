package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// ErrorType names a category of user-facing error
type ErrorType string

const (
	ErrorTypeMissingScore   ErrorType = "missing_score"
	ErrorTypeInvalidScore   ErrorType = "invalid_score"
	ErrorTypeInvalidWager   ErrorType = "invalid_wager"
	ErrorTypeWrongHole      ErrorType = "wrong_hole"
	ErrorTypeGameCompleted  ErrorType = "game_completed"
	ErrorTypeFirstHole      ErrorType = "first_hole"
	ErrorTypeGameNotFound   ErrorType = "game_not_found"
	ErrorTypePlayerNotFound ErrorType = "player_not_found"
	ErrorTypeCourseNotFound ErrorType = "course_not_found"
	ErrorTypeRosterSize     ErrorType = "roster_size"
	ErrorTypeBadHandicap    ErrorType = "bad_handicap"
	ErrorTypeUnknown        ErrorType = "unknown"
)

// GetHoleResultMessageInput contains the outcome of one settled hole
type GetHoleResultMessageInput struct {
	HoleNumber int
	BankerName string

	// BankerNet is the banker's net result on the hole
	BankerNet int

	// Won, Lost and Pushed count the banker's matches by outcome
	Won    int
	Lost   int
	Pushed int

	// Presses is how many presses were in play, banker included
	Presses int

	Tone MessageTone
}

// GetHoleResultMessageOutput contains the generated hole message
type GetHoleResultMessageOutput struct {
	Title   string
	Message string
}

// Standing is one line of a final leaderboard
type Standing struct {
	Name     string
	Winnings int
}

// GetGameCompleteMessageInput contains the final standings, best first
type GetGameCompleteMessageInput struct {
	CourseName string
	Standings  []Standing
	Tone       MessageTone
}

// GetGameCompleteMessageOutput contains the closing message
type GetGameCompleteMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes message selection for tests
	Seed int64
}
