package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// GetHoleResultMessage returns a message describing the banker's hole
func (s *service) GetHoleResultMessage(ctx context.Context, input *GetHoleResultMessageInput) (*GetHoleResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneFunny
	}

	title := fmt.Sprintf("Hole %d", input.HoleNumber)
	matches := input.Won + input.Lost + input.Pushed
	name := input.BankerName

	summary := fmt.Sprintf("%s banked: won %d, lost %d, pushed %d.", name, input.Won, input.Lost, input.Pushed)
	if tone == ToneNeutral {
		return &GetHoleResultMessageOutput{
			Title:   title,
			Message: fmt.Sprintf("%s Net %+d.", summary, input.BankerNet),
		}, nil
	}

	var messages []string
	switch {
	case matches > 0 && input.Won == matches:
		messages = []string{
			fmt.Sprintf("%s swept the table and collects %d. Somebody check that scorecard.", name, input.BankerNet),
			fmt.Sprintf("Clean sweep! %s takes every match for %d.", name, input.BankerNet),
			fmt.Sprintf("The bank always wins. %s is up %d on the hole.", name, input.BankerNet),
		}
	case matches > 0 && input.Lost == matches:
		messages = []string{
			fmt.Sprintf("The bank is broke. %s pays out %d to everyone.", name, -input.BankerNet),
			fmt.Sprintf("%s lost every match and is down %d. Rough day at the office.", name, -input.BankerNet),
			fmt.Sprintf("Run on the bank! %s hands over %d.", name, -input.BankerNet),
		}
	case input.Pushed == matches:
		messages = []string{
			"All square. Nobody moves any money.",
			fmt.Sprintf("Pushes all around on %d. Carry on.", input.HoleNumber),
			fmt.Sprintf("%s and the field agree to disagree. No money changes hands.", name),
		}
	case input.BankerNet > 0:
		messages = []string{
			fmt.Sprintf("%s comes out ahead, up %d.", name, input.BankerNet),
			fmt.Sprintf("Good hole for the bank. %s nets %d.", name, input.BankerNet),
		}
	case input.BankerNet < 0:
		messages = []string{
			fmt.Sprintf("%s leaks %d from the bank.", name, -input.BankerNet),
			fmt.Sprintf("The field gets the better of %s, down %d.", name, -input.BankerNet),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s breaks even. Wins and losses cancel out.", name),
			fmt.Sprintf("Even money for %s on hole %d.", name, input.HoleNumber),
		}
	}

	message := s.pick(messages)
	if input.Presses > 0 {
		message = fmt.Sprintf("%s (%s in play)", message, plural(input.Presses, "press"))
	}

	return &GetHoleResultMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetGameCompleteMessage returns the closing message for a round
func (s *service) GetGameCompleteMessage(ctx context.Context, input *GetGameCompleteMessageInput) (*GetGameCompleteMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if len(input.Standings) == 0 {
		return nil, errors.New("standings cannot be empty")
	}

	title := "Round complete"
	if input.CourseName != "" {
		title = fmt.Sprintf("Round complete at %s", input.CourseName)
	}

	leader := input.Standings[0]
	last := input.Standings[len(input.Standings)-1]

	if input.Tone == ToneNeutral {
		return &GetGameCompleteMessageOutput{
			Title:   title,
			Message: fmt.Sprintf("%s finishes on top at %+d.", leader.Name, leader.Winnings),
		}, nil
	}

	if leader.Winnings == 0 {
		return &GetGameCompleteMessageOutput{
			Title:   title,
			Message: s.pick([]string{
				"Everybody finishes even. Eighteen holes of moving money in a circle.",
				"Nobody wins, nobody loses. The bar tab is still due though.",
			}),
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s takes the money with %+d. Drinks are on them.", leader.Name, leader.Winnings),
		fmt.Sprintf("%s runs the bank best and walks off %+d.", leader.Name, leader.Winnings),
		fmt.Sprintf("Top of the sheet: %s at %+d. %s, better luck next time.", leader.Name, leader.Winnings, last.Name),
	}

	return &GetGameCompleteMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var title string
	var neutral string
	var funny []string

	switch input.ErrorType {
	case ErrorTypeMissingScore:
		title = "Missing score"
		neutral = "Every player needs a score before the hole can be saved."
		funny = []string{
			"Somebody is hiding a score. Everyone posts a number, even the snowman.",
			"We are short a score. Did someone's ball go in the lake along with their pencil?",
		}
	case ErrorTypeInvalidScore:
		title = "Invalid score"
		neutral = "Scores must be at least 1."
		funny = []string{
			"A score under 1? Not even the pros can do that.",
			"Zero strokes is not a hole in one, it is a hole in none.",
		}
	case ErrorTypeInvalidWager:
		title = "Invalid wager"
		neutral = "Wagers must be at least 1."
		funny = []string{
			"Put some money on it. Wagers start at 1.",
			"Free golf is nice but the bank needs at least 1 on the line.",
		}
	case ErrorTypeWrongHole:
		title = "Wrong hole"
		neutral = "Only the current hole can be saved."
		funny = []string{
			"Slow down, play the holes in order.",
			"That is not the hole you are standing on.",
		}
	case ErrorTypeGameCompleted:
		title = "Round is over"
		neutral = "This round is already complete."
		funny = []string{
			"The round is over. Head to the nineteenth hole.",
			"No more holes to play. Settle up and buy a round.",
		}
	case ErrorTypeFirstHole:
		title = "First hole"
		neutral = "Already on the first hole."
		funny = []string{
			"You cannot go back past the first tee.",
			"This is hole 1. There is only the parking lot behind you.",
		}
	case ErrorTypeGameNotFound:
		title = "Game not found"
		neutral = "No game exists with that ID."
		funny = []string{
			"That game is lost like a ball in the fescue.",
		}
	case ErrorTypePlayerNotFound:
		title = "Player not found"
		neutral = "That player is not on the roster."
		funny = []string{
			"Never heard of them. Add them to the roster first.",
		}
	case ErrorTypeCourseNotFound:
		title = "Course not found"
		neutral = "No course exists with that ID."
		funny = []string{
			"That course is not on the map. Try the courses command.",
		}
	case ErrorTypeRosterSize:
		title = "Roster size"
		neutral = "The number of players is outside the allowed range."
		funny = []string{
			"Banker needs at least two players and not a whole tournament field.",
		}
	case ErrorTypeBadHandicap:
		title = "Invalid handicap"
		neutral = "Handicaps must be between 0 and 54."
		funny = []string{
			"Handicaps run from 0 to 54. Be honest.",
		}
	default:
		title = "Something went wrong"
		neutral = "An unexpected error occurred."
		funny = []string{
			"Something went sideways, like a shank off the hosel.",
		}
	}

	message := neutral
	if tone != ToneNeutral {
		message = s.pick(funny)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}
