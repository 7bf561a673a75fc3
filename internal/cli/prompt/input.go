package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// IsAborted returns true if the error indicates the user aborted (Ctrl+C).
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

// wrapError converts promptui interrupt/abort errors to ErrAborted for consistent handling.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Input prompts for text input.
func Input(label string, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}

	result, err := prompt.Run()
	return strings.TrimSpace(result), wrapError(err)
}

// InputRequired prompts for non-empty text input.
func InputRequired(label string, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("a value is required")
			}
			return nil
		},
	}

	result, err := prompt.Run()
	return strings.TrimSpace(result), wrapError(err)
}

// InputInt prompts for an integer no smaller than min.
func InputInt(label string, defaultValue, min int) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(defaultValue),
		Validate: validateInt(min, 0),
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, wrapError(err)
	}

	value, _ := strconv.Atoi(strings.TrimSpace(result)) // Already validated
	return value, nil
}

// InputPort prompts for a network port with validation (1-65535).
func InputPort(label string, defaultValue int) (int, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(defaultValue),
		Validate: validateInt(1, 65535),
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, wrapError(err)
	}

	value, _ := strconv.Atoi(strings.TrimSpace(result)) // Already validated
	return value, nil
}

// InputDuration prompts for a non-negative duration. Go syntax ("2s") and
// plain seconds ("2.5") are both accepted.
func InputDuration(label string, defaultValue time.Duration) (time.Duration, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue.String(),
		Validate: func(input string) error {
			_, err := ParseDuration(input)
			return err
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, wrapError(err)
	}

	return ParseDuration(result)
}

// ParseDuration parses Go duration syntax or a plain number of seconds.
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if d, err := time.ParseDuration(input); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("must not be negative")
		}
		return d, nil
	}
	secs, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("must be a duration (2s, 500ms) or a number of seconds")
	}
	if secs < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// validateInt checks input is an integer in [min, max]; max 0 means no
// upper bound.
func validateInt(min, max int) func(string) error {
	return func(input string) error {
		v, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("must be a valid integer")
		}
		if v < min {
			return fmt.Errorf("must be at least %d", min)
		}
		if max > 0 && v > max {
			return fmt.Errorf("must be at most %d", max)
		}
		return nil
	}
}
