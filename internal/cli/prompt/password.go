package prompt

import (
	"github.com/manifoldco/promptui"
)

// Password prompts for a secret with masked input. An empty answer is
// allowed so callers can fall back to an environment variable.
func Password(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}

	result, err := prompt.Run()
	return result, wrapError(err)
}
