package prompt

import (
	"github.com/manifoldco/promptui"
)

// SelectOption is one entry of a Select list.
type SelectOption struct {
	Label       string
	Value       string
	Description string
}

// Select shows options and returns the Value of the chosen one. The
// description of the highlighted option is shown below the list.
func Select(label string, options []SelectOption) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ \"✔\" | green }} {{ .Label }}",
		Details:  `{{ if .Description }}{{ .Description | faint }}{{ end }}`,
	}

	prompt := promptui.Select{
		Label:        label,
		Items:        options,
		Templates:    templates,
		Size:         len(options),
		HideSelected: false,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", wrapError(err)
	}
	return options[i].Value, nil
}
