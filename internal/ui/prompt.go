package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"browsermgr/pkg/browser"
	"browsermgr/pkg/installer"
)

// ErrNothingToSelect is returned when a selection prompt has no items.
var ErrNothingToSelect = errors.New("nothing to select")

// Confirm prompts the user for yes/no confirmation.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	label := prompt
	if defaultYes {
		label += " [Y/n]"
	} else {
		label += " [y/N]"
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   "",
	}

	if defaultYes {
		p.Default = "y"
	}

	result, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, err
		}
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return defaultYes, nil // Return default on error
	}

	return parseAnswer(result, defaultYes), nil
}

// parseAnswer interprets a yes/no reply.
func parseAnswer(result string, defaultYes bool) bool {
	result = strings.ToLower(strings.TrimSpace(result))
	if result == "" {
		return defaultYes
	}
	return result == "y" || result == "yes"
}

// SelectBrowser prompts the user to pick a browser from a list.
func SelectBrowser(browsers []browser.Descriptor, prompt string) (browser.Descriptor, error) {
	if len(browsers) == 0 {
		return browser.Descriptor{}, fmt.Errorf("%w: no browsers", ErrNothingToSelect)
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   sym.arrow + " {{ .Name | cyan }} {{ .ID | faint }}",
		Inactive: "  {{ .Name }} {{ .ID | faint }}",
		Selected: sym.ok + " {{ .Name | cyan }}",
		Details: `
--------- Browser ----------
{{ "Name:" | faint }}	{{ .Name }}
{{ "ID:" | faint }}	{{ .ID }}
{{ "Description:" | faint }}	{{ .Description }}`,
	}

	p := promptui.Select{
		Label:     prompt,
		Items:     browsers,
		Templates: templates,
		Size:      10,
		Searcher:  browserSearcher(browsers),
	}

	index, _, err := p.Run()
	if err != nil {
		return browser.Descriptor{}, err
	}

	return browsers[index], nil
}

func browserSearcher(browsers []browser.Descriptor) func(string, int) bool {
	return func(input string, index int) bool {
		b := browsers[index]
		input = strings.ToLower(input)
		return strings.Contains(strings.ToLower(b.Name), input) || strings.Contains(b.ID, input)
	}
}

// SelectBackend prompts the user to pick an installation backend.
// A single choice is returned without prompting.
func SelectBackend(backends []installer.Backend, prompt string) (installer.Backend, error) {
	if len(backends) == 0 {
		return "", fmt.Errorf("%w: no backends", ErrNothingToSelect)
	}

	if len(backends) == 1 {
		return backends[0], nil
	}

	p := promptui.Select{
		Label: prompt,
		Items: backends,
		Size:  len(backends),
	}

	index, _, err := p.Run()
	if err != nil {
		return "", err
	}

	return backends[index], nil
}

// Input prompts the user for text input.
func Input(prompt string, defaultValue string) (string, error) {
	p := promptui.Prompt{
		Label:   prompt,
		Default: defaultValue,
	}

	result, err := p.Run()
	if err != nil {
		return defaultValue, err
	}

	return result, nil
}
