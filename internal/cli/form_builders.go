package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/hrtools/noticedesk/internal/domain"
)

// validateRequired rejects empty input for the named field.
func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate requires a YYYY-MM-DD date string.
func validateDate(s string) error {
	if !domain.ValidDate(s) {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalFile accepts empty or a path to an existing regular file.
func validateOptionalFile(s string) error {
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("file not found")
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}

// dateInput returns a huh.Input for a required date field.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-09-30").
		Value(value).
		Validate(validateDate)
}

// noticeTypeSelect returns a huh select over the advisory type list.
func noticeTypeSelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.NoticeTypes))
	for _, t := range domain.NoticeTypes {
		options = append(options, huh.NewOption(t, t))
	}
	return huh.NewSelect[string]().
		Title("Notice Type").
		Options(options...).
		Value(value)
}

// targetKindSelect returns a huh select over the audience kinds.
func targetKindSelect(value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(domain.TargetKinds))
	for _, k := range domain.TargetKinds {
		options = append(options, huh.NewOption(k, k))
	}
	return huh.NewSelect[string]().
		Title("Recipient").
		Options(options...).
		Value(value)
}
