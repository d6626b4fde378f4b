package tui

import (
	"strings"

	"github.com/theirongolddev/iexpense/internal/model"

	"github.com/charmbracelet/huh"
)

// addValues is bound to the add-expense form fields.
type addValues struct {
	name     string
	category string
	amount   string
}

// record builds the record described by the submitted form. The amount
// has already passed the form's validation.
func (v *addValues) record() model.Record {
	amount, _ := model.ParseAmount(v.amount)
	return model.NewRecord(strings.TrimSpace(v.name), v.category, amount)
}

func newAddForm(vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Coffee").
				Value(&vals.name),
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions(model.CategoryPersonal, model.CategoryBusiness)...).
				Value(&vals.category),
			huh.NewInput().
				Title("Amount").
				Placeholder("3.50").
				Value(&vals.amount).
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}),
		).Title("Add expense"),
	).WithShowHelp(true)
}
