package main

import (
	"context"
	"fmt"
	"github.com/cockroachdb/apd/v3"
	"github.com/saylorsolutions/conkit/command"
	"github.com/saylorsolutions/conkit/form"
	"github.com/saylorsolutions/conkit/message"
	"strings"
	"unicode"
)

// signup asks for a new account, and adds it to the user directory once confirmed.
func (a *app) signup(ctx context.Context, args *command.Arguments) error {
	name := form.NewTextField[string]("Name").
		Required(true).
		WithReadTransform(strings.TrimSpace).
		WithValidation(func(s string) string {
			if strings.IndexFunc(s, unicode.IsDigit) >= 0 {
				return "A name can't contain digits."
			}
			return ""
		})
	age := form.NewLongField("Age").
		Required(true).
		WithCheck(form.Between[int64](13, 130))
	plan := form.NewSingleSelect("Plan",
		form.Choice[string]{Label: "Free", Value: "free"},
		form.Choice[string]{Label: "Pro", Value: "pro"},
		form.Choice[string]{Label: "Team", Value: "team"},
	).Required(true)
	seats := form.NewTextField[int]("Seats").
		WithDefault(5).
		WithCheck(form.Between(2, 500))
	budget := form.NewDecimalField("Monthly budget").
		WithCheck(func(d apd.Decimal) string {
			if d.Negative {
				return "The budget can't be negative."
			}
			return ""
		})
	country := form.NewOptionSelector("Country", "us", "ca").Required(true)
	region := form.NewTextField[string]("State or province").
		WithReadTransform(strings.TrimSpace).
		WithValidateTransform(strings.ToUpper)
	topics := form.NewMultiSelect("Newsletter topics", form.Choices("releases", "tips", "events")...)

	isTeam := func() bool {
		val, ok := plan.Value()
		return ok && val == "team"
	}
	f := form.New(args.Printer(),
		form.WithTitle("Sign up"),
		form.WithConfirm(a.cfg.Form.Confirm),
		form.WithTexts(a.cfg.Form.Texts),
		form.WithLogger(a.log.With("form", "signup")),
	).
		Add(name).
		Add(age).
		Add(plan).
		Add(seats, form.When(isTeam)).
		Add(budget, form.When(isTeam), form.DependsOn(seats)).
		Add(country).
		Add(region, form.DependsOn(country)).
		Add(topics)
	if err := f.Run(ctx); err != nil {
		return err
	}

	newName, _ := name.Value()
	u := user{ID: a.newID(), Name: newName}
	a.mux.Lock()
	key := strings.ToLower(newName)
	_, exists := a.users[key]
	if !exists {
		a.users[key] = u
	}
	a.mux.Unlock()
	if exists {
		return fmt.Errorf("%w: '%s'", ErrUserExists, newName)
	}
	chosen, _ := topics.Value()
	a.log.Info("signed up", "name", newName, "answers", len(f.Answers()), "topics", chosen)
	args.Printer().Printf("Welcome, {color:green}%s{color:default}! Your id is %s.\n", message.Escape(newName), u.ID)
	return nil
}
