package testutil

import (
	"github.com/akyairhashvil/ecoweek/internal/models"
)

// TemplateBuilder provides fluent API for creating test challenge templates.
type TemplateBuilder struct {
	tmpl models.ChallengeTemplate
}

func NewTemplate(id int) *TemplateBuilder {
	return &TemplateBuilder{
		tmpl: models.ChallengeTemplate{
			ID:          id,
			Title:       "Test Challenge",
			Icon:        "leaf",
			Points:      10,
			Description: "A challenge used in tests",
		},
	}
}

func (b *TemplateBuilder) WithTitle(t string) *TemplateBuilder {
	b.tmpl.Title = t
	return b
}

func (b *TemplateBuilder) WithPoints(p int) *TemplateBuilder {
	b.tmpl.Points = p
	return b
}

func (b *TemplateBuilder) WithIcon(icon string) *TemplateBuilder {
	b.tmpl.Icon = icon
	return b
}

func (b *TemplateBuilder) WithDescription(d string) *TemplateBuilder {
	b.tmpl.Description = d
	return b
}

func (b *TemplateBuilder) Build() models.ChallengeTemplate {
	return b.tmpl
}

// Entry schedules the built template, open.
func (b *TemplateBuilder) Entry() models.ScheduledChallenge {
	return b.tmpl.Schedule()
}

// Completed schedules the built template, already completed.
func (b *TemplateBuilder) Completed() models.ScheduledChallenge {
	e := b.tmpl.Schedule()
	e.Completed = true
	return e
}

// Day maps a date to the entries given, for use with Store.Seed.
func Day(date string, entries ...models.ScheduledChallenge) map[models.DateKey][]models.ScheduledChallenge {
	return map[models.DateKey][]models.ScheduledChallenge{models.DateKey(date): entries}
}
