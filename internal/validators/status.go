package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-registry-validator/models"
)

// legalTransitions maps a current status to the statuses a candidate may request.
// StatusUnset as a new value means "keep the current status".
var legalTransitions = map[models.PublishingStatus][]models.PublishingStatus{
	models.StatusUnset:  {models.StatusUnset, models.Draft, models.Published},
	models.Draft:        {models.StatusUnset, models.Draft, models.Published},
	models.Published:    {models.StatusUnset, models.Modified, models.Published, models.Deleted},
	models.Modified:     {models.StatusUnset, models.Modified, models.Published, models.Deleted},
	models.OldPublished: {models.StatusUnset, models.Modified, models.Published, models.Deleted},
	models.Deleted:      {models.Modified, models.Published, models.Deleted},
}

// PublishingStatusValidator checks that the requested status change is legal.
type PublishingStatusValidator struct {
	newStatus     string
	currentStatus string
}

// NewPublishingStatusValidator validates the change from currentStatus to newStatus.
func NewPublishingStatusValidator(newStatus, currentStatus string) *PublishingStatusValidator {
	return &PublishingStatusValidator{newStatus: newStatus, currentStatus: currentStatus}
}

func (v *PublishingStatusValidator) Validate(_ context.Context, sink *ErrorSink) error {
	next, current, err := v.parse()
	if err != nil {
		return err
	}

	if !slices.Contains(legalTransitions[current], next) {
		sink.AddErrorf("PublishingStatus", msgStatusTransition, current, next)
	}
	return nil
}

// Target returns the status the entity ends up in: the new status, else
// the current one, else Draft.
func (v *PublishingStatusValidator) Target() (models.PublishingStatus, error) {
	next, current, err := v.parse()
	if err != nil {
		return models.StatusUnset, err
	}
	return targetStatus(next, current), nil
}

// Current returns the parsed current status.
func (v *PublishingStatusValidator) Current() (models.PublishingStatus, error) {
	_, current, err := v.parse()
	return current, err
}

func (v *PublishingStatusValidator) parse() (next, current models.PublishingStatus, err error) {
	next, err = models.ParsePublishingStatus(v.newStatus)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidPublishingStatus, err)
	}
	current, err = models.ParsePublishingStatus(v.currentStatus)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidPublishingStatus, err)
	}
	return next, current, nil
}

func targetStatus(next, current models.PublishingStatus) models.PublishingStatus {
	switch {
	case next != models.StatusUnset:
		return next
	case current != models.StatusUnset:
		return current
	}
	return models.Draft
}

// requiresCompleteness reports whether entities in status must carry complete required data.
func requiresCompleteness(status models.PublishingStatus) bool {
	return status == models.Published || status == models.Modified
}
