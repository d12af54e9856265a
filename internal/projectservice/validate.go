package projectservice

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/hrpaudit/internal/apperr"
	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

const (
	dateLayout    = "2006-01-02"
	maxTextLength = 4000
)

func validateMeta(m models.ProjectMeta) error {
	return invalid(validation.ValidateStruct(&m,
		validation.Field(&m.SupplierName, validation.Length(0, 200)),
		validation.Field(&m.Site, validation.Length(0, 200)),
		validation.Field(&m.Assessor, validation.Length(0, 200)),
		validation.Field(&m.Brand, validation.Length(0, 200)),
		validation.Field(&m.Date, validation.Date(dateLayout)),
		validation.Field(&m.Notes, validation.Length(0, maxTextLength)),
	))
}

func (p *RequirementPatch) validate() error {
	return invalid(validation.ValidateStruct(p,
		validation.Field(&p.Answer, validation.Length(0, maxTextLength)),
		validation.Field(&p.Comments, validation.Length(0, maxTextLength)),
	))
}

func (p *CapPatch) validate() error {
	return invalid(validation.ValidateStruct(p,
		validation.Field(&p.Status, validation.NilOrNotEmpty,
			validation.In(models.CapStatusOpen, models.CapStatusInProgress, models.CapStatusClosed)),
		validation.Field(&p.DueDate, validation.Date(dateLayout)),
		validation.Field(&p.Priority, validation.In(audit.PriorityHigh, audit.PriorityMediumHigh, audit.PriorityMedium, audit.PriorityLow)),
		validation.Field(&p.ImmediateContainment, validation.Length(0, maxTextLength)),
		validation.Field(&p.RootCause, validation.Length(0, maxTextLength)),
		validation.Field(&p.CorrectiveAction, validation.Length(0, maxTextLength)),
		validation.Field(&p.PreventiveAction, validation.Length(0, maxTextLength)),
		validation.Field(&p.Owner, validation.Length(0, 200)),
	))
}

func (p *DocumentPatch) validate() error {
	avail := make([]any, 0, len(audit.AvailabilityValues))
	for _, v := range audit.AvailabilityValues {
		avail = append(avail, v)
	}
	return invalid(validation.ValidateStruct(p,
		validation.Field(&p.Available, validation.In(avail...)),
		validation.Field(&p.Remarks, validation.Length(0, maxTextLength)),
	))
}

func (u *Upload) validate(prefixes ...string) error {
	if err := invalid(validation.ValidateStruct(u,
		validation.Field(&u.FileName, validation.Required, validation.Length(1, 255)),
		validation.Field(&u.Data, validation.Required),
		validation.Field(&u.Caption, validation.Length(0, 500)),
	)); err != nil {
		return err
	}
	if len(prefixes) == 0 {
		return nil
	}
	for _, p := range prefixes {
		if strings.HasPrefix(u.MimeType, p) {
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported content type %q", apperr.ErrInvalidInput, u.MimeType)
}

// invalid wraps validation failures so callers can match apperr.ErrInvalidInput.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
}
