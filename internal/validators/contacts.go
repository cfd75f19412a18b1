package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-registry-validator/models"
	"github.com/go-playground/validator/v10"
)

// formats checks the textual format of contact values.
var formats = validator.New()

// EmailListValidator checks a localized list of email addresses.
type EmailListValidator struct {
	items    []models.Email
	property string
	opts     LanguageOptions
}

// NewEmailListValidator validates items under property.
func NewEmailListValidator(items []models.Email, property string, opts LanguageOptions) *EmailListValidator {
	return &EmailListValidator{items: items, property: property, opts: opts}
}

func (v *EmailListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if err := NewLocalizedListValidator(v.items, v.property, v.opts).Validate(ctx, sink); err != nil {
		return err
	}
	for i, email := range v.items {
		path := indexPath(v.property, i) + ".Value"
		value := strings.TrimSpace(email.Value)
		if value == "" {
			sink.AddError(path, msgValueRequired)
			continue
		}
		if formats.Var(value, "email") != nil {
			sink.AddErrorf(path, msgInvalidEmail, value)
		}
	}
	return nil
}

// WebPageListValidator checks a localized list of links.
type WebPageListValidator struct {
	items    []models.WebPage
	property string
	opts     LanguageOptions
}

// NewWebPageListValidator validates items under property.
func NewWebPageListValidator(items []models.WebPage, property string, opts LanguageOptions) *WebPageListValidator {
	return &WebPageListValidator{items: items, property: property, opts: opts}
}

func (v *WebPageListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if err := NewLocalizedListValidator(v.items, v.property, v.opts).Validate(ctx, sink); err != nil {
		return err
	}
	for i, page := range v.items {
		validateURL(page.URL, indexPath(v.property, i)+".Url", sink)
	}
	return nil
}

// AttachmentListValidator checks a localized list of channel attachments.
type AttachmentListValidator struct {
	items    []models.Attachment
	property string
	opts     LanguageOptions
}

// NewAttachmentListValidator validates items under property.
func NewAttachmentListValidator(items []models.Attachment, property string, opts LanguageOptions) *AttachmentListValidator {
	return &AttachmentListValidator{items: items, property: property, opts: opts}
}

func (v *AttachmentListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	if err := NewLocalizedListValidator(v.items, v.property, v.opts).Validate(ctx, sink); err != nil {
		return err
	}
	for i, attachment := range v.items {
		path := indexPath(v.property, i)
		if strings.TrimSpace(attachment.Name) == "" {
			sink.AddErrorf(path+".Name", msgRequired, "Name")
		}
		validateURL(attachment.URL, path+".Url", sink)
	}
	return nil
}

// LawListValidator checks the names and links of legislation references.
type LawListValidator struct {
	items    []models.Law
	property string
	opts     LanguageOptions
}

// NewLawListValidator validates items under property.
func NewLawListValidator(items []models.Law, property string, opts LanguageOptions) *LawListValidator {
	return &LawListValidator{items: items, property: property, opts: opts}
}

func (v *LawListValidator) Validate(ctx context.Context, sink *ErrorSink) error {
	for i, law := range v.items {
		path := indexPath(v.property, i)
		if len(law.Names) == 0 && len(law.WebPages) == 0 {
			sink.AddErrorf(path, msgRequired, "Names")
			continue
		}
		if err := NewLocalizedListValidator(law.Names, path+".Names", v.opts).Validate(ctx, sink); err != nil {
			return err
		}
		if err := NewWebPageListValidator(law.WebPages, path+".WebPages", v.opts).Validate(ctx, sink); err != nil {
			return err
		}
	}
	return nil
}

func validateURL(raw, path string, sink *ErrorSink) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		sink.AddErrorf(path, msgRequired, "Url")
		return
	}
	if formats.Var(raw, "http_url") != nil || formats.Var(hostname(raw), "hostname_rfc1123|ip") != nil {
		sink.AddErrorf(path, msgInvalidURL, raw)
	}
}

// hostname returns the host of raw without port or brackets.
func hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
