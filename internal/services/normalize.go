package services

import (
	"net/url"
	"strconv"
	"strings"
)

// csrfField is the form field carrying the form token
const csrfField = "csrf_token"

// Source tells which tier of the normalizer produced a set of fields
type Source int

const (
	SourceNone Source = iota
	SourceJSON
	SourceVerifiedForm
	SourceRawForm
)

func (s Source) String() string {
	switch s {
	case SourceJSON:
		return "json"
	case SourceVerifiedForm:
		return "verified-form"
	case SourceRawForm:
		return "raw-form"
	default:
		return "none"
	}
}

// Policy selects how strictly a form submission is checked
type Policy int

const (
	// PolicyStrict accepts JSON bodies and forms carrying a valid token.
	PolicyStrict Policy = iota
	// PolicyLenient additionally accepts forms without a valid token.
	// Only inquiry intake uses it: a stale form must not lose a sales lead.
	PolicyLenient
)

// Payload is an inbound request body as decoded by the transport
type Payload struct {
	JSON bool
	// Body is the decoded JSON object; nil when the body was absent or unparseable.
	Body map[string]any
	Form url.Values
	// HeaderToken is a form token sent out of band (X-CSRF-Token).
	HeaderToken string
}

// Fields is the canonical operation input, independent of transport shape.
// Missing keys read as the empty string.
type Fields struct {
	values map[string]string
	source Source
}

// NewFields builds a field set directly
func NewFields(source Source, values map[string]string) Fields {
	if values == nil {
		values = map[string]string{}
	}
	return Fields{values: values, source: source}
}

// Get returns the raw value of a field
func (f Fields) Get(name string) string {
	return f.values[name]
}

// Trimmed returns a field with surrounding whitespace removed
func (f Fields) Trimmed(name string) string {
	return strings.TrimSpace(f.values[name])
}

// Has reports whether the caller sent the field at all
func (f Fields) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Values returns a copy of every field
func (f Fields) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Source returns the tier that produced the fields
func (f Fields) Source() Source {
	return f.source
}

// CSRFVerifier checks form tokens
type CSRFVerifier interface {
	VerifyCSRFToken(token string) bool
}

// Normalizer turns JSON or form payloads into Fields
type Normalizer struct {
	csrf CSRFVerifier
}

// NewNormalizer creates a normalizer that checks form tokens with csrf
func NewNormalizer(csrf CSRFVerifier) *Normalizer {
	return &Normalizer{csrf: csrf}
}

// Normalize applies the tiers in order: JSON body, verified form, raw form.
// Unparseable JSON yields an empty field set, never an error. The raw form tier
// is only reachable under PolicyLenient; under PolicyStrict an unverified form
// is rejected.
func (n *Normalizer) Normalize(p Payload, policy Policy) (Fields, error) {
	if p.JSON {
		values := make(map[string]string, len(p.Body))
		for key, v := range p.Body {
			values[key] = stringify(v)
		}
		return NewFields(SourceJSON, values), nil
	}

	token := p.Form.Get(csrfField)
	if token == "" {
		token = p.HeaderToken
	}
	if n.csrf != nil && n.csrf.VerifyCSRFToken(token) {
		return NewFields(SourceVerifiedForm, formValues(p.Form)), nil
	}

	if policy == PolicyLenient {
		return NewFields(SourceRawForm, formValues(p.Form)), nil
	}
	return Fields{}, badRequest("csrf token missing or invalid, please refresh the page and retry")
}

func formValues(form url.Values) map[string]string {
	values := make(map[string]string, len(form))
	for key := range form {
		if key == csrfField {
			continue
		}
		values[key] = form.Get(key)
	}
	return values
}

// stringify renders a decoded JSON value the way a form would have carried it
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
