package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"unichip/internal/services"

	goahttp "goa.design/goa/v3/http"
)

// policyFunc picks the normalizer policy for a request
type policyFunc func(*http.Request) services.Policy

func strictPolicy(*http.Request) services.Policy { return services.PolicyStrict }

func lenientPolicy(*http.Request) services.Policy { return services.PolicyLenient }

// sessionPolicy keeps the form token check for cookie sessions and drops it
// for bearer sessions.
func sessionPolicy(r *http.Request) services.Policy {
	if headerSession(r.Context()) {
		return services.PolicyLenient
	}
	return services.PolicyStrict
}

// formDecoder returns a goa request decoder that accepts JSON and form
// bodies. The body is normalized to string fields under the request's policy
// and those fields are decoded into the generated request body.
func (s *Server) formDecoder(policy policyFunc) func(*http.Request) goahttp.Decoder {
	return func(r *http.Request) goahttp.Decoder {
		return goahttp.EncodingFunc(func(v any) error {
			payload, err := readPayload(r)
			if err != nil {
				return err
			}
			f, err := s.normalizer.Normalize(payload, policy(r))
			if err != nil {
				return err
			}
			if f.Source() == services.SourceRawForm {
				log.Printf("[API] %s %s: accepted form without a valid csrf token", r.Method, r.URL.Path)
			}

			raw, err := json.Marshal(f.Values())
			if err != nil {
				return err
			}
			return json.Unmarshal(raw, v)
		})
	}
}

// jsonEncoder answers in JSON whatever the Accept header asks for; browser
// forms still get the JSON result.
func jsonEncoder(ctx context.Context, w http.ResponseWriter) goahttp.Encoder {
	return goahttp.ResponseEncoder(context.WithValue(ctx, goahttp.ContentTypeKey, "application/json"), w)
}

// fieldsOf rebuilds the field set from a decoded payload. Nil attributes
// were not sent.
func fieldsOf(attrs map[string]*string) services.Fields {
	values := make(map[string]string, len(attrs))
	for name, v := range attrs {
		if v != nil {
			values[name] = *v
		}
	}
	return services.NewFields(services.SourceNone, values)
}
