// Package diagnostics classifies the CORS configuration of a deployment so that
// operators can spot a misconfigured instance before trying to log in.
package diagnostics

import "strings"

// PlaceholderOrigin is the value shipped in the example environment file. An
// instance still using it has not been configured yet.
const PlaceholderOrigin = "http://192.168.x.x:3000"

type Diagnosis struct {
	IsLocalhost   bool
	IsCORSError   bool
	CORSOriginURL *string
}

// Resolve computes the diagnosis for the given CORS origin and public client URL.
// A nil pointer means the variable is not set at all, which is not the same as
// being set to an empty string.
func Resolve(corsOriginURL, clientURL *string) Diagnosis {
	isWildcard := contains(corsOriginURL, "*")
	isLocalhost := contains(corsOriginURL, "localhost") || contains(clientURL, "localhost")
	isDefaultEnvValue := corsOriginURL != nil && *corsOriginURL == PlaceholderOrigin

	urlsMatch := true
	if !isWildcard {
		urlsMatch = equal(corsOriginURL, clientURL) && !isDefaultEnvValue
	}

	return Diagnosis{
		IsLocalhost:   isLocalhost,
		IsCORSError:   !urlsMatch,
		CORSOriginURL: corsOriginURL,
	}
}

func contains(value *string, substr string) bool {
	return value != nil && strings.Contains(*value, substr)
}

// Two absent values are equal; an absent value never equals a set one.
func equal(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
