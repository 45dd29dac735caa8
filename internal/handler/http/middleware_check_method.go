// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// routeNotFound answers paths outside /api with InvalidRoute and unknown
// paths under it with NotFound.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != apiPrefix && !strings.HasPrefix(r.URL.Path, apiPrefix+"/") {
		writeError(w, r, errInvalidRoute)
		return
	}
	writeError(w, r, errNotFound)
}

// methodNotAllowed replaces chi's 405 with NotFound so that the existence
// of a route is not revealed to callers using another method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errNotFound)
}
