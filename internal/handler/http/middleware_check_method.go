// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-volunteer-hub/internal/app"
	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// methodNotAllowed is registered with [chi.Mux.MethodNotAllowed]. It
// answers with 405, the error envelope and an "Allow" header listing the
// methods the matched path does support. Parameterised patterns such as
// /api/events/{id} are resolved through [chi.Mux.Match].
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(routeMethods))
		for _, method := range routeMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeStatus(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED",
			fmt.Sprintf("method %s is not allowed on %s", r.Method, r.URL.Path))
	}
}

// notFound answers unknown paths with the error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, r, http.StatusNotFound, codeNotFound, app.MsgRouteNotFound)
}
