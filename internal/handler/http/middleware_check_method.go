// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 Not Found instead of 405 when a static route exists but does
// not serve the requested method, so unsupported methods do not reveal the
// route. Requests whose method is registered for the exact path are passed
// back to the router.
//
// Only exact pattern matches are considered; parameterised routes such as
// /api/verifications/{id} always fall through to 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
