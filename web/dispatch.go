/*
Package web serves a compiled view.PageSet over HTTP.

Routing is deliberately small:

	GET /           home page, 200
	GET <url path>  matching page, 200
	anything else   not-found page, 404

Any method other than GET gets the not-found page, including HEAD.
*/
package web

import (
	"net/http"
	"strconv"

	"github.com/ancientlore/fbws/view"
)

// Dispatch selects the status code and body for a request. It never fails
// and does not modify pages, so it is safe to call from many goroutines.
func Dispatch(method, urlPath string, pages *view.PageSet) (int, string) {
	if method != http.MethodGet {
		return http.StatusNotFound, pages.NotFound().Body
	}
	if urlPath == "/" {
		return http.StatusOK, pages.Home().Body
	}
	if p, ok := pages.Lookup(urlPath); ok {
		return http.StatusOK, p.Body
	}
	return http.StatusNotFound, pages.NotFound().Body
}

// Handler returns an http.Handler that answers every request with Dispatch.
func Handler(pages *view.PageSet) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, body := Dispatch(r.Method, r.URL.Path, pages)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}
