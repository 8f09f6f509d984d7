package v1handler

import (
	"net/http"
	"shortener/pkg/serrors"
)

// RegisterRedirects mounts the public redirect routes on mux. They live
// outside the JSON API because they answer with redirects.
func (h Handler) RegisterRedirects(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /{address}", h.Redirect)
}

// Redirect sends the visitor of a short address to its target.
func (h Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	link, err := h.deps.Resolver.Redirect(r.Context(), r.Host, r.PathValue("address"))
	if err != nil {
		h.HandleError(r.Context(), w, r, err)

		return
	}

	w.Header().Set("Cache-Control", "private, max-age=90")
	http.Redirect(w, r, link.Target, http.StatusFound)
}

// Home sends visitors of a bare custom domain to its homepage.
func (h Handler) Home(w http.ResponseWriter, r *http.Request) {
	d, err := h.deps.Resolver.Domain(r.Context(), r.Host)
	if err != nil {
		h.HandleError(r.Context(), w, r, err)

		return
	}
	if d.Homepage == "" {
		h.HandleError(r.Context(), w, r, serrors.With(serrors.ErrNotFound, "domain has no homepage"))

		return
	}

	http.Redirect(w, r, d.Homepage, http.StatusFound)
}
