package httpx

import (
	"io"
	"mime"
	"net/http"

	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
)

// Export serves GET /export/{kind} by streaming the backend's file.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := stateOf(r)
	if !st.LoggedIn() {
		notify.Push(ctx, msgLoginFirst, notify.Warning)
		h.redirect(w, r, "/login")
		return
	}

	kind := ports.ExportKind(r.PathValue("kind"))
	dl, err := h.backend.Export(ctx, kind)
	if err != nil {
		if apperrors.IsUnauthenticated(err) {
			h.report(r, err, msgDownloadFailed)
			h.redirect(w, r, "/login")
			return
		}
		h.logger.WarnContext(ctx, "export failed", "kind", kind, "error", err)
		notify.Push(ctx, apperrors.Message(err, msgDownloadFailed), notify.Danger)
		h.redirect(w, r, "/")
		return
	}
	defer func() { _ = dl.Body.Close() }()

	h.cookies.syncSession(w, r, st)
	contentType := dl.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, dl.Body); err != nil {
		h.logger.WarnContext(ctx, "export stream interrupted", "kind", kind, "error", err)
	}
}
