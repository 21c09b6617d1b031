package httpapi

import "net/http"

func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.Index)
	mux.HandleFunc("/index.html", h.RedirectToIndex)
	mux.HandleFunc("/upload_video/", h.UploadVideo)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.cfg.Server.StaticDir))))

	return mux
}
