package router

import (
	"net/http"
	"strings"

	"github.com/aniketSingh0310/user-dash/internal/interface/http/handler"
)

// New builds an HTTP router without framework lock-in.
func New(userHandler *handler.UserHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/users", userHandler.ListOrCreate)
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/users/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		userHandler.GetUpdateDelete(w, r)
	})

	return mux
}
