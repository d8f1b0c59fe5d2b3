package app

import (
	"net/http"

	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
)

// WelcomeMessage is the fixed body of the root endpoint.
const WelcomeMessage = "🌸 Welcome to the Flower Shop API!"

// initRoutes registers application-level routes. It runs before any module
// is mounted, and module prefixes are never "/", so the root cannot be shadowed.
func (a *App) initRoutes() {
	a.router.Handle(http.MethodGet, "/", http.HandlerFunc(rootHandler))
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	pkgrouter.WriteJSON(w, map[string]string{"message": WelcomeMessage}, http.StatusOK)
}
