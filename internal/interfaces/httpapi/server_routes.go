package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/gameweeks/bounds", handler.GetGameweekBounds)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/points", handler.GetPlayerRangePoints)
	mux.HandleFunc("GET /v1/players/{playerID}/breakdown", handler.GetPlayerBreakdown)
	mux.HandleFunc("GET /v1/players/{playerID}/history", handler.GetPlayerHistory)
	mux.HandleFunc("GET /v1/compare", handler.ComparePlayers)
}
