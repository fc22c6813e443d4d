package handlers

import (
	"net/http"

	"starwars-api/internal/shared/response"
)

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type SitemapResponse struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// SitemapHandler lists every endpoint the API serves
type SitemapHandler struct {
	endpoints []Endpoint
}

func NewSitemapHandler(endpoints []Endpoint) *SitemapHandler {
	if endpoints == nil {
		endpoints = []Endpoint{}
	}
	return &SitemapHandler{endpoints: endpoints}
}

func (h *SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, SitemapResponse{Endpoints: h.endpoints})
}
