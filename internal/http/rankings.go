package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/happyrussia/mood-api/internal/domain"
	"github.com/happyrussia/mood-api/internal/stats"
)

type rankingResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RegionID      string    `json:"regionId,omitempty"`
	AverageMood   float64   `json:"averageMood"`
	TotalCheckIns int       `json:"totalCheckIns"`
	Population    int64     `json:"population"`
	LastUpdate    time.Time `json:"lastUpdate"`
}

// parsePeriodParam validates the period query parameter against the closed
// set day|week|month, defaulting to day when absent. Unknown values, padded
// ones included, are a client error, never a silent all-time ranking.
func parsePeriodParam(query url.Values) (stats.Period, error) {
	raw := query.Get("period")
	if raw == "" {
		return stats.DefaultPeriod, nil
	}
	return stats.ParsePeriod(raw)
}

func (s *Server) handleRegionRanking(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := s.stats.RegionRanking(r.Context(), period)
	if err != nil {
		s.logger.Printf("region ranking error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute region ranking")
		return
	}
	s.respondJSON(w, http.StatusOK, toRankingResponses(entries))
}

func (s *Server) handleRegionStats(w http.ResponseWriter, r *http.Request) {
	regionID, err := decodePathParam(r, "regionID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	period, err := parsePeriodParam(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entry, err := s.stats.RegionStats(r.Context(), regionID, period)
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Region not found or has no check-ins for the period")
			return
		}
		s.logger.Printf("region stats error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute region stats")
		return
	}
	s.respondJSON(w, http.StatusOK, toRankingResponse(entry))
}

func (s *Server) handleRegionCityRanking(w http.ResponseWriter, r *http.Request) {
	regionID, err := decodePathParam(r, "regionID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	period, err := parsePeriodParam(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := s.stats.CityRanking(r.Context(), regionID, period)
	if err != nil {
		s.logger.Printf("city ranking error for region %s: %v", regionID, err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute city ranking")
		return
	}
	s.respondJSON(w, http.StatusOK, toRankingResponses(entries))
}

func (s *Server) handleCityRanking(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := s.stats.CityRanking(r.Context(), "", period)
	if err != nil {
		s.logger.Printf("city ranking error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute city ranking")
		return
	}
	s.respondJSON(w, http.StatusOK, toRankingResponses(entries))
}

func (s *Server) handleFederalDistrictRanking(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriodParam(r.URL.Query())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entries, err := s.stats.FederalDistrictRanking(r.Context(), period)
	if err != nil {
		s.logger.Printf("federal district ranking error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute federal district ranking")
		return
	}
	s.respondJSON(w, http.StatusOK, toRankingResponses(entries))
}

// handleCityDistrictRanking is a stub: intra-city district rankings need
// more granular check-in data than the mobile client collects today.
func (s *Server) handleCityDistrictRanking(w http.ResponseWriter, r *http.Request) {
	if _, err := parsePeriodParam(r.URL.Query()); err != nil {
		s.respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, []rankingResponse{})
}

func toRankingResponse(entry domain.RankingEntry) rankingResponse {
	return rankingResponse{
		ID:            entry.ID,
		Name:          entry.Name,
		RegionID:      entry.RegionID,
		AverageMood:   entry.AverageMood,
		TotalCheckIns: entry.TotalCheckIns,
		Population:    entry.Population,
		LastUpdate:    entry.LastUpdate,
	}
}

func toRankingResponses(entries []domain.RankingEntry) []rankingResponse {
	out := make([]rankingResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toRankingResponse(entry))
	}
	return out
}

func decodePathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return "", errors.New("missing " + name + " parameter")
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", errors.New("invalid " + name + " parameter")
	}
	return value, nil
}
