package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/happyrussia/mood-api/internal/domain"
	"github.com/happyrussia/mood-api/internal/repository"
)

type checkInPayload struct {
	ID              string    `json:"id"`
	RegionID        string    `json:"regionId"`
	RegionName      string    `json:"regionName"`
	Mood            int       `json:"mood"`
	Date            time.Time `json:"date"`
	UserID          *string   `json:"userId"`
	CityID          *string   `json:"cityId"`
	CityName        *string   `json:"cityName"`
	FederalDistrict *string   `json:"federalDistrict"`
	District        *string   `json:"district"`
}

type checkInResponse struct {
	ID              string    `json:"id"`
	RegionID        string    `json:"regionId"`
	RegionName      string    `json:"regionName"`
	Mood            int       `json:"mood"`
	Date            time.Time `json:"date"`
	UserID          string    `json:"userId,omitempty"`
	CityID          *string   `json:"cityId,omitempty"`
	CityName        *string   `json:"cityName,omitempty"`
	FederalDistrict *string   `json:"federalDistrict,omitempty"`
	District        *string   `json:"district,omitempty"`
}

type syncResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (s *Server) handleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInPayload
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	params, msg := buildCheckInParams(req)
	if msg != "" {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", msg)
		return
	}

	checkIn, inserted, err := s.repo.CheckIns.Upsert(r.Context(), params)
	if err != nil {
		s.logger.Printf("upsert checkin error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save check-in")
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	s.respondJSON(w, status, toCheckInResponse(checkIn))
}

func (s *Server) handleSyncCheckIns(w http.ResponseWriter, r *http.Request) {
	var reqs []checkInPayload
	if err := decodeJSONBody(w, r, &reqs); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	batch := make([]repository.CheckInUpsertParams, 0, len(reqs))
	for i, req := range reqs {
		params, msg := buildCheckInParams(req)
		if msg != "" {
			s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", fmt.Sprintf("check-in %d: %s", i, msg))
			return
		}
		batch = append(batch, params)
	}

	count, err := s.repo.CheckIns.SyncBatch(r.Context(), batch)
	if err != nil {
		s.logger.Printf("sync checkins error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to sync check-ins")
		return
	}
	s.respondJSON(w, http.StatusOK, syncResponse{
		Message: fmt.Sprintf("synced %d check-ins", count),
		Count:   count,
	})
}

// buildCheckInParams validates a payload and normalizes it into upsert
// params. A blank ID gets a server-generated UUID. Returns a non-empty
// message describing the first validation failure.
func buildCheckInParams(req checkInPayload) (repository.CheckInUpsertParams, string) {
	if strings.TrimSpace(req.RegionID) == "" || strings.TrimSpace(req.RegionName) == "" {
		return repository.CheckInUpsertParams{}, "regionId and regionName are required"
	}
	if req.Mood < domain.MoodMin || req.Mood > domain.MoodMax {
		return repository.CheckInUpsertParams{}, "mood must be between 1 and 5"
	}
	if req.Date.IsZero() {
		return repository.CheckInUpsertParams{}, "date is required"
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return repository.CheckInUpsertParams{
		ID:              id,
		RegionID:        strings.TrimSpace(req.RegionID),
		RegionName:      strings.TrimSpace(req.RegionName),
		Mood:            req.Mood,
		Date:            req.Date.UTC(),
		UserID:          normalizeStringPtr(req.UserID),
		CityID:          normalizeStringPtr(req.CityID),
		CityName:        normalizeStringPtr(req.CityName),
		FederalDistrict: normalizeStringPtr(req.FederalDistrict),
		District:        normalizeStringPtr(req.District),
	}, ""
}

func toCheckInResponse(checkIn domain.CheckIn) checkInResponse {
	return checkInResponse{
		ID:              checkIn.ID,
		RegionID:        checkIn.RegionID,
		RegionName:      checkIn.RegionName,
		Mood:            checkIn.Mood,
		Date:            checkIn.Date,
		UserID:          checkIn.UserID,
		CityID:          checkIn.CityID,
		CityName:        checkIn.CityName,
		FederalDistrict: checkIn.FederalDistrict,
		District:        checkIn.District,
	}
}

func normalizeStringPtr(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	val := strings.TrimSpace(*ptr)
	if val == "" {
		return nil
	}
	return &val
}
