package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/happyrussia/mood-api/internal/domain"
	"github.com/happyrussia/mood-api/internal/repository"
)

type userPayload struct {
	UserID                      string  `json:"userId"`
	Name                        string  `json:"name"`
	RegistrationCityID          *string `json:"registrationCityId"`
	RegistrationCityName        *string `json:"registrationCityName"`
	RegistrationRegionID        *string `json:"registrationRegionId"`
	RegistrationRegionName      *string `json:"registrationRegionName"`
	RegistrationFederalDistrict *string `json:"registrationFederalDistrict"`
}

type userResponse struct {
	UserID                      string    `json:"userId"`
	Name                        string    `json:"name"`
	RegistrationCityID          *string   `json:"registrationCityId,omitempty"`
	RegistrationCityName        *string   `json:"registrationCityName,omitempty"`
	RegistrationRegionID        *string   `json:"registrationRegionId,omitempty"`
	RegistrationRegionName      *string   `json:"registrationRegionName,omitempty"`
	RegistrationFederalDistrict *string   `json:"registrationFederalDistrict,omitempty"`
	CreatedAt                   time.Time `json:"createdAt"`
}

func (s *Server) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var req userPayload
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Name) == "" {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "userId and name are required")
		return
	}

	user, inserted, err := s.repo.Users.Upsert(r.Context(), repository.UserUpsertParams{
		UserID:                      strings.TrimSpace(req.UserID),
		Name:                        strings.TrimSpace(req.Name),
		RegistrationCityID:          normalizeStringPtr(req.RegistrationCityID),
		RegistrationCityName:        normalizeStringPtr(req.RegistrationCityName),
		RegistrationRegionID:        normalizeStringPtr(req.RegistrationRegionID),
		RegistrationRegionName:      normalizeStringPtr(req.RegistrationRegionName),
		RegistrationFederalDistrict: normalizeStringPtr(req.RegistrationFederalDistrict),
	})
	if err != nil {
		s.logger.Printf("upsert user error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save user")
		return
	}

	status := http.StatusOK
	if inserted {
		status = http.StatusCreated
	}
	s.respondJSON(w, status, toUserResponse(user))
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := decodePathParam(r, "userID")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	user, err := s.repo.Users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		s.logger.Printf("get user error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch user")
		return
	}
	s.respondJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(user domain.User) userResponse {
	return userResponse{
		UserID:                      user.UserID,
		Name:                        user.Name,
		RegistrationCityID:          user.RegistrationCityID,
		RegistrationCityName:        user.RegistrationCityName,
		RegistrationRegionID:        user.RegistrationRegionID,
		RegistrationRegionName:      user.RegistrationRegionName,
		RegistrationFederalDistrict: user.RegistrationFederalDistrict,
		CreatedAt:                   user.CreatedAt,
	}
}
