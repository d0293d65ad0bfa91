package user

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/ieltslab/internal/auth"
	"github.com/saulo-duarte/ieltslab/internal/config"
)

const tokenDuration = 24 * time.Hour

type Handler struct {
	repo UserRepository
}

func NewHandler(repo UserRepository) *Handler {
	return &Handler{repo: repo}
}

// Login upserts the user by email and issues a session token. Identity
// verification is delegated to the deployment's fronting layer.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for login")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "valid email required", http.StatusBadRequest)
		return
	}

	u, err := h.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		u = &User{
			ID:    uuid.New(),
			Email: dto.Email,
			Name:  dto.Name,
			Role:  "student",
		}
		if err := h.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		log.WithField("user_id", u.ID.String()).Info("New user registered")
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Role, tokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int(tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  u,
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.repo.FindByID(uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := h.repo.Stats(uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to aggregate user stats")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}
