package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"staybook/internal/app"
	"staybook/internal/domain"
)

type Handlers struct {
	Users      *app.UserService
	Hosts      *app.HostService
	Properties *app.PropertyService
	Amenities  *app.AmenityService
	Bookings   *app.BookingService
	Reviews    *app.ReviewService
	Login      *app.LoginService
	Tokens     TokenVerifier
	Ping       func(ctx context.Context) error
}

func (s *Server) MountHandlers(h *Handlers) {
	p := s.pipe
	auth := RequireToken(h.Tokens)

	s.mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello world!"))
	})
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if h.Ping != nil {
			if err := h.Ping(r.Context()); err != nil {
				log.Warn().Err(err).Msg("health check: database unreachable")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Post("/login", p.Handle(h.login))

	mountResource[domain.User, domain.UserInput](s.mux, p, auth, "/users", "User", h.Users, h.listUsers)
	mountResource[domain.Host, domain.HostInput](s.mux, p, auth, "/hosts", "Host", h.Hosts, h.listHosts)
	mountResource[domain.Property, domain.PropertyInput](s.mux, p, auth, "/properties", "Property", h.Properties, h.listProperties)
	mountResource[domain.Amenity, domain.AmenityInput](s.mux, p, auth, "/amenities", "Amenity", h.Amenities, h.listAmenities)
	mountResource[domain.Booking, domain.BookingInput](s.mux, p, auth, "/bookings", "Booking", h.Bookings, h.listBookings)
	mountResource[domain.Review, domain.ReviewInput](s.mux, p, auth, "/reviews", "Review", h.Reviews, h.listReviews)
}

// ---- body decoding ----

const maxBody = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeInput reads a JSON body into dst and validates it. Every failure is a
// ValidationError carrying a client-safe message.
func decodeInput(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(dst); err != nil {
		return domain.NewValidation("Request body must be a valid JSON object.")
	}
	if err := validate.Struct(dst); err != nil {
		return validationErr(err)
	}
	return nil
}

func validationErr(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return domain.NewValidation("Invalid request body.")
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, describe(fe))
	}
	return domain.NewValidation("%s", strings.Join(msgs, " "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field '" + fe.Field() + "' is required."
	case "email":
		return "Field '" + fe.Field() + "' must be a valid email address."
	case "gtfield":
		return "Field '" + fe.Field() + "' must be after '" + lowerFirst(fe.Param()) + "'."
	case "gte", "lte", "max":
		return "Field '" + fe.Field() + "' fails the " + fe.Tag() + "=" + fe.Param() + " constraint."
	}
	return "Field '" + fe.Field() + "' is invalid."
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func urlID(r *http.Request) string { return chi.URLParam(r, "id") }
