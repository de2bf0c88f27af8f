package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"staybook/internal/domain"
)

// resourceService is the shape shared by every app.*Service.
type resourceService[T, In any] interface {
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id string, in In) (domain.Confirmation, error)
	Delete(ctx context.Context, id string) (string, error)
}

// mountResource registers the five routes of a resource. Reads are public;
// mutations sit behind auth.
func mountResource[T, In any](
	m chi.Router, p *Pipeline, auth func(http.Handler) http.Handler,
	path, name string, svc resourceService[T, In], list HandlerFunc,
) {
	m.Route(path, func(r chi.Router) {
		r.Get("/", p.Handle(list))
		r.Get("/{id}", p.Handle(func(w http.ResponseWriter, r *http.Request) error {
			v, err := svc.Get(r.Context(), urlID(r))
			if err != nil {
				return err
			}
			writeJSON(w, http.StatusOK, v)
			return nil
		}))

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", p.Handle(func(w http.ResponseWriter, r *http.Request) error {
				var in In
				if err := decodeInput(w, r, &in); err != nil {
					return err
				}
				v, err := svc.Create(r.Context(), in)
				if err != nil {
					return err
				}
				writeJSON(w, http.StatusCreated, v)
				return nil
			}))
			r.Put("/{id}", p.Handle(func(w http.ResponseWriter, r *http.Request) error {
				var in In
				if err := decodeInput(w, r, &in); err != nil {
					return err
				}
				c, err := svc.Update(r.Context(), urlID(r), in)
				if err != nil {
					return err
				}
				writeJSON(w, http.StatusOK, c)
				return nil
			}))
			r.Delete("/{id}", p.Handle(func(w http.ResponseWriter, r *http.Request) error {
				id, err := svc.Delete(r.Context(), urlID(r))
				if err != nil {
					return err
				}
				writeJSON(w, http.StatusOK, domain.Deleted(name, id))
				return nil
			}))
		})
	})
}

// ---- list handlers (filters differ per resource) ----

func (h *Handlers) listUsers(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	us, err := h.Users.List(r.Context(), domain.UserFilter{Username: q.Get("username"), Email: q.Get("email")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, us)
	return nil
}

func (h *Handlers) listHosts(w http.ResponseWriter, r *http.Request) error {
	hs, err := h.Hosts.List(r.Context(), domain.HostFilter{Name: r.URL.Query().Get("name")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, hs)
	return nil
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	f := domain.PropertyFilter{Location: q.Get("location"), Amenity: q.Get("amenities")}
	if raw := q.Get("pricePerNight"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.NewValidation("Query parameter 'pricePerNight' must be a number.")
		}
		f.PricePerNight = &price
	}
	ps, err := h.Properties.List(r.Context(), f)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, ps)
	return nil
}

func (h *Handlers) listAmenities(w http.ResponseWriter, r *http.Request) error {
	as, err := h.Amenities.List(r.Context(), domain.AmenityFilter{Name: r.URL.Query().Get("name")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, as)
	return nil
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) error {
	bs, err := h.Bookings.List(r.Context(), domain.BookingFilter{UserID: r.URL.Query().Get("userId")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, bs)
	return nil
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	rs, err := h.Reviews.List(r.Context(), domain.ReviewFilter{UserID: q.Get("userId"), PropertyID: q.Get("propertyId")})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, rs)
	return nil
}
