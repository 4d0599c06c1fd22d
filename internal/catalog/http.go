package catalog

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"FanMarket/pkg/kit"
)

const (
	defaultPageSize     = 16
	maxPageSize         = 100
	defaultSectionLimit = 12
)

type Server struct {
	Store *Store
	Log   *zap.Logger

	// ImageBase resolves bare image filenames from the feed.
	ImageBase string
	// Phone is the WhatsApp number inquiry links point at.
	Phone string
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Get("/categories", s.categories)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.list)
		r.Get("/featured", s.featured)
		r.Get("/recent", s.recent)
		r.Get("/discounted", s.discounted)
		r.Get("/{slug}", s.get)
	})

	return r
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	if s.Store.Loading() {
		kit.WriteError(w, r, http.StatusServiceUnavailable, "warming up", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Store.Cache.Ping(ctx); err != nil {
		if s.Log != nil {
			s.Log.Warn("readyz failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type listResponse struct {
	Products   []productView `json:"products"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PerPage    int           `json:"per_page"`
	TotalPages int           `json:"total_pages"`
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := intParam(q.Get("page"), 1)
	perPage := intParam(q.Get("per_page"), defaultPageSize)
	if perPage > maxPageSize {
		perPage = maxPageSize
	}

	filtered := FilterByCategory(Search(s.Store.Products(), q.Get("search")), q.Get("category"))
	items := Paginate(filtered, perPage, page)

	kit.WriteJSON(w, http.StatusOK, listResponse{
		Products:   s.views(items),
		Total:      len(filtered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: int(math.Ceil(float64(len(filtered)) / float64(perPage))),
	})
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	n := intParam(r.URL.Query().Get("limit"), defaultSectionLimit)
	kit.WriteJSON(w, http.StatusOK, s.views(Featured(s.Store.Products(), n)))
}

func (s *Server) recent(w http.ResponseWriter, r *http.Request) {
	n := intParam(r.URL.Query().Get("limit"), defaultSectionLimit)
	kit.WriteJSON(w, http.StatusOK, s.views(RecentlyAdded(s.Store.Products(), n)))
}

func (s *Server) discounted(w http.ResponseWriter, r *http.Request) {
	n := intParam(r.URL.Query().Get("limit"), defaultSectionLimit)
	kit.WriteJSON(w, http.StatusOK, s.views(Discounted(s.Store.Products(), n)))
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, ok := Resolve(s.Store.Products(), slug)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.view(p))
}

func (s *Server) categories(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, Categories(s.Store.Products()))
}

type productView struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Category      string `json:"category"`
	ImageURL      string `json:"image_url,omitempty"`
	Price         string `json:"price,omitempty"`
	PriceLabel    string `json:"price_label"`
	OnSale        bool   `json:"on_sale"`
	DiscountPrice string `json:"discount_price,omitempty"`
	DiscountLabel string `json:"discount_label,omitempty"`
	Airflow       string `json:"airflow_m3h"`
	Power         string `json:"motor_power_kw"`
	Description   string `json:"description,omitempty"`
	WhatsAppURL   string `json:"whatsapp_url,omitempty"`
}

func (s *Server) view(p Product) productView {
	v := productView{
		Name:        p.Name,
		Slug:        p.Slug(),
		Category:    p.Category,
		ImageURL:    p.ImageURL(s.ImageBase),
		Price:       p.Price,
		PriceLabel:  FormatPrice(p.Price),
		OnSale:      p.OnSale(),
		Airflow:     p.AirflowLabel(),
		Power:       p.PowerLabel(),
		Description: p.Description,
		WhatsAppURL: InquiryURL(s.Phone, p),
	}
	if v.OnSale {
		v.DiscountPrice = p.DiscountPrice
		v.DiscountLabel = FormatPrice(p.DiscountPrice)
	}
	return v
}

func (s *Server) views(products []Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, s.view(p))
	}
	return out
}

func intParam(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
