package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"loteria/service"
)

// Handler bundles the services behind the HTTP API
type Handler struct {
	customers service.CustomerService
	lotteries service.LotteryService
	sales     service.SaleService
	draws     service.DrawService
	reports   service.ReportService
	jwtSecret string
}

// New constructs a Handler
func New(
	customers service.CustomerService,
	lotteries service.LotteryService,
	sales service.SaleService,
	draws service.DrawService,
	reports service.ReportService,
	jwtSecret string,
) *Handler {
	return &Handler{
		customers: customers,
		lotteries: lotteries,
		sales:     sales,
		draws:     draws,
		reports:   reports,
		jwtSecret: jwtSecret,
	}
}

// Router wires up the HTTP API
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Group(func(pr chi.Router) {
		pr.Use(h.authMiddleware)

		pr.Route("/customers", func(r chi.Router) {
			r.Post("/", h.createCustomer)
			r.Get("/", h.listCustomers)
		})

		pr.Get("/lotteries", h.listLotteries)

		pr.Route("/sales", func(r chi.Router) {
			r.Post("/", h.createSale)
			r.Get("/{id}", h.getVoucher)
			r.Post("/{id}/pay-prize", h.payPrize)
		})

		pr.Route("/results", func(r chi.Router) {
			r.Post("/", h.registerResult)
			r.Get("/", h.listResults)
		})

		pr.Get("/dashboard", h.dashboard)

		pr.Route("/reports", func(r chi.Router) {
			r.Get("/winners", h.winnersReport)
			r.Get("/revenue", h.revenueReport)
			r.Post("/revenue/refresh", h.refreshRevenue)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var input service.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	customer, err := h.customers.RegisterCustomer(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.ListCustomers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) listLotteries(w http.ResponseWriter, r *http.Request) {
	lotteries, err := h.lotteries.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lotteries)
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var input service.BetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	bet, err := h.sales.PlaceBet(r.Context(), userID(r), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, bet)
}

func (h *Handler) getVoucher(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	voucher, err := h.sales.GetVoucher(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, voucher)
}

func (h *Handler) payPrize(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}

	bet, err := h.sales.PayPrize(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, bet)
}

func (h *Handler) registerResult(w http.ResponseWriter, r *http.Request) {
	var input service.DrawResultInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, flagged, err := h.draws.RegisterResult(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"result":  result,
		"winners": flagged,
	})
}

func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	date := service.ParseDateOr(r.URL.Query().Get("date"), time.Now())

	results, err := h.draws.ListForDate(r.Context(), date)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) winnersReport(w http.ResponseWriter, r *http.Request) {
	rows, date, err := h.reports.Winners(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"date":    date.Format("2006-01-02"),
		"winners": rows,
	})
}

func (h *Handler) revenueReport(w http.ResponseWriter, r *http.Request) {
	var lotteryID *int64
	if raw := r.URL.Query().Get("lottery_id"); raw != "" {
		// Leniency extends to the lottery filter: a malformed id means
		// no filter rather than an error.
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			lotteryID = &id
		}
	}

	report, err := h.reports.Revenue(r.Context(),
		r.URL.Query().Get("start"),
		r.URL.Query().Get("end"),
		lotteryID,
	)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (h *Handler) refreshRevenue(w http.ResponseWriter, r *http.Request) {
	if err := h.reports.RefreshDailyRevenue(r.Context(), r.URL.Query().Get("date")); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
