package shell

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/adminconsole/internal/client/format"
	"github.com/dmitrijs2005/adminconsole/internal/client/guard"
	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/services"
	"github.com/dmitrijs2005/adminconsole/internal/shared"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type codeRequest struct {
	Code string `json:"code"`
}

type nextResponse struct {
	Status string `json:"status"`
	Next   string `json:"next"`
}

type viewResponse struct {
	View   string `json:"view"`
	Status string `json:"status"`
	From   string `json:"from,omitempty"`
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, pathDashboard, http.StatusSeeOther)
}

func (s *Server) loginView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, viewResponse{
		View:   "login",
		Status: s.auth.Session().Status.String(),
		From:   r.URL.Query().Get(guard.FromParam),
	})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.respondError(r.Context(), w, err)
		return
	}

	password := []byte(req.Password)
	st, err := s.auth.SubmitLogin(r.Context(), req.Username, password)
	shared.WipeByteArray(password)
	if err != nil {
		s.respondError(r.Context(), w, err)
		return
	}

	from := r.URL.Query().Get(guard.FromParam)
	next := guard.AfterLogin(from)
	if st == models.StatusPendingTwoFactor {
		next = pathTwoFactor
		if from != "" {
			next += "?" + url.Values{guard.FromParam: {from}}.Encode()
		}
	}
	respondJSON(w, http.StatusOK, nextResponse{Status: st.String(), Next: next})
}

func (s *Server) twoFactorView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, viewResponse{
		View:   "2fa-verify",
		Status: s.auth.Session().Status.String(),
		From:   r.URL.Query().Get(guard.FromParam),
	})
}

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	var req codeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.respondError(r.Context(), w, err)
		return
	}

	if err := s.auth.SubmitTwoFactorCode(r.Context(), req.Code); err != nil {
		s.respondError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, nextResponse{
		Status: models.StatusAuthenticated.String(),
		Next:   guard.AfterLogin(r.URL.Query().Get(guard.FromParam)),
	})
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.CancelTwoFactor(); err != nil {
		s.respondError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, nextResponse{Status: models.StatusAnonymous.String(), Next: pathLogin})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context()); err != nil {
		s.respondError(r.Context(), w, err)
		return
	}
	respondJSON(w, http.StatusOK, nextResponse{Status: models.StatusAnonymous.String(), Next: pathLogin})
}

type kpiView struct {
	Raw       *models.BusinessKPI `json:"raw"`
	Formatted map[string]string   `json:"formatted"`
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	k, err := s.analytics.BusinessKPIs(r.Context())
	if err != nil {
		s.respondError(r.Context(), w, err)
		return
	}

	respondJSON(w, http.StatusOK, kpiView{
		Raw: k,
		Formatted: map[string]string{
			"total_revenue":         format.Currency(k.TotalRevenue),
			"latest_month_revenue":  format.Currency(k.LatestMonthRevenue),
			"total_orders":          format.Number(k.TotalOrders),
			"avg_order_value":       format.Currency(k.AvgOrderValue),
			"active_customers":      format.Number(k.ActiveCustomers),
			"freight_costs":         format.CompactCurrency(k.FreightCosts),
			"on_time_delivery_rate": format.Percent(k.OnTimeDeliveryRate, 1),
			"avg_shipping_days":     format.Decimal(k.AvgShippingDays, 1),
		},
	})
}

type productView struct {
	models.TopRevenueProduct
	RevenueText string `json:"revenue_text"`
	ShareText   string `json:"share_text"`
	SoldText    string `json:"sold_text"`
}

func (s *Server) topRevenue(w http.ResponseWriter, r *http.Request) {
	limit := services.DefaultTopLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			s.respondError(r.Context(), w, &services.ValidationError{Fields: map[string]string{"limit": "limit must be a positive integer"}})
			return
		}
		limit = n
	}

	products, err := s.analytics.TopRevenueProducts(r.Context(), limit)
	if err != nil {
		s.respondError(r.Context(), w, err)
		return
	}

	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productView{
			TopRevenueProduct: p,
			RevenueText:       format.Currency(p.TotalRevenue),
			ShareText:         format.Percent(p.RevenuePercentage, 1),
			SoldText:          format.CompactNumber(float64(p.QuantitySold)),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": out})
}
