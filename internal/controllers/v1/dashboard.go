package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/moneta-finance/backend/internal/dashboard"
	"github.com/moneta-finance/backend/internal/httputil"
	"github.com/moneta-finance/backend/internal/models"
)

// RegisterDashboardRoutes registers the routes for the dashboard and the
// overview with the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/dashboard", OptionsDashboard)
	r.GET("/dashboard", GetDashboard)
	r.OPTIONS("/overview", OptionsOverview)
	r.GET("/overview", GetOverview)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Security		BearerAuth
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Security		BearerAuth
// @Success		204
// @Router			/v1/overview [options]
func OptionsOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// dashboardTransactions binds the filter and loads the matching transactions.
func dashboardTransactions(c *gin.Context) (f dashboard.Filter, transactions []models.Transaction, err error) {
	var query DashboardQueryFilter
	err = c.Bind(&query)
	if err != nil {
		return
	}

	f, err = query.filter(time.Now().In(time.UTC))
	if err != nil {
		return
	}

	transactions, err = dashboard.Transactions(models.DB, auth.UserID(c), f)
	return
}

// @Summary		Get dashboard
// @Description	Returns the summary, the chart series and the recent transactions for the date range
// @Tags			Dashboard
// @Security		BearerAuth
// @Produce		json
// @Success		200			{object}	DashboardResponse
// @Failure		400			{object}	DashboardResponse
// @Failure		500			{object}	DashboardResponse
// @Param			dateRange	query		string	false	"Named date range: today, week, month, last30 or custom. Defaults to month"
// @Param			fromDate	query		string	false	"Start of a custom date range as RFC3339 timestamp. Time is ignored."
// @Param			untilDate	query		string	false	"End of a custom date range as RFC3339 timestamp. Time is ignored."
// @Param			type		query		string	false	"Only use transactions of this type: expense or income"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	f, transactions, err := dashboardTransactions(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	recent := make([]Transaction, 0)
	for _, t := range dashboard.Recent(transactions, dashboard.RecentCount) {
		recent = append(recent, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &Dashboard{
			Range:   f.Range,
			Summary: dashboard.Summarize(transactions),
			Pie:     dashboard.Pie(transactions),
			Bars:    dashboard.Bars(transactions),
			Recent:  recent,
		},
	})
}

// @Summary		Get overview
// @Description	Returns the totals, the state of installment purchases and all transactions for the date range
// @Tags			Dashboard
// @Security		BearerAuth
// @Produce		json
// @Success		200			{object}	OverviewResponse
// @Failure		400			{object}	OverviewResponse
// @Failure		500			{object}	OverviewResponse
// @Param			dateRange	query		string	false	"Named date range: today, week, month, last30 or custom. Defaults to month"
// @Param			fromDate	query		string	false	"Start of a custom date range as RFC3339 timestamp. Time is ignored."
// @Param			untilDate	query		string	false	"End of a custom date range as RFC3339 timestamp. Time is ignored."
// @Param			type		query		string	false	"Only use transactions of this type: expense or income"
// @Router			/v1/overview [get]
func GetOverview(c *gin.Context) {
	f, transactions, err := dashboardTransactions(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OverviewResponse{
			Error: &s,
		})
		return
	}

	data := make([]Transaction, 0)
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, OverviewResponse{
		Data: &Overview{
			Range:        f.Range,
			Summary:      dashboard.Overview(transactions),
			Transactions: data,
		},
	})
}
