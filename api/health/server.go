package health

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := hrm.healthService.GetServerHealthStatus()
	gecho.Success(w,
		gecho.WithData(healthStatus),
		gecho.Send(),
	)
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthStatus := hrm.healthService.GetDatabaseHealthStatus()
	gecho.Success(w,
		gecho.WithData(dbHealthStatus),
		gecho.Send(),
	)
}
