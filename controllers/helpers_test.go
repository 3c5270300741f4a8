package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Chauffeur{},
		&models.Vehicule{},
		&models.Destination{},
		&models.TypeService{},
		&models.Expedition{},
		&models.Tournee{},
		&models.TourneeExpedition{},
		&models.TrackingHistorique{},
		&models.Facture{},
		&models.FactureExpedition{},
		&models.Paiement{},
		&models.Incident{},
		&models.Reclamation{},
		&models.RelanceLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

// testRouter registers the handlers under test without the middleware
// stack of the real router.
func testRouter() *gin.Engine {
	r := gin.New()
	api := r.Group("/api")

	api.POST("/login/", Login)

	api.GET("/clients/", GetClients)
	api.POST("/clients/", CreateClient)
	api.GET("/clients/:id/", GetClient)
	api.PUT("/clients/:id/", UpdateClient)
	api.DELETE("/clients/:id/", DeleteClient)

	api.GET("/expeditions/", GetExpeditions)
	api.POST("/expeditions/", CreateExpedition)
	api.GET("/expeditions/:id/", GetExpedition)
	api.PUT("/expeditions/:id/", UpdateExpedition)
	api.DELETE("/expeditions/:id/", DeleteExpedition)

	api.GET("/factures/", GetFactures)
	api.POST("/factures/", CreateFacture)
	api.DELETE("/factures/:id/", DeleteFacture)

	api.POST("/paiements/", CreatePaiement)

	api.GET("/tracking/", GetTracking)
	api.POST("/tracking/", CreateTrackingStep)

	api.GET("/analytics/dashboard/", GetDashboard)
	api.GET("/analytics/expedition_trend/", GetExpeditionTrend)
	api.GET("/analytics/status_distribution/", GetStatusDistribution)

	return r
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func fieldError(t *testing.T, w *httptest.ResponseRecorder, field string) string {
	t.Helper()
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	msg, ok := resp.Errors[field]
	if !ok {
		t.Fatalf("no error for field %q in %q", field, w.Body.String())
	}
	return msg
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedClient(t *testing.T, nom string) models.Client {
	t.Helper()
	client := models.Client{Nom: nom}
	if err := config.DB.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return client
}

func seedDestination(t *testing.T, ville, tarifBase string) models.Destination {
	t.Helper()
	dest := models.Destination{Ville: ville, Pays: "Algérie", TarifBase: dec(tarifBase)}
	if err := config.DB.Create(&dest).Error; err != nil {
		t.Fatalf("seed destination: %v", err)
	}
	return dest
}

func seedService(t *testing.T, nom, tarifPoids, tarifVolume string) models.TypeService {
	t.Helper()
	service := models.TypeService{Nom: nom, TarifPoids: dec(tarifPoids), TarifVolume: dec(tarifVolume)}
	if err := config.DB.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return service
}

func seedExpedition(t *testing.T, clientID, destID, serviceID uint, statut string) models.Expedition {
	t.Helper()
	exp := models.Expedition{
		ClientID:      clientID,
		DestinationID: destID,
		ServiceID:     serviceID,
		Poids:         10,
		Volume:        2,
		Statut:        statut,
	}
	if err := config.DB.Create(&exp).Error; err != nil {
		t.Fatalf("seed expedition: %v", err)
	}
	return exp
}

func seedFacture(t *testing.T, clientID uint, montantHT, statut string) models.Facture {
	t.Helper()
	facture := models.Facture{
		ClientID:     clientID,
		DateEcheance: models.NewDate(2026, 9, 30),
		MontantHT:    dec(montantHT),
		TauxTVA:      dec("19"),
		Statut:       statut,
	}
	if err := config.DB.Create(&facture).Error; err != nil {
		t.Fatalf("seed facture: %v", err)
	}
	return facture
}
