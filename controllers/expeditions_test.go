package controllers

import (
	"net/http"
	"testing"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
)

func TestCreateExpeditionPricesFromTariffs(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Client")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")

	w := performRequest(t, r, http.MethodPost, "/api/expeditions/", map[string]interface{}{
		"client":      client.ID,
		"destination": dest.ID,
		"service":     service.ID,
		"poids":       10,
		"volume":      2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var exp models.Expedition
	decodeBody(t, w, &exp)
	if !exp.MontantTotal.Equal(dec("45.00")) {
		t.Errorf("montant_total = %s, want 45.00", exp.MontantTotal)
	}
	if exp.Statut != models.StatutEnTransit {
		t.Errorf("statut = %q, want default EN_TRANSIT", exp.Statut)
	}
	if exp.NumeroSuivi == "" {
		t.Error("numero_suivi not generated")
	}
	if exp.NomClient != "Client" || exp.VilleDestination != "Oran" || exp.NomService != "Standard" {
		t.Errorf("display names = %q/%q/%q", exp.NomClient, exp.VilleDestination, exp.NomService)
	}
}

func TestCreateExpeditionUnknownClient(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")

	w := performRequest(t, r, http.MethodPost, "/api/expeditions/", map[string]interface{}{
		"client":      999,
		"destination": dest.ID,
		"service":     service.ID,
		"poids":       1,
		"volume":      1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	fieldError(t, w, "client")
}

func TestCreateExpeditionRejectsNonPositiveWeight(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Client")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")

	w := performRequest(t, r, http.MethodPost, "/api/expeditions/", map[string]interface{}{
		"client":      client.ID,
		"destination": dest.ID,
		"service":     service.ID,
		"poids":       0,
		"volume":      1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	fieldError(t, w, "poids")
}

func TestListExpeditionsFilterByStatut(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Client")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")
	seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutEnTransit)
	seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutLivre)
	seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutLivre)

	w := performRequest(t, r, http.MethodGet, "/api/expeditions/?statut=LIVRE", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var expeditions []models.Expedition
	decodeBody(t, w, &expeditions)
	if len(expeditions) != 2 {
		t.Fatalf("len = %d, want 2", len(expeditions))
	}
	for _, e := range expeditions {
		if e.Statut != models.StatutLivre {
			t.Errorf("statut = %q, want LIVRE", e.Statut)
		}
	}
}

func TestUpdateExpeditionKeepsAmount(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Client")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")
	exp := seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutEnTransit)

	w := performRequest(t, r, http.MethodPut, "/api/expeditions/1/", map[string]interface{}{
		"client":      client.ID,
		"destination": dest.ID,
		"service":     service.ID,
		"poids":       100,
		"volume":      50,
		"statut":      models.StatutLivre,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated models.Expedition
	decodeBody(t, w, &updated)
	if !updated.MontantTotal.Equal(exp.MontantTotal) {
		t.Errorf("montant_total = %s, want unchanged %s", updated.MontantTotal, exp.MontantTotal)
	}
	if updated.Statut != models.StatutLivre {
		t.Errorf("statut = %q, want LIVRE", updated.Statut)
	}
}

func TestDeleteExpeditionInFactureConflict(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Client")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")
	exp := seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutLivre)
	facture := seedFacture(t, client.ID, "45.00", models.FactureEmise)
	config.DB.Create(&models.FactureExpedition{FactureID: facture.ID, ExpeditionID: exp.ID})

	w := performRequest(t, r, http.MethodDelete, "/api/expeditions/1/", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body = %s", w.Code, w.Body.String())
	}
}

func TestDeleteExpeditionCascadesTracking(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Client")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")
	exp := seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutEnTransit)
	config.DB.Create(&models.TrackingHistorique{
		ExpeditionID: exp.ID,
		Statut:       models.StatutCentreTri,
		Lieu:         "Alger",
	})

	w := performRequest(t, r, http.MethodDelete, "/api/expeditions/1/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.TrackingHistorique{}).Where("expedition_id = ?", exp.ID).Count(&count)
	if count != 0 {
		t.Error("tracking history survived the delete")
	}
}
