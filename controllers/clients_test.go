package controllers

import (
	"net/http"
	"testing"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
)

func TestCreateClient(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := performRequest(t, r, http.MethodPost, "/api/clients/", map[string]string{
		"nom":       "Transports Atlas",
		"adresse":   "12 rue des Oliviers, Alger",
		"telephone": "+213 555 12 34 56",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var client models.Client
	decodeBody(t, w, &client)
	if client.ID == 0 || client.Nom != "Transports Atlas" {
		t.Errorf("created client = %+v", client)
	}
	if !client.Solde.IsZero() {
		t.Errorf("new client solde = %s, want 0", client.Solde)
	}
}

func TestCreateClientMissingNom(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := performRequest(t, r, http.MethodPost, "/api/clients/", map[string]string{
		"adresse": "nowhere",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	fieldError(t, w, "nom")
}

func TestCreateClientBadPhone(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := performRequest(t, r, http.MethodPost, "/api/clients/", map[string]string{
		"nom":       "Client",
		"telephone": "pas-un-numero",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	fieldError(t, w, "telephone")
}

func TestUpdateClient(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Avant")

	w := performRequest(t, r, http.MethodPut, "/api/clients/1/", map[string]string{
		"nom": "Après",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated models.Client
	config.DB.First(&updated, client.ID)
	if updated.Nom != "Après" {
		t.Errorf("nom = %q, want Après", updated.Nom)
	}
}

func TestGetClientNotFound(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := performRequest(t, r, http.MethodGet, "/api/clients/999/", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteClient(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Jetable")

	w := performRequest(t, r, http.MethodDelete, "/api/clients/1/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.Client{}).Where("id = ?", client.ID).Count(&count)
	if count != 0 {
		t.Error("client still present after delete")
	}
}

func TestDeleteClientReferencedConflict(t *testing.T) {
	setupTestDB(t)
	r := testRouter()
	client := seedClient(t, "Occupé")
	dest := seedDestination(t, "Oran", "20.00")
	service := seedService(t, "Standard", "1.50", "5.00")
	seedExpedition(t, client.ID, dest.ID, service.ID, models.StatutEnTransit)

	w := performRequest(t, r, http.MethodDelete, "/api/clients/1/", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body = %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.Client{}).Where("id = ?", client.ID).Count(&count)
	if count != 1 {
		t.Error("client removed despite references")
	}
}
