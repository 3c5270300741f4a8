package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/islemdzxd/delivery-management-platform/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.Facture{}, &models.RelanceLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedFacture(t *testing.T, db *gorm.DB, statut string, echeance models.Date) models.Facture {
	t.Helper()
	client := models.Client{Nom: "Client"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	facture := models.Facture{
		ClientID:     client.ID,
		DateEcheance: echeance,
		MontantHT:    decimal.NewFromInt(100),
		TauxTVA:      decimal.NewFromInt(19),
		Statut:       statut,
	}
	if err := db.Create(&facture).Error; err != nil {
		t.Fatalf("seed facture: %v", err)
	}
	return facture
}

func TestOverdueFacturesSelection(t *testing.T) {
	db := testDB(t)
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	overdue := seedFacture(t, db, models.FactureEmise, models.NewDate(2026, 8, 1))
	seedFacture(t, db, models.FactureEmise, models.NewDate(2026, 9, 15))
	seedFacture(t, db, models.FacturePayee, models.NewDate(2026, 8, 1))
	seedFacture(t, db, models.FactureBrouillon, models.NewDate(2026, 8, 1))

	s := &RelanceService{db: db}
	factures, err := s.overdueFactures(now)
	if err != nil {
		t.Fatalf("overdueFactures: %v", err)
	}
	if len(factures) != 1 || factures[0].ID != overdue.ID {
		t.Errorf("factures = %+v, want only the overdue EMISE one", factures)
	}
}

func TestJoursRetard(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	if got := JoursRetard(models.NewDate(2026, 8, 21), now); got != 10 {
		t.Errorf("JoursRetard = %d, want 10", got)
	}
	if got := JoursRetard(models.NewDate(2026, 9, 10), now); got != 0 {
		t.Errorf("JoursRetard for a future due date = %d, want 0", got)
	}
}

func TestBuildRelanceMessage(t *testing.T) {
	facture := models.Facture{
		NumeroFacture: "F-ABCD1234",
		MontantTTC:    decimal.RequireFromString("119.00"),
	}

	msg := BuildRelanceMessage("Transports Atlas", facture, 10)
	for _, want := range []string{"Transports Atlas", "F-ABCD1234", "119.00", "10 jour(s)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
