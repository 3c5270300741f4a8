package models

import (
	"fmt"
	"strings"
	"testing"

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
	if err := db.AutoMigrate(
		&Client{}, &Destination{}, &TypeService{}, &Expedition{},
		&Tournee{}, &TourneeExpedition{}, &Facture{}, &FactureExpedition{},
		&Reclamation{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPricingTotal(t *testing.T) {
	dest := Destination{TarifBase: dec("20.00")}
	service := TypeService{TarifPoids: dec("1.50"), TarifVolume: dec("5.00")}

	got := PricingTotal(dest, service, 10, 2)
	if !got.Equal(dec("45.00")) {
		t.Errorf("PricingTotal = %s, want 45.00", got)
	}
}

func TestPricingTotalRounding(t *testing.T) {
	dest := Destination{TarifBase: dec("10.00")}
	service := TypeService{TarifPoids: dec("0.33"), TarifVolume: dec("0.00")}

	// 10 + 3.3*0.33 = 11.089, rounds to 11.09.
	got := PricingTotal(dest, service, 3.3, 0)
	if !got.Equal(dec("11.09")) {
		t.Errorf("PricingTotal = %s, want 11.09", got)
	}
}

func TestComputeTVA(t *testing.T) {
	f := Facture{MontantHT: dec("100.00"), TauxTVA: dec("19")}
	f.ComputeTVA()

	if !f.MontantTVA.Equal(dec("19.00")) {
		t.Errorf("MontantTVA = %s, want 19.00", f.MontantTVA)
	}
	if !f.MontantTTC.Equal(dec("119.00")) {
		t.Errorf("MontantTTC = %s, want 119.00", f.MontantTTC)
	}
}

func TestComputeTVARounding(t *testing.T) {
	f := Facture{MontantHT: dec("33.33"), TauxTVA: dec("19")}
	f.ComputeTVA()

	// 33.33 * 0.19 = 6.3327, rounds to 6.33.
	if !f.MontantTVA.Equal(dec("6.33")) {
		t.Errorf("MontantTVA = %s, want 6.33", f.MontantTVA)
	}
	if !f.MontantTTC.Equal(dec("39.66")) {
		t.Errorf("MontantTTC = %s, want 39.66", f.MontantTTC)
	}
}

func TestExpeditionPricedOnCreate(t *testing.T) {
	db := testDB(t)

	client := Client{Nom: "Transports Sud"}
	db.Create(&client)
	dest := Destination{Ville: "Oran", Pays: "Algérie", TarifBase: dec("20.00")}
	db.Create(&dest)
	service := TypeService{Nom: "Standard", TarifPoids: dec("1.50"), TarifVolume: dec("5.00")}
	db.Create(&service)

	exp := Expedition{
		ClientID:      client.ID,
		DestinationID: dest.ID,
		ServiceID:     service.ID,
		Poids:         10,
		Volume:        2,
		Statut:        StatutEnTransit,
	}
	if err := db.Create(&exp).Error; err != nil {
		t.Fatalf("create expedition: %v", err)
	}

	if !exp.MontantTotal.Equal(dec("45.00")) {
		t.Errorf("MontantTotal = %s, want 45.00", exp.MontantTotal)
	}
	if len(exp.NumeroSuivi) != 8 || exp.NumeroSuivi != strings.ToUpper(exp.NumeroSuivi) {
		t.Errorf("NumeroSuivi = %q, want 8 uppercase chars", exp.NumeroSuivi)
	}
}

func TestExpeditionKeepsStoredAmount(t *testing.T) {
	db := testDB(t)

	client := Client{Nom: "Client"}
	db.Create(&client)
	dest := Destination{Ville: "Alger", Pays: "Algérie", TarifBase: dec("20.00")}
	db.Create(&dest)
	service := TypeService{Nom: "Express", TarifPoids: dec("3.00"), TarifVolume: dec("10.00")}
	db.Create(&service)

	exp := Expedition{
		ClientID:      client.ID,
		DestinationID: dest.ID,
		ServiceID:     service.ID,
		Poids:         5,
		Volume:        1,
	}
	db.Create(&exp)
	priced := exp.MontantTotal

	exp.Poids = 50
	if err := db.Save(&exp).Error; err != nil {
		t.Fatalf("save: %v", err)
	}
	if !exp.MontantTotal.Equal(priced) {
		t.Errorf("MontantTotal changed on update: %s, want %s", exp.MontantTotal, priced)
	}
}

func TestGeneratedNumbers(t *testing.T) {
	db := testDB(t)

	client := Client{Nom: "Client"}
	db.Create(&client)

	tournee := Tournee{Date: NewDate(2026, 3, 10)}
	if err := db.Create(&tournee).Error; err != nil {
		t.Fatalf("create tournee: %v", err)
	}
	if !strings.HasPrefix(tournee.NumeroTournee, "T-") || len(tournee.NumeroTournee) != 8 {
		t.Errorf("NumeroTournee = %q, want T- plus 6 chars", tournee.NumeroTournee)
	}

	facture := Facture{ClientID: client.ID, DateEcheance: NewDate(2026, 4, 1), MontantHT: dec("10.00"), TauxTVA: dec("19")}
	if err := db.Create(&facture).Error; err != nil {
		t.Fatalf("create facture: %v", err)
	}
	if !strings.HasPrefix(facture.NumeroFacture, "F-") || len(facture.NumeroFacture) != 10 {
		t.Errorf("NumeroFacture = %q, want F- plus 8 chars", facture.NumeroFacture)
	}
	if facture.DateEmission.IsZero() {
		t.Error("DateEmission not defaulted on create")
	}

	rec := Reclamation{ClientID: client.ID, TypeReclamation: ReclamationAutre, Description: "x", Statut: ReclamationNouvelle}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("create reclamation: %v", err)
	}
	if !strings.HasPrefix(rec.NumeroReclamation, "R-") || len(rec.NumeroReclamation) != 10 {
		t.Errorf("NumeroReclamation = %q, want R- plus 8 chars", rec.NumeroReclamation)
	}
}

func TestStatusInfoFallback(t *testing.T) {
	info := ExpeditionStatusInfo(StatutLivre)
	if info.Label != "Livré" || info.Tier != TierSuccess {
		t.Errorf("LIVRE info = %+v", info)
	}

	unknown := ExpeditionStatusInfo("PERDU_EN_MER")
	if unknown.Label != "PERDU_EN_MER" || unknown.Tier != TierNeutral {
		t.Errorf("unknown status info = %+v, want raw label with neutral tier", unknown)
	}

	if ValidExpeditionStatus("PERDU_EN_MER") {
		t.Error("ValidExpeditionStatus accepted an unknown status")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, 8, 31)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-08-31"` {
		t.Errorf("marshal = %s", b)
	}

	var parsed Date
	if err := parsed.UnmarshalJSON(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !parsed.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}

	var zero Date
	b, _ = zero.MarshalJSON()
	if string(b) != "null" {
		t.Errorf("zero date marshal = %s, want null", b)
	}
}
