package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// RelanceService sends SMS payment reminders for overdue invoices.
type RelanceService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewRelanceService(db *gorm.DB) *RelanceService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &RelanceService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the reminder pass every day at 9 AM.
func (s *RelanceService) StartScheduler() {
	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendDailyRelances)
	c.Start()
	log.Println("Relance scheduler started")
}

// SendDailyRelances reminds every client with an issued invoice past its
// due date. One log row is written per attempt, sent or failed.
func (s *RelanceService) SendDailyRelances() {
	log.Println("Starting daily relance processing...")

	factures, err := s.overdueFactures(time.Now())
	if err != nil {
		log.Printf("Failed to fetch overdue factures: %v", err)
		return
	}

	for _, facture := range factures {
		s.sendRelance(facture, time.Now())
	}

	log.Println("Daily relance processing completed")
}

// overdueFactures returns issued invoices whose due date has passed.
// Cancelled and paid invoices never get reminders.
func (s *RelanceService) overdueFactures(now time.Time) ([]models.Facture, error) {
	var factures []models.Facture
	err := s.db.Where("statut = ? AND date_echeance < ?", models.FactureEmise, now.Format("2006-01-02")).
		Find(&factures).Error
	return factures, err
}

// JoursRetard counts whole days between the due date and now.
func JoursRetard(echeance models.Date, now time.Time) int {
	days := utils.DaysBetween(echeance.Time, now)
	if days < 0 {
		return 0
	}
	return days
}

// BuildRelanceMessage renders the SMS body for one overdue invoice.
func BuildRelanceMessage(clientNom string, facture models.Facture, joursRetard int) string {
	return fmt.Sprintf(
		"Bonjour %s, votre facture %s d'un montant de %s DA est en retard de %d jour(s). Merci de procéder au règlement.",
		clientNom, facture.NumeroFacture, facture.MontantTTC.StringFixed(2), joursRetard)
}

func (s *RelanceService) sendRelance(facture models.Facture, now time.Time) {
	var client models.Client
	if err := s.db.First(&client, facture.ClientID).Error; err != nil {
		log.Printf("Facture %s: failed to load client: %v", facture.NumeroFacture, err)
		return
	}
	if client.Telephone == "" {
		log.Printf("Facture %s: client %s has no phone number, skipping", facture.NumeroFacture, client.Nom)
		return
	}

	message := BuildRelanceMessage(client.Nom, facture, JoursRetard(facture.DateEcheance, now))

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(client.Telephone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	statut := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send relance to %s: %v", client.Telephone, err)
		statut = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Relance sent to %s, SID: %s", client.Telephone, *resp.Sid)
	} else {
		log.Printf("Relance sent to %s, but no SID returned", client.Telephone)
	}

	relanceLog := models.RelanceLog{
		FactureID:    facture.ID,
		ClientID:     client.ID,
		Message:      message,
		Statut:       statut,
		ErrorMessage: errorMsg,
		SentAt:       now,
	}
	if err := s.db.Create(&relanceLog).Error; err != nil {
		log.Printf("Failed to log relance for facture %s: %v", facture.NumeroFacture, err)
	}
}
