package main

import (
	"fmt"
	"log"
	"os"

	"github.com/islemdzxd/delivery-management-platform/config"
	"github.com/islemdzxd/delivery-management-platform/models"
	"github.com/islemdzxd/delivery-management-platform/routes"
	"github.com/islemdzxd/delivery-management-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
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
	)
}

func main() {

	if os.Getenv("RELANCE_ENABLED") == "true" {
		services.NewRelanceService(config.DB).StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
