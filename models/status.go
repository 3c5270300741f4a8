package models

// Expedition statuses
const (
	StatutEnTransit = "EN_TRANSIT"
	StatutCentreTri = "CENTRE_TRI"
	StatutLivraison = "LIVRAISON"
	StatutLivre     = "LIVRE"
	StatutEchec     = "ECHEC"
)

// Tournee statuses
const (
	TourneePlanifiee = "PLANIFIEE"
	TourneeEnCours   = "EN_COURS"
	TourneeTerminee  = "TERMINEE"
	TourneeAnnulee   = "ANNULEE"
)

// Facture statuses
const (
	FactureBrouillon = "BROUILLON"
	FactureEmise     = "EMISE"
	FacturePayee     = "PAYEE"
	FactureAnnulee   = "ANNULEE"
)

// Incident statuses and types
const (
	IncidentOuvert  = "OUVERT"
	IncidentEnCours = "EN_COURS"
	IncidentResolu  = "RESOLU"
	IncidentClos    = "CLOS"

	IncidentRetard        = "RETARD"
	IncidentPerte         = "PERTE"
	IncidentEndommagement = "ENDOMMAGEMENT"
	IncidentAutre         = "AUTRE"
)

// Reclamation statuses and types
const (
	ReclamationNouvelle = "NOUVELLE"
	ReclamationEnCours  = "EN_COURS"
	ReclamationResolue  = "RESOLUE"
	ReclamationAnnulee  = "ANNULEE"

	ReclamationRetard      = "RETARD"
	ReclamationQualite     = "QUALITE"
	ReclamationFacturation = "FACTURATION"
	ReclamationAutre       = "AUTRE"
)

// Paiement modes
const (
	PaiementEspeces  = "ESPECES"
	PaiementCheque   = "CHEQUE"
	PaiementVirement = "VIREMENT"
	PaiementCarte    = "CARTE"
)

// StatusInfo is the presentation record for a status value. Tier is a
// semantic hint (info, warning, progress, success, danger, neutral); the
// view layer decides how to render it.
type StatusInfo struct {
	Label string `json:"label"`
	Tier  string `json:"tier"`
}

const (
	TierInfo     = "info"
	TierWarning  = "warning"
	TierProgress = "progress"
	TierSuccess  = "success"
	TierDanger   = "danger"
	TierNeutral  = "neutral"
)

// ExpeditionStatuses lists the expedition statuses in their canonical order.
// Fallback aggregation depends on this ordering being stable.
var ExpeditionStatuses = []string{
	StatutEnTransit,
	StatutCentreTri,
	StatutLivraison,
	StatutLivre,
	StatutEchec,
}

var expeditionStatusInfo = map[string]StatusInfo{
	StatutEnTransit: {Label: "En transit", Tier: TierInfo},
	StatutCentreTri: {Label: "En centre de tri", Tier: TierWarning},
	StatutLivraison: {Label: "En cours de livraison", Tier: TierProgress},
	StatutLivre:     {Label: "Livré", Tier: TierSuccess},
	StatutEchec:     {Label: "Échec", Tier: TierDanger},
}

var tourneeStatusInfo = map[string]StatusInfo{
	TourneePlanifiee: {Label: "Planifiée", Tier: TierInfo},
	TourneeEnCours:   {Label: "En cours", Tier: TierProgress},
	TourneeTerminee:  {Label: "Terminée", Tier: TierSuccess},
	TourneeAnnulee:   {Label: "Annulée", Tier: TierDanger},
}

var factureStatusInfo = map[string]StatusInfo{
	FactureBrouillon: {Label: "Brouillon", Tier: TierNeutral},
	FactureEmise:     {Label: "Émise", Tier: TierInfo},
	FacturePayee:     {Label: "Payée", Tier: TierSuccess},
	FactureAnnulee:   {Label: "Annulée", Tier: TierDanger},
}

var incidentStatusInfo = map[string]StatusInfo{
	IncidentOuvert:  {Label: "Ouvert", Tier: TierDanger},
	IncidentEnCours: {Label: "En cours de traitement", Tier: TierProgress},
	IncidentResolu:  {Label: "Résolu", Tier: TierSuccess},
	IncidentClos:    {Label: "Clos", Tier: TierNeutral},
}

var reclamationStatusInfo = map[string]StatusInfo{
	ReclamationNouvelle: {Label: "Nouvelle", Tier: TierInfo},
	ReclamationEnCours:  {Label: "En cours de traitement", Tier: TierProgress},
	ReclamationResolue:  {Label: "Résolue", Tier: TierSuccess},
	ReclamationAnnulee:  {Label: "Annulée", Tier: TierNeutral},
}

func lookupStatus(table map[string]StatusInfo, statut string) StatusInfo {
	if info, ok := table[statut]; ok {
		return info
	}
	// Unknown statuses must never break rendering.
	return StatusInfo{Label: statut, Tier: TierNeutral}
}

func ExpeditionStatusInfo(statut string) StatusInfo {
	return lookupStatus(expeditionStatusInfo, statut)
}

func TourneeStatusInfo(statut string) StatusInfo {
	return lookupStatus(tourneeStatusInfo, statut)
}

func FactureStatusInfo(statut string) StatusInfo {
	return lookupStatus(factureStatusInfo, statut)
}

func IncidentStatusInfo(statut string) StatusInfo {
	return lookupStatus(incidentStatusInfo, statut)
}

func ReclamationStatusInfo(statut string) StatusInfo {
	return lookupStatus(reclamationStatusInfo, statut)
}

// ValidExpeditionStatus reports whether statut is a known expedition status.
func ValidExpeditionStatus(statut string) bool {
	_, ok := expeditionStatusInfo[statut]
	return ok
}
