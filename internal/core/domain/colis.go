package domain

// Status is a colis lifecycle state as spelled by the backend.
type Status string

const (
	StatusCreated   Status = "CREE"
	StatusCollected Status = "COLLECTE"
	StatusInStock   Status = "EN_STOCK"
	StatusInTransit Status = "EN_TRANSIT"
	StatusDelivered Status = "LIVRE"
)

// Priority is a colis delivery priority as spelled by the backend.
type Priority string

const (
	PriorityHigh   Priority = "HAUTE"
	PriorityMedium Priority = "MOYENNE"
	PriorityLow    Priority = "BASSE"
)

// Colis is a tracked package.
type Colis struct {
	ID              string          `json:"id"`
	Description     string          `json:"description"`
	WeightKg        float64         `json:"poids"`
	Priority        Priority        `json:"priorite"`
	DestinationCity string          `json:"villeDestination"`
	Status          Status          `json:"statut"`
	CourierID       string          `json:"livreurId,omitempty"`
	SenderClientID  string          `json:"clientExpediteurId"`
	RecipientID     string          `json:"destinataireId"`
	ZoneID          string          `json:"zoneId,omitempty"`
	History         []DeliveryEvent `json:"historique,omitempty"`
	CreatedAt       string          `json:"dateCreation,omitempty"`
	UpdatedAt       string          `json:"dateModification,omitempty"`
}

// DeliveryEvent is one entry of a colis delivery history.
type DeliveryEvent struct {
	ID          string `json:"id"`
	ColisID     string `json:"colisId,omitempty"`
	Status      string `json:"statut"`
	ChangedAt   string `json:"dateChangement"`
	Comment     string `json:"commentaire,omitempty"`
	StatusLabel string `json:"statutLibelle,omitempty"`
}

// Destinataire is a delivery recipient record.
type Destinataire struct {
	ID        string `json:"id,omitempty"`
	LastName  string `json:"nom"`
	FirstName string `json:"prenom"`
	Email     string `json:"email"`
	Phone     string `json:"telephone"`
	Address   string `json:"adresse"`
}

// Produit is a catalogue product that can be packed into a colis.
type Produit struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"nom"`
	Category string  `json:"categorie"`
	WeightKg float64 `json:"poids"`
	Price    float64 `json:"prix"`
}

// Zone is a delivery zone.
type Zone struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"nom"`
	ZipCode string `json:"codePostal"`
}

// ColisProduit pairs a product with a quantity inside a colis request.
type ColisProduit struct {
	Produit  *Produit `json:"produit,omitempty"`
	Quantity int      `json:"quantite"`
}

// ColisRequest is the payload for creating or updating a colis.
type ColisRequest struct {
	Description     string         `json:"description"`
	WeightKg        float64        `json:"poids"`
	Priority        Priority       `json:"priorite"`
	DestinationCity string         `json:"villeDestination"`
	Recipient       Destinataire   `json:"destinataire"`
	Zone            *Zone          `json:"zone,omitempty"`
	Produits        []ColisProduit `json:"produits"`
}

// ColisSearch carries the optional filters of a manager-side colis search.
type ColisSearch struct {
	Status   Status
	City     string
	Priority Priority
}

// Statistiques is the manager dashboard overview.
type Statistiques struct {
	TotalColis     int `json:"totalColis"`
	ColisEnAttente int `json:"colisEnAttente"`
	ColisEnCours   int `json:"colisEnCours"`
	ColisLivres    int `json:"colisLivres"`
}
