package entities

// Deal is an early-stage sales opportunity kept by the CRM. The firm-offer
// flow only reads it.
//
// Storage model (DynamoDB):
//   - PK: id
type Deal struct {
	ID               string  `json:"id"`
	ClientName       string  `json:"client_name"`
	ClientEmail      string  `json:"client_email"`
	ClientPhone      string  `json:"client_phone"`
	Company          string  `json:"company"`
	EventTitle       string  `json:"event_title"`
	EventDate        string  `json:"event_date"`
	EventLocation    string  `json:"event_location"`
	EventType        string  `json:"event_type"`
	AttendeeCount    int     `json:"attendee_count"`
	SpeakerRequested string  `json:"speaker_requested"`
	DealValue        float64 `json:"deal_value"`
	TravelRequired   bool    `json:"travel_required"`
	FlightRequired   bool    `json:"flight_required"`
	HotelRequired    bool    `json:"hotel_required"`
	TravelStipend    float64 `json:"travel_stipend"`
}

// ProposalSpeaker is one speaker pitched in a proposal.
type ProposalSpeaker struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

// Proposal is the formal pitch sent to a client before a firm offer exists.
//
// Storage model (DynamoDB):
//   - PK: id
//   - speakers stored as a JSON document
type Proposal struct {
	ID              string            `json:"id"`
	ClientName      string            `json:"client_name"`
	ClientEmail     string            `json:"client_email"`
	ClientCompany   string            `json:"client_company"`
	EventTitle      string            `json:"event_title"`
	EventDate       string            `json:"event_date"`
	EventLocation   string            `json:"event_location"`
	EventType       string            `json:"event_type"`
	AttendeeCount   int               `json:"attendee_count"`
	Speakers        []ProposalSpeaker `json:"speakers"`
	TotalInvestment float64           `json:"total_investment"`
}
