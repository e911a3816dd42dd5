package entities

// ProgramType is the kind of session the speaker delivers.
type ProgramType string

const (
	ProgramTypeKeynote         ProgramType = "keynote"
	ProgramTypePanelDiscussion ProgramType = "panel_discussion"
	ProgramTypeWorkshop        ProgramType = "workshop"
	ProgramTypeFiresideChat    ProgramType = "fireside_chat"
)

func (p ProgramType) Valid() bool {
	switch p {
	case ProgramTypeKeynote, ProgramTypePanelDiscussion, ProgramTypeWorkshop, ProgramTypeFiresideChat:
		return true
	}
	return false
}

// FirmOfferDocuments groups the structured sub-documents of a firm offer.
// Each one is stored as a JSON document next to the record.
type FirmOfferDocuments struct {
	EventOverview         EventOverview         `json:"event_overview"`
	SpeakerProgram        SpeakerProgram        `json:"speaker_program"`
	EventSchedule         EventSchedule         `json:"event_schedule"`
	TechnicalRequirements TechnicalRequirements `json:"technical_requirements"`
	TravelAccommodation   TravelAccommodation   `json:"travel_accommodation"`
	AdditionalInfo        AdditionalInfo        `json:"additional_info"`
	FinancialDetails      FinancialDetails      `json:"financial_details"`
	Confirmation          Confirmation          `json:"confirmation"`
}

type Contact struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type EventOverview struct {
	ClientName          string  `json:"client_name"`
	ClientEmail         string  `json:"client_email"`
	ClientPhone         string  `json:"client_phone"`
	CompanyName         string  `json:"company_name"`
	BillingContact      Contact `json:"billing_contact"`
	LogisticsContact    Contact `json:"logistics_contact"`
	EventName           string  `json:"event_name"`
	EventDate           string  `json:"event_date"`
	EventWebsite        string  `json:"event_website"`
	VenueName           string  `json:"venue_name"`
	VenueAddress        string  `json:"venue_address"`
	EventLocation       string  `json:"event_location"`
	EventType           string  `json:"event_type"`
	AttendeeCount       int     `json:"attendee_count"`
	AudienceDescription string  `json:"audience_description"`
}

type SpeakerProgram struct {
	RequestedSpeaker     string      `json:"requested_speaker"`
	SpeakerEmail         string      `json:"speaker_email"`
	ProgramTopic         string      `json:"program_topic"`
	ProgramType          ProgramType `json:"program_type"`
	ProgramLengthMinutes int         `json:"program_length_minutes"`
	QAIncluded           bool        `json:"qa_included"`
	RecordingAllowed     bool        `json:"recording_allowed"`
	Livestream           bool        `json:"livestream"`
	ProgramNotes         string      `json:"program_notes"`
}

type ScheduleItem struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

type EventSchedule struct {
	Timezone         string         `json:"timezone"`
	ArrivalTime      string         `json:"arrival_time"`
	SoundCheckTime   string         `json:"sound_check_time"`
	ProgramStartTime string         `json:"program_start_time"`
	ProgramEndTime   string         `json:"program_end_time"`
	DepartureTime    string         `json:"departure_time"`
	ScheduleItems    []ScheduleItem `json:"schedule_items"`
}

type TechnicalRequirements struct {
	AVContact          Contact `json:"av_contact"`
	MicrophoneType     string  `json:"microphone_type"`
	PresentationSlides bool    `json:"presentation_slides"`
	ConfidenceMonitor  bool    `json:"confidence_monitor"`
	StageSetup         string  `json:"stage_setup"`
	Notes              string  `json:"notes"`
}

type TravelAccommodation struct {
	TravelRequired   bool    `json:"travel_required"`
	FlightRequired   bool    `json:"flight_required"`
	HotelRequired    bool    `json:"hotel_required"`
	GroundTransport  bool    `json:"ground_transport"`
	TravelStipend    float64 `json:"travel_stipend"`
	DepartureAirport string  `json:"departure_airport"`
	HotelName        string  `json:"hotel_name"`
	HotelNights      int     `json:"hotel_nights"`
	Notes            string  `json:"notes"`
}

type AdditionalInfo struct {
	GreenRoom        bool   `json:"green_room"`
	MeetAndGreet     bool   `json:"meet_and_greet"`
	BookSigning      bool   `json:"book_signing"`
	PhotoOpportunity bool   `json:"photo_opportunity"`
	DressCode        string `json:"dress_code"`
	SpecialRequests  string `json:"special_requests"`
}

const DefaultCurrency = "USD"

type FinancialDetails struct {
	SpeakerFee     float64 `json:"speaker_fee"`
	Currency       string  `json:"currency"`
	DepositPercent float64 `json:"deposit_percent"`
	DepositDueDate string  `json:"deposit_due_date"`
	BalanceDueDate string  `json:"balance_due_date"`
	PaymentMethod  string  `json:"payment_method"`
	PONumber       string  `json:"po_number"`
	InvoiceNotes   string  `json:"invoice_notes"`
}

type Confirmation struct {
	AgreedToTerms     bool   `json:"agreed_to_terms"`
	SignerName        string `json:"signer_name"`
	SignerTitle       string `json:"signer_title"`
	SignerEmail       string `json:"signer_email"`
	SignedDate        string `json:"signed_date"`
	PrepCallRequested bool   `json:"prep_call_requested"`
	PrepCallNotes     string `json:"prep_call_notes"`
}

// Normalize fills the defaults a stored document must carry: empty lists
// instead of nil, a known program type and a currency.
func (d FirmOfferDocuments) Normalize() FirmOfferDocuments {
	if d.EventSchedule.ScheduleItems == nil {
		d.EventSchedule.ScheduleItems = []ScheduleItem{}
	}
	if !d.SpeakerProgram.ProgramType.Valid() {
		d.SpeakerProgram.ProgramType = ProgramTypeKeynote
	}
	if d.FinancialDetails.Currency == "" {
		d.FinancialDetails.Currency = DefaultCurrency
	}
	return d
}
