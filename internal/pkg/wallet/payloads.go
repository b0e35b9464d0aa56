package wallet

import (
	"fmt"

	"github.com/oskargbc/dws-wallet-service/internal/ticket"
)

// Wire shapes for the walletobjects v1 eventTicketClass and
// eventTicketObject resources. Only the properties this service sets are
// modeled; the API tolerates sparse resources.

type TranslatedString struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

type LocalizedString struct {
	DefaultValue TranslatedString `json:"defaultValue"`
}

type ImageURI struct {
	URI string `json:"uri"`
}

type Image struct {
	SourceURI          ImageURI         `json:"sourceUri"`
	ContentDescription *LocalizedString `json:"contentDescription,omitempty"`
}

type TextModule struct {
	Header string `json:"header"`
	Body   string `json:"body"`
	ID     string `json:"id"`
}

type LinkURI struct {
	URI         string `json:"uri"`
	Description string `json:"description"`
	ID          string `json:"id"`
}

type LinksModule struct {
	URIs []LinkURI `json:"uris"`
}

type ImageModule struct {
	MainImage Image  `json:"mainImage"`
	ID        string `json:"id"`
}

type Barcode struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type LatLongPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SeatModule struct {
	Seat    LocalizedString `json:"seat"`
	Row     LocalizedString `json:"row"`
	Section LocalizedString `json:"section"`
	Gate    LocalizedString `json:"gate"`
}

type EventTicketClass struct {
	EventID      string          `json:"eventId"`
	EventName    LocalizedString `json:"eventName"`
	ID           string          `json:"id"`
	IssuerName   string          `json:"issuerName"`
	ReviewStatus string          `json:"reviewStatus"`
}

type EventTicketObject struct {
	ID               string         `json:"id"`
	ClassID          string         `json:"classId"`
	State            string         `json:"state"`
	HeroImage        Image          `json:"heroImage"`
	LogoImage        Image          `json:"logoImage"`
	TextModulesData  []TextModule   `json:"textModulesData"`
	LinksModuleData  LinksModule    `json:"linksModuleData"`
	ImageModulesData []ImageModule  `json:"imageModulesData"`
	Barcode          Barcode        `json:"barcode"`
	Locations        []LatLongPoint `json:"locations"`
	SeatInfo         SeatModule     `json:"seatInfo"`
	TicketHolderName string         `json:"ticketHolderName"`
	TicketNumber     string         `json:"ticketNumber"`
}

func localized(value string) LocalizedString {
	return LocalizedString{
		DefaultValue: TranslatedString{
			Language: "en-US",
			Value:    value,
		},
	}
}

func newClassPayload(classID string, fields ticket.Fields) EventTicketClass {
	return EventTicketClass{
		EventID:      classID,
		EventName:    localized(fields.Text("event_name")),
		ID:           classID,
		IssuerName:   fields.Text("issuer_name"),
		ReviewStatus: "UNDER_REVIEW",
	}
}

func newObjectPayload(objectID, classID string, fields ticket.Fields) (EventTicketObject, error) {
	seat, err := fields.Seat()
	if err != nil {
		return EventTicketObject{}, fmt.Errorf("failed to build object payload: %w", err)
	}

	banner := fields.Text("banner")
	heroDescription := localized("By selecting Place Order, I agree to all Terms and Conditions")
	imageDescription := localized("Image module description")

	return EventTicketObject{
		ID:      objectID,
		ClassID: classID,
		State:   "ACTIVE",
		HeroImage: Image{
			SourceURI:          ImageURI{URI: banner},
			ContentDescription: &heroDescription,
		},
		LogoImage: Image{
			SourceURI: ImageURI{URI: banner},
		},
		TextModulesData: []TextModule{{
			Header: fields.Text("header_text"),
			Body:   fields.Text("body_text"),
			ID:     "TEXT_MODULE_ID",
		}},
		LinksModuleData: LinksModule{
			URIs: []LinkURI{{
				URI:         fields.Text("google_map_url"),
				Description: "Link module URI description",
				ID:          "LINK_MODULE_URI_ID",
			}, {
				URI:         "tel:" + fields.Text("phone_number"),
				Description: "Link module tel description",
				ID:          "LINK_MODULE_TEL_ID",
			}},
		},
		ImageModulesData: []ImageModule{{
			MainImage: Image{
				SourceURI:          ImageURI{URI: fields.Text("main_image")},
				ContentDescription: &imageDescription,
			},
			ID: "IMAGE_MODULE_ID",
		}},
		Barcode: Barcode{
			Type:  "QR_CODE",
			Value: "QR code",
		},
		Locations: []LatLongPoint{{
			Latitude:  37.424015499999996,
			Longitude: -122.09259560000001,
		}},
		SeatInfo: SeatModule{
			Seat:    localized(seat.SeatNo),
			Row:     localized(seat.Row),
			Section: localized(fields.Text("section")),
			Gate:    localized(fields.Text("gate")),
		},
		TicketHolderName: fields.Text("ticket_holder_name"),
		TicketNumber:     fields.Text("ticket_number"),
	}, nil
}
